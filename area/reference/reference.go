// Package reference computes shape areas through interface dispatch on
// pointer-backed shapes. Every call goes through the interface method table.
package reference

// Shape is implemented by *Rectangle and *Circle.
type Shape interface {
	CalcArea() int
}

// Rectangle is a heap-friendly rectangle; its methods use pointer receivers.
type Rectangle struct {
	Length int
	Width  int
}

// CalcArea returns Length * Width.
func (r *Rectangle) CalcArea() int {
	return r.Width * r.Length
}

// Circle is a heap-friendly circle; its methods use pointer receivers.
type Circle struct {
	Radius int
}

// CalcArea returns Radius * 3.14 * 3.14 truncated to an int. This is not
// pi*r*r and callers depend on the exact value, so keep it.
func (c *Circle) CalcArea() int {
	return int(float64(float32(c.Radius)) * 3.14 * 3.14)
}

// CalcArea calls s.CalcArea through the Shape interface.
func CalcArea(s Shape) int {
	area := s.CalcArea()
	return area
}
