// Package value computes shape areas on value types through a generic
// function constrained by Shape. Shapes are passed by value and never
// boxed, so nothing is allocated.
//
// The method call is not resolved at compile time. Go compiles one body
// per GC shape and calls s.CalcArea through that instantiation's
// dictionary, which is an indirect call much like an interface call.
package value

// Shape is the method set required by CalcArea.
type Shape interface {
	CalcArea() int
}

type Rectangle struct {
	Length int
	Width  int
}

func (r Rectangle) CalcArea() int {
	return r.Width * r.Length
}

type Circle struct {
	Radius int
}

// CalcArea keeps the 3.14 * 3.14 approximation used by every strategy.
func (c Circle) CalcArea() int {
	return int(float64(float32(c.Radius)) * 3.14 * 3.14)
}

// CalcArea returns the area of s without converting it to an interface
// value. The call to s.CalcArea is still indirect.
func CalcArea[T Shape](s T) int {
	area := s.CalcArea()
	return area
}

// Compile-time checks.
var (
	_ Shape = Rectangle{}
	_ Shape = Circle{}
)
