// Package match computes shape areas with a type switch over a closed set of
// plain data shapes. The shapes carry no behaviour of their own.
package match

// Shape is sealed: only types in this package can implement it.
type Shape interface {
	shape()
}

type Rectangle struct {
	Length int
	Width  int
}

type Circle struct {
	Radius int
}

func (Rectangle) shape() {}
func (Circle) shape()    {}

// CalcArea switches on the concrete case of s. Anything that is not a
// Rectangle or Circle value, including nil and pointers to either, has area 0.
func CalcArea(s Shape) int {
	switch v := s.(type) {
	case Rectangle:
		return v.Length * v.Width
	case Circle:
		return int(float64(float32(v.Radius)) * 3.14 * 3.14)
	default:
		return 0
	}
}
