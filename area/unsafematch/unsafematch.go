// Package unsafematch computes shape areas by checking the static type of a
// generic argument and then reading its memory as the matching concrete
// shape through unsafe.Pointer.
//
// Nothing here is checked by the compiler. The cast is only sound because
// the type comparison guarantees S and the target are the same type; any
// edit that lets the two drift apart (a new shape sharing a case, a
// reordered field, a wrapper type) silently reads garbage. Keep this code in
// this package and nowhere else.
package unsafematch

import (
	"reflect"
	"unsafe"
)

type Rectangle struct {
	Length int
	Width  int
}

type Circle struct {
	Radius int
}

var (
	rectangleType = reflect.TypeOf((*Rectangle)(nil)).Elem()
	circleType    = reflect.TypeOf((*Circle)(nil)).Elem()
)

// CalcArea returns the area of *s when S is Rectangle or Circle and 0 for
// any other S. s must not be nil when S is a shape type.
func CalcArea[S any](s *S) int {
	switch reflect.TypeOf((*S)(nil)).Elem() {
	case rectangleType:
		r := (*Rectangle)(unsafe.Pointer(s))
		return r.Length * r.Width
	case circleType:
		c := (*Circle)(unsafe.Pointer(s))
		return int(float64(float32(c.Radius)) * 3.14 * 3.14)
	}
	return 0
}
