package unsafematch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcAreaKnownShapes(t *testing.T) {
	r := Rectangle{Length: 10, Width: 10}
	assert.Equal(t, 100, CalcArea(&r))

	r = Rectangle{Length: 3, Width: 4}
	assert.Equal(t, 12, CalcArea(&r))

	c := Circle{Radius: 10}
	assert.Equal(t, 98, CalcArea(&c))

	c = Circle{Radius: 1}
	assert.Equal(t, 9, CalcArea(&c))

	c = Circle{Radius: -10}
	assert.Equal(t, -98, CalcArea(&c))
}

func TestCalcAreaUnknownType(t *testing.T) {
	// Same layout as Rectangle but a different type: must not be cast.
	type lookalike struct {
		Length int
		Width  int
	}
	l := lookalike{Length: 10, Width: 10}
	assert.Equal(t, 0, CalcArea(&l))

	n := 42
	assert.Equal(t, 0, CalcArea(&n))

	// Unknown types are never dereferenced.
	assert.Equal(t, 0, CalcArea[string](nil))
}

func TestCalcAreaLeavesInputUntouched(t *testing.T) {
	r := Rectangle{Length: 7, Width: 6}
	for i := 0; i < 100; i++ {
		assert.Equal(t, 42, CalcArea(&r))
	}
	assert.Equal(t, Rectangle{Length: 7, Width: 6}, r)
}
