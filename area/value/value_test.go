package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcArea(t *testing.T) {
	assert.Equal(t, 100, CalcArea(Rectangle{Length: 10, Width: 10}))
	assert.Equal(t, 12, CalcArea(Rectangle{Length: 3, Width: 4}))
	assert.Equal(t, 0, CalcArea(Rectangle{}))

	assert.Equal(t, 98, CalcArea(Circle{Radius: 10}))
	assert.Equal(t, 9, CalcArea(Circle{Radius: 1}))
	assert.Equal(t, 985, CalcArea(Circle{Radius: 100}))
	assert.Equal(t, -98, CalcArea(Circle{Radius: -10}))
}

func TestCalcAreaDoesNotAllocate(t *testing.T) {
	r := Rectangle{Length: 10, Width: 10}
	c := Circle{Radius: 10}
	sum := 0
	allocs := testing.AllocsPerRun(100, func() {
		sum += CalcArea(r) + CalcArea(c)
	})
	assert.Zero(t, allocs)
	assert.NotZero(t, sum)
}
