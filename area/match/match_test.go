package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// triangle is a case CalcArea does not know about.
type triangle struct{}

func (triangle) shape() {}

func TestCalcArea(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  int
	}{
		{"square", Rectangle{Length: 10, Width: 10}, 100},
		{"rectangle", Rectangle{Length: 3, Width: 4}, 12},
		{"unit circle", Circle{Radius: 1}, 9},
		{"circle", Circle{Radius: 10}, 98},
		{"negative radius", Circle{Radius: -10}, -98},
		{"unknown case", triangle{}, 0},
		{"nil", nil, 0},
		{"pointer", &Rectangle{Length: 10, Width: 10}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalcArea(tt.shape))
		})
	}
}
