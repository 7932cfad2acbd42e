package bench

import (
	"fmt"
	"regexp"
	"strings"

	"shape-bench/area/match"
	"shape-bench/area/reference"
	"shape-bench/area/unsafematch"
	"shape-bench/area/value"
)

// Strategy is one way of dispatching an area calculation. Rectangle and
// Circle build a fresh shape of the strategy's own types and compute its
// area; Sum runs the benchmark loop.
type Strategy struct {
	Name      string
	Rectangle func(length, width int) int
	Circle    func(radius int) int
	Sum       func() int
}

var strategies = []Strategy{
	{
		Name: "Reference",
		Rectangle: func(length, width int) int {
			return reference.CalcArea(&reference.Rectangle{Length: length, Width: width})
		},
		Circle: func(radius int) int {
			return reference.CalcArea(&reference.Circle{Radius: radius})
		},
		Sum: ReferenceSum,
	},
	{
		Name: "Value",
		Rectangle: func(length, width int) int {
			return value.CalcArea(value.Rectangle{Length: length, Width: width})
		},
		Circle: func(radius int) int {
			return value.CalcArea(value.Circle{Radius: radius})
		},
		Sum: ValueSum,
	},
	{
		Name: "Match",
		Rectangle: func(length, width int) int {
			return match.CalcArea(match.Rectangle{Length: length, Width: width})
		},
		Circle: func(radius int) int {
			return match.CalcArea(match.Circle{Radius: radius})
		},
		Sum: MatchSum,
	},
	{
		Name: "UnsafeMatch",
		Rectangle: func(length, width int) int {
			r := unsafematch.Rectangle{Length: length, Width: width}
			return unsafematch.CalcArea(&r)
		},
		Circle: func(radius int) int {
			c := unsafematch.Circle{Radius: radius}
			return unsafematch.CalcArea(&c)
		},
		Sum: UnsafeMatchSum,
	},
}

// Strategies returns every strategy in a fixed order. The slice is a copy.
func Strategies() []Strategy {
	out := make([]Strategy, len(strategies))
	copy(out, strategies)
	return out
}

// Lookup finds a strategy by name, ignoring case.
func Lookup(name string) (Strategy, bool) {
	for _, s := range strategies {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Strategy{}, false
}

// Select returns the strategies picked by pattern, in registry order. An
// empty pattern selects all of them, a strategy name (any case) selects just
// that strategy, and anything else is a regexp over names.
func Select(pattern string) ([]Strategy, error) {
	if pattern == "" {
		return Strategies(), nil
	}
	if s, ok := Lookup(pattern); ok {
		return []Strategy{s}, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid strategy pattern %q: %w", pattern, err)
	}
	var out []Strategy
	for _, s := range strategies {
		if re.MatchString(s.Name) {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no strategy matches %q", pattern)
	}
	return out, nil
}
