// Package bench holds the benchmark driver: one summing loop per area
// strategy, all over the same 10x10 rectangle, plus a registry that exposes
// the strategies as interchangeable values.
package bench

import (
	"shape-bench/area/match"
	"shape-bench/area/reference"
	"shape-bench/area/unsafematch"
	"shape-bench/area/value"
)

// InnerIterationCount is the number of area calculations per sum call.
const InnerIterationCount = 100000

// Side length of the square every sum loop measures.
const (
	rectangleLength = 10
	rectangleWidth  = 10
)

// Inputs live in package variables so the compiler cannot fold the loops
// into a constant. referenceShape is typed as the interface: with a concrete
// static type the compiler devirtualizes and inlines the call.
var (
	referenceShape  reference.Shape = &reference.Rectangle{Length: rectangleLength, Width: rectangleWidth}
	valueRect                       = value.Rectangle{Length: rectangleLength, Width: rectangleWidth}
	matchRect                       = match.Rectangle{Length: rectangleLength, Width: rectangleWidth}
	unsafeMatchRect                 = unsafematch.Rectangle{Length: rectangleLength, Width: rectangleWidth}
)

// ExpectedSum is what every sum function returns.
func ExpectedSum() int {
	return InnerIterationCount * rectangleLength * rectangleWidth
}

func ReferenceSum() int {
	sum := 0
	for i := 0; i < InnerIterationCount; i++ {
		sum += reference.CalcArea(referenceShape)
	}
	return sum
}

func ValueSum() int {
	sum := 0
	for i := 0; i < InnerIterationCount; i++ {
		sum += value.CalcArea(valueRect)
	}
	return sum
}

func MatchSum() int {
	sum := 0
	for i := 0; i < InnerIterationCount; i++ {
		sum += match.CalcArea(matchRect)
	}
	return sum
}

func UnsafeMatchSum() int {
	sum := 0
	for i := 0; i < InnerIterationCount; i++ {
		sum += unsafematch.CalcArea(&unsafeMatchRect)
	}
	return sum
}
