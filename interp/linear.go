// Package interp provides linear interpolation over a sorted grid with flat
// extrapolation at the ends.
package interp

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidInput is returned when a grid is empty or xs and ys differ in
// length. The ordering of xs is not checked.
var ErrInvalidInput = errors.New("interp: invalid input")

// Linear interpolates y at x over the grid (xs, ys), extrapolating flat
// beyond either end. xs must be sorted ascending and the same length as ys.
func Linear(x float64, xs, ys []float64) (float64, error) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return 0, fmt.Errorf("%w: mismatched or empty grid", ErrInvalidInput)
	}
	if len(xs) == 1 {
		return ys[0], nil
	}
	if x <= xs[0] {
		return ys[0], nil
	}
	if x >= xs[len(xs)-1] {
		return ys[len(ys)-1], nil
	}

	// first index i with xs[i] > x, so xs[i-1] <= x < xs[i]
	i := sort.Search(len(xs), func(i int) bool { return xs[i] > x })
	x0, x1 := xs[i-1], xs[i]
	y0, y1 := ys[i-1], ys[i]
	return y0 + (x-x0)*(y1-y0)/(x1-x0), nil
}

// Linearizer implements the Interpolator collaborator using Linear.
type Linearizer struct{}

// Interpolate satisfies curve.Interpolator.
func (Linearizer) Interpolate(x float64, xs, ys []float64) (float64, error) {
	return Linear(x, xs, ys)
}
