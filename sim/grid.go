package sim

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// UniformGrid returns n evenly spaced points over [start, end], both
// endpoints included. n < 1 returns nil; n == 1 returns just start.
func UniformGrid(start, end float64, n int) []float64 {
	if n < 1 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	grid := make([]float64, n)
	floats.Span(grid, start, end)
	return grid
}

// ValidateGrid checks the integrator's grid contract: non-empty, finite,
// strictly increasing.
func ValidateGrid(grid []float64) error {
	if len(grid) == 0 {
		return fmt.Errorf("%w: grid is empty", ErrInvalidTimeGrid)
	}
	for i, t := range grid {
		if !isFinite(t) {
			return fmt.Errorf("%w: grid[%d] is not finite", ErrInvalidTimeGrid, i)
		}
		if i > 0 && t <= grid[i-1] {
			return fmt.Errorf("%w: grid must be strictly increasing, grid[%d]=%v after %v",
				ErrInvalidTimeGrid, i, t, grid[i-1])
		}
	}
	return nil
}
