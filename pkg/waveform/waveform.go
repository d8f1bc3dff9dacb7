package waveform

import (
	"fmt"
	"math"
)

// Waveform is an ordered sequence of samples aligned 1:1 with a TimeGrid.
type Waveform []float64

// TimeGrid is a uniformly spaced, strictly increasing sequence of sample times in seconds.
type TimeGrid []float64

// Relative tolerance for uniform spacing, against the first step. Grids built
// with repeated float additions drift slightly from the nominal step.
const spacingTol = 1e-6

// Uniform builds a grid spanning the given number of source cycles.
func Uniform(cycles int, frequency float64, samples int) (TimeGrid, error) {
	if cycles < 1 {
		return nil, fmt.Errorf("cycles must be at least 1, got %d", cycles)
	}
	if samples < 2 {
		return nil, fmt.Errorf("samples must be at least 2, got %d", samples)
	}
	if frequency <= 0 || math.IsNaN(frequency) || math.IsInf(frequency, 0) {
		return nil, fmt.Errorf("frequency must be a positive finite value, got %g", frequency)
	}

	span := float64(cycles) / frequency
	step := span / float64(samples-1)
	grid := make(TimeGrid, samples)
	for i := range grid {
		grid[i] = float64(i) * step
	}
	return grid, nil
}

// Validate rejects degenerate grids before any waveform computation starts.
func (g TimeGrid) Validate() error {
	if len(g) < 2 {
		return fmt.Errorf("time grid must have at least 2 samples, got %d", len(g))
	}

	step := g[1] - g[0]
	if math.IsNaN(step) || math.IsInf(step, 0) || step <= 0 {
		return fmt.Errorf("time grid first step must be positive and finite, got %g", step)
	}

	for i := 1; i < len(g); i++ {
		d := g[i] - g[i-1]
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return fmt.Errorf("time grid has a non-finite step at index %d", i)
		}
		if d <= 0 {
			return fmt.Errorf("time grid must be strictly increasing, step at index %d is %g", i, d)
		}
		if math.Abs(d-step) > spacingTol*step {
			return fmt.Errorf("time grid spacing is not uniform at index %d: step %g, expected %g", i, d, step)
		}
	}
	return nil
}

// Step returns the sample spacing. Valid only after Validate.
func (g TimeGrid) Step() float64 {
	return g[1] - g[0]
}
