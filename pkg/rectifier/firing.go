package rectifier

import (
	"math"

	"rectsim/internal/consts"
)

// Conduction scheduling for the controlled topologies. The time axis is
// partitioned into fixed-width intervals derived from the source frequency
// (full period, half period, or a 60-degree sixth); within each interval the
// device conducts over the half-open window [firingDelay, windowEnd). No
// state crosses interval boundaries, so every sample is classified
// independently.

// firingDelay converts a firing angle in degrees to the conduction delay in
// seconds past the interval start.
func firingDelay(angleDeg, omega float64) float64 {
	return angleDeg * consts.RadPerDeg / omega
}

// intervalTime returns the time elapsed since the start of the interval
// containing t, for intervals of the given width starting at t=0.
func intervalTime(t, width float64) float64 {
	return t - math.Floor(t/width)*width
}

// intervalIndex returns the index of the interval containing t.
func intervalIndex(t, width float64) int {
	return int(math.Floor(t / width))
}

// conducting reports whether an interval-relative instant lies inside the
// conduction window [start, end).
func conducting(tc, start, end float64) bool {
	return tc >= start && tc < end
}
