package consts

import "math"

const (
	SixPulseRatio = 0.8660254037844386 // sqrt(3)/2, six-pulse bridge output factor
	RadPerDeg     = math.Pi / 180.0    // Degrees to radians (rad/deg)
)
