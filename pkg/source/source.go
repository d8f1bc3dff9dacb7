package source

import (
	"math"

	"rectsim/pkg/waveform"
)

const twoPiOverThree = 2 * math.Pi / 3

// SinglePhase samples amplitude * sin(2*pi*frequency*t) over the grid.
func SinglePhase(grid waveform.TimeGrid, amplitude, frequency float64) waveform.Waveform {
	omega := 2 * math.Pi * frequency
	v := make(waveform.Waveform, len(grid))
	for i, t := range grid {
		v[i] = amplitude * math.Sin(omega*t)
	}
	return v
}

// ThreePhase samples phases A, B and C at 0, -120 and -240 degree offsets.
// Amplitude is the peak phase voltage.
func ThreePhase(grid waveform.TimeGrid, amplitude, frequency float64) [3]waveform.Waveform {
	omega := 2 * math.Pi * frequency
	var phases [3]waveform.Waveform
	for p := range phases {
		phases[p] = make(waveform.Waveform, len(grid))
	}
	for i, t := range grid {
		angle := omega * t
		phases[0][i] = amplitude * math.Sin(angle)
		phases[1][i] = amplitude * math.Sin(angle-twoPiOverThree)
		phases[2][i] = amplitude * math.Sin(angle-2*twoPiOverThree)
	}
	return phases
}

// LineToLine returns the three line-to-line voltages v_ab, v_bc and v_ca.
func LineToLine(phases [3]waveform.Waveform) (ab, bc, ca waveform.Waveform) {
	n := len(phases[0])
	ab = make(waveform.Waveform, n)
	bc = make(waveform.Waveform, n)
	ca = make(waveform.Waveform, n)
	for i := 0; i < n; i++ {
		ab[i] = phases[0][i] - phases[1][i]
		bc[i] = phases[1][i] - phases[2][i]
		ca[i] = phases[2][i] - phases[0][i]
	}
	return ab, bc, ca
}
