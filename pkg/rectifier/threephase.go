package rectifier

import (
	"math"

	"rectsim/internal/consts"
	"rectsim/pkg/source"
	"rectsim/pkg/waveform"
)

// threePhaseUncontrolled models the six-pulse diode bridge as the envelope of
// the line-to-line voltages: at each sample the line voltage with the largest
// absolute magnitude wins, taken in absolute value. Ties go to the first line
// tested in the fixed (ab, bc, ca) order. The result is scaled by sqrt(3)/2
// to approximate the relation between peak phase voltage and bridge output;
// true commutation is discrete, not an instantaneous envelope.
func threePhaseUncontrolled(grid waveform.TimeGrid, p Params) ([]waveform.Waveform, waveform.Waveform) {
	phases := source.ThreePhase(grid, p.Amplitude, p.Frequency)
	ab, bc, ca := source.LineToLine(phases)

	out := make(waveform.Waveform, len(grid))
	for i := range grid {
		m := math.Abs(ab[i])
		if v := math.Abs(bc[i]); v > m {
			m = v
		}
		if v := math.Abs(ca[i]); v > m {
			m = v
		}
		out[i] = m * consts.SixPulseRatio
	}
	return phases[:], out
}

// threePhaseControlled divides each period into six 60-degree commutation
// intervals. Interval k selects the signed line voltage from the fixed cyclic
// sequence {ab, -ca, bc, -ab, ca, -bc}; the SCR pair conducts from the firing
// delay to the interval end and passes the absolute value of that line
// voltage. The assembled waveform is scaled by sqrt(3)/2 and then by
// cos(firing angle). The cosine factor compounds the attenuation already
// produced by the delayed conduction window; standard six-pulse theory gets
// the cos(alpha) average from the windowing alone.
func threePhaseControlled(grid waveform.TimeGrid, p Params) ([]waveform.Waveform, waveform.Waveform) {
	phases := source.ThreePhase(grid, p.Amplitude, p.Frequency)
	ab, bc, ca := source.LineToLine(phases)

	omega := 2 * math.Pi * p.Frequency
	interval := 1 / (6 * p.Frequency)
	delay := firingDelay(p.FiringAngle, omega)
	scale := consts.SixPulseRatio * math.Cos(p.FiringAngle*consts.RadPerDeg)

	out := make(waveform.Waveform, len(grid))
	for i, t := range grid {
		tc := intervalTime(t, interval)
		if !conducting(tc, delay, interval) {
			continue
		}

		var line float64
		switch intervalIndex(t, interval) % 6 {
		case 0:
			line = ab[i]
		case 1:
			line = -ca[i]
		case 2:
			line = bc[i]
		case 3:
			line = -ab[i]
		case 4:
			line = ca[i]
		case 5:
			line = -bc[i]
		}
		out[i] = math.Abs(line) * scale
	}
	return phases[:], out
}
