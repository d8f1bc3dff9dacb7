package rectifier

import (
	"math"

	"rectsim/pkg/source"
	"rectsim/pkg/waveform"
)

// halfWaveUncontrolled conducts whenever the source is positive.
func halfWaveUncontrolled(grid waveform.TimeGrid, p Params) ([]waveform.Waveform, waveform.Waveform) {
	in := source.SinglePhase(grid, p.Amplitude, p.Frequency)
	out := make(waveform.Waveform, len(in))
	for i, v := range in {
		out[i] = math.Max(0, v)
	}
	return []waveform.Waveform{in}, out
}

// fullWaveUncontrolled conducts on both half-cycles through the bridge, so
// the output is the rectified magnitude of the source.
func fullWaveUncontrolled(grid waveform.TimeGrid, p Params) ([]waveform.Waveform, waveform.Waveform) {
	in := source.SinglePhase(grid, p.Amplitude, p.Frequency)
	out := make(waveform.Waveform, len(in))
	for i, v := range in {
		out[i] = math.Abs(v)
	}
	return []waveform.Waveform{in}, out
}

// halfWaveControlled fires once per full period. Within each cycle the SCR
// conducts from the firing delay to the end of the positive half-cycle;
// everything else, including the whole negative half, is forced to zero.
func halfWaveControlled(grid waveform.TimeGrid, p Params) ([]waveform.Waveform, waveform.Waveform) {
	in := source.SinglePhase(grid, p.Amplitude, p.Frequency)
	out := make(waveform.Waveform, len(in))

	omega := 2 * math.Pi * p.Frequency
	period := 1 / p.Frequency
	delay := firingDelay(p.FiringAngle, omega)

	for i, t := range grid {
		tc := intervalTime(t, period)
		if conducting(tc, delay, period/2) {
			out[i] = math.Max(0, in[i])
		}
	}
	return []waveform.Waveform{in}, out
}

// fullWaveControlled fires once per half-period. Both half-cycles use the
// same rectified magnitude, so even and odd half-cycles are symmetric.
func fullWaveControlled(grid waveform.TimeGrid, p Params) ([]waveform.Waveform, waveform.Waveform) {
	in := source.SinglePhase(grid, p.Amplitude, p.Frequency)
	out := make(waveform.Waveform, len(in))

	omega := 2 * math.Pi * p.Frequency
	half := 1 / (2 * p.Frequency)
	delay := firingDelay(p.FiringAngle, omega)

	for i, t := range grid {
		tc := intervalTime(t, half)
		if conducting(tc, delay, half) {
			out[i] = math.Abs(in[i])
		}
	}
	return []waveform.Waveform{in}, out
}
