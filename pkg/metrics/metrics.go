package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"rectsim/pkg/waveform"
)

// Record holds the scalar performance indicators of one simulation run.
type Record struct {
	AvgVoltage    float64 // V, DC component of the output voltage
	RMSVoltage    float64 // V
	RippleFactor  float64 // AC component over DC component
	FormFactor    float64 // RMS over average
	AvgCurrent    float64 // A
	RMSCurrent    float64 // A
	OutputPower   float64 // W, avg voltage times avg current
	EfficiencyPct float64 // output power over approximate input power
}

// Compute reduces the three waveforms of a run into a Record. Input may hold
// one channel (single-phase) or three (phases A/B/C); its RMS is taken over
// the flattened set of all phase samples. Degenerate cases (zero average,
// zero input power) yield defined zero values, never an error. The load
// resistance is part of the reducer contract but the indicators above do not
// depend on it directly; current already carries the load response.
func Compute(input []waveform.Waveform, output, current waveform.Waveform, resistance float64) Record {
	avgV := stat.Mean(output, nil)
	rmsV := rms(output)

	// max guards float round-off pushing the radicand negative when rms ~ avg
	acComponent := math.Sqrt(math.Max(0, rmsV*rmsV-avgV*avgV))

	var ripple, form float64
	if avgV > 0 {
		ripple = acComponent / avgV
		form = rmsV / avgV
	}

	avgI := stat.Mean(current, nil)
	rmsI := rms(current)
	power := avgV * avgI

	var squares float64
	var n int
	for _, ch := range input {
		squares += floats.Dot(ch, ch)
		n += len(ch)
	}
	var inputRMS float64
	if n > 0 {
		inputRMS = math.Sqrt(squares / float64(n))
	}

	var efficiency float64
	if inputPower := inputRMS * rmsI; inputPower > 0 {
		efficiency = 100 * power / inputPower
	}

	return Record{
		AvgVoltage:    avgV,
		RMSVoltage:    rmsV,
		RippleFactor:  ripple,
		FormFactor:    form,
		AvgCurrent:    avgI,
		RMSCurrent:    rmsI,
		OutputPower:   power,
		EfficiencyPct: efficiency,
	}
}

func rms(w waveform.Waveform) float64 {
	if len(w) == 0 {
		return 0
	}
	return math.Sqrt(floats.Dot(w, w) / float64(len(w)))
}
