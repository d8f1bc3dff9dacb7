package metrics

import (
	"math"
	"testing"

	"rectsim/pkg/waveform"
)

func sineGrid(samples int) waveform.TimeGrid {
	grid := make(waveform.TimeGrid, samples)
	period := 1.0 / 50.0
	step := period / float64(samples-1)
	for i := range grid {
		grid[i] = float64(i) * step
	}
	return grid
}

func rectified(grid waveform.TimeGrid, amplitude float64, halfWave bool) (in, out waveform.Waveform) {
	in = make(waveform.Waveform, len(grid))
	out = make(waveform.Waveform, len(grid))
	for i, t := range grid {
		v := amplitude * math.Sin(2*math.Pi*50*t)
		in[i] = v
		if halfWave {
			out[i] = math.Max(0, v)
		} else {
			out[i] = math.Abs(v)
		}
	}
	return in, out
}

func TestHalfWaveTextbookConstants(t *testing.T) {
	grid := sineGrid(1000)
	in, out := rectified(grid, 220, true)
	cur := make(waveform.Waveform, len(out))
	for i := range out {
		cur[i] = out[i] / 100
	}

	r := Compute([]waveform.Waveform{in}, out, cur, 100)

	if want := 220 / math.Pi; math.Abs(r.AvgVoltage-want) > want*0.01 {
		t.Errorf("expected average voltage near %g, got %g", want, r.AvgVoltage)
	}
	if math.Abs(r.RippleFactor-1.21) > 0.02 {
		t.Errorf("expected ripple factor near 1.21, got %g", r.RippleFactor)
	}
	if math.Abs(r.FormFactor-math.Pi/2) > 0.02 {
		t.Errorf("expected form factor near 1.57, got %g", r.FormFactor)
	}
	if want := (220 / math.Pi) / 100; math.Abs(r.AvgCurrent-want) > want*0.01 {
		t.Errorf("expected average current near %g, got %g", want, r.AvgCurrent)
	}
	if r.OutputPower <= 0 {
		t.Errorf("expected positive output power, got %g", r.OutputPower)
	}
	if r.EfficiencyPct <= 0 || r.EfficiencyPct >= 100 {
		t.Errorf("expected efficiency in (0,100), got %g", r.EfficiencyPct)
	}
}

func TestFullWaveTextbookConstants(t *testing.T) {
	grid := sineGrid(1000)
	in, out := rectified(grid, 220, false)
	cur := make(waveform.Waveform, len(out))
	for i := range out {
		cur[i] = out[i] / 100
	}

	r := Compute([]waveform.Waveform{in}, out, cur, 100)

	if want := 2 * 220 / math.Pi; math.Abs(r.AvgVoltage-want) > want*0.01 {
		t.Errorf("expected average voltage near %g, got %g", want, r.AvgVoltage)
	}
	if math.Abs(r.FormFactor-1.11) > 0.01 {
		t.Errorf("expected form factor near 1.11, got %g", r.FormFactor)
	}
}

func TestZeroWaveformGuards(t *testing.T) {
	zero := make(waveform.Waveform, 100)
	r := Compute([]waveform.Waveform{zero}, zero, zero, 100)

	if r.AvgVoltage != 0 || r.RMSVoltage != 0 {
		t.Errorf("expected zero voltages, got avg=%g rms=%g", r.AvgVoltage, r.RMSVoltage)
	}
	if r.RippleFactor != 0 {
		t.Errorf("expected ripple factor 0, got %g", r.RippleFactor)
	}
	if r.FormFactor != 0 {
		t.Errorf("expected form factor 0, got %g", r.FormFactor)
	}
	if r.EfficiencyPct != 0 {
		t.Errorf("expected efficiency 0, got %g", r.EfficiencyPct)
	}
	if math.IsNaN(r.RippleFactor) || math.IsNaN(r.FormFactor) || math.IsNaN(r.EfficiencyPct) {
		t.Error("zero waveform produced NaN metrics")
	}
}

func TestRoundoffGuardOnACComponent(t *testing.T) {
	// constant waveform: rms == avg, the radicand can round below zero
	flat := make(waveform.Waveform, 1000)
	for i := range flat {
		flat[i] = 101.7
	}
	r := Compute([]waveform.Waveform{flat}, flat, flat, 100)
	if math.IsNaN(r.RippleFactor) {
		t.Fatal("constant waveform produced NaN ripple factor")
	}
	if r.RippleFactor > 1e-6 {
		t.Errorf("expected near-zero ripple for constant waveform, got %g", r.RippleFactor)
	}
}

func TestThreePhaseInputRMSIsFlattened(t *testing.T) {
	// three identical channels must give the same RMS as one
	grid := sineGrid(600)
	in, out := rectified(grid, 100, false)
	cur := make(waveform.Waveform, len(out))
	for i := range out {
		cur[i] = out[i] / 10
	}

	single := Compute([]waveform.Waveform{in}, out, cur, 10)
	triple := Compute([]waveform.Waveform{in, in, in}, out, cur, 10)

	if math.Abs(single.EfficiencyPct-triple.EfficiencyPct) > 1e-9 {
		t.Errorf("flattened RMS over identical channels changed efficiency: %g vs %g",
			single.EfficiencyPct, triple.EfficiencyPct)
	}
}
