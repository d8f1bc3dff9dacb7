package rectifier

import (
	"math"
	"testing"
)

func TestHalfWaveUncontrolledClipsNegativeHalf(t *testing.T) {
	grid := testGrid(t, 2, 2000)
	res, err := Generate(HalfWaveUncontrolled, grid, baseParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	in := res.Input[0]
	for i := range in {
		if res.Output[i] != math.Max(0, in[i]) {
			t.Fatalf("sample %d: output %g, want max(0, %g)", i, res.Output[i], in[i])
		}
		if res.Output[i] < 0 || res.Output[i] > 220 {
			t.Fatalf("sample %d: output %g outside [0, amplitude]", i, res.Output[i])
		}
	}
}

func TestFullWaveUncontrolledIsRectifiedMagnitude(t *testing.T) {
	grid := testGrid(t, 2, 2000)
	res, err := Generate(FullWaveUncontrolled, grid, baseParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	in := res.Input[0]
	for i := range in {
		if res.Output[i] != math.Abs(in[i]) {
			t.Fatalf("sample %d: output %g, want |%g|", i, res.Output[i], in[i])
		}
	}
}

func TestHalfWaveControlledZeroAngleMatchesUncontrolled(t *testing.T) {
	grid := testGrid(t, 3, 3000)
	p := baseParams()
	p.FiringAngle = 0

	controlled, err := Generate(HalfWaveControlled, grid, p)
	if err != nil {
		t.Fatalf("controlled: %v", err)
	}
	uncontrolled, err := Generate(HalfWaveUncontrolled, grid, baseParams())
	if err != nil {
		t.Fatalf("uncontrolled: %v", err)
	}

	for i := range controlled.Output {
		if math.Abs(controlled.Output[i]-uncontrolled.Output[i]) > 1e-9 {
			t.Fatalf("sample %d: controlled %g, uncontrolled %g",
				i, controlled.Output[i], uncontrolled.Output[i])
		}
	}
}

func TestHalfWaveControlledFullAngleBlanksOutput(t *testing.T) {
	grid := testGrid(t, 3, 3000)
	p := baseParams()
	p.FiringAngle = 180

	res, err := Generate(HalfWaveControlled, grid, p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if m := mean(res.Output); math.Abs(m) > 1e-9 {
		t.Errorf("expected zero average at 180 degrees, got %g", m)
	}
}

func TestHalfWaveControlledDelaysConduction(t *testing.T) {
	grid := testGrid(t, 1, 4000)
	p := baseParams()
	p.FiringAngle = 90

	res, err := Generate(HalfWaveControlled, grid, p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	period := 1 / p.Frequency
	delay := period / 4 // 90 degrees
	for i, tm := range grid {
		tc := tm - math.Floor(tm/period)*period
		inWindow := tc >= delay && tc < period/2
		if !inWindow && res.Output[i] != 0 {
			t.Fatalf("sample %d (t=%g): output %g outside conduction window", i, tm, res.Output[i])
		}
		if inWindow && res.Output[i] != math.Max(0, res.Input[0][i]) {
			t.Fatalf("sample %d (t=%g): output %g inside window, want %g",
				i, tm, res.Output[i], math.Max(0, res.Input[0][i]))
		}
	}

	// delaying conduction must cut the average versus firing at zero
	p0 := baseParams()
	p0.FiringAngle = 0
	full, err := Generate(HalfWaveControlled, grid, p0)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if mean(res.Output) >= mean(full.Output) {
		t.Errorf("average at 90 degrees (%g) should be below average at 0 degrees (%g)",
			mean(res.Output), mean(full.Output))
	}
}

func TestFullWaveControlledZeroAngleMatchesUncontrolled(t *testing.T) {
	grid := testGrid(t, 3, 3000)
	p := baseParams()
	p.FiringAngle = 0

	controlled, err := Generate(FullWaveControlled, grid, p)
	if err != nil {
		t.Fatalf("controlled: %v", err)
	}
	uncontrolled, err := Generate(FullWaveUncontrolled, grid, baseParams())
	if err != nil {
		t.Fatalf("uncontrolled: %v", err)
	}

	for i := range controlled.Output {
		if math.Abs(controlled.Output[i]-uncontrolled.Output[i]) > 1e-9 {
			t.Fatalf("sample %d: controlled %g, uncontrolled %g",
				i, controlled.Output[i], uncontrolled.Output[i])
		}
	}
}

func TestFullWaveControlledHalfCyclesAreSymmetric(t *testing.T) {
	// even and odd half-cycles both pass the rectified magnitude, so the
	// output over half-cycle k equals the output over half-cycle k+1
	grid := testGrid(t, 1, 4001)
	p := baseParams()
	p.FiringAngle = 60

	res, err := Generate(FullWaveControlled, grid, p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	halfSamples := 2000 // samples per half-period on this grid
	for i := 0; i < halfSamples; i++ {
		a, b := res.Output[i], res.Output[i+halfSamples]
		if math.Abs(a-b) > 1e-6 {
			t.Fatalf("half-cycle asymmetry at offset %d: %g vs %g", i, a, b)
		}
	}
}

func TestFullWaveControlledFullAngleBlanksOutput(t *testing.T) {
	grid := testGrid(t, 2, 2000)
	p := baseParams()
	p.FiringAngle = 180

	res, err := Generate(FullWaveControlled, grid, p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if m := mean(res.Output); math.Abs(m) > 1e-9 {
		t.Errorf("expected zero average at 180 degrees, got %g", m)
	}
}
