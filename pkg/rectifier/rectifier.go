package rectifier

import (
	"fmt"
	"math"

	"rectsim/pkg/load"
	"rectsim/pkg/waveform"
)

// Topology selects one of the six supported rectifier circuits.
type Topology int

const (
	HalfWaveUncontrolled Topology = iota
	FullWaveUncontrolled
	HalfWaveControlled
	FullWaveControlled
	ThreePhaseUncontrolled
	ThreePhaseControlled
)

var topologyNames = [...]string{
	HalfWaveUncontrolled:   "half-wave-uncontrolled",
	FullWaveUncontrolled:   "full-wave-uncontrolled",
	HalfWaveControlled:     "half-wave-controlled",
	FullWaveControlled:     "full-wave-controlled",
	ThreePhaseUncontrolled: "three-phase-uncontrolled",
	ThreePhaseControlled:   "three-phase-controlled",
}

func (t Topology) String() string {
	if t < 0 || int(t) >= len(topologyNames) {
		return fmt.Sprintf("topology(%d)", int(t))
	}
	return topologyNames[t]
}

// Controlled reports whether the topology uses phase-controlled devices and
// therefore requires a firing angle.
func (t Topology) Controlled() bool {
	return t == HalfWaveControlled || t == FullWaveControlled || t == ThreePhaseControlled
}

// ThreePhase reports whether the topology is fed from a three-phase source.
func (t Topology) ThreePhase() bool {
	return t == ThreePhaseUncontrolled || t == ThreePhaseControlled
}

// Topologies returns all supported topologies in declaration order.
func Topologies() []Topology {
	return []Topology{
		HalfWaveUncontrolled,
		FullWaveUncontrolled,
		HalfWaveControlled,
		FullWaveControlled,
		ThreePhaseUncontrolled,
		ThreePhaseControlled,
	}
}

// ParseTopology maps a topology name to its Topology value.
func ParseTopology(name string) (Topology, error) {
	for t, n := range topologyNames {
		if n == name {
			return Topology(t), nil
		}
	}
	return 0, fmt.Errorf("unknown topology %q", name)
}

// Params are the electrical parameters of one simulation run. They are read
// only; a run never mutates them.
type Params struct {
	Frequency   float64 // source frequency (Hz)
	Amplitude   float64 // peak source voltage (V); peak phase voltage for three-phase
	Resistance  float64 // load resistance (ohm)
	Inductance  float64 // load inductance (H), 0 selects the purely resistive model
	FiringAngle float64 // firing delay (deg) in [0,180], controlled topologies only
}

// Validate fails fast on any out-of-range or non-finite parameter, before any
// waveform computation starts. The firing angle is checked only for
// controlled topologies; it has no meaning otherwise.
func (p Params) Validate(t Topology) error {
	if err := checkPositive("source frequency", p.Frequency); err != nil {
		return err
	}
	if err := checkPositive("source amplitude", p.Amplitude); err != nil {
		return err
	}
	if err := checkPositive("load resistance", p.Resistance); err != nil {
		return err
	}
	if p.Inductance < 0 || math.IsNaN(p.Inductance) || math.IsInf(p.Inductance, 0) {
		return fmt.Errorf("load inductance must be a non-negative finite value, got %g", p.Inductance)
	}
	if t.Controlled() {
		if math.IsNaN(p.FiringAngle) || p.FiringAngle < 0 || p.FiringAngle > 180 {
			return fmt.Errorf("firing angle must be in [0,180] degrees, got %g", p.FiringAngle)
		}
	}
	return nil
}

func checkPositive(name string, v float64) error {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be a positive finite value, got %g", name, v)
	}
	return nil
}

// Result holds the three grid-aligned waveforms of one run. Input has one
// channel for single-phase topologies and three (phases A/B/C) for
// three-phase ones.
type Result struct {
	Input   []waveform.Waveform
	Output  waveform.Waveform
	Current waveform.Waveform
}

// Generate runs the full pipeline for one topology: source sampling,
// conduction gating and load response. It is pure and deterministic; calling
// it twice with identical arguments yields bit-identical waveforms. A run
// either fully succeeds or fails validation before producing any waveform.
func Generate(t Topology, grid waveform.TimeGrid, p Params) (*Result, error) {
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("time grid: %w", err)
	}
	if err := p.Validate(t); err != nil {
		return nil, err
	}
	ld, err := load.New(p.Resistance, p.Inductance)
	if err != nil {
		return nil, err
	}

	var input []waveform.Waveform
	var output waveform.Waveform
	switch t {
	case HalfWaveUncontrolled:
		input, output = halfWaveUncontrolled(grid, p)
	case FullWaveUncontrolled:
		input, output = fullWaveUncontrolled(grid, p)
	case HalfWaveControlled:
		input, output = halfWaveControlled(grid, p)
	case FullWaveControlled:
		input, output = fullWaveControlled(grid, p)
	case ThreePhaseUncontrolled:
		input, output = threePhaseUncontrolled(grid, p)
	case ThreePhaseControlled:
		input, output = threePhaseControlled(grid, p)
	default:
		return nil, fmt.Errorf("unknown topology %d", int(t))
	}

	return &Result{
		Input:   input,
		Output:  output,
		Current: ld.Response(output, grid.Step()),
	}, nil
}
