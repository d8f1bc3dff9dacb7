package load

import (
	"fmt"
	"math"

	"rectsim/pkg/waveform"
)

// Model is a series resistive-inductive load.
type Model struct {
	Resistance float64 // ohms
	Inductance float64 // henries
}

func New(resistance, inductance float64) (Model, error) {
	if resistance <= 0 || math.IsNaN(resistance) || math.IsInf(resistance, 0) {
		return Model{}, fmt.Errorf("load resistance must be a positive finite value, got %g", resistance)
	}
	if inductance < 0 || math.IsNaN(inductance) || math.IsInf(inductance, 0) {
		return Model{}, fmt.Errorf("load inductance must be a non-negative finite value, got %g", inductance)
	}
	return Model{Resistance: resistance, Inductance: inductance}, nil
}

// Response derives the load current from an output-voltage waveform.
//
// A purely resistive load follows Ohm's law sample by sample. An inductive
// load is modeled as a single-pole low-pass response with time constant
// tau = L/R, discretized as i[n] = a*v[n]/R + (1-a)*i[n-1] with a = dt/(tau+dt)
// and zero initial current. This is a first-order smoothing approximation,
// not an exact RL solve; a lies in (0,1] for any dt > 0, tau >= 0, so the
// recursion is stable.
func (m Model) Response(v waveform.Waveform, dt float64) waveform.Waveform {
	current := make(waveform.Waveform, len(v))

	if m.Inductance == 0 {
		for i, s := range v {
			current[i] = s / m.Resistance
		}
		return current
	}

	tau := m.Inductance / m.Resistance
	a := dt / (tau + dt)
	prev := 0.0
	for i, s := range v {
		prev = a*(s/m.Resistance) + (1-a)*prev
		current[i] = prev
	}
	return current
}
