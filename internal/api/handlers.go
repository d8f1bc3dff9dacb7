package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"rectsim/internal/config"
	"rectsim/internal/observability"
	"rectsim/pkg/chart"
	"rectsim/pkg/metrics"
	"rectsim/pkg/rectifier"
	"rectsim/pkg/waveform"
)

type server struct {
	log     *slog.Logger
	metrics *observability.Metrics
	cfg     *config.Config
}

type SimulationRequest struct {
	Topology       string  `json:"topology"`
	AmplitudeV     float64 `json:"amplitudeV"`
	FrequencyHz    float64 `json:"frequencyHz"`
	ResistanceOhm  float64 `json:"resistanceOhm"`
	InductanceH    float64 `json:"inductanceH"`
	FiringAngleDeg float64 `json:"firingAngleDeg"`
	Cycles         int     `json:"cycles"`
	Samples        int     `json:"samples"`
}

type SimulationResponse struct {
	Topology      string         `json:"topology"`
	Time          []float64      `json:"time"`
	InputVoltage  [][]float64    `json:"inputVoltage"`
	OutputVoltage []float64      `json:"outputVoltage"`
	OutputCurrent []float64      `json:"outputCurrent"`
	Metrics       MetricsPayload `json:"metrics"`
}

type MetricsPayload struct {
	AvgVoltage    float64 `json:"avgVoltage"`
	RMSVoltage    float64 `json:"rmsVoltage"`
	RippleFactor  float64 `json:"rippleFactor"`
	FormFactor    float64 `json:"formFactor"`
	AvgCurrent    float64 `json:"avgCurrent"`
	RMSCurrent    float64 `json:"rmsCurrent"`
	OutputPower   float64 `json:"outputPower"`
	EfficiencyPct float64 `json:"efficiencyPercent"`
}

func (s *server) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *server) listTopologies(w http.ResponseWriter, _ *http.Request) {
	names := make([]string, 0, len(rectifier.Topologies()))
	for _, t := range rectifier.Topologies() {
		names = append(names, t.String())
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(names)
}

func (s *server) simulate(w http.ResponseWriter, r *http.Request) {
	var req SimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	top, grid, result, err := s.run(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	record := metrics.Compute(result.Input, result.Output, result.Current, req.ResistanceOhm)

	input := make([][]float64, len(result.Input))
	for i, ch := range result.Input {
		input[i] = ch
	}

	resp := SimulationResponse{
		Topology:      top.String(),
		Time:          grid,
		InputVoltage:  input,
		OutputVoltage: result.Output,
		OutputCurrent: result.Current,
		Metrics: MetricsPayload{
			AvgVoltage:    record.AvgVoltage,
			RMSVoltage:    record.RMSVoltage,
			RippleFactor:  record.RippleFactor,
			FormFactor:    record.FormFactor,
			AvgCurrent:    record.AvgCurrent,
			RMSCurrent:    record.RMSCurrent,
			OutputPower:   record.OutputPower,
			EfficiencyPct: record.EfficiencyPct,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *server) simulateChart(w http.ResponseWriter, r *http.Request) {
	req, err := requestFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	top, grid, result, err := s.run(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	png, err := chart.Waveforms(grid, result, top)
	if err != nil {
		s.log.Error("chart rendering failed", "topology", top.String(), "error", err)
		http.Error(w, "chart rendering failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// run validates the request, builds the grid and executes one simulation.
func (s *server) run(req SimulationRequest) (rectifier.Topology, waveform.TimeGrid, *rectifier.Result, error) {
	start := time.Now()

	top, err := rectifier.ParseTopology(req.Topology)
	if err != nil {
		s.metrics.ObserveSimulation(req.Topology, "rejected", 0)
		return 0, nil, nil, err
	}

	cycles := req.Cycles
	if cycles == 0 {
		cycles = s.cfg.DefaultCycles
	}
	samples := req.Samples
	if samples == 0 {
		samples = s.cfg.DefaultSamples
	}
	if samples > s.cfg.MaxSamples {
		s.metrics.ObserveSimulation(top.String(), "rejected", 0)
		return 0, nil, nil, fmt.Errorf("samples must be at most %d, got %d", s.cfg.MaxSamples, samples)
	}

	grid, err := waveform.Uniform(cycles, req.FrequencyHz, samples)
	if err != nil {
		s.metrics.ObserveSimulation(top.String(), "rejected", 0)
		return 0, nil, nil, err
	}

	result, err := rectifier.Generate(top, grid, rectifier.Params{
		Frequency:   req.FrequencyHz,
		Amplitude:   req.AmplitudeV,
		Resistance:  req.ResistanceOhm,
		Inductance:  req.InductanceH,
		FiringAngle: req.FiringAngleDeg,
	})
	if err != nil {
		s.metrics.ObserveSimulation(top.String(), "rejected", 0)
		return 0, nil, nil, err
	}

	s.metrics.ObserveSimulation(top.String(), "ok", time.Since(start))
	s.log.Debug("simulation complete",
		"topology", top.String(), "samples", samples, "cycles", cycles)
	return top, grid, result, nil
}

func requestFromQuery(r *http.Request) (SimulationRequest, error) {
	q := r.URL.Query()
	req := SimulationRequest{Topology: q.Get("topology")}

	floatParams := []struct {
		key string
		dst *float64
	}{
		{"amplitudeV", &req.AmplitudeV},
		{"frequencyHz", &req.FrequencyHz},
		{"resistanceOhm", &req.ResistanceOhm},
		{"inductanceH", &req.InductanceH},
		{"firingAngleDeg", &req.FiringAngleDeg},
	}
	for _, p := range floatParams {
		v := q.Get(p.key)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return req, fmt.Errorf("parameter %s: %w", p.key, err)
		}
		*p.dst = f
	}

	intParams := []struct {
		key string
		dst *int
	}{
		{"cycles", &req.Cycles},
		{"samples", &req.Samples},
	}
	for _, p := range intParams {
		v := q.Get(p.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, fmt.Errorf("parameter %s: %w", p.key, err)
		}
		*p.dst = n
	}

	return req, nil
}
