package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes prometheus instrumentation for the simulation API. Each
// Metrics owns its registry so tests can build servers independently.
type Metrics struct {
	registry *prometheus.Registry

	simulationsTotal   *prometheus.CounterVec
	simulationDuration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		simulationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rectsim_simulations_total",
			Help: "Total count of simulation runs by topology and status.",
		}, []string{"topology", "status"}),
		simulationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rectsim_simulation_duration_seconds",
			Help:    "Histogram of simulation run durations by topology.",
			Buckets: prometheus.DefBuckets,
		}, []string{"topology"}),
	}

	m.registry.MustRegister(m.simulationsTotal, m.simulationDuration)
	return m
}

// ObserveSimulation records one simulation run.
func (m *Metrics) ObserveSimulation(topology, status string, d time.Duration) {
	m.simulationsTotal.WithLabelValues(topology, status).Inc()
	if status == "ok" {
		m.simulationDuration.WithLabelValues(topology).Observe(d.Seconds())
	}
}

// Handler serves the registry in prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
