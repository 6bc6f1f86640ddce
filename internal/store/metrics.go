package store

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts store mutations and persistence failures.
type Metrics struct {
	mutations       *prometheus.CounterVec
	persistFailures *prometheus.CounterVec
}

// NewMetrics creates unregistered collectors.
func NewMetrics() *Metrics {
	return &Metrics{
		mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "doclib_store_mutations_total",
				Help: "Total number of applied store mutations.",
			},
			[]string{"op"},
		),
		persistFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "doclib_persistence_failures_total",
				Help: "Total number of failed collection writes.",
			},
			[]string{"collection"},
		),
	}
}

// Register adds the collectors to reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	if err := reg.Register(m.mutations); err != nil {
		return err
	}
	return reg.Register(m.persistFailures)
}
