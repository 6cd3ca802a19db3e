// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics exposes Prometheus collectors for title lookups.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pubmed_lookup"

// Metrics owns a registry and the lookup collectors registered on it.
type Metrics struct {
	registry *prometheus.Registry

	// Requests counts lookups by outcome status.
	Requests *prometheus.CounterVec

	// Duration observes the wall time of lookups that reached PubMed.
	Duration prometheus.Histogram
}

// New returns Metrics on a fresh registry that also carries the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Title lookups by outcome status.",
		}, []string{"status"}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "duration_seconds",
			Help:      "Time spent on the search and fetch calls of one lookup.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}),
	}
	reg.MustRegister(
		m.Requests,
		m.Duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// RecordLookup counts one lookup with the given status. A non-zero
// elapsed time is also observed in the duration histogram.
func (m *Metrics) RecordLookup(status string, elapsed time.Duration) {
	m.Requests.WithLabelValues(status).Inc()
	if elapsed > 0 {
		m.Duration.Observe(elapsed.Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
