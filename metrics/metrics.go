// SPDX-License-Identifier: MIT
// Package: hamcycle/metrics
//
// metrics.go - Prometheus collectors for table generation and searches.

// Package metrics exposes Prometheus collectors for truth-table generation
// and search runs.
//
// Collectors are registered on an injected prometheus.Registerer so that
// tests and embedders keep their own registries.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hamcycle"

// Search outcomes used as the "outcome" label.
const (
	OutcomeFound        = "found"
	OutcomeNotFound     = "not_found"
	OutcomeInsufficient = "insufficient"
	OutcomeError        = "error"
)

// Collectors groups every metric the drivers report. A nil *Collectors is
// valid and records nothing.
type Collectors struct {
	// Candidates counts classified edge combinations.
	Candidates prometheus.Counter
	// Hamiltonian counts combinations classified as Hamiltonian cycles.
	Hamiltonian prometheus.Counter
	// TableDuration measures truth-table generation time.
	TableDuration prometheus.Histogram
	// Searches counts driver runs, labeled by driver and outcome.
	Searches *prometheus.CounterVec
	// StoreLookups counts truth-map cache lookups, labeled by result (hit/miss).
	StoreLookups *prometheus.CounterVec
}

// New creates and registers the collectors on reg.
func New(reg prometheus.Registerer) *Collectors {
	f := promauto.With(reg)

	return &Collectors{
		Candidates: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_total",
			Help:      "Number of edge combinations classified",
		}),
		Hamiltonian: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hamiltonian_candidates_total",
			Help:      "Number of edge combinations classified as Hamiltonian cycles",
		}),
		TableDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "truth_table_duration_seconds",
			Help:      "Duration of truth-table generation in seconds",
			// From a handful of candidates (microseconds) to K_9-sized tables.
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5, 30},
		}),
		Searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Number of search driver runs",
		}, []string{"driver", "outcome"}),
		StoreLookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_lookups_total",
			Help:      "Truth-map cache lookups",
		}, []string{"result"}),
	}
}

// ObserveTable records one truth-table generation.
func (c *Collectors) ObserveTable(candidates, hamiltonian int, d time.Duration) {
	if c == nil {
		return
	}
	c.Candidates.Add(float64(candidates))
	c.Hamiltonian.Add(float64(hamiltonian))
	c.TableDuration.Observe(d.Seconds())
}

// ObserveCandidates records classifications made outside a full table
// (naive scan, lazy decode).
func (c *Collectors) ObserveCandidates(candidates, hamiltonian int) {
	if c == nil {
		return
	}
	c.Candidates.Add(float64(candidates))
	c.Hamiltonian.Add(float64(hamiltonian))
}

// ObserveSearch records a finished driver run.
func (c *Collectors) ObserveSearch(driver, outcome string) {
	if c == nil {
		return
	}
	c.Searches.WithLabelValues(driver, outcome).Inc()
}

// ObserveLookup records a cache lookup.
func (c *Collectors) ObserveLookup(hit bool) {
	if c == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	c.StoreLookups.WithLabelValues(result).Inc()
}
