// SPDX-License-Identifier: MIT
// Package: hamcycle/search
//
// options.go - functional options shared by the drivers.

package search

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hamcycle/hamilton"
	"github.com/katalvlaran/hamcycle/metrics"
	"github.com/katalvlaran/hamcycle/tablestore"
	"github.com/katalvlaran/hamcycle/workpool"
)

// Option configures a driver run.
type Option func(*options)

type options struct {
	exec            workpool.Executor
	logger          logrus.FieldLogger
	metrics         *metrics.Collectors
	store           *tablestore.Store
	shots           int
	maxCombinations int
}

func resolve(opts []Option) options {
	o := options{
		exec:            workpool.Default(),
		logger:          logrus.StandardLogger(),
		maxCombinations: hamilton.DefaultMaxCombinations,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithExecutor sets the truth-table executor. nil keeps the default.
func WithExecutor(exec workpool.Executor) Option {
	return func(o *options) {
		if exec != nil {
			o.exec = exec
		}
	}
}

// WithLogger sets the logger. nil keeps logrus.StandardLogger().
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records driver activity on m.
func WithMetrics(m *metrics.Collectors) Option {
	return func(o *options) { o.metrics = m }
}

// WithStore caches truth maps in s (Oracle only).
func WithStore(s *tablestore.Store) Option {
	return func(o *options) { o.store = s }
}

// WithShots sets the shot count passed to the Searcher. n ≤ 0 means
// DefaultShots(combinations).
func WithShots(n int) Option {
	return func(o *options) { o.shots = n }
}

// WithMaxCombinations bounds the truth-table size (Oracle only).
func WithMaxCombinations(n int) Option {
	return func(o *options) { o.maxCombinations = n }
}

// DefaultShots returns ceil(sqrt(combinations)), at least 1.
func DefaultShots(combinations int) int {
	if combinations <= 0 {
		return 1
	}

	return max(int(math.Ceil(math.Sqrt(float64(combinations)))), 1)
}
