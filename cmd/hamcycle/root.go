// SPDX-License-Identifier: MIT
// Package: hamcycle/cmd/hamcycle
//
// root.go - root command, persistent flags, config layering and shared resources.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/hamcycle/config"
	"github.com/katalvlaran/hamcycle/metrics"
	"github.com/katalvlaran/hamcycle/search"
	"github.com/katalvlaran/hamcycle/tablestore"
)

// input holds every flag; values only override the config file when the
// flag was set explicitly.
type input struct {
	configPath string
	verbose    bool

	workers         int
	maxCombinations int
	store           string
	metricsFile     string

	edges    []string
	shape    string
	size     int
	count    int
	complete int
	prob     float64
	drop     float64
	seed     int64
	ids      string

	searcher  string
	searchCmd string
	shots     int
}

// app is the per-invocation state shared by subcommands.
type app struct {
	ctx     context.Context
	in      *input
	cfg     config.Config
	logger  *log.Logger
	reg     *prometheus.Registry
	metrics *metrics.Collectors
	store   *tablestore.Store
}

// execute runs the CLI with args and releases resources afterwards, also
// when the command failed.
func execute(ctx context.Context, version string, args []string, stdout, stderr io.Writer) error {
	rootCmd, a := newRootCmd(ctx, version)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	return errors.Join(rootCmd.Execute(), a.close())
}

func newRootCmd(ctx context.Context, version string) (*cobra.Command, *app) {
	a := &app{ctx: ctx, in: &input{}}

	rootCmd := &cobra.Command{
		Use:          "hamcycle",
		Short:        "Find Hamiltonian cycles by truth-table search over edge combinations",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.in.configPath, "config", "c", "", "path to YAML config file")
	pf.BoolVarP(&a.in.verbose, "verbose", "v", false, "verbose output")
	pf.IntVarP(&a.in.workers, "workers", "w", 0, "truth-table workers (0 = GOMAXPROCS)")
	pf.IntVar(&a.in.maxCombinations, "max-combinations", 0, "refuse truth tables larger than this")
	pf.StringVar(&a.in.store, "store", "", "bbolt truth-map cache file")
	pf.StringVar(&a.in.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")

	rootCmd.AddCommand(
		newNaiveCmd(a),
		newOracleCmd(a),
		newTableCmd(a),
		newDecodeCmd(a),
		newGenerateCmd(a),
	)

	return rootCmd, a
}

// addGraphFlags registers the input-graph flags on cmd.
func addGraphFlags(fs *pflag.FlagSet, in *input) {
	fs.StringSliceVarP(&in.edges, "edges", "e", nil, "edge list in table order, e.g. A-B,B-C,C-A")
	fs.StringVar(&in.shape, "shape", "", "generated graph: complete|cycle|disjoint|square|path|wheel|star|random")
	fs.IntVarP(&in.size, "size", "n", 0, "vertex count of the generated graph")
	fs.IntVar(&in.count, "count", 0, "number of cycles for --shape disjoint")
	fs.IntVar(&in.complete, "complete", 0, "shorthand for --shape complete --size N")
	fs.Float64VarP(&in.prob, "probability", "p", 0, "edge probability for --shape random")
	fs.Float64Var(&in.drop, "drop", 0, "percentage of generated edges removed at random")
	fs.Int64Var(&in.seed, "seed", 0, "seed for --drop")
	fs.StringVar(&in.ids, "ids", "", "vertex IDs of generated graphs: symbol|numeric")
}

// setup loads the config, applies explicit flags and opens shared resources.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.in.configPath)
	if err != nil {
		return err
	}
	a.in.apply(cmd.Flags(), &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.logger = log.New()
	a.logger.SetOutput(cmd.ErrOrStderr())
	a.logger.SetLevel(cfg.Level())
	if a.in.verbose {
		a.logger.SetLevel(log.DebugLevel)
	}

	a.reg = prometheus.NewRegistry()
	a.metrics = metrics.New(a.reg)

	if cfg.Store != "" {
		a.logger.Debugf("opening truth-map cache %s", cfg.Store)
		if a.store, err = tablestore.Open(cfg.Store); err != nil {
			return err
		}
	}

	return nil
}

// close releases the cache and writes metrics. It is a no-op when setup
// never ran.
func (a *app) close() error {
	if err := a.store.Close(); err != nil {
		return err
	}
	a.store = nil
	if a.cfg.MetricsFile == "" || a.reg == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.cfg.MetricsFile, a.reg); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	a.logger.WithField("file", a.cfg.MetricsFile).Debug("metrics written")

	return nil
}

func (in *input) apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("workers") {
		cfg.Workers = in.workers
	}
	if fs.Changed("max-combinations") {
		cfg.MaxCombinations = in.maxCombinations
	}
	if fs.Changed("store") {
		cfg.Store = in.store
	}
	if fs.Changed("metrics-file") {
		cfg.MetricsFile = in.metricsFile
	}

	g := &cfg.Graph
	if fs.Changed("edges") {
		g.Edges = in.edges
	}
	if fs.Changed("shape") {
		g.Shape = in.shape
	}
	if fs.Changed("size") {
		g.Size = in.size
	}
	if fs.Changed("count") {
		g.Count = in.count
	}
	if fs.Changed("complete") {
		g.Shape, g.Size = config.ShapeComplete, in.complete
	}
	if fs.Changed("probability") {
		g.Probability = in.prob
	}
	if fs.Changed("drop") {
		g.Drop = in.drop
	}
	if fs.Changed("seed") {
		g.Seed = in.seed
	}
	if fs.Changed("ids") {
		g.IDs = in.ids
	}

	s := &cfg.Search
	if fs.Changed("searcher") {
		s.Searcher = in.searcher
	}
	if fs.Changed("search-cmd") {
		s.Command = in.searchCmd
	}
	if fs.Changed("shots") {
		s.Shots = in.shots
	}
	if fs.Changed("search-cmd") && !fs.Changed("searcher") {
		s.Searcher = config.SearcherCommand
	}
}

// searchOptions maps the config to driver options.
func (a *app) searchOptions() []search.Option {
	opts := []search.Option{
		search.WithExecutor(a.cfg.Executor()),
		search.WithLogger(a.logger),
		search.WithMetrics(a.metrics),
		search.WithShots(a.cfg.Search.Shots),
		search.WithMaxCombinations(a.cfg.MaxCombinations),
	}
	if a.store != nil {
		opts = append(opts, search.WithStore(a.store))
	}

	return opts
}
