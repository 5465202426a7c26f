// SPDX-License-Identifier: MIT
// Package: hamcycle/config
//
// config.go - Config types, strict YAML loading, validation and factories.

// Package config holds the hamcycle run configuration: a strict YAML file
// layered under command-line flags, plus factories that turn it into the
// executor, searcher and edge list the drivers consume.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hamcycle/hamilton"
	"github.com/katalvlaran/hamcycle/search"
	"github.com/katalvlaran/hamcycle/workpool"
)

// Searcher names accepted in SearchConfig.Searcher.
const (
	SearcherLinear  = "linear"
	SearcherProbe   = "probe"
	SearcherCommand = "command"
)

// Graph shapes accepted in GraphConfig.Shape.
const (
	ShapeComplete = "complete"
	ShapeCycle    = "cycle"
	ShapeDisjoint = "disjoint"
	ShapeSquare   = "square"
	ShapePath     = "path"
	ShapeWheel    = "wheel"
	ShapeStar     = "star"
	ShapeRandom   = "random"
)

// Vertex ID schemes accepted in GraphConfig.IDs.
const (
	IDsNumeric = "numeric"
	IDsSymbol  = "symbol"
)

var (
	// ErrInvalidConfig indicates a value outside its allowed set or range.
	ErrInvalidConfig = errors.New("config: invalid value")

	// ErrBadEdge indicates an edge literal that is not "u-v".
	ErrBadEdge = errors.New("config: bad edge literal")

	// ErrNoGraph indicates that neither edges nor a shape were given.
	ErrNoGraph = errors.New("config: no graph given")
)

// Config is the full run configuration.
type Config struct {
	LogLevel string `yaml:"log_level"`

	// Workers bounds truth-table parallelism; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
	// SequentialThreshold is the table size below which generation stays
	// on the calling goroutine.
	SequentialThreshold int `yaml:"sequential_threshold"`
	MaxCombinations     int `yaml:"max_combinations"`

	// Store is the bbolt truth-map cache path; empty disables caching.
	Store string `yaml:"store"`
	// MetricsFile, when set, receives the Prometheus text exposition on exit.
	MetricsFile string `yaml:"metrics_file"`

	Search SearchConfig `yaml:"search"`
	Graph  GraphConfig  `yaml:"graph"`
}

// SearchConfig selects and tunes the oracle Searcher.
type SearchConfig struct {
	Searcher string `yaml:"searcher"`
	Command  string `yaml:"command"`
	Shots    int    `yaml:"shots"`
	Seed     int64  `yaml:"seed"`
}

// GraphConfig describes the input graph: either explicit edges or a
// generated shape.
type GraphConfig struct {
	// Edges are "u-v" literals, in table order.
	Edges []string `yaml:"edges"`

	Shape string `yaml:"shape"`
	Size  int    `yaml:"size"`
	// Count is the number of cycles for the disjoint shape.
	Count int `yaml:"count"`
	// Probability is the edge probability of the random shape.
	Probability float64 `yaml:"probability"`
	// Drop is the percentage of generated edges removed at random.
	Drop float64 `yaml:"drop"`
	Seed int64   `yaml:"seed"`
	IDs  string  `yaml:"ids"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		LogLevel:            logrus.InfoLevel.String(),
		SequentialThreshold: workpool.DefaultThreshold,
		MaxCombinations:     hamilton.DefaultMaxCombinations,
		Search: SearchConfig{
			Searcher: SearcherLinear,
			Seed:     1,
		},
		Graph: GraphConfig{
			Count:       2,
			Probability: 0.5,
			Seed:        1,
			IDs:         IDsSymbol,
		},
	}
}

// LoadConfig reads the YAML file at path over DefaultConfig. Unknown keys are
// rejected. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("YAML syntax error in config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks enumerated values and ranges.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalidConfig)
	}
	if c.Workers < 0 || c.SequentialThreshold < 0 || c.MaxCombinations < 0 || c.Search.Shots < 0 {
		return fmt.Errorf("negative worker, threshold, max_combinations or shots: %w", ErrInvalidConfig)
	}
	switch c.Search.Searcher {
	case SearcherLinear, SearcherProbe:
	case SearcherCommand:
		if strings.TrimSpace(c.Search.Command) == "" {
			return fmt.Errorf("searcher %q needs search.command: %w", SearcherCommand, ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("searcher %q: %w", c.Search.Searcher, ErrInvalidConfig)
	}
	switch c.Graph.Shape {
	case "", ShapeComplete, ShapeCycle, ShapeDisjoint, ShapeSquare, ShapePath, ShapeWheel, ShapeStar, ShapeRandom:
	default:
		return fmt.Errorf("shape %q: %w", c.Graph.Shape, ErrInvalidConfig)
	}
	switch c.Graph.IDs {
	case IDsNumeric, IDsSymbol:
	default:
		return fmt.Errorf("ids %q: %w", c.Graph.IDs, ErrInvalidConfig)
	}
	if c.Graph.Probability < 0 || c.Graph.Probability > 1 {
		return fmt.Errorf("probability=%.2f not in [0,1]: %w", c.Graph.Probability, ErrInvalidConfig)
	}
	if c.Graph.Drop < 0 || c.Graph.Drop > 100 {
		return fmt.Errorf("drop=%.2f not in [0,100]: %w", c.Graph.Drop, ErrInvalidConfig)
	}

	return nil
}

// Level returns the parsed log level.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return lvl
}

// Executor builds the truth-table executor.
func (c Config) Executor() workpool.Executor {
	return workpool.Adaptive{
		Threshold: c.SequentialThreshold,
		Parallel:  workpool.Parallel{Workers: c.Workers},
	}
}

// Searcher builds the configured oracle Searcher.
func (c Config) Searcher() (search.Searcher, error) {
	switch c.Search.Searcher {
	case SearcherLinear, "":
		return search.LinearScan{}, nil
	case SearcherProbe:
		return search.NewRandomProbe(c.Search.Seed), nil
	case SearcherCommand:
		return search.NewCommand(c.Search.Command)
	default:
		return nil, fmt.Errorf("searcher %q: %w", c.Search.Searcher, ErrInvalidConfig)
	}
}
