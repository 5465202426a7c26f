// SPDX-License-Identifier: MIT
// Package: hamcycle/config
//
// graph.go - edge literal parsing and generated-graph construction.

package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hamcycle/builder"
	"github.com/katalvlaran/hamcycle/hamilton"
)

// ParseEdge parses a "u-v" literal. Surrounding spaces are trimmed; the
// first '-' separates the endpoints.
func ParseEdge(s string) (hamilton.Edge[string], error) {
	u, v, ok := strings.Cut(s, "-")
	u, v = strings.TrimSpace(u), strings.TrimSpace(v)
	if !ok || u == "" || v == "" {
		return hamilton.Edge[string]{}, fmt.Errorf("ParseEdge: %q: %w", s, ErrBadEdge)
	}

	return hamilton.E(u, v), nil
}

// ParseEdges parses edge literals in order. Each element may itself hold
// several comma-separated literals.
func ParseEdges(literals []string) ([]hamilton.Edge[string], error) {
	var out []hamilton.Edge[string]
	for _, lit := range literals {
		for _, part := range strings.Split(lit, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			e, err := ParseEdge(part)
			if err != nil {
				return nil, err
			}
			out = append(out, e)
		}
	}

	return out, nil
}

// FormatEdges renders edges back as "u-v" literals.
func FormatEdges(edges []hamilton.Edge[string]) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.From + "-" + e.To
	}

	return out
}

// BuildGraph returns the explicit edges when given, otherwise the generated
// shape with Drop percent of its edges removed.
func (g GraphConfig) BuildGraph() ([]hamilton.Edge[string], error) {
	if len(g.Edges) > 0 {
		return ParseEdges(g.Edges)
	}

	var cons builder.Constructor
	switch g.Shape {
	case ShapeComplete:
		cons = builder.Complete(g.Size)
	case ShapeCycle:
		cons = builder.Cycle(g.Size)
	case ShapeDisjoint:
		cons = builder.DisjointCycles(g.Count, g.Size)
	case ShapeSquare:
		cons = builder.SquareWithDiagonals()
	case ShapePath:
		cons = builder.Path(g.Size)
	case ShapeWheel:
		cons = builder.Wheel(g.Size)
	case ShapeStar:
		cons = builder.Star(g.Size)
	case ShapeRandom:
		cons = builder.RandomSparse(g.Size, g.Probability)
	case "":
		return nil, ErrNoGraph
	default:
		return nil, fmt.Errorf("shape %q: %w", g.Shape, ErrInvalidConfig)
	}

	opts := []builder.BuilderOption{builder.WithSeed(g.Seed)}
	if g.IDs == IDsSymbol {
		opts = append(opts, builder.WithSymbolIDs())
	}
	if g.Drop > 0 {
		cons = builder.Drop(cons, g.Drop)
	}

	return builder.BuildEdges(opts, cons)
}
