// SPDX-License-Identifier: MIT
// Package: hamcycle/cmd/hamcycle
//
// commands.go - naive, oracle, table, decode and generate subcommands.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hamcycle/config"
	"github.com/katalvlaran/hamcycle/hamilton"
	"github.com/katalvlaran/hamcycle/search"
	"github.com/katalvlaran/hamcycle/truthmap"
)

func newNaiveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "naive",
		Short: "Scan edge combinations in table order and print the first Hamiltonian cycle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			edges, err := a.cfg.Graph.BuildGraph()
			if err != nil {
				return err
			}
			res, err := search.Naive(a.ctx, edges, a.searchOptions()...)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
	addGraphFlags(cmd.Flags(), a.in)

	return cmd
}

func newOracleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oracle",
		Short: "Encode the truth map, run a searcher over it and decode the answer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			edges, err := a.cfg.Graph.BuildGraph()
			if err != nil {
				return err
			}
			s, err := a.cfg.Searcher()
			if err != nil {
				return err
			}
			res, err := search.Oracle(a.ctx, edges, s, a.searchOptions()...)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
	addGraphFlags(cmd.Flags(), a.in)
	cmd.Flags().StringVar(&a.in.searcher, "searcher", "", "searcher: linear|probe|command")
	cmd.Flags().StringVar(&a.in.searchCmd, "search-cmd", "", "external search command; implies --searcher command")
	cmd.Flags().IntVar(&a.in.shots, "shots", 0, "shots passed to the searcher (0 = ceil(sqrt(combinations)))")

	return cmd
}

func newTableCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the truth table summary, its Hamiltonian rows and the bitmap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ev, err := a.evaluator()
			if err != nil {
				return err
			}
			if ev.EdgeCount() < ev.VertexCount() {
				return fmt.Errorf("table: |E|=%d < |V|=%d: %w",
					ev.EdgeCount(), ev.VertexCount(), hamilton.ErrInsufficientCombinations)
			}
			start := time.Now()
			table, err := ev.GenerateTruthTable(a.ctx, a.cfg.Executor())
			if err != nil {
				return err
			}
			a.metrics.ObserveTable(table.Len(), table.HamiltonianCount(), time.Since(start))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vertices      %d\n", table.VertexCount())
			fmt.Fprintf(out, "edges         %d\n", table.EdgeCount())
			fmt.Fprintf(out, "combinations  %d\n", table.Len())
			fmt.Fprintf(out, "hamiltonian   %d\n", table.HamiltonianCount())

			bitmap, err := truthmap.Encode[string](table)
			if err != nil {
				return err
			}
			width := truthmap.AddressWidth(len(bitmap))
			for i, e := range table.All() {
				if all || e.Hamiltonian {
					fmt.Fprintf(out, "%s  %-5t  %s\n", truthmap.FormatAddress(i, width), e.Hamiltonian, formatCycle(e.Edges))
				}
			}
			fmt.Fprintf(out, "bitmap        %s\n", bitmap)
			return nil
		},
	}
	addGraphFlags(cmd.Flags(), a.in)
	cmd.Flags().BoolVar(&all, "all", false, "print every row, not only Hamiltonian ones")

	return cmd
}

func newDecodeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <binary-address>",
		Short: "Map a binary truth-map address back to its edge combination",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := truthmap.ParseAddress(args[0])
			if err != nil {
				return err
			}
			ev, err := a.evaluator()
			if err != nil {
				return err
			}
			e, err := ev.CandidateAt(idx)
			if err != nil {
				return err
			}
			a.metrics.ObserveCandidates(1, boolToInt(e.Hamiltonian))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "index        %d\n", e.Index)
			fmt.Fprintf(out, "edges        %s\n", formatCycle(e.Edges))
			fmt.Fprintf(out, "hamiltonian  %t\n", e.Hamiltonian)
			return nil
		},
	}
	addGraphFlags(cmd.Flags(), a.in)

	return cmd
}

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the edge list of a generated graph, reusable with --edges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			edges, err := a.cfg.Graph.BuildGraph()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(config.FormatEdges(edges), ","))
			return nil
		},
	}
	addGraphFlags(cmd.Flags(), a.in)

	return cmd
}

func (a *app) evaluator() (*hamilton.Evaluator[string], error) {
	edges, err := a.cfg.Graph.BuildGraph()
	if err != nil {
		return nil, err
	}

	return hamilton.NewEvaluator(edges, hamilton.WithMaxCombinations(a.cfg.MaxCombinations))
}

func printResult(w io.Writer, res search.Result[string]) {
	fmt.Fprintf(w, "run      %s\n", res.RunID)
	fmt.Fprintf(w, "driver   %s\n", res.Driver)
	combinations := strconv.Itoa(res.Combinations)
	if res.Combinations == search.CombinationsOverflow {
		combinations = "overflow"
	}
	fmt.Fprintf(w, "graph    |V|=%d |E|=%d C=%s\n", res.Vertices, res.Edges, combinations)
	fmt.Fprintf(w, "found    %t\n", res.Found)
	fmt.Fprintf(w, "index    %d\n", res.Index)
	if res.Found {
		fmt.Fprintf(w, "cycle    %s\n", formatCycle(res.Cycle))
	}
	fmt.Fprintf(w, "elapsed  %s\n", res.Elapsed)
}

func formatCycle(edges []hamilton.Edge[string]) string {
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = e.String()
	}

	return strings.Join(parts, " ")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
