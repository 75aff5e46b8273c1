package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arnegrid/qrobdd/gen"
)

// newGenCmd builds the "gen" sub-command bundling the four formula
// generators into the same binary, per SPEC_FULL.md §6: these are separate
// tools that only print input-language text, never touching bdd/eval.
func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate formula text in the input language for classic combinatorial puzzles",
	}
	cmd.AddCommand(newGenNQueensCmd(), newGenSudokuCmd(), newGenCliqueCmd(), newGenRandomGraphCmd())
	return cmd
}

func newGenNQueensCmd() *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "nqueens",
		Short: "Emit the n-queens formula for an n*n board",
		RunE: func(cmd *cobra.Command, args []string) error {
			if size <= 0 {
				return userError(fmt.Errorf("--size must be positive"))
			}
			fmt.Fprintln(cmd.OutOrStdout(), gen.NQueens(size))
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 8, "board size (n*n)")
	return cmd
}

func newGenSudokuCmd() *cobra.Command {
	var boxSize int
	var givens []string
	cmd := &cobra.Command{
		Use:   "sudoku",
		Short: "Emit the sudoku formula for a box-size^2 grid, with optional given clues",
		RunE: func(cmd *cobra.Command, args []string) error {
			if boxSize <= 0 {
				return userError(fmt.Errorf("--box must be positive"))
			}
			parsed, err := parseGivens(givens)
			if err != nil {
				return userError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), gen.Sudoku(boxSize, parsed))
			return nil
		},
	}
	cmd.Flags().IntVar(&boxSize, "box", 3, "box size (grid is box^2 x box^2)")
	cmd.Flags().StringArrayVar(&givens, "given", nil, "a given clue as row,col,value (0-indexed cell, 1-indexed value); repeatable")
	return cmd
}

func parseGivens(raw []string) (map[gen.Cell]int, error) {
	givens := make(map[gen.Cell]int, len(raw))
	for _, g := range raw {
		parts := strings.Split(g, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("--given %q: expected row,col,value", g)
		}
		row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("--given %q: bad row: %w", g, err)
		}
		col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("--given %q: bad col: %w", g, err)
		}
		val, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return nil, fmt.Errorf("--given %q: bad value: %w", g, err)
		}
		givens[gen.Cell{Row: row, Col: col}] = val
	}
	return givens, nil
}

func newGenCliqueCmd() *cobra.Command {
	var vertices, k int
	var edgesRaw []string
	cmd := &cobra.Command{
		Use:   "clique",
		Short: "Emit a formula whose models are the cliques of a given graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			if vertices <= 0 {
				return userError(fmt.Errorf("--vertices must be positive"))
			}
			edges, err := parseEdges(edgesRaw)
			if err != nil {
				return userError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), gen.Clique(vertices, edges, k))
			return nil
		},
	}
	cmd.Flags().IntVar(&vertices, "vertices", 5, "number of vertices")
	cmd.Flags().StringArrayVar(&edgesRaw, "edge", nil, "an edge as i-j; repeatable")
	cmd.Flags().IntVar(&k, "k", 0, "required clique size lower bound (0 disables)")
	return cmd
}

func parseEdges(raw []string) ([][2]int, error) {
	edges := make([][2]int, 0, len(raw))
	for _, e := range raw {
		parts := strings.SplitN(e, "-", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("--edge %q: expected i-j", e)
		}
		i, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("--edge %q: bad endpoint: %w", e, err)
		}
		j, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("--edge %q: bad endpoint: %w", e, err)
		}
		edges = append(edges, [2]int{i, j})
	}
	return edges, nil
}

func newGenRandomGraphCmd() *cobra.Command {
	var vertices, edges, colors int
	var seed int64
	cmd := &cobra.Command{
		Use:   "randomgraph",
		Short: "Emit a proper-coloring formula for a random graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			if vertices <= 0 || edges < 0 || colors <= 0 {
				return userError(fmt.Errorf("--vertices and --colors must be positive, --edges non-negative"))
			}
			fmt.Fprintln(cmd.OutOrStdout(), gen.RandomGraph(vertices, edges, colors, seed))
			return nil
		},
	}
	cmd.Flags().IntVar(&vertices, "vertices", 6, "number of vertices")
	cmd.Flags().IntVar(&edges, "edges", 6, "number of edges to draw")
	cmd.Flags().IntVar(&colors, "colors", 3, "number of colors")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	return cmd
}
