// Package gen produces formula text in the input language for a handful of
// classic combinatorial puzzles: n-queens, sudoku, graph cliques, and random
// graphs. These generators never touch bdd or eval — they are producers of
// input text for the CLI's "gen" sub-command, not consumers of the engine.
package gen

import (
	"fmt"
	"strings"
)

// joinAnd conjoins clauses with "and", one per line, matching the teacher's
// own style of building a formula as a long conjunction of small pieces
// (see dalzilio-rudd's nqueens_test.go, which ANDs per-cell requirements
// directly against the BDD API instead of text; this package emits the
// equivalent formula as source).
func joinAnd(clauses []string) string {
	if len(clauses) == 0 {
		return "true"
	}
	return strings.Join(clauses, "\nand ")
}

func card(terms []string, cmp string, n int) string {
	return fmt.Sprintf("[%s] %s %d", strings.Join(terms, ","), cmp, n)
}
