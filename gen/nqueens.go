package gen

import "fmt"

// QueenVar names the board cell (row, col) uses as a Boolean variable:
// true means a queen occupies that square.
func QueenVar(row, col int) string {
	return fmt.Sprintf("q_%d_%d", row, col)
}

// NQueens emits a formula in the input language whose satisfying models are
// exactly the placements of n mutually non-attacking queens on an n*n
// board: exactly one queen per row, at most one per column, and at most one
// per diagonal and anti-diagonal — the same four requirements the teacher's
// own nqueens_test.go builds directly against the BDD API (a, b, c, d in
// its loop body), expressed here as source text instead of Go calls.
func NQueens(n int) string {
	var clauses []string

	for r := 0; r < n; r++ {
		var row []string
		for c := 0; c < n; c++ {
			row = append(row, QueenVar(r, c))
		}
		clauses = append(clauses, card(row, "=", 1))
	}

	for c := 0; c < n; c++ {
		var col []string
		for r := 0; r < n; r++ {
			col = append(col, QueenVar(r, c))
		}
		clauses = append(clauses, card(col, "<=", 1))
	}

	for d := -(n - 1); d <= n-1; d++ {
		var diag []string
		for r := 0; r < n; r++ {
			c := r - d
			if c >= 0 && c < n {
				diag = append(diag, QueenVar(r, c))
			}
		}
		if len(diag) >= 2 {
			clauses = append(clauses, card(diag, "<=", 1))
		}
	}

	for sum := 0; sum <= 2*(n-1); sum++ {
		var anti []string
		for r := 0; r < n; r++ {
			c := sum - r
			if c >= 0 && c < n {
				anti = append(anti, QueenVar(r, c))
			}
		}
		if len(anti) >= 2 {
			clauses = append(clauses, card(anti, "<=", 1))
		}
	}

	return joinAnd(clauses)
}
