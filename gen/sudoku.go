package gen

import "fmt"

// Cell is a (row, col) board coordinate, 0-indexed.
type Cell struct {
	Row, Col int
}

// CellVar names the Boolean variable asserting that (row, col) holds value
// (1-indexed, matching how a solver would print it back to a person).
func CellVar(row, col, value int) string {
	return fmt.Sprintf("cell_%d_%d_%d", row, col, value)
}

// Sudoku emits a formula in the input language for a standard Sudoku board
// of box size boxSize (so a boxSize^2 * boxSize^2 grid, e.g. boxSize=3 for
// the familiar 9x9 puzzle): each cell holds exactly one value, each
// row/column/box contains every value exactly once, and each given clue is
// forced true. givens maps already-filled cells to their 1-indexed value.
func Sudoku(boxSize int, givens map[Cell]int) string {
	size := boxSize * boxSize
	var clauses []string

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			var vals []string
			for v := 1; v <= size; v++ {
				vals = append(vals, CellVar(r, c, v))
			}
			clauses = append(clauses, card(vals, "=", 1))
		}
	}

	for v := 1; v <= size; v++ {
		for r := 0; r < size; r++ {
			var row []string
			for c := 0; c < size; c++ {
				row = append(row, CellVar(r, c, v))
			}
			clauses = append(clauses, card(row, "=", 1))
		}
		for c := 0; c < size; c++ {
			var col []string
			for r := 0; r < size; r++ {
				col = append(col, CellVar(r, c, v))
			}
			clauses = append(clauses, card(col, "=", 1))
		}
		for boxRow := 0; boxRow < boxSize; boxRow++ {
			for boxCol := 0; boxCol < boxSize; boxCol++ {
				var box []string
				for i := 0; i < boxSize; i++ {
					for j := 0; j < boxSize; j++ {
						box = append(box, CellVar(boxRow*boxSize+i, boxCol*boxSize+j, v))
					}
				}
				clauses = append(clauses, card(box, "=", 1))
			}
		}
	}

	for cell, v := range givens {
		clauses = append(clauses, CellVar(cell.Row, cell.Col, v))
	}

	return joinAnd(clauses)
}
