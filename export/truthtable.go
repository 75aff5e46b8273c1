// Package export serializes a solved formula for human consumption: a
// pipe-delimited truth table, satisfying models, and Graphviz dot renderings
// of both the BDD and the parse tree that produced it.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/arnegrid/qrobdd/bdd"
	"github.com/arnegrid/qrobdd/order"
)

// Filter selects which truth-table rows TruthTable emits.
type Filter int

const (
	FilterAny Filter = iota
	FilterTrue
	FilterFalse
)

// ParseFilter maps the CLI's -f argument to a Filter.
func ParseFilter(s string) (Filter, error) {
	switch s {
	case "", "any":
		return FilterAny, nil
	case "true":
		return FilterTrue, nil
	case "false":
		return FilterFalse, nil
	}
	return FilterAny, fmt.Errorf("export: unknown truth-table filter %q", s)
}

// TruthTable writes a pipe-delimited truth table of h over ord's variables
// to w: the header row lists the variables in ordering order followed by a
// trailing "*" column, then one row per assignment consistent with filter,
// in ascending binary order (the first variable in the ordering is the most
// significant bit of the row index).
func TruthTable(w io.Writer, s *bdd.Store, ord *order.Ordering, h bdd.Handle, filter Filter) error {
	names := ord.Names()
	if _, err := fmt.Fprintln(w, strings.Join(append(append([]string{}, names...), "*"), "|")); err != nil {
		return err
	}
	n := len(names)
	total := 1 << uint(n)
	for assignment := 0; assignment < total; assignment++ {
		bits := assignmentBits(n, assignment)
		val := evalAssignment(s, h, bits)
		if !filter.passes(val) {
			continue
		}
		if err := writeRow(w, bits, val); err != nil {
			return err
		}
	}
	return nil
}

func (f Filter) passes(val bool) bool {
	switch f {
	case FilterTrue:
		return val
	case FilterFalse:
		return !val
	default:
		return true
	}
}

// assignmentBits decodes assignment into n booleans, most significant bit
// first, matching the order the header row lists variables in.
func assignmentBits(n, assignment int) []bool {
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = assignment&(1<<uint(n-1-i)) != 0
	}
	return bits
}

func evalAssignment(s *bdd.Store, h bdd.Handle, bits []bool) bool {
	cur := h
	for i, bit := range bits {
		cur = s.Restrict(cur, i, bit)
	}
	return cur == bdd.True
}

func writeRow(w io.Writer, bits []bool, val bool) error {
	cells := make([]string, 0, len(bits)+1)
	for _, bit := range bits {
		cells = append(cells, boolWord(bit))
	}
	cells = append(cells, boolWord(val))
	_, err := fmt.Fprintln(w, strings.Join(cells, "|"))
	return err
}

func boolWord(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
