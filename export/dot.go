package export

import (
	"fmt"
	"io"

	"github.com/arnegrid/qrobdd/bdd"
	"github.com/arnegrid/qrobdd/order"
)

// Dot writes a Graphviz dot rendering of every node reachable from roots to
// w: terminals as filled boxes labeled T/F, branches as ellipses labeled
// with the variable name (via ord, rather than the bare level the teacher's
// PrintDot printed), solid edges to the high (true) child, dashed edges to
// the low (false) child.
func Dot(w io.Writer, s *bdd.Store, ord *order.Ordering, roots ...bdd.Handle) error {
	if _, err := fmt.Fprintln(w, "digraph G {"); err != nil {
		return err
	}
	fmt.Fprintln(w, `0 [shape=box, label="F", style=filled, height=0.3, width=0.3];`)
	fmt.Fprintln(w, `1 [shape=box, label="T", style=filled, height=0.3, width=0.3];`)

	var writeErr error
	err := s.Allnodes(func(n bdd.NodeInfo) error {
		if n.ID == bdd.False || n.ID == bdd.True {
			return nil
		}
		name := ord.Name(int(n.Level))
		if _, err := fmt.Fprintf(w, "%d [shape=ellipse, label=%q];\n", n.ID, name); err != nil {
			writeErr = err
			return err
		}
		fmt.Fprintf(w, "%d -> %d [style=dashed];\n", n.ID, n.Low)
		fmt.Fprintf(w, "%d -> %d [style=solid];\n", n.ID, n.High)
		return nil
	}, roots...)
	if err != nil {
		return err
	}
	if writeErr != nil {
		return writeErr
	}
	_, err = fmt.Fprintln(w, "}")
	return err
}
