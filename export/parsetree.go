package export

import (
	"fmt"
	"io"

	"github.com/arnegrid/qrobdd/ast"
)

// ParseTreeDot writes a Graphviz dot rendering of e to w: one node per
// ast.Expr, labeled with its tag (and, exists, mu, ...), leaves additionally
// showing their variable name or constant value. No teacher file serializes
// a parse tree, so this mirrors Dot's own node/edge emission idiom instead.
func ParseTreeDot(w io.Writer, e ast.Expr) error {
	if _, err := fmt.Fprintln(w, "digraph G {"); err != nil {
		return err
	}
	id := 0
	var walkErr error
	var walk func(e ast.Expr) int
	walk = func(e ast.Expr) int {
		myID := id
		id++
		if _, err := fmt.Fprintf(w, "%d [shape=ellipse, label=%q];\n", myID, nodeLabel(e)); err != nil {
			walkErr = err
		}
		for _, child := range children(e) {
			cid := walk(child)
			fmt.Fprintf(w, "%d -> %d;\n", myID, cid)
		}
		return myID
	}
	walk(e)
	if walkErr != nil {
		return walkErr
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}

func nodeLabel(e ast.Expr) string {
	switch n := e.(type) {
	case ast.Const:
		return boolWord(n.Value)
	case ast.VarRef:
		return n.Name
	case ast.Quant:
		return fmt.Sprintf("%s %v", e.Tag(), n.Vars)
	case ast.Card:
		return fmt.Sprintf("card %s", n.Cmp)
	case ast.Fix:
		return fmt.Sprintf("%s %s", e.Tag(), n.Var)
	}
	return e.Tag()
}

// children lists e's direct subexpressions, in the same traversal shape
// order.Default's occurrence walk uses.
func children(e ast.Expr) []ast.Expr {
	switch n := e.(type) {
	case ast.Not:
		return []ast.Expr{n.X}
	case ast.Bin:
		return []ast.Expr{n.X, n.Y}
	case ast.If:
		return []ast.Expr{n.Cond, n.Then, n.Else}
	case ast.Quant:
		return []ast.Expr{n.Body}
	case ast.Card:
		terms := append([]ast.Expr{}, n.Terms...)
		if vec, ok := n.RHS.(ast.VecRHS); ok {
			terms = append(terms, vec.Terms...)
		}
		return terms
	case ast.Fix:
		return []ast.Expr{n.Body}
	}
	return nil
}
