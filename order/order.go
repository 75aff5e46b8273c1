// Package order derives and freezes the variable ordering a formula is
// evaluated under: a name<->index bijection fixed before any BDD node is
// created.
package order

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/arnegrid/qrobdd/ast"
)

// Ordering is an immutable name<->index bijection. The zero value is not
// usable; construct one with Default or Override.
type Ordering struct {
	names   []string
	indices map[string]int
}

// Len returns the number of variables in the ordering.
func (o *Ordering) Len() int { return len(o.names) }

// Index returns the position of name in the ordering and whether it was
// found.
func (o *Ordering) Index(name string) (int, bool) {
	idx, ok := o.indices[name]
	return idx, ok
}

// Name returns the variable name at position idx.
func (o *Ordering) Name(idx int) string { return o.names[idx] }

// Names returns the frozen name slice in index order. The caller must not
// mutate the returned slice.
func (o *Ordering) Names() []string { return o.names }

// Bitmap builds a roaring bitmap of the indices of the given names. It
// reports an error-equivalent false for any name absent from the
// ordering; callers that require totality should check beforehand with
// Index.
func (o *Ordering) Bitmap(names []string) (*roaring.Bitmap, bool) {
	bm := roaring.New()
	for _, n := range names {
		idx, ok := o.indices[n]
		if !ok {
			return nil, false
		}
		bm.Add(uint32(idx))
	}
	return bm, true
}

func newOrdering(names []string) *Ordering {
	indices := make(map[string]int, len(names))
	for i, n := range names {
		indices[n] = i
	}
	return &Ordering{names: names, indices: indices}
}

// Default derives the ordering by a left-to-right, depth-first occurrence
// walk of e's variable references. A quantifier's or fixed-point's bound
// variable list is a declaration, not a use, so it contributes no
// position by itself; the bound name gets its position at the first
// VarRef occurrence inside the body, same as any other name.
func Default(e ast.Expr) *Ordering {
	seen := make(map[string]bool)
	var names []string
	var walk func(e ast.Expr)
	walk = func(e ast.Expr) {
		switch n := e.(type) {
		case ast.Const:
		case ast.VarRef:
			if !seen[n.Name] {
				seen[n.Name] = true
				names = append(names, n.Name)
			}
		case ast.Not:
			walk(n.X)
		case ast.Bin:
			walk(n.X)
			walk(n.Y)
		case ast.If:
			walk(n.Cond)
			walk(n.Then)
			walk(n.Else)
		case ast.Quant:
			walk(n.Body)
		case ast.Card:
			for _, t := range n.Terms {
				walk(t)
			}
			switch rhs := n.RHS.(type) {
			case ast.IntRHS:
			case ast.VecRHS:
				for _, t := range rhs.Terms {
					walk(t)
				}
			}
		case ast.Fix:
			walk(n.Body)
		}
	}
	walk(e)
	return newOrdering(names)
}

// Override builds an ordering that places the given names first, in the
// given order, followed by every variable Default(e) lists (bound names
// included) that is not already listed, in default order. It is the "-o"
// CLI ordering file: names that never occur in e are still assigned a position, since the override list is
// supplied independently of any one formula.
func Override(e ast.Expr, override []string) *Ordering {
	listed := make(map[string]bool, len(override))
	names := make([]string, 0, len(override))
	for _, n := range override {
		if listed[n] {
			continue
		}
		listed[n] = true
		names = append(names, n)
	}
	def := Default(e)
	for _, n := range def.names {
		if !listed[n] {
			listed[n] = true
			names = append(names, n)
		}
	}
	return newOrdering(names)
}
