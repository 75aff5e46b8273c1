// Package eval recursively lowers a parsed expression tree into a BDD
// handle under a frozen variable ordering. Dispatch is a type switch on
// ast.Expr's concrete node types, never dynamic method dispatch.
package eval

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/arnegrid/qrobdd/ast"
	"github.com/arnegrid/qrobdd/bdd"
	"github.com/arnegrid/qrobdd/counting"
	"github.com/arnegrid/qrobdd/fixpoint"
	"github.com/arnegrid/qrobdd/order"
)

// Eval lowers e into a bdd.Handle in s, resolving variable references
// through ord.
func Eval(s *bdd.Store, ord *order.Ordering, e ast.Expr) (bdd.Handle, error) {
	switch n := e.(type) {
	case ast.Const:
		return bdd.From(n.Value), nil

	case ast.VarRef:
		return evalVar(s, ord, n.Name)

	case ast.Not:
		x, err := Eval(s, ord, n.X)
		if err != nil {
			return bdd.False, err
		}
		return s.Not(x), nil

	case ast.Bin:
		return evalBin(s, ord, n)

	case ast.If:
		cond, err := Eval(s, ord, n.Cond)
		if err != nil {
			return bdd.False, err
		}
		then, err := Eval(s, ord, n.Then)
		if err != nil {
			return bdd.False, err
		}
		els, err := Eval(s, ord, n.Else)
		if err != nil {
			return bdd.False, err
		}
		return s.Ite(cond, then, els), nil

	case ast.Quant:
		return evalQuant(s, ord, n)

	case ast.Card:
		return evalCard(s, ord, n)

	case ast.Fix:
		return evalFix(s, ord, n)
	}
	return bdd.False, errors.Errorf("eval: unhandled expression node %T", e)
}

func evalVar(s *bdd.Store, ord *order.Ordering, name string) (bdd.Handle, error) {
	idx, ok := ord.Index(name)
	if !ok {
		return bdd.False, errors.WithStack(fmt.Errorf("%w: %q", ErrUnresolvedVar, name))
	}
	return s.Var(idx), nil
}

func evalBin(s *bdd.Store, ord *order.Ordering, n ast.Bin) (bdd.Handle, error) {
	x, err := Eval(s, ord, n.X)
	if err != nil {
		return bdd.False, err
	}
	y, err := Eval(s, ord, n.Y)
	if err != nil {
		return bdd.False, err
	}
	switch n.Op {
	case ast.OpAnd:
		return s.And(x, y), nil
	case ast.OpOr:
		return s.Or(x, y), nil
	case ast.OpImplies:
		return s.Imp(x, y), nil
	case ast.OpIff:
		return s.Equiv(x, y), nil
	case ast.OpXor:
		return s.Xor(x, y), nil
	case ast.OpNor:
		return s.Nor(x, y), nil
	case ast.OpNand:
		return s.Nand(x, y), nil
	}
	return bdd.False, errors.Errorf("eval: unhandled binary operator %v", n.Op)
}

func evalQuant(s *bdd.Store, ord *order.Ordering, n ast.Quant) (bdd.Handle, error) {
	bm, ok := ord.Bitmap(n.Vars)
	if !ok {
		return bdd.False, errors.WithStack(fmt.Errorf("%w: quantifier over %v", ErrUnresolvedVar, n.Vars))
	}
	body, err := Eval(s, ord, n.Body)
	if err != nil {
		return bdd.False, err
	}
	if n.Kind == ast.QuantExists {
		return s.Exists(body, bm), nil
	}
	return s.Forall(body, bm), nil
}

func evalTerms(s *bdd.Store, ord *order.Ordering, terms []ast.Expr) ([]bdd.Handle, error) {
	hs := make([]bdd.Handle, len(terms))
	for i, t := range terms {
		h, err := Eval(s, ord, t)
		if err != nil {
			return nil, err
		}
		hs[i] = h
	}
	return hs, nil
}

func evalCard(s *bdd.Store, ord *order.Ordering, n ast.Card) (bdd.Handle, error) {
	terms, err := evalTerms(s, ord, n.Terms)
	if err != nil {
		return bdd.False, err
	}
	cmp := n.Cmp.String()
	switch rhs := n.RHS.(type) {
	case ast.IntRHS:
		return counting.Compare(s, terms, cmp, rhs.N), nil
	case ast.VecRHS:
		rhsTerms, err := evalTerms(s, ord, rhs.Terms)
		if err != nil {
			return bdd.False, err
		}
		return counting.CompareVectors(s, terms, rhsTerms, cmp), nil
	}
	return bdd.False, errors.WithStack(ErrTypeMismatch)
}

func evalFix(s *bdd.Store, ord *order.Ordering, n ast.Fix) (bdd.Handle, error) {
	v, ok := ord.Index(n.Var)
	if !ok {
		return bdd.False, errors.WithStack(fmt.Errorf("%w: %q", ErrUnresolvedFixpointVar, n.Var))
	}
	t, err := Eval(s, ord, n.Body)
	if err != nil {
		return bdd.False, err
	}
	if s.Restrict(t, v, true) == s.Restrict(t, v, false) {
		return bdd.False, errors.WithStack(fmt.Errorf("%w: %q", ErrUnresolvedFixpointVar, n.Var))
	}
	if n.Kind == ast.FixMu {
		return fixpoint.Least(s, t, v)
	}
	return fixpoint.Greatest(s, t, v)
}
