package eval

import (
	"errors"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/arnegrid/qrobdd/ast"
	"github.com/arnegrid/qrobdd/bdd"
	"github.com/arnegrid/qrobdd/order"
	"github.com/arnegrid/qrobdd/parser"
)

func parseAndEval(t *testing.T, src string) (*bdd.Store, *order.Ordering, bdd.Handle, error) {
	t.Helper()
	e, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	ord := order.Default(e)
	s, err := bdd.New(ord.Len())
	if err != nil {
		t.Fatalf("bdd.New: %v", err)
	}
	h, err := Eval(s, ord, e)
	return s, ord, h, err
}

func TestEvalConstants(t *testing.T) {
	_, _, h, err := parseAndEval(t, "true")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h != bdd.True {
		t.Fatalf("eval(true) = %v, want True", h)
	}
}

func TestEvalBinaryConnectives(t *testing.T) {
	cases := map[string]bdd.Handle{
		"true & false":    bdd.False,
		"true | false":    bdd.True,
		"true => false":   bdd.False,
		"false => true":   bdd.True,
		"true <=> true":   bdd.True,
		"true xor true":   bdd.False,
		"true xor false":  bdd.True,
		"true nor false":  bdd.False,
		"false nor false": bdd.True,
		"true nand true":  bdd.False,
	}
	for src, want := range cases {
		_, _, h, err := parseAndEval(t, src)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", src, err)
		}
		if h != want {
			t.Fatalf("%q = %v, want %v", src, h, want)
		}
	}
}

func TestEvalQuantifiers(t *testing.T) {
	_, _, h, err := parseAndEval(t, "exists x # (x & not x)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h != bdd.False {
		t.Fatalf("exists x # (x & !x) = %v, want False", h)
	}

	_, _, h2, err := parseAndEval(t, "forall x # (x | not x)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h2 != bdd.True {
		t.Fatalf("forall x # (x | !x) = %v, want True", h2)
	}
}

// Invariant 5: Not(Exists(a,V)) == Forall(Not(a),V).
func TestQuantifierDuality(t *testing.T) {
	s, err := bdd.New(2)
	if err != nil {
		t.Fatalf("bdd.New: %v", err)
	}
	a := s.Var(0)
	b := s.Var(1)
	f := s.And(a, b)
	bm := roaring.BitmapOf(0)
	lhs := s.Not(s.Exists(f, bm))
	rhs := s.Forall(s.Not(f), bm)
	if lhs != rhs {
		t.Fatalf("quantifier duality failed: Not(Exists)=%v, Forall(Not)=%v", lhs, rhs)
	}
}

func TestEvalUnresolvedVar(t *testing.T) {
	e, err := parser.Parse("a & b")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// Build an ordering that only knows about "a", not "b".
	ord := order.Default(ast.VarRef{Name: "a"})
	s, err := bdd.New(ord.Len())
	if err != nil {
		t.Fatalf("bdd.New: %v", err)
	}
	_, err = Eval(s, ord, e)
	if err == nil {
		t.Fatal("expected ErrUnresolvedVar")
	}
	if !errors.Is(err, ErrUnresolvedVar) {
		t.Fatalf("expected ErrUnresolvedVar, got %v", err)
	}
}

func TestEvalFixpointMuIsJustA(t *testing.T) {
	s, ord, h, err := parseAndEval(t, "mu X # (a | X)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	aIdx, ok := ord.Index("a")
	if !ok {
		t.Fatal("expected a to be in the ordering")
	}
	if h != s.Var(aIdx) {
		t.Fatalf("mu X # (a | X) = %v, want a itself (%v)", h, s.Var(aIdx))
	}
}

func TestEvalFixpointUnresolvedWhenBodyIgnoresBoundVariable(t *testing.T) {
	_, _, _, err := parseAndEval(t, "mu X # a")
	if err == nil {
		t.Fatal("expected ErrUnresolvedFixpointVar")
	}
	if !errors.Is(err, ErrUnresolvedFixpointVar) {
		t.Fatalf("expected ErrUnresolvedFixpointVar, got %v", err)
	}
}

// X appears syntactically but (X & !X) always reduces to false, so the
// compiled function never actually depends on X's value.
func TestEvalFixpointUnresolvedWhenBodyReducesAwayBoundVariable(t *testing.T) {
	_, _, _, err := parseAndEval(t, "mu X # (a | (X & not X))")
	if err == nil {
		t.Fatal("expected ErrUnresolvedFixpointVar")
	}
	if !errors.Is(err, ErrUnresolvedFixpointVar) {
		t.Fatalf("expected ErrUnresolvedFixpointVar, got %v", err)
	}
}
