package bdd

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"pgregory.net/rapid"
)

func bitmapOf(vs ...int) *roaring.Bitmap {
	b := roaring.New()
	for _, v := range vs {
		b.Add(uint32(v))
	}
	return b
}

// expr is a tiny in-memory Boolean expression tree used only to generate
// random formulas for the property tests below; it has no connection to
// the ast package's parse tree.
type expr interface {
	eval(env []bool) bool
	build(s *Store) Handle
}

type exprVar int

func (e exprVar) eval(env []bool) bool  { return env[e] }
func (e exprVar) build(s *Store) Handle { return s.Var(int(e)) }

type exprNot struct{ x expr }

func (e exprNot) eval(env []bool) bool  { return !e.x.eval(env) }
func (e exprNot) build(s *Store) Handle { return s.Not(e.x.build(s)) }

type exprAnd struct{ x, y expr }

func (e exprAnd) eval(env []bool) bool  { return e.x.eval(env) && e.y.eval(env) }
func (e exprAnd) build(s *Store) Handle { return s.And(e.x.build(s), e.y.build(s)) }

type exprOr struct{ x, y expr }

func (e exprOr) eval(env []bool) bool  { return e.x.eval(env) || e.y.eval(env) }
func (e exprOr) build(s *Store) Handle { return s.Or(e.x.build(s), e.y.build(s)) }

func genExpr(varnum int) *rapid.Generator[expr] {
	return rapid.Custom(func(t *rapid.T) expr {
		return genExprDepth(t, varnum, 4)
	})
}

func genExprDepth(t *rapid.T, varnum, depth int) expr {
	if depth <= 0 {
		return exprVar(rapid.IntRange(0, varnum-1).Draw(t, "var"))
	}
	switch rapid.IntRange(0, 3).Draw(t, "kind") {
	case 0:
		return exprVar(rapid.IntRange(0, varnum-1).Draw(t, "var"))
	case 1:
		return exprNot{genExprDepth(t, varnum, depth-1)}
	case 2:
		return exprAnd{genExprDepth(t, varnum, depth-1), genExprDepth(t, varnum, depth-1)}
	default:
		return exprOr{genExprDepth(t, varnum, depth-1), genExprDepth(t, varnum, depth-1)}
	}
}

func allEnvs(varnum int) [][]bool {
	envs := [][]bool{{}}
	for i := 0; i < varnum; i++ {
		next := make([][]bool, 0, len(envs)*2)
		for _, e := range envs {
			f := append(append([]bool{}, e...), false)
			tt := append(append([]bool{}, e...), true)
			next = append(next, f, tt)
		}
		envs = next
	}
	return envs
}

// TestHandleCanonicity checks invariant 1 (structural equality of handles):
// two expressions that agree on every assignment must compile to the same
// Handle in the same Store.
func TestHandleCanonicity(t *testing.T) {
	const varnum = 4
	rapid.Check(t, func(t *rapid.T) {
		e1 := genExpr(varnum).Draw(t, "e1")
		e2 := genExpr(varnum).Draw(t, "e2")
		s, err := New(varnum)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		h1 := e1.build(s)
		h2 := e2.build(s)
		sameFn := true
		for _, env := range allEnvs(varnum) {
			if e1.eval(env) != e2.eval(env) {
				sameFn = false
				break
			}
		}
		if sameFn != (h1 == h2) {
			t.Fatalf("canonicity violated: sameFn=%v but h1==h2 is %v", sameFn, h1 == h2)
		}
	})
}

// TestEvalMatchesExpr checks that the Handle built for an expression agrees
// with directly evaluating that expression, on every assignment.
func TestEvalMatchesExpr(t *testing.T) {
	const varnum = 4
	rapid.Check(t, func(t *rapid.T) {
		e := genExpr(varnum).Draw(t, "e")
		s, err := New(varnum)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		h := e.build(s)
		for _, env := range allEnvs(varnum) {
			got := evalHandle(s, h, env)
			want := e.eval(env)
			if got != want {
				t.Fatalf("eval mismatch on %v: got %v want %v", env, got, want)
			}
		}
	})
}

// TestReducedNodesNeverHaveEqualChildren checks invariant 8: Mk (the
// hash-consing constructor every node allocation goes through) never
// creates a node whose low and high children coincide, on any formula a
// random expression tree can build.
func TestReducedNodesNeverHaveEqualChildren(t *testing.T) {
	const varnum = 4
	rapid.Check(t, func(t *rapid.T) {
		e := genExpr(varnum).Draw(t, "e")
		s, err := New(varnum)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		h := e.build(s)
		err = s.Allnodes(func(ni NodeInfo) error {
			// Allnodes also reports the two terminals, which are not
			// built by Mk and point at themselves on both sides.
			if ni.ID == False || ni.ID == True {
				return nil
			}
			if ni.Low == ni.High {
				t.Fatalf("node %v has low == high == %v", ni.ID, ni.Low)
			}
			return nil
		}, h)
		if err != nil {
			t.Fatalf("Allnodes: %v", err)
		}
	})
}

func evalHandle(s *Store, h Handle, env []bool) bool {
	for h != True && h != False {
		if env[s.level(h)] {
			h = s.high(h)
		} else {
			h = s.low(h)
		}
	}
	return h == True
}

// TestRestrictThenQuantifyCommutesWithEval checks that a BDD-level Exists
// over one variable agrees with its semantic definition, by comparing it on
// every assignment against brute-force evaluation with that variable set
// both ways.
func TestRestrictThenQuantifyCommutesWithEval(t *testing.T) {
	const varnum = 4
	rapid.Check(t, func(t *rapid.T) {
		e := genExpr(varnum).Draw(t, "e")
		v := rapid.IntRange(0, varnum-1).Draw(t, "v")
		s, err := New(varnum)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		h := e.build(s)
		exists := s.Exists(h, bitmapOf(v))
		for _, env := range allEnvs(varnum) {
			env2 := append([]bool{}, env...)
			env2[v] = false
			want := e.eval(env2)
			env2[v] = true
			want = want || e.eval(env2)
			if got := evalHandle(s, exists, env); got != want {
				t.Fatalf("exists mismatch on %v: got %v want %v", env, got, want)
			}
		}
	})
}
