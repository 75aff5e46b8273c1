package fixpoint

import (
	"errors"
	"testing"

	"github.com/arnegrid/qrobdd/bdd"
)

func newStore(t *testing.T, n int) *bdd.Store {
	t.Helper()
	s, err := bdd.New(n)
	if err != nil {
		t.Fatalf("bdd.New: %v", err)
	}
	return s
}

// T(X) = a | X: μX.T = a, νX.T = ⊤.
func TestLeastOfOrIsA(t *testing.T) {
	s := newStore(t, 2)
	a := s.Var(0)
	x := 1
	body := s.Or(a, s.Var(x))
	got, err := Least(s, body, x)
	if err != nil {
		t.Fatalf("Least: %v", err)
	}
	if got != a {
		t.Fatalf("Least(a | X) = %v, want %v", got, a)
	}
}

func TestGreatestOfOrIsTrue(t *testing.T) {
	s := newStore(t, 2)
	a := s.Var(0)
	x := 1
	body := s.Or(a, s.Var(x))
	got, err := Greatest(s, body, x)
	if err != nil {
		t.Fatalf("Greatest: %v", err)
	}
	if got != bdd.True {
		t.Fatalf("Greatest(a | X) = %v, want True", got)
	}
}

// T(X) = a & X: μX.T = ⊥, νX.T = a.
func TestLeastOfAndIsFalse(t *testing.T) {
	s := newStore(t, 2)
	a := s.Var(0)
	x := 1
	body := s.And(a, s.Var(x))
	got, err := Least(s, body, x)
	if err != nil {
		t.Fatalf("Least: %v", err)
	}
	if got != bdd.False {
		t.Fatalf("Least(a & X) = %v, want False", got)
	}
}

func TestGreatestOfAndIsA(t *testing.T) {
	s := newStore(t, 2)
	a := s.Var(0)
	x := 1
	body := s.And(a, s.Var(x))
	got, err := Greatest(s, body, x)
	if err != nil {
		t.Fatalf("Greatest: %v", err)
	}
	if got != a {
		t.Fatalf("Greatest(a & X) = %v, want %v", got, a)
	}
}

// Invariant 7: for a monotone transformer, Imp(muX.T, nuX.T) == True.
func TestMonotonicitySanity(t *testing.T) {
	s := newStore(t, 2)
	a := s.Var(0)
	x := 1
	body := s.Or(a, s.Var(x))
	mu, err := Least(s, body, x)
	if err != nil {
		t.Fatalf("Least: %v", err)
	}
	nu, err := Greatest(s, body, x)
	if err != nil {
		t.Fatalf("Greatest: %v", err)
	}
	if got := s.Imp(mu, nu); got != bdd.True {
		t.Fatalf("Imp(mu,nu) = %v, want True", got)
	}
}

func TestMaxIterationsCapReportsDiverged(t *testing.T) {
	s := newStore(t, 2)
	x := 0
	// T(X) = !X toggles every step, never stabilizes.
	body := s.Not(s.Var(x))
	_, err := Least(s, body, x, WithMaxIterations(4))
	if err == nil {
		t.Fatal("expected ErrFixpointDiverged")
	}
	if !errors.Is(err, ErrFixpointDiverged) {
		t.Fatalf("expected ErrFixpointDiverged, got %v", err)
	}
}

func TestUncappedDefaultDoesNotReturnDivergedForConvergentFormula(t *testing.T) {
	s := newStore(t, 2)
	a := s.Var(0)
	x := 1
	body := s.Or(a, s.Var(x))
	if _, err := Least(s, body, x); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
