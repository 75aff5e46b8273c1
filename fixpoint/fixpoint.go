// Package fixpoint iterates a monotone BDD transformer to a stable handle,
// implementing least (μ) and greatest (ν) fixed points. It depends only on
// bdd, not on ast or eval: the evaluator is responsible for compiling a
// fixed-point body into a single handle T that is a function of the bound
// variable's BDD index plus whatever free variables the body mentions, and
// fixpoint iterates purely at the level of that handle.
package fixpoint

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/arnegrid/qrobdd/bdd"
)

// ErrFixpointDiverged is returned when a cap set by WithMaxIterations is
// exceeded before the iteration stabilizes. The uncapped default never
// returns this error; non-monotonic transformers may simply never
// converge, which the library contract treats as a caller error, not a
// driver bug.
var ErrFixpointDiverged = errors.New("fixpoint: did not converge")

type config struct {
	maxIterations int
}

// Option configures the fixed-point driver.
type Option func(*config)

// WithMaxIterations caps the number of Compose steps before giving up with
// ErrFixpointDiverged. A non-positive n is ignored (no cap).
func WithMaxIterations(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxIterations = n
		}
	}
}

// Compose is one fixed-point iteration step: substitute the current
// approximation g for the bound variable v inside t, by restricting t on v
// both ways and re-combining under g as the selector.
//
//	Compose(T, v, g) = Ite(g, Restrict(T, v, true), Restrict(T, v, false))
func Compose(s *bdd.Store, t bdd.Handle, v int, g bdd.Handle) bdd.Handle {
	whenTrue := s.Restrict(t, v, true)
	whenFalse := s.Restrict(t, v, false)
	return s.Ite(g, whenTrue, whenFalse)
}

// Least computes μX. t, where t is the body's handle with X compiled to
// BDD variable v, starting from X₀ = ⊥.
func Least(s *bdd.Store, t bdd.Handle, v int, opts ...Option) (bdd.Handle, error) {
	return iterate(s, t, v, bdd.False, opts)
}

// Greatest computes νX. t, where t is the body's handle with X compiled to
// BDD variable v, starting from X₀ = ⊤.
func Greatest(s *bdd.Store, t bdd.Handle, v int, opts ...Option) (bdd.Handle, error) {
	return iterate(s, t, v, bdd.True, opts)
}

func iterate(s *bdd.Store, t bdd.Handle, v int, x0 bdd.Handle, opts []Option) (bdd.Handle, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	x := x0
	for i := 0; cfg.maxIterations <= 0 || i < cfg.maxIterations; i++ {
		next := Compose(s, t, v, x)
		if next == x {
			return x, nil
		}
		x = next
	}
	return bdd.False, errors.WithStack(fmt.Errorf("%w: exceeded %d iterations", ErrFixpointDiverged, cfg.maxIterations))
}
