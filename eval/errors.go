package eval

import "github.com/pkg/errors"

// ErrUnresolvedVar is raised when a variable reference is absent from a
// required-total ordering override.
var ErrUnresolvedVar = errors.New("eval: unresolved variable")

// ErrUnresolvedFixpointVar is raised when a fixed-point body never
// actually depends on its own bound variable, i.e. the body doesn't wrap
// the name it binds.
var ErrUnresolvedFixpointVar = errors.New("eval: fixed-point body does not reference its bound variable")

// ErrTypeMismatch is raised when a cardinality comparator receives
// operands it cannot compare (caught defensively; the grammar already
// rules out most shapes of this at parse time).
var ErrTypeMismatch = errors.New("eval: cardinality comparator type mismatch")
