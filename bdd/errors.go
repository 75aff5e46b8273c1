package bdd

import (
	"github.com/pkg/errors"
)

// ErrResourceExhausted is returned (sticky, via Err/Errored) when the node
// table's soft cap (WithMaxNodes) is reached and no further nodes can be
// allocated.
var ErrResourceExhausted = errors.New("bdd: resource exhausted")

// ErrBadVariable is returned when a variable index or level falls outside
// [0, Varnum).
var ErrBadVariable = errors.New("bdd: variable index out of range")

// ErrBadOperator is returned when Apply is called with an operator it does
// not recognize.
var ErrBadOperator = errors.New("bdd: unknown operator")

// Err returns the error status of the store, or nil if there is none.
func (s *Store) Err() error {
	return s.err
}

// Errored reports whether a prior operation failed. Once set, it never
// clears: a Store with a sticky error should be discarded, not reused.
func (s *Store) Errored() bool {
	return s.err != nil
}

// fail records the first error seen by the store and logs it at debug level.
// Subsequent calls are folded into the original cause instead of overwriting
// it, mirroring the teacher's accumulating seterror.
func (s *Store) fail(cause error, format string, args ...interface{}) Handle {
	wrapped := errors.Wrapf(cause, format, args...)
	if s.err != nil {
		s.err = errors.Wrap(s.err, wrapped.Error())
	} else {
		s.err = wrapped
	}
	s.debugf("store error: %s", s.err)
	return False
}
