package main

import "errors"

// exitError pairs an error with the process exit code it should produce:
// 1 for user error (parse/type/IO), 2 for anything internal.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: 1, err: err}
}

func internalError(err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: 2, err: err}
}

// exitCodeFor maps a command's returned error to a process exit code: 0 if
// err is nil (the CLI may still report an unsatisfiable formula, which is
// not itself an error), 1 or 2 if it is tagged, 2 for anything untagged.
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 2
}
