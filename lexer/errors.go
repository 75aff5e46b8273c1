package lexer

import (
	"fmt"

	"github.com/pkg/errors"
)

// LexError reports an illegal character or an unterminated comment, with
// the 1-based position it occurred at.
type LexError struct {
	Pos Position
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func newLexError(pos Position, format string, args ...interface{}) error {
	return errors.WithStack(&LexError{Pos: pos, Msg: fmt.Sprintf(format, args...)})
}
