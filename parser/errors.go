package parser

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/arnegrid/qrobdd/lexer"
)

// ParseError reports a grammar violation: what the parser expected to see
// at Pos, and what it actually found.
type ParseError struct {
	Pos      lexer.Position
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: expected %s, found %s", e.Pos, e.Expected, e.Found)
}

func newParseError(pos lexer.Position, expected, found string) error {
	return errors.WithStack(&ParseError{Pos: pos, Expected: expected, Found: found})
}
