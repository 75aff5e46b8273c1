package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/arnegrid/qrobdd/lexer"
	"github.com/arnegrid/qrobdd/parser"
)

// reportSyntaxError prints a caret-annotated message for a lexer/parser
// failure, in the style of the kanso compiler's reportParseError, adapted
// to this module's own LexError/ParseError position types instead of a
// participle.Error.
func reportSyntaxError(src string, err error) {
	var pos lexer.Position
	switch cause := errors.Cause(err).(type) {
	case *lexer.LexError:
		pos = cause.Pos
	case *parser.ParseError:
		pos = cause.Pos
	default:
		color.Red("error: %s", err)
		return
	}

	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		color.Red("syntax error at unknown location: %s", err)
		return
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", pos.Col-1) + "^"

	color.Red("syntax error at line %d, column %d:", pos.Line, pos.Col)
	fmt.Println(line)
	color.HiRed(caret)
	fmt.Printf("-> %s\n", err)
}
