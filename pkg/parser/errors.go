package parser

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// ParseError is returned for any malformed input, whether the problem was
// found while tokenizing or while parsing. It satisfies participle's Error
// interface so callers can treat both the same way.
type ParseError struct {
	Msg string
	Pos lexer.Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// Message returns the error message without the position.
func (e *ParseError) Message() string { return e.Msg }

// Position returns where in the input the error occurred.
func (e *ParseError) Position() lexer.Position { return e.Pos }

func errorf(pos lexer.Position, format string, args ...any) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}
