package parser

import (
	"errors"
	"fmt"
)

// Errors returned by the parser. Use errors.Is to match them against the
// *Error values returned by Parse.
var (
	ErrEmptyInput           = errors.New("no parsable tokens found")
	ErrUnexpectedEOF        = errors.New("unexpected end of input")
	ErrUnexpectedToken      = errors.New("unexpected token")
	ErrExpectedMapAfterHash = errors.New("expected a map after hash to build a set")
	ErrInvalidTagName       = errors.New("invalid tag name")
	ErrUnrecognizedAtom     = errors.New("could not parse atom")
	ErrMaxDepthExceeded     = errors.New("maximum nesting depth exceeded")
)

// Error describes a parse failure and the token that caused it.
type Error struct {
	Err  error
	Text string
	Line int
}

func (e *Error) Error() string {
	if e.Line == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(err error, text string, line int) *Error {
	return &Error{Err: err, Text: text, Line: line}
}
