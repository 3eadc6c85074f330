// Package edn reads a Lisp-like data notation made of lists, vectors, maps,
// sets, scalars and tagged literals into a parse tree.
//
// Reading happens in two stages: the lexer package turns text into tokens and
// the parser package turns tokens into an ast.Node tree. This package wraps
// both for the common case.
//
// A few behaviours are deliberate and stable:
//
//   - "#_ form" is kept in the tree as a discard node instead of being dropped.
//   - Symbols are checked before booleans, so true and false read as symbols.
//   - Only non-negative decimal integers are numbers; "-1" and "1.5" are errors.
//   - A ";" comment only ends the pending atom at the next newline unless
//     line comments are enabled in parser.Options.
package edn

import (
	"github.com/xiam/edn/ast"
	"github.com/xiam/edn/lexer"
	"github.com/xiam/edn/parser"
)

// Read parses the first form of text.
func Read(text string) (*ast.Node, error) {
	return parser.Parse([]byte(text))
}

// ReadAll parses every top-level form of text.
func ReadAll(text string) ([]*ast.Node, error) {
	return parser.ParseAll([]byte(text))
}

// Tokenize returns the tokens of text.
func Tokenize(text string) []lexer.Token {
	return lexer.Tokenize([]byte(text))
}
