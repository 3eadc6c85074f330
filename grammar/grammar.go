// Package grammar classifies the literal text of an atom into one of the
// scalar node types.
//
// Classification tries each predicate in a fixed order and keeps the first
// match. The symbol predicate accepts most alphabetic text, so spellings such
// as "true" or "false" are read as symbols and never reach IsBool. That order
// is part of the grammar and must not be rearranged.
package grammar

import (
	"strings"

	"github.com/xiam/edn/ast"
)

const (
	digits       = "0123456789"
	letters      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	symbolChars  = digits + letters + ".*+!-_?$%&=:#/"
	symbolBanned = ":#/"
	signChars    = "-+."
)

// IsNil returns true if text is the nil literal.
func IsNil(text string) bool {
	return text == "nil"
}

// IsSymbol returns true if text is a valid symbol name.
func IsSymbol(text string) bool {
	if text == "" {
		return false
	}

	// ASCII only, letters in either case.
	if !allIn(text, symbolChars) {
		return false
	}

	if firstIn(text, digits) {
		return false
	}

	// "/" alone is a valid symbol.
	if firstIn(text, symbolBanned) && text != "/" {
		return false
	}

	if firstIn(text, signChars) && len(text) > 1 && strings.IndexByte(digits, text[1]) >= 0 {
		return false
	}

	return true
}

// IsKeyword returns true if text is a colon followed by a valid symbol.
func IsKeyword(text string) bool {
	return strings.HasPrefix(text, ":") && IsSymbol(text[1:])
}

// IsChar returns true if text is a backslash followed by exactly one character.
func IsChar(text string) bool {
	return len(text) == 2 && text[0] == '\\'
}

// IsBool returns true if text is either "true" or "false".
func IsBool(text string) bool {
	return text == "true" || text == "false"
}

// IsInt returns true if text is made only of decimal digits. Signs are not
// part of the integer grammar.
func IsInt(text string) bool {
	return text != "" && allIn(text, digits)
}

// IsFloat always returns false: floating point literals are not recognized.
func IsFloat(text string) bool {
	return false
}

// Classify returns the node type of an atom. Quoted strings are always
// strings, unless their content is the nil literal. The second return value
// is false if no predicate matches.
func Classify(text string, quoted bool) (ast.NodeType, bool) {
	switch {
	case IsNil(text):
		return ast.NodeTypeNil, true
	case quoted:
		return ast.NodeTypeString, true
	case IsKeyword(text):
		return ast.NodeTypeKeyword, true
	case IsSymbol(text):
		return ast.NodeTypeSymbol, true
	case IsChar(text):
		return ast.NodeTypeChar, true
	case IsBool(text):
		return ast.NodeTypeBool, true
	case IsInt(text):
		return ast.NodeTypeInt, true
	case IsFloat(text):
		return ast.NodeTypeFloat, true
	}
	return ast.NodeTypeInvalid, false
}

func allIn(s string, set string) bool {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(set, s[i]) < 0 {
			return false
		}
	}
	return true
}

func firstIn(s string, set string) bool {
	return s != "" && strings.IndexByte(set, s[0]) >= 0
}
