package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string

	line int
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, lexeme string, line int) Token {
	return Token{
		tt:     tt,
		lexeme: lexeme,
		line:   line,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Line returns the 1-based line on which the lexical unit ended
func (t Token) Line() int {
	return t.line
}

// Text returns the raw text of the lexical unit. For strings this is the
// de-escaped content without the surrounding quotes.
func (t Token) Text() string {
	return t.lexeme
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d])", t.tt, t.lexeme, t.line)
}
