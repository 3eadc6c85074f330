package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid     TokenType = iota
	TokenOpenList              // Open parenthesis: "("
	TokenCloseList             // Close parenthesis: ")"
	TokenOpenVector            // Open square bracket: "["
	TokenCloseVector           // Close square bracket: "]"
	TokenOpenMap               // Open curly bracket: "{"
	TokenCloseMap              // Close curly bracket: "}"
	TokenAtom                  // Any run of characters outside strings and delimiters
	TokenString                // De-escaped contents of a quoted string
)

var tokenValues = map[TokenType][]byte{
	TokenOpenList:    []byte{'('},
	TokenCloseList:   []byte{')'},
	TokenOpenVector:  []byte{'['},
	TokenCloseVector: []byte{']'},
	TokenOpenMap:     []byte{'{'},
	TokenCloseMap:    []byte{'}'},
}

var tokenNames = map[TokenType]string{
	TokenInvalid:     "invalid",
	TokenOpenList:    "open_list",
	TokenCloseList:   "close_list",
	TokenOpenVector:  "open_vector",
	TokenCloseVector: "close_vector",
	TokenOpenMap:     "open_map",
	TokenCloseMap:    "close_map",
	TokenAtom:        "atom",
	TokenString:      "string",
}

var closers = map[TokenType]TokenType{
	TokenOpenList:   TokenCloseList,
	TokenOpenVector: TokenCloseVector,
	TokenOpenMap:    TokenCloseMap,
}

var delimiters = []TokenType{
	TokenOpenList, TokenCloseList,
	TokenOpenVector, TokenCloseVector,
	TokenOpenMap, TokenCloseMap,
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// IsDelimiter returns true for the six bracket token types.
func (tt TokenType) IsDelimiter() bool {
	return len(tokenValues[tt]) > 0
}

// IsOpen returns true if the token type opens a collection.
func (tt TokenType) IsOpen() bool {
	_, ok := closers[tt]
	return ok
}

// IsClose returns true if the token type closes a collection.
func (tt TokenType) IsClose() bool {
	return tt.IsDelimiter() && !tt.IsOpen()
}

// Closer returns the token type that closes a collection opened by tt, or
// TokenInvalid if tt does not open a collection.
func (tt TokenType) Closer() TokenType {
	if v, ok := closers[tt]; ok {
		return v
	}
	return TokenInvalid
}

func isTokenType(tt TokenType) func(c byte) bool {
	return func(c byte) bool {
		for _, v := range tokenValues[tt] {
			if v == c {
				return true
			}
		}
		return false
	}
}

func delimiterType(c byte) (TokenType, bool) {
	for _, tt := range delimiters {
		if isTokenType(tt)(c) {
			return tt, true
		}
	}
	return TokenInvalid, false
}

func isNewLine(c byte) bool {
	return c == '\n' || c == '\r'
}

func isSeparator(c byte) bool {
	return c == ' ' || c == '\t' || isNewLine(c)
}

// isVerbatimEscape reports whether the escape sequence is kept with its
// backslash inside string contents.
func isVerbatimEscape(c byte) bool {
	return c == 't' || c == 'n' || c == 'f' || c == 'r'
}
