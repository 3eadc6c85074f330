package lexer

const (
	escapeChar    = '\\'
	commentChar   = ';'
	quoteChar     = '"'
	discardMarker = "#_"
)

// Options changes the way the lexer treats its input.
type Options struct {
	// LineComments drops every character between an unescaped ";" and the
	// end of the line. When false, a comment only affects the newline that
	// ends it and the characters in between are tokenized as usual.
	LineComments bool
}

// Lexer represents a lexical analyzer. A Lexer scans a single buffer and is
// not safe for concurrent use; independent lexers share nothing.
type Lexer struct {
	in   []byte
	opts Options

	tokens []Token

	buf []byte
	str []byte

	line int

	inString  bool
	inComment bool
	escaping  bool
}

// New initializes a Lexer object
func New(in []byte) *Lexer {
	return &Lexer{
		in:     in,
		tokens: []Token{},
		buf:    []byte{},
		str:    []byte{},
		line:   1,
	}
}

// SetOptions replaces the lexer options. It must be called before Scan.
func (lx *Lexer) SetOptions(opts Options) {
	lx.opts = opts
}

// Tokens returns the tokens detected so far.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Scan reads the whole input and returns every token found in it. Scan never
// fails: malformed input produces whatever tokens the scanner naturally
// emits and it is up to the parser to reject them.
func (lx *Lexer) Scan() []Token {
	for _, c := range lx.in {
		lx.step(c)
		if isNewLine(c) {
			lx.line++
		}
	}
	lx.flush()
	return lx.tokens
}

// step feeds one character to the scanner. Tokens flushed by a newline
// belong to the line that newline ends.
func (lx *Lexer) step(c byte) {
	if !lx.inString && !lx.escaping && c == commentChar && !lx.inComment {
		if lx.opts.LineComments {
			lx.flush()
		}
		lx.inComment = true
	}

	if lx.inComment {
		if c == '\n' {
			lx.inComment = false
			lx.flush()
			return
		}
		if lx.opts.LineComments {
			return
		}
	}

	if c == quoteChar && !lx.escaping {
		if lx.inString {
			lx.emit(TokenString, string(lx.str))
			lx.inString = false
		} else {
			lx.str = lx.str[0:0]
			lx.inString = true
		}
		return
	}

	if lx.inString {
		lx.stepString(c)
		return
	}

	if isSeparator(c) {
		lx.flush()
		return
	}

	if tt, ok := delimiterType(c); ok {
		lx.flush()
		lx.emit(tt, string(c))
		return
	}

	lx.stepAtom(c)
}

func (lx *Lexer) stepString(c byte) {
	if c == escapeChar && !lx.escaping {
		lx.escaping = true
		return
	}

	if lx.escaping {
		lx.escaping = false
		if isVerbatimEscape(c) {
			lx.str = append(lx.str, escapeChar)
		}
	}

	lx.str = append(lx.str, c)
}

func (lx *Lexer) stepAtom(c byte) {
	if lx.escaping {
		lx.escaping = false
	} else if c == escapeChar {
		lx.escaping = true
	}

	lx.buf = append(lx.buf, c)

	// "#_" never absorbs the character that follows it.
	if string(lx.buf) == discardMarker {
		lx.flush()
	}
}

// flush emits the pending atom, if any.
func (lx *Lexer) flush() {
	if len(lx.buf) == 0 {
		return
	}
	lx.emit(TokenAtom, string(lx.buf))
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) emit(tt TokenType, text string) {
	lx.tokens = append(lx.tokens, NewToken(tt, text, lx.line))
}

// Tokenize takes an array of bytes and returns all the tokens within it.
func Tokenize(in []byte) []Token {
	return New(in).Scan()
}

// TokenizeWithOptions is like Tokenize but uses the given options.
func TokenizeWithOptions(in []byte, opts Options) []Token {
	lx := New(in)
	lx.SetOptions(opts)
	return lx.Scan()
}
