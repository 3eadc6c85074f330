package parser

import (
	"strings"

	"github.com/xiam/edn/ast"
	"github.com/xiam/edn/grammar"
	"github.com/xiam/edn/lexer"
)

const (
	tagPrefix  = "#"
	discardTag = "_"
)

var collectionTypes = map[lexer.TokenType]ast.NodeType{
	lexer.TokenOpenList:   ast.NodeTypeList,
	lexer.TokenOpenVector: ast.NodeTypeVector,
	lexer.TokenOpenMap:    ast.NodeTypeMap,
}

// Options changes the behaviour of the parser.
type Options struct {
	// MaxDepth limits how deep collections and tagged forms can be nested. Zero
	// means no limit.
	MaxDepth int

	// LineComments enables strict line comments in the lexer.
	LineComments bool
}

// Parser is a recursive descent reader over the tokens of a single input.
// A Parser is not safe for concurrent use, but independent parsers share no
// state.
type Parser struct {
	in   []byte
	opts Options

	tokens []lexer.Token
	pos    int
	depth  int
}

// New creates a parser for the given input.
func New(in []byte) *Parser {
	return &Parser{in: in}
}

// SetOptions replaces the parser options.
func (p *Parser) SetOptions(opts Options) {
	p.opts = opts
}

func (p *Parser) reset() error {
	p.tokens = lexer.TokenizeWithOptions(p.in, lexer.Options{
		LineComments: p.opts.LineComments,
	})
	p.pos = 0
	p.depth = 0

	if len(p.tokens) == 0 {
		return newError(ErrEmptyInput, "", 0)
	}
	return nil
}

// Parse reads the first form of the input. Tokens after the first form are
// ignored.
func (p *Parser) Parse() (*ast.Node, error) {
	if err := p.reset(); err != nil {
		return nil, err
	}
	tok, _ := p.next()
	return p.readForm(tok)
}

// ParseAll reads every top-level form of the input, in order.
func (p *Parser) ParseAll() ([]*ast.Node, error) {
	if err := p.reset(); err != nil {
		return nil, err
	}
	nodes := []*ast.Node{}
	for {
		tok, ok := p.next()
		if !ok {
			return nodes, nil
		}
		node, err := p.readForm(tok)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
}

func (p *Parser) next() (lexer.Token, bool) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{}, false
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, true
}

func (p *Parser) enter(tok lexer.Token) error {
	p.depth++
	if p.opts.MaxDepth > 0 && p.depth > p.opts.MaxDepth {
		return newError(ErrMaxDepthExceeded, tok.Text(), tok.Line())
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) readForm(tok lexer.Token) (*ast.Node, error) {
	tt := tok.Type()

	switch {
	case tt.IsOpen():
		return p.readCollection(tok)

	case tt.IsClose():
		return nil, newError(ErrUnexpectedToken, tok.Text(), tok.Line())

	case strings.HasPrefix(tok.Text(), tagPrefix):
		return p.readTagged(tok)

	default:
		return readAtom(tok)
	}
}

// readCollection reads child forms until the delimiter that closes tok.
func (p *Parser) readCollection(tok lexer.Token) (*ast.Node, error) {
	if err := p.enter(tok); err != nil {
		return nil, err
	}
	defer p.leave()

	closer := tok.Type().Closer()
	children := []*ast.Node{}

	for {
		next, ok := p.next()
		if !ok {
			return nil, newError(ErrUnexpectedEOF, tok.Text(), tok.Line())
		}

		if next.Is(closer) {
			return ast.NewCollection(collectionTypes[tok.Type()], tok.Line(), children), nil
		}

		child, err := p.readForm(next)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
}

// readTagged reads the form that follows a "#tag" token and wraps it.
func (p *Parser) readTagged(tok lexer.Token) (*ast.Node, error) {
	if err := p.enter(tok); err != nil {
		return nil, err
	}
	defer p.leave()

	next, ok := p.next()
	if !ok {
		return nil, newError(ErrUnexpectedEOF, tok.Text(), tok.Line())
	}

	value, err := p.readForm(next)
	if err != nil {
		return nil, err
	}

	tagName := strings.TrimPrefix(tok.Text(), tagPrefix)

	switch tagName {
	case discardTag:
		// The discarded form stays in the tree.
		return ast.NewTagged(ast.NodeTypeDiscard, tok.Line(), discardTag, value), nil

	case "":
		if value.Type() != ast.NodeTypeMap {
			return nil, newError(ErrExpectedMapAfterHash, tok.Text(), tok.Line())
		}
		return ast.NewCollection(ast.NodeTypeSet, tok.Line(), value.Children()), nil
	}

	if !grammar.IsSymbol(tagName) {
		return nil, newError(ErrInvalidTagName, tok.Text(), tok.Line())
	}
	return ast.NewTagged(ast.NodeTypeTagged, tok.Line(), tagName, value), nil
}

func readAtom(tok lexer.Token) (*ast.Node, error) {
	nt, ok := grammar.Classify(tok.Text(), tok.Is(lexer.TokenString))
	if !ok {
		return nil, newError(ErrUnrecognizedAtom, tok.Text(), tok.Line())
	}
	return ast.NewScalar(nt, tok.Text(), tok.Line()), nil
}

// Parse reads the first form of the given input.
func Parse(in []byte) (*ast.Node, error) {
	return New(in).Parse()
}

// ParseAll reads every top-level form of the given input.
func ParseAll(in []byte) ([]*ast.Node, error) {
	return New(in).ParseAll()
}

// ParseWithOptions reads the first form of the given input using opts.
func ParseWithOptions(in []byte, opts Options) (*ast.Node, error) {
	p := New(in)
	p.SetOptions(opts)
	return p.Parse()
}
