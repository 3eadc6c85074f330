package ast

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNotScalar is returned when a Go value is requested from a node that is
// not a scalar.
var ErrNotScalar = errors.New("node is not a scalar")

// Keyword is the Go value of a keyword node, without the leading colon.
type Keyword string

func (k Keyword) String() string {
	return ":" + string(k)
}

// Symbol is the Go value of a symbol node.
type Symbol string

func (s Symbol) String() string {
	return string(s)
}

// Value converts a scalar node into a Go value:
//
//	nil     -> nil
//	bool    -> bool
//	int     -> int64
//	string  -> string
//	keyword -> Keyword
//	symbol  -> Symbol
//	char    -> rune
func (n *Node) Value() (interface{}, error) {
	switch n.nt {
	case NodeTypeNil:
		return nil, nil
	case NodeTypeBool:
		return n.text == "true", nil
	case NodeTypeInt:
		i64, err := strconv.ParseInt(n.text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n.line, err)
		}
		return i64, nil
	case NodeTypeFloat:
		f64, err := strconv.ParseFloat(n.text, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n.line, err)
		}
		return f64, nil
	case NodeTypeString:
		return n.text, nil
	case NodeTypeKeyword:
		return Keyword(n.text[1:]), nil
	case NodeTypeSymbol:
		return Symbol(n.text), nil
	case NodeTypeChar:
		return rune(n.text[1]), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrNotScalar, n.nt)
}
