package ast

import (
	"fmt"
)

// Node represents an element of the parse tree. Nodes are built once by the
// parser and never modified afterwards; each node owns its children.
type Node struct {
	nt   NodeType
	line int
	text string

	children []*Node
}

func newNode(nt NodeType, line int, text string, children []*Node) *Node {
	return &Node{
		nt:       nt,
		line:     line,
		text:     text,
		children: children,
	}
}

// NewScalar creates and returns a scalar node holding the literal text of an
// atom (or the de-escaped content of a string).
func NewScalar(nt NodeType, text string, line int) *Node {
	if !nt.IsScalar() {
		panic(fmt.Sprintf("ast: %v is not a scalar type", nt))
	}
	return newNode(nt, line, text, nil)
}

// NewCollection creates and returns a list, vector, map or set node.
func NewCollection(nt NodeType, line int, children []*Node) *Node {
	if !nt.IsCollection() {
		panic(fmt.Sprintf("ast: %v is not a collection type", nt))
	}
	if children == nil {
		children = []*Node{}
	}
	return newNode(nt, line, "", children)
}

// NewTagged creates and returns a tagged or discard node. The tag name is
// stored as a symbol node in front of the tagged value.
func NewTagged(nt NodeType, line int, tag string, value *Node) *Node {
	if !nt.IsTagged() {
		panic(fmt.Sprintf("ast: %v is not a tagged type", nt))
	}
	return newNode(nt, line, "", []*Node{
		NewScalar(NodeTypeSymbol, tag, line),
		value,
	})
}

// Type returns the type of the node
func (n *Node) Type() NodeType {
	return n.nt
}

// Line returns the source line the node was read from
func (n *Node) Line() int {
	return n.line
}

// Text returns the literal text of a scalar node
func (n *Node) Text() string {
	return n.text
}

// Children returns all the children elements of the node. The returned slice
// must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Len returns the number of children
func (n *Node) Len() int {
	return len(n.children)
}

// Child returns the i-th child
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

// Tag returns the tag name of a tagged or discard node.
func (n *Node) Tag() string {
	if !n.nt.IsTagged() {
		return ""
	}
	return n.children[0].text
}

// Inner returns the value wrapped by a tagged or discard node.
func (n *Node) Inner() *Node {
	if !n.nt.IsTagged() {
		return nil
	}
	return n.children[1]
}

// IsScalar returns true if the node is a scalar
func (n *Node) IsScalar() bool {
	return n.nt.IsScalar()
}

// IsCollection returns true if the node is a list, vector, map or set
func (n *Node) IsCollection() bool {
	return n.nt.IsCollection()
}

// Equal compares two trees by type, text and children. Line numbers are
// ignored.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.nt != o.nt || n.text != o.text || len(n.children) != len(o.children) {
		return false
	}
	for i := range n.children {
		if !n.children[i].Equal(o.children[i]) {
			return false
		}
	}
	return true
}

func (n *Node) String() string {
	if n.nt.IsScalar() {
		return fmt.Sprintf("(%v): %v", n.nt, n.text)
	}
	return fmt.Sprintf("(%v)[%d]", n.nt, len(n.children))
}
