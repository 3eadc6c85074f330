package ast

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const discardTag = "_"

var delimiters = map[NodeType][2]string{
	NodeTypeList:   {"(", ")"},
	NodeTypeVector: {"[", "]"},
	NodeTypeMap:    {"{", "}"},
	NodeTypeSet:    {"#{", "}"},
}

// Print displays a human-readable representation of a node
func Print(n *Node) {
	Fprint(os.Stdout, n)
}

// Fprint writes an indented tree of the node to w, one node per line.
func Fprint(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}
	switch {
	case n.IsScalar():
		fmt.Fprintf(w, "%s(%s): %q [%d]\n", indent, n.Type(), n.Text(), n.Line())

	default:
		fmt.Fprintf(w, "%s(%s) [%d]\n", indent, n.Type(), n.Line())
		for _, child := range n.Children() {
			printLevel(w, child, level+1)
		}
	}
}

// Encode transforms a node into text that reads back into an equal tree.
func Encode(n *Node) []byte {
	var b strings.Builder
	encodeNode(&b, n)
	return []byte(b.String())
}

func encodeNode(b *strings.Builder, n *Node) {
	if n == nil {
		b.WriteString("nil")
		return
	}
	switch {
	case n.IsCollection():
		d := delimiters[n.Type()]
		b.WriteString(d[0])
		for i, child := range n.Children() {
			if i > 0 {
				b.WriteByte(' ')
			}
			encodeNode(b, child)
		}
		b.WriteString(d[1])

	case n.Type().IsTagged():
		encodeTag(b, n)
		b.WriteByte(' ')
		encodeNode(b, n.Inner())

	case n.Type() == NodeTypeString:
		b.WriteByte('"')
		b.WriteString(escapeString(n.Text()))
		b.WriteByte('"')

	default:
		b.WriteString(n.Text())
	}
}

// encodeTag writes the "#tag" prefix of a tagged node. Tag names starting
// with "_" can only come from a quoted tag token, since "#_" is always cut
// from an atom, so they are written back quoted.
func encodeTag(b *strings.Builder, n *Node) {
	tag := n.Tag()
	if n.Type() == NodeTypeTagged && strings.HasPrefix(tag, discardTag) {
		b.WriteString(`"#`)
		b.WriteString(escapeString(tag))
		b.WriteByte('"')
		return
	}
	b.WriteByte('#')
	b.WriteString(tag)
}

// escapeString escapes backslashes and double quotes so the lexer restores
// the exact same content.
func escapeString(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

// Debug renders a node the way the reference console reader prints it:
// scalars as "<EdnInt 42>", strings in double quotes without escaping,
// tagged forms as "#<EdnSymbol tag> value". Sets use plain braces and can't
// be told apart from maps. Discard nodes have no rendering of their own and
// print as "<Other >".
func Debug(n *Node) string {
	if n == nil {
		return ""
	}
	switch {
	case n.IsCollection():
		vals := make([]string, 0, n.Len())
		for _, child := range n.Children() {
			vals = append(vals, Debug(child))
		}
		d := delimiters[n.Type()]
		if n.Type() == NodeTypeSet {
			d = delimiters[NodeTypeMap]
		}
		return d[0] + strings.Join(vals, " ") + d[1]

	case n.Type() == NodeTypeTagged:
		return "#" + Debug(n.Child(0)) + " " + Debug(n.Child(1))

	case n.Type() == NodeTypeString:
		return `"` + n.Text() + `"`
	}

	name, ok := nodeTypeDebugName[n.Type()]
	if !ok {
		name = "Other"
	}
	return "<" + name + " " + n.Text() + ">"
}
