package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/xiam/edn/ast"
)

// ErrOddMap is returned when a map with an odd number of forms is converted
// to YAML.
var ErrOddMap = errors.New("map has an odd number of forms")

const (
	tagList = "!list"
	tagChar = "!char"
	tagSet  = "!!set"
)

// YAML converts a tree into a YAML document node. Vectors become sequences,
// lists become sequences tagged !list, sets become !!set mappings and tagged
// forms carry their tag as a local YAML tag.
func YAML(n *ast.Node) (*yaml.Node, error) {
	root, err := toYAML(n)
	if err != nil {
		return nil, err
	}
	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}, nil
}

func writeYAML(w io.Writer, nodes []*ast.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, node := range nodes {
		doc, err := YAML(node)
		if err != nil {
			return err
		}
		if err := enc.Encode(doc); err != nil {
			return err
		}
	}
	return enc.Close()
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func toYAML(n *ast.Node) (*yaml.Node, error) {
	switch n.Type() {
	case ast.NodeTypeNil:
		return scalar("!!null", "null"), nil
	case ast.NodeTypeBool:
		return scalar("!!bool", n.Text()), nil
	case ast.NodeTypeInt:
		return scalar("!!int", n.Text()), nil
	case ast.NodeTypeFloat:
		return scalar("!!float", n.Text()), nil
	case ast.NodeTypeString, ast.NodeTypeSymbol, ast.NodeTypeKeyword:
		return scalar("!!str", n.Text()), nil
	case ast.NodeTypeChar:
		return scalar(tagChar, n.Text()[1:]), nil

	case ast.NodeTypeList, ast.NodeTypeVector:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		if n.Type() == ast.NodeTypeList {
			seq.Tag = tagList
		}
		for _, child := range n.Children() {
			c, err := toYAML(child)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, c)
		}
		return seq, nil

	case ast.NodeTypeSet:
		set := &yaml.Node{Kind: yaml.MappingNode, Tag: tagSet}
		for _, child := range n.Children() {
			c, err := toYAML(child)
			if err != nil {
				return nil, err
			}
			set.Content = append(set.Content, c, scalar("!!null", ""))
		}
		return set, nil

	case ast.NodeTypeMap:
		if n.Len()%2 != 0 {
			return nil, fmt.Errorf("line %d: %w", n.Line(), ErrOddMap)
		}
		m := &yaml.Node{Kind: yaml.MappingNode}
		for _, child := range n.Children() {
			c, err := toYAML(child)
			if err != nil {
				return nil, err
			}
			m.Content = append(m.Content, c)
		}
		return m, nil

	case ast.NodeTypeTagged, ast.NodeTypeDiscard:
		inner, err := toYAML(n.Inner())
		if err != nil {
			return nil, err
		}
		tag := "!" + n.Tag()
		if inner.Tag == "" || strings.HasPrefix(inner.Tag, "!!") {
			inner.Tag = tag
			return inner, nil
		}
		// Nested tags keep the inner one on a single element sequence.
		return &yaml.Node{Kind: yaml.SequenceNode, Tag: tag, Content: []*yaml.Node{inner}}, nil
	}
	return nil, fmt.Errorf("unsupported node type %v", n.Type())
}
