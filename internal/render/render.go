// Package render writes parse trees in the output formats of the console
// reader.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/xiam/edn/ast"
	"github.com/xiam/edn/internal/config"
)

// ErrUnknownFormat is returned for unsupported output formats.
var ErrUnknownFormat = errors.New("unknown output format")

// Render writes every node to w using format.
func Render(w io.Writer, nodes []*ast.Node, format string) error {
	switch format {
	case config.FormatYAML:
		return writeYAML(w, nodes)

	case config.FormatDebug, config.FormatEDN, config.FormatTree:
		for _, node := range nodes {
			if err := renderNode(w, node, format); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func renderNode(w io.Writer, node *ast.Node, format string) error {
	var err error
	switch format {
	case config.FormatDebug:
		_, err = fmt.Fprintln(w, ast.Debug(node))
	case config.FormatEDN:
		_, err = fmt.Fprintf(w, "%s\n", ast.Encode(node))
	case config.FormatTree:
		ast.Fprint(w, node)
	}
	return err
}
