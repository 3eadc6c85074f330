package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/edn/ast"
	"github.com/xiam/edn/parser"
)

func printTree(node *ast.Node) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node *ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if !node.IsScalar() {
		fmt.Printf("%s<%s>\n", indent, node.Type())
		for _, child := range node.Children() {
			printIndentedTree(child, indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, node.Type())
		return
	}
	value, err := node.Value()
	if err != nil {
		log.Fatal("node.Value:", err)
	}
	fmt.Printf("%s<%s>%v</%s>\n", indent, node.Type(), value, node.Type())
}

func main() {
	input := `(fn_a (fn_b [89 :A :B [67 \c]]) #point {:x 1 :y 2} (fn_c 66 3 53 "Hello world!"))`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	printTree(root)
}
