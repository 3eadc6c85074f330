package main

import (
	"log"

	"github.com/xiam/edn/ast"
	"github.com/xiam/edn/parser"
)

func main() {
	input := `{:name "ada" :langs [go lisp] :born #inst "1815" :tags #{math poetry}}`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(root)
}
