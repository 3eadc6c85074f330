package main

import (
	"fmt"

	"github.com/xiam/edn/lexer"
)

func main() {
	input := `
		{:user/name "ada" ; comment
		 :langs [go lisp #_ cobol]
		 :tags #{\a \b}}
	`

	tokens := lexer.Tokenize([]byte(input))

	for i, tok := range tokens {
		fmt.Printf("token[%d] (type: %v, line: %d)\n\t-> %q\n\n", i, tok.Type(), tok.Line(), tok.Text())
	}
}
