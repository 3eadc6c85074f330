package main

import (
	"os"

	"github.com/xiam/edn/cmd/ednread/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
