package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xiam/edn/lexer"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file...]",
		Short: "Print the tokens of the input, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{stdinName}
			}
			opts := lexer.Options{LineComments: a.cfg.Reader.LineComments}

			w := cmd.OutOrStdout()
			for _, name := range args {
				data, err := readInput(cmd.InOrStdin(), name)
				if err != nil {
					return err
				}
				for _, tok := range lexer.TokenizeWithOptions(data, opts) {
					fmt.Fprintln(w, tok.String())
				}
			}
			return nil
		},
	}
}
