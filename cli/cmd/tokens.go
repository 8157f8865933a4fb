package cmd

import (
	"errors"
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"
)

var (
	tokensCmd = &cobra.Command{
		Use:   "tokens file...",
		Short: "Dump the token stream of the given schema files to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return errors.New("need at least one file argument")
			}
			for _, path := range args {
				lexer, err := lexerForFile(path)
				if err != nil {
					return err
				}
				tokens, err := lexer.Lex()
				if err != nil {
					return err
				}
				for _, tok := range tokens {
					fmt.Printf("%s:%d:%d: %s %s\n",
						tok.Start.File, tok.Start.Line, tok.Start.Col,
						tok.Type, repr.String(tok.Value))
				}
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(tokensCmd)
}
