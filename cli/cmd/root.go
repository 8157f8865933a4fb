package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jankeromnes/edgedb/sdlparser"
)

var (
	rootCmd = &cobra.Command{
		Use:          "sdltokens",
		Short:        "sdltokens",
		SilenceUsage: true,
		Long:         `CLI tool for inspecting and validating the token stream of schema definition (.esdl) files.`,
	}

	keywordsFile     string
	compiledKeywords *sdlparser.Keywords
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&keywordsFile, "keywords", "k", "", "path to a YAML file overriding the built-in keyword table")
	return rootCmd.Execute()
}

// lexerForFile builds a lexer over the file's contents, honoring the
// --keywords override.
func lexerForFile(path string) (*sdlparser.Lexer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if keywordsFile == "" {
		return sdlparser.New(sdlparser.FileRef(path), string(data)), nil
	}
	if compiledKeywords == nil {
		f, err := os.Open(keywordsFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		table, err := sdlparser.LoadKeywordTable(f)
		if err != nil {
			return nil, err
		}
		compiledKeywords = sdlparser.CompileKeywords(table)
	}
	return compiledKeywords.New(sdlparser.FileRef(path), string(data)), nil
}
