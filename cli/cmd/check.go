package cmd

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	checkCmd = &cobra.Command{
		Use:   "check file...",
		Short: "Lex the given schema files and report lexical errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return errors.New("need at least one file argument")
			}
			logger := logrus.StandardLogger()
			failed := 0
			for _, path := range args {
				lexer, err := lexerForFile(path)
				if err != nil {
					return err
				}
				tokens, err := lexer.Lex()
				if err != nil {
					logger.WithField("file", path).Error(err)
					failed++
					continue
				}
				logger.WithFields(logrus.Fields{
					"file":   path,
					"tokens": len(tokens),
				}).Info("ok")
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(checkCmd)
}
