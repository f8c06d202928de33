package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/sor4chi/browser/domparser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file...]",
	Short: "Print the token stream of documents",
	Long: "Tokenize each document and print its tokens. On a tokenizer error the " +
		"tokens scanned before the error are still printed.",
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(viper.GetString("format"))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	return forEachInput(cmd, args, func(name string, src []byte) error {
		tokens, tokErr := domparser.Tokenize(src)
		logrus.WithFields(logrus.Fields{"file": displayName(name), "tokens": len(tokens)}).Info("tokenized document")

		if format != formatText {
			if err := encode(out, format, toTokenViews(tokens)); err != nil {
				return err
			}
		} else {
			for _, tok := range tokens {
				fmt.Fprintf(out, "%-8s %s\n", tok.Pos, tok)
			}
		}

		if tokErr != nil {
			return fmt.Errorf("tokenizing %s: %w", displayName(name), tokErr)
		}
		return nil
	})
}
