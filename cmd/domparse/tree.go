package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/sor4chi/browser/domparser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var treeCmd = &cobra.Command{
	Use:   "tree [file...]",
	Short: "Parse documents and print their node trees",
	Long:  "Parse each document (stdin when no file is given) and print the resulting node tree.",
	RunE:  runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(viper.GetString("format"))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	multiple := len(args) > 1

	return forEachInput(cmd, args, func(name string, src []byte) error {
		nodes, err := domparser.Parse(src)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", displayName(name), err)
		}
		logrus.WithFields(logrus.Fields{
			"file":  displayName(name),
			"roots": len(nodes),
			"depth": domparser.Depth(nodes),
		}).Info("parsed document")

		if format != formatText {
			return encode(out, format, toNodeViews(nodes))
		}
		if multiple {
			fmt.Fprintf(out, "== %s ==\n", displayName(name))
		}
		return domparser.Dump(out, nodes)
	})
}
