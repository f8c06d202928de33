package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/sor4chi/browser/domparser"
	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [file...]",
	Short: "Reformat documents",
	Long: "Parse each document and render it back out with normalized tag spacing. " +
		"With --write, files are rewritten in place instead of printed.",
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolP("write", "w", false, "Write the result back to the source file")
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	write, _ := cmd.Flags().GetBool("write")
	out := cmd.OutOrStdout()

	return forEachInput(cmd, args, func(name string, src []byte) error {
		nodes, err := domparser.Parse(src)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", displayName(name), err)
		}

		if !write || name == stdinName {
			return domparser.Render(out, nodes)
		}

		var buf bytes.Buffer
		if err := domparser.Render(&buf, nodes); err != nil {
			return err
		}
		if bytes.Equal(buf.Bytes(), src) {
			logrus.WithField("file", name).Debug("already formatted")
			return nil
		}

		info, err := os.Stat(name)
		if err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		if err := os.WriteFile(name, buf.Bytes(), info.Mode().Perm()); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		logrus.WithField("file", name).Info("reformatted")
		return nil
	})
}
