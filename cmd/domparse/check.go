package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/sor4chi/browser/domparser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Parse and lint documents",
	Long: "Parse each document and run the validation rules over it. Fails when a " +
		"document does not parse or has error diagnostics; with --strict, warnings fail too.",
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("strict", false, "Treat warnings as errors")
	_ = viper.BindPFlag("strict", checkCmd.Flags().Lookup("strict"))
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(viper.GetString("format"))
	if err != nil {
		return err
	}
	strict := viper.GetBool("strict")
	out := cmd.OutOrStdout()

	return forEachInput(cmd, args, func(name string, src []byte) error {
		nodes, err := domparser.Parse(src)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", displayName(name), err)
		}

		diags := domparser.Validate(nodes)
		if err := writeDiagnostics(out, format, displayName(name), diags); err != nil {
			return err
		}

		failing := countFailing(diags, strict)
		logrus.WithFields(logrus.Fields{
			"file":        displayName(name),
			"diagnostics": len(diags),
			"failing":     failing,
		}).Info("checked document")

		if failing > 0 {
			return fmt.Errorf("%s: %d failing diagnostic(s)", displayName(name), failing)
		}
		return nil
	})
}

func countFailing(diags []domparser.Diagnostic, strict bool) int {
	n := 0
	for _, d := range diags {
		if d.Severity == domparser.Error || (strict && d.Severity == domparser.Warning) {
			n++
		}
	}
	return n
}

type diagnosticView struct {
	File     string `json:"file" yaml:"file"`
	Rule     string `json:"rule" yaml:"rule"`
	Severity string `json:"severity" yaml:"severity"`
	Message  string `json:"message" yaml:"message"`
	Line     int    `json:"line,omitempty" yaml:"line,omitempty"`
	Column   int    `json:"column,omitempty" yaml:"column,omitempty"`
	Fix      string `json:"fix,omitempty" yaml:"fix,omitempty"`
}

func writeDiagnostics(w io.Writer, format outputFormat, file string, diags []domparser.Diagnostic) error {
	if format != formatText {
		views := make([]diagnosticView, len(diags))
		for i, d := range diags {
			views[i] = diagnosticView{
				File:     file,
				Rule:     d.Rule,
				Severity: d.Severity.String(),
				Message:  d.Message,
				Line:     d.Pos.Line,
				Column:   d.Pos.Column,
				Fix:      d.Fix,
			}
		}
		return encode(w, format, views)
	}

	for _, d := range diags {
		fmt.Fprintf(w, "%s: %s\n", file, d)
	}
	return nil
}
