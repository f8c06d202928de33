package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const stdinName = "-"

// inputNames returns the files named on the command line, or stdin when
// there are none.
func inputNames(args []string) []string {
	if len(args) == 0 {
		return []string{stdinName}
	}
	return args
}

func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	var (
		src []byte
		err error
	)
	if name == stdinName {
		src, err = io.ReadAll(cmd.InOrStdin())
	} else {
		src, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", displayName(name), err)
	}
	logrus.WithFields(logrus.Fields{"file": displayName(name), "bytes": len(src)}).Debug("read input")
	return src, nil
}

func displayName(name string) string {
	if name == stdinName {
		return "<stdin>"
	}
	return name
}

// forEachInput runs fn over every input and keeps going after failures. The
// failures are returned together.
func forEachInput(cmd *cobra.Command, args []string, fn func(name string, src []byte) error) error {
	var result *multierror.Error
	for _, name := range inputNames(args) {
		src, err := readInput(cmd, name)
		if err == nil {
			err = fn(name, src)
		}
		if err != nil {
			logrus.WithField("file", displayName(name)).WithError(err).Info("input failed")
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
