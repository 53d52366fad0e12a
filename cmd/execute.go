// Package cmd implements the h2i command-line interface.
// It validates the invocation, hands the argument to the parser and prints
// the converted value through the formatter.
package cmd

import (
	"h2i/internal/format"
	"h2i/internal/parser"

	"github.com/spf13/cobra"
)

func runConvert(cmd *cobra.Command, args []string) error {
	out, err := parser.Parse(args[0])
	if err != nil {
		return err
	}

	return format.Write(cmd.OutOrStdout(), out)
}
