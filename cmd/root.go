package cmd

import (
	"fmt"
	"io"
	"os"

	"h2i/internal/errors"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X h2i/cmd.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "h2i <number>",
		Short: "Convert a number between hexadecimal and decimal",
		Long: `h2i converts a single number between hexadecimal and decimal.
A hex literal prefixed with 0x is printed in decimal; a plain decimal
number is printed in uppercase hex with a 0X prefix.

  number    Either a hex number like 0x0A or a positive integer like 10`,
		Example: `  h2i 0x1A    # prints 26
  h2i 26      # prints 0X1A`,
		Version:       version,
		Args:          exactlyOneNumber,
		RunE:          runConvert,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.NewUsageError(err.Error(), err)
	})

	return cmd
}

func exactlyOneNumber(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return errors.NewUsageError(err.Error(), err)
	}
	return nil
}

// Execute runs the root command against the process arguments and exits
// with the resulting status code.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command with explicit arguments and streams and returns
// the process exit code. Usage errors are followed by the usage text.
func run(args []string, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err.Error())
		if errors.IsUsage(err) {
			fmt.Fprint(stderr, cmd.UsageString())
		}
		return 1
	}
	return 0
}
