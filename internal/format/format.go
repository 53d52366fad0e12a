// Package format renders a parsed number in the direction its Kind asks for.
package format

import (
	"fmt"
	"io"
	"strconv"

	"h2i/internal/errors"
	"h2i/internal/parser"
)

// String renders out without a trailing newline. ToDecimal values are plain
// base-10 digits; ToHex values are uppercase base-16 digits prefixed "0X".
// An unknown Kind renders as the empty string.
func String(out parser.Output) string {
	switch out.Kind {
	case parser.ToDecimal:
		return strconv.FormatUint(out.Value, 10)
	case parser.ToHex:
		return fmt.Sprintf("%#X", out.Value)
	default:
		return ""
	}
}

// Write prints out followed by a newline. An unknown Kind is rejected
// without writing anything.
func Write(w io.Writer, out parser.Output) error {
	if out.Kind != parser.ToDecimal && out.Kind != parser.ToHex {
		return errors.NewOutputError(fmt.Sprintf("unknown output kind %s", out.Kind), nil)
	}

	if _, err := fmt.Fprintln(w, String(out)); err != nil {
		return errors.NewOutputError("failed to write result", err)
	}
	return nil
}
