// Package parser classifies a numeric literal and evaluates it.
// A literal starting with "0x" is read as hexadecimal; anything else must be
// a plain run of decimal digits. The direction of the conversion follows
// from which form matched.
package parser

import (
	stderrors "errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"h2i/internal/errors"
)

// HexPrefix marks a hexadecimal literal. Only the lowercase form is accepted.
const HexPrefix = "0x"

// Kind tags which conversion an Output requests.
type Kind int

const (
	// ToDecimal means the input was hexadecimal and should be printed in base 10.
	ToDecimal Kind = iota
	// ToHex means the input was decimal and should be printed in base 16.
	ToHex
)

func (k Kind) String() string {
	switch k {
	case ToDecimal:
		return "to-decimal"
	case ToHex:
		return "to-hex"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Output is the parsed value together with the conversion to apply to it.
type Output struct {
	Kind  Kind
	Value uint64
}

// hexDigits maps a byte to its hex digit value, or -1 if it is not a digit.
var hexDigits = func() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = int8(c - '0')
	}
	for c := 'A'; c <= 'F'; c++ {
		t[c] = int8(c - 'A' + 10)
		t[c+('a'-'A')] = int8(c - 'A' + 10)
	}
	return t
}()

// HexDigitValue returns the value of a single hex digit. Both cases of
// A-F are accepted.
func HexDigitValue(c byte) (uint64, bool) {
	v := hexDigits[c]
	if v < 0 {
		return 0, false
	}
	return uint64(v), true
}

// Parse classifies input and evaluates it. The whole input must match either
// the hex form ("0x" followed by hex digits) or the decimal form (decimal
// digits only).
func Parse(input string) (Output, error) {
	if input == "" {
		return Output{}, errors.NewParseError(input, "empty input", nil)
	}

	if digits, ok := strings.CutPrefix(input, HexPrefix); ok {
		n, err := parseHex(input, digits)
		if err != nil {
			return Output{}, err
		}
		return Output{Kind: ToDecimal, Value: n}, nil
	}

	n, err := parseDecimal(input, input)
	if err != nil {
		return Output{}, err
	}
	return Output{Kind: ToHex, Value: n}, nil
}

// ParseHex evaluates a bare run of hex digits (no prefix) as a positional
// base-16 number.
func ParseHex(digits string) (uint64, error) {
	return parseHex(digits, digits)
}

// ParseDecimal evaluates a bare run of decimal digits.
func ParseDecimal(digits string) (uint64, error) {
	return parseDecimal(digits, digits)
}

func parseHex(input, digits string) (uint64, error) {
	if digits == "" {
		return 0, errors.NewParseError(input, "missing hex digits after 0x", nil)
	}

	for i := 0; i < len(digits); i++ {
		if _, ok := HexDigitValue(digits[i]); !ok {
			return 0, errors.NewParseError(input, fmt.Sprintf("invalid hex digit %q", digits[i]), nil)
		}
	}

	var n uint64
	for i := 0; i < len(digits); i++ {
		if n > math.MaxUint64>>4 {
			return 0, errors.NewOverflowError(input, nil)
		}
		d, _ := HexDigitValue(digits[i])
		n = n<<4 | d
	}
	return n, nil
}

func parseDecimal(input, digits string) (uint64, error) {
	if digits == "" {
		return 0, errors.NewParseError(input, "empty input", nil)
	}

	for i := 0; i < len(digits); i++ {
		if c := digits[i]; c < '0' || c > '9' {
			return 0, errors.NewParseError(input,
				fmt.Sprintf("not a hex literal (0x...) or decimal number: unexpected %q", c), nil)
		}
	}

	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		if stderrors.Is(err, strconv.ErrRange) {
			return 0, errors.NewOverflowError(input, err)
		}
		return 0, errors.NewParseError(input, "invalid decimal number", err)
	}
	return n, nil
}
