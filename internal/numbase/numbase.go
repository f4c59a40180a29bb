// Package numbase converts non-negative integers to and from positional
// notation in the bases used by numeral-system drills.
package numbase

import (
	"fmt"
	"strconv"
	"strings"
)

// Base is a supported positional numeral base.
type Base int

const (
	Binary  Base = 2
	Octal   Base = 8
	Decimal Base = 10
	Hex     Base = 16
)

// Bases lists every supported base in ascending order.
var Bases = []Base{Binary, Octal, Decimal, Hex}

// Valid reports whether b is one of the supported bases.
func (b Base) Valid() bool {
	switch b {
	case Binary, Octal, Decimal, Hex:
		return true
	}
	return false
}

// Name returns the human-readable name of the base.
func (b Base) Name() string {
	switch b {
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Decimal:
		return "decimal"
	case Hex:
		return "hexadecimal"
	}
	return fmt.Sprintf("base %d", int(b))
}

// ParseError reports text that is not a valid numeral in the requested base.
type ParseError struct {
	Text string
	Base Base
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q as %s: %s", e.Text, e.Base.Name(), e.Msg)
}

// ToDigits renders value in base b using uppercase digits.
// Unsupported bases fall back to decimal.
func ToDigits(value uint64, b Base) string {
	if !b.Valid() {
		b = Decimal
	}
	return strings.ToUpper(strconv.FormatUint(value, int(b)))
}

// FromDigits parses text as a numeral in base b. Lowercase hex digits are
// accepted. Signs, prefixes and separators are rejected.
func FromDigits(text string, b Base) (uint64, error) {
	if !b.Valid() {
		return 0, &ParseError{Text: text, Base: b, Msg: "unsupported base"}
	}
	if text == "" {
		return 0, &ParseError{Text: text, Base: b, Msg: "empty input"}
	}
	for _, r := range text {
		if digitValue(r) >= int(b) {
			return 0, &ParseError{Text: text, Base: b, Msg: fmt.Sprintf("invalid digit %q", r)}
		}
	}
	v, err := strconv.ParseUint(text, int(b), 64)
	if err != nil {
		return 0, &ParseError{Text: text, Base: b, Msg: "value out of range"}
	}
	return v, nil
}

// digitValue returns the numeric value of a digit rune, or 99 if r is not
// a digit in any supported base.
func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	}
	return 99
}
