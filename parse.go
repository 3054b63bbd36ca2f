package engnotation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrBadQuantity indicates that a string cannot be parsed as a number
// with an optional SI prefix.
var ErrBadQuantity = errors.New("engnotation: cannot parse quantity")

// prefixMultipliers maps the single-letter SI prefixes accepted on
// input to their scale factor. Both the micro sign and the Greek mu
// are accepted, along with the common "u" fallback.
var prefixMultipliers = map[string]float64{
	"y": 1e-24,
	"z": 1e-21,
	"a": 1e-18,
	"f": 1e-15,
	"p": 1e-12,
	"n": 1e-9,
	"µ": 1e-6,
	"μ": 1e-6,
	"u": 1e-6,
	"m": 1e-3,
	"k": 1e3,
	"M": 1e6,
	"G": 1e9,
	"T": 1e12,
	"P": 1e15,
	"E": 1e18,
	"Z": 1e21,
	"Y": 1e24,
	"R": 1e27,
	"Q": 1e30,
}

// Parse converts a string holding a number with an optional trailing
// SI prefix, such as "1.5k" or "99µ", to a float64. Plain numbers and
// the exponent notation accepted by [strconv.ParseFloat], such as
// "1.5E+3", also work. Parse is the inverse of [SIForm] for unitless
// output, up to rounding.
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}
	r, size := utf8.DecodeLastRuneInString(s)
	multiplier, ok := prefixMultipliers[string(r)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadQuantity, s)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s[:len(s)-size]), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadQuantity, s)
	}
	return v * multiplier, nil
}

// Value is a float64 flag value that reads SI-prefixed quantities and
// prints itself using [SIForm]. It implements [flag.Value].
type Value float64

// String implements [flag.Value].
func (v Value) String() string {
	s, err := SIForm(float64(v), "", DefaultDecimalPlaces)
	if err != nil {
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	}
	return s
}

// Set implements [flag.Value].
func (v *Value) Set(s string) error {
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*v = Value(parsed)
	return nil
}
