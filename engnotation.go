// Package engnotation formats numeric values using SI prefixes or
// engineering notation, matching the conventions used by electronics
// and metrology tooling.
//
// The two entry points are [SIForm], which renders strings such as
// "1.500 kV", and [EngineeringForm], which renders strings such as
// "1.500E+3 V". Both select an exponent that is a multiple of three
// so that the mantissa stays within the conventional engineering
// range. [Sif] and [Engf] are short aliases.
//
// All functions are pure and safe for concurrent use: the only shared
// state is the immutable prefix table.
package engnotation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultDecimalPlaces is the number of decimal places used when the
// caller has no specific precision requirement.
const DefaultDecimalPlaces = 3

// ErrNotFinite indicates that the number to format is NaN or infinite.
var ErrNotFinite = errors.New("engnotation: number is not finite")

// ErrNegativePlaces indicates that the requested number of decimal
// places is negative.
var ErrNegativePlaces = errors.New("engnotation: roundToDecimalPlaces is negative")

// engineeringExponent returns the largest exponent, a multiple of
// three, that keeps the mantissa of number within the engineering
// range [1, 1000). The exponent for zero is zero. Taking the floor of
// the logarithm, rather than truncating it toward zero, keeps small
// magnitudes on the smaller prefix (99 µV rather than 0.99 mV).
func engineeringExponent(number float64) (int, error) {
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return 0, fmt.Errorf("%w: number is %v", ErrNotFinite, number)
	}
	if number == 0 {
		return 0, nil
	}
	exponent := int(math.Floor(math.Log10(math.Abs(number))))
	for exponent%3 != 0 {
		exponent--
	}
	// Log10 is only an estimate: it rounds below the true value for
	// some exact powers of ten (Log10(1e15) is 14.999999999999998) and
	// loses precision entirely on subnormals. Walk the exponent until
	// the mantissa actually lands in [1, 1000).
	for math.Abs(scale(number, exponent)) >= 1000 {
		exponent += 3
	}
	for math.Abs(scale(number, exponent)) < 1 {
		exponent -= 3
	}
	return exponent, nil
}

// scale returns number / 10^exponent. We split the power in two for
// exponents beyond the Pow10 range, which subnormal inputs can reach.
func scale(number float64, exponent int) float64 {
	if exponent >= -308 && exponent <= 308 {
		return number / math.Pow10(exponent)
	}
	half := exponent / 2
	return number / math.Pow10(half) / math.Pow10(exponent-half)
}

// mantissa renders number / 10^exponent in fixed-point notation with
// the given number of decimal places, trailing zeros preserved.
func mantissa(number float64, exponent, places int) string {
	return strconv.FormatFloat(scale(number, exponent), 'f', places, 64)
}

// SIForm formats number using an SI prefix followed by the given
// unit. For example, SIForm(1500, "V", 3) yields "1.500 kV". The
// mantissa is rounded to roundToDecimalPlaces decimal places with
// trailing zeros preserved. When the selected exponent falls outside
// the prefix table, which only happens near the float64 range limits,
// the literal exponent string is used instead of a prefix. Trailing
// whitespace is stripped, so a zero exponent with an empty unit
// yields a bare mantissa.
//
// SIForm fails with [ErrNotFinite] when number is NaN or infinite and
// with [ErrNegativePlaces] when roundToDecimalPlaces is negative.
func SIForm(number float64, unit string, roundToDecimalPlaces int) (string, error) {
	if roundToDecimalPlaces < 0 {
		return "", fmt.Errorf("SIForm: %w: %d", ErrNegativePlaces, roundToDecimalPlaces)
	}
	exponent, err := engineeringExponent(number)
	if err != nil {
		return "", fmt.Errorf("SIForm: %w", err)
	}
	m := mantissa(number, exponent, roundToDecimalPlaces)
	prefix, ok := Prefix(exponent)
	if !ok {
		return strings.TrimRight(m+expString(exponent)+" "+unit, " "), nil
	}
	return strings.TrimRight(m+" "+prefix+unit, " "), nil
}

// EngineeringForm formats number in engineering notation followed by
// the given unit. For example, EngineeringForm(1500, "V", 3) yields
// "1.500E+3 V". With an empty unit the result is the exact
// concatenation of mantissa and exponent string, with no trailing
// space. Validation is the same as for [SIForm].
func EngineeringForm(number float64, unit string, roundToDecimalPlaces int) (string, error) {
	if roundToDecimalPlaces < 0 {
		return "", fmt.Errorf("EngineeringForm: %w: %d", ErrNegativePlaces, roundToDecimalPlaces)
	}
	exponent, err := engineeringExponent(number)
	if err != nil {
		return "", fmt.Errorf("EngineeringForm: %w", err)
	}
	m := mantissa(number, exponent, roundToDecimalPlaces)
	if unit == "" {
		return m + expString(exponent), nil
	}
	return m + expString(exponent) + " " + unit, nil
}

// Sif is a short alias for [SIForm].
func Sif(num float64, uni string, prec int) (string, error) {
	return SIForm(num, uni, prec)
}

// Engf is a short alias for [EngineeringForm].
func Engf(num float64, uni string, prec int) (string, error) {
	return EngineeringForm(num, uni, prec)
}
