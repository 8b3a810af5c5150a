// Package numtext converts between numbers and English number phrases.
//
// The package provides conversion in both directions:
//
//   - Parse turns a phrase such as "two million three thousand nine hundred
//     and eighty four" into a Number.
//   - Render turns a Number back into a phrase.
//   - RenderInt, RenderFloat and RenderString are shorthands for the common
//     argument types.
//
// Parse understands negatives ("minus", "negative", "-"), decimals ("point"
// or "."), ordinals ("seventy first") and fraction words ("half", "two
// thirds", "a seventeenth of sixty two"). Whole numbers come back as exact
// integers of any size; decimals and fractions come back as float64.
//
// Render supports two modes for values below one: FractionWords prefers a
// fraction word ("one tenth"), DigitWords always reads digits ("zero point
// one").
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Magnitude words stop at decillion (10^33). Larger values render by
//     repeating "decillion"; such phrases do not reliably parse back.
//   - Decimal digits after "point" are read one word at a time: "point one
//     nine" is 0.19, "point nineteen" is rejected.
//   - Fractions and decimals use float64 arithmetic.
package numtext

import (
	"errors"
	"math/big"
)

// Mode controls how fractional values are read aloud.
type Mode int

const (
	// FractionWords renders known fractions as words: "one tenth" (0.1).
	FractionWords Mode = iota

	// DigitWords reads fractional digits individually: "zero point one" (0.1).
	DigitWords
)

var (
	// ErrInvalidInput reports a phrase with no recognizable number word.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedDecimal reports a decimal phrase with more than one
	// delimiter, a non-digit word after the delimiter, or a fractional
	// whole part.
	ErrMalformedDecimal = errors.New("malformed decimal")

	// ErrNotNumeric reports a string that is neither an integer nor a
	// decimal literal.
	ErrNotNumeric = errors.New("not numeric")
)

// Parse converts an English number phrase to a Number.
// Input is case-insensitive and whitespace-normalized; hyphens separate
// words ("thirty-five").
//
// Returns an error wrapping ErrInvalidInput or ErrMalformedDecimal.
func Parse(text string) (Number, error) {
	return parse(text)
}

// Render returns the English phrase for n.
// Zero returns "zero". Negative values are prefixed with "negative".
// NaN and infinities return an empty string.
func Render(n Number, mode Mode) string {
	if n.float {
		return renderFloat(n.f, mode)
	}
	return renderInt(n.bigInt())
}

// RenderInt returns the English phrase for n.
func RenderInt(n int64) string {
	return renderInt(big.NewInt(n))
}

// RenderFloat returns the English phrase for f.
// Integral values render like integers ("two" for 2.0).
func RenderFloat(f float64, mode Mode) string {
	return renderFloat(f, mode)
}

// RenderString renders a numeric string. The string is read as an integer
// first and as a decimal literal otherwise, so integers beyond float64
// precision stay exact.
//
// Returns an error wrapping ErrNotNumeric for anything else.
func RenderString(s string, mode Mode) (string, error) {
	return renderString(s, mode)
}
