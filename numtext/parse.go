// Phrase-to-number parsing for English number text.
package numtext

import (
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strconv"
	"strings"

	"github.com/az-ai-labs/numwords/internal/textfold"
	"github.com/az-ai-labs/numwords/internal/tokenizer"
	"github.com/az-ai-labs/numwords/internal/vocab"
)

const (
	// maxInputBytes caps the input size so a single call stays cheap.
	maxInputBytes = 64 << 10

	// maxDepth bounds decimal and "and" recursion.
	maxDepth = 8

	wordPoint    = "point"
	wordAnd      = "and"
	wordOf       = "of"
	wordMinus    = "minus"
	wordNegative = "negative"
	wordA        = "a"
	wordOne      = "one"
	decimalDot   = "."
)

// segmentResult is the outcome of evaluating one magnitude segment.
// A failed segment does not abort the parse while another one succeeds.
type segmentResult struct {
	value Number
	err   error
}

// parse converts English number text to a Number.
func parse(text string) (Number, error) {
	if len(text) > maxInputBytes {
		return Number{}, fmt.Errorf("numtext: input exceeds %d bytes: %w", maxInputBytes, ErrInvalidInput)
	}

	words, negative, err := lex(textfold.Fold(text))
	if err != nil {
		return Number{}, err
	}

	n, err := parseWords(words, 0)
	if err != nil {
		return Number{}, err
	}
	if negative {
		n = n.neg()
	}
	return n, nil
}

// lex tokenizes folded text into words and strips a leading sign.
// Number tokens lose their grouping separators, "." survives as its own
// word, every other punctuation mark is dropped.
//
// Digits joined by a slash ("1/2", and "½" after folding) or by a comma
// that is not a thousands separator ("1,5") are rejected rather than read
// as two numbers.
func lex(s string) ([]string, bool, error) {
	tokens := tokenizer.Tokens(s)

	var words []string
	negative := false
	for i, tok := range tokens {
		if joinsDigits(tokens, i) {
			return nil, false, fmt.Errorf("numtext: digits joined by %q: %w", tok.Text, ErrInvalidInput)
		}

		switch tok.Type {
		case tokenizer.Space:
			continue
		case tokenizer.Number:
			words = append(words, tokenizer.Digits(tok.Text))
			continue
		}

		if len(words) == 0 && !negative && isSign(tok) {
			negative = true
			continue
		}

		switch {
		case tok.Type == tokenizer.Punctuation && tok.Text == decimalDot:
			words = append(words, decimalDot)
		case tok.Type == tokenizer.Punctuation:
			// Hyphens and stray marks separate words.
		default:
			words = append(words, tok.Text)
		}
	}
	return words, negative, nil
}

// joinsDigits reports whether tokens[i] is a slash next to a number, or a
// comma directly between two numbers.
func joinsDigits(tokens []tokenizer.Token, i int) bool {
	switch tokens[i].Text {
	case "/", "\u2044":
		return isNumberAt(tokens, nextNonSpace(tokens, i, -1)) ||
			isNumberAt(tokens, nextNonSpace(tokens, i, 1))
	case ",":
		return isNumberAt(tokens, i-1) && isNumberAt(tokens, i+1)
	}
	return false
}

// nextNonSpace returns the index of the first non-space token from i in
// direction step, or -1.
func nextNonSpace(tokens []tokenizer.Token, i, step int) int {
	for j := i + step; j >= 0 && j < len(tokens); j += step {
		if tokens[j].Type != tokenizer.Space {
			return j
		}
	}
	return -1
}

func isNumberAt(tokens []tokenizer.Token, i int) bool {
	return i >= 0 && i < len(tokens) && tokens[i].Type == tokenizer.Number
}

// isSign reports whether tok is a leading sign: "minus", "negative",
// a run of hyphens or U+2212.
func isSign(tok tokenizer.Token) bool {
	switch tok.Type {
	case tokenizer.Word:
		return tok.Text == wordMinus || tok.Text == wordNegative
	case tokenizer.Punctuation, tokenizer.Symbol:
		return strings.Trim(tok.Text, "-−") == ""
	}
	return false
}

// parseWords evaluates an unsigned phrase.
func parseWords(words []string, depth int) (Number, error) {
	if depth > maxDepth {
		return Number{}, fmt.Errorf("numtext: nesting deeper than %d: %w", maxDepth, ErrInvalidInput)
	}
	if len(words) == 0 {
		return Number{}, fmt.Errorf("numtext: empty input: %w", ErrInvalidInput)
	}

	if n, ok := fastPath(words); ok {
		return n, nil
	}

	if !slices.ContainsFunc(words, isRecognized) {
		return Number{}, fmt.Errorf("numtext: no number words in %q: %w", strings.Join(words, " "), ErrInvalidInput)
	}

	if n, ok, err := parseDecimal(words, depth); ok {
		return n, err
	}

	segments := splitByMagnitude(words)
	results := make([]segmentResult, len(segments))
	for i, seg := range segments {
		// Ordinals only make sense at the end of a full phrase.
		v, err := evalSegment(seg, i == len(segments)-1, depth)
		results[i] = segmentResult{value: v, err: err}
	}
	return accumulate(results)
}

// fastPath handles a lone digit string, a lone vocabulary word and a plain
// decimal literal without running the grammar.
func fastPath(words []string) (Number, bool) {
	if len(words) == 1 {
		w := words[0]
		if isDigits(w) {
			n, _ := new(big.Int).SetString(w, 10)
			return Number{i: n}, true
		}
		// Ordinals first: "third" is 3 here, not 1/3.
		if n, ok := vocab.Ordinal(w); ok {
			return Number{i: n}, true
		}
		if v, ok := vocab.Lookup(w); ok {
			return valueNumber(v), true
		}
	}

	// "1.5", ".5", "5."
	if len(words) <= 3 && slices.Contains(words, decimalDot) {
		dots, digits := 0, 0
		for _, w := range words {
			switch {
			case w == decimalDot:
				dots++
			case isDigits(w):
				digits++
			default:
				return Number{}, false
			}
		}
		if dots == 1 && digits > 0 && dots+digits == len(words) {
			f, err := strconv.ParseFloat(strings.Join(words, ""), 64)
			if err == nil {
				return Float(f), true
			}
		}
	}
	return Number{}, false
}

// parseDecimal splits on the decimal delimiter. ok is false when the
// phrase has no delimiter.
func parseDecimal(words []string, depth int) (n Number, ok bool, err error) {
	delim := decimalDot
	if slices.Contains(words, wordPoint) {
		delim = wordPoint
	}

	at := -1
	for i, w := range words {
		if w != delim {
			continue
		}
		if at >= 0 {
			return Number{}, true, fmt.Errorf("numtext: more than one %q: %w", delim, ErrMalformedDecimal)
		}
		at = i
	}
	if at < 0 {
		return Number{}, false, nil
	}

	whole := "0"
	if left := words[:at]; len(left) > 0 {
		v, err := parseWords(left, depth+1)
		if err != nil {
			return Number{}, true, err
		}
		if !v.IsInt() {
			return Number{}, true, fmt.Errorf("numtext: fractional whole part %s: %w", v, ErrMalformedDecimal)
		}
		whole = v.bigInt().String()
	}

	// Decimal digits are read one at a time: "point one nine", never
	// "point nineteen".
	var b strings.Builder
	for _, w := range words[at+1:] {
		if isDigits(w) {
			b.WriteString(w)
			continue
		}
		d, ok := vocab.Digit(w)
		if !ok {
			return Number{}, true, fmt.Errorf("numtext: invalid decimal word %q: %w", w, ErrMalformedDecimal)
		}
		b.WriteByte(byte('0' + d))
	}

	f, err := strconv.ParseFloat(whole+"."+b.String(), 64)
	if err != nil {
		return Number{}, true, fmt.Errorf("numtext: decimal %s.%s: %w", whole, b.String(), ErrMalformedDecimal)
	}
	return Float(f), true, nil
}

// accumulate sums the successful segments. When every segment failed, the
// first failure is returned. A repeated magnitude fails the whole phrase.
func accumulate(results []segmentResult) (Number, error) {
	var (
		sum      Number
		firstErr error
		ok       bool
	)
	for _, r := range results {
		if r.err != nil {
			var rm *repeatedMagnitudeError
			if errors.As(r.err, &rm) {
				return Number{}, r.err
			}
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		sum = sum.add(r.value)
		ok = true
	}
	if !ok {
		if firstErr == nil {
			firstErr = fmt.Errorf("numtext: empty input: %w", ErrInvalidInput)
		}
		return Number{}, firstErr
	}
	return sum, nil
}

// isRecognized reports whether w can contribute to a number.
func isRecognized(w string) bool {
	return isDigits(w) || vocab.IsNumberWord(w)
}

// isDigits reports whether w is a non-empty run of ASCII digits.
func isDigits(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < '0' || w[i] > '9' {
			return false
		}
	}
	return true
}

// valueNumber converts a vocabulary value to a Number.
func valueNumber(v vocab.Value) Number {
	if v.IsFraction() {
		return Float(v.Fraction())
	}
	return Number{i: v.Int()}
}
