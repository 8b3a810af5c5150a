package numtext

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/az-ai-labs/numwords/internal/vocab"
)

// entry is one term of a segment total: a cardinal value, or a word that
// reads both as an ordinal and as a fraction ("third": 3 or 1/3) until
// deferred grouping decides.
type entry struct {
	n         Number // cardinal value, or the ordinal reading
	fraction  float64
	ambiguous bool
}

func cardinal(n Number) entry {
	return entry{n: n}
}

func ambiguous(ordinal *big.Int, fraction float64) entry {
	return entry{n: Number{i: ordinal}, fraction: fraction, ambiguous: true}
}

// value returns the cardinal value, or the ordinal reading of an ambiguous
// entry.
func (e entry) value() Number { return e.n }

func sumEntries(entries []entry) Number {
	var sum Number
	for _, e := range entries {
		sum = sum.add(e.value())
	}
	return sum
}

// chunk is the running state of processChunk.
type chunk struct {
	total      []entry
	multiplier Number
	prefix     string // last unrecognized word
	previous   string // last processed word
	deferred   bool   // run deferred grouping at the end
	failed     int

	// Magnitude bookkeeping for "million four million".
	maxMagnitude int
	unitsSince   bool
}

// processChunk evaluates a segment with no "of" in it.
//
// Regular number words add to the total, magnitude words scale the
// multiplier: "twenty three million" is (20 + 3) * 10^6. The result is
// (sum(total) or 1) * multiplier.
//
// With ordinals set, a word like "fifth" may read as 5 instead of 1/5.
func processChunk(words []string, ordinals bool, depth int) (Number, error) {
	if depth > maxDepth {
		return Number{}, fmt.Errorf("numtext: nesting deeper than %d: %w", maxDepth, ErrInvalidInput)
	}

	// "ten and two thirds" is 10 + 2/3: fractional sides are added at the
	// end, integral sides stay together so "four hundred and fifty six
	// trillion" is one unit.
	var latent Number
	if pieces := splitInterior(words, wordAnd); len(pieces) > 1 {
		var kept [][]string
		for _, p := range pieces {
			v, err := processChunk(p, false, depth+1)
			if err != nil {
				return Number{}, err
			}
			if v.IsInt() {
				kept = append(kept, p)
			} else {
				latent = latent.add(v)
			}
		}
		words = joinWith(kept, wordAnd)
	}

	c := chunk{multiplier: Int(1), maxMagnitude: -1}
	for _, w := range words {
		if err := c.word(w, ordinals); err != nil {
			return Number{}, err
		}
	}

	if c.deferred && (len(c.total) > 1 || (len(c.total) == 1 && c.total[0].ambiguous)) {
		var err error
		c.total, c.multiplier, err = resolveGroups(c.total, c.multiplier)
		if err != nil {
			return Number{}, err
		}
	}

	if !latent.isZero() {
		c.total = append(c.total, cardinal(latent))
	}

	if c.failed == len(words) && (len(words) > 0 || latent.isZero()) {
		return Number{}, fmt.Errorf("numtext: no number words in %q: %w", strings.Join(words, " "), ErrInvalidInput)
	}

	sum := sumEntries(c.total)
	if sum.isZero() {
		sum = Int(1)
	}
	return sum.mul(c.multiplier), nil
}

// word classifies one word and updates the chunk.
func (c *chunk) word(w string, ordinals bool) error {
	switch {
	case isDigits(w):
		n, _ := new(big.Int).SetString(w, 10)
		c.total = append(c.total, cardinal(Number{i: n}))
		c.unitsSince = true

	case !vocab.IsNumberWord(w):
		c.prefix = w
		c.failed++

	case vocab.IsSplitMagnitude(w):
		if exp, ok := vocab.Magnitude(w); ok {
			// Magnitudes may stack ("million decillion") but not repeat
			// after more units ("million four million").
			if c.unitsSince && c.maxMagnitude >= 0 && exp <= c.maxMagnitude {
				return &repeatedMagnitudeError{word: w}
			}
			c.maxMagnitude = max(c.maxMagnitude, exp)
			c.unitsSince = false
			c.multiplier = c.multiplier.mul(Number{i: vocab.Pow10(exp)})
			break
		}
		exp, _ := vocab.OrdinalMagnitude(w)
		if ordinals {
			c.deferred = true
			c.total = append(c.total, cardinal(Number{i: vocab.Pow10(exp)}))
			break
		}
		c.multiplier = c.multiplier.mul(Number{i: vocab.Pow10(exp)}.reciprocal())

	case w == vocab.WordHundred || (w == vocab.WordHundredth && !isArticle(c.previous)):
		// "hundred" groups the units before it instead of scaling the
		// whole segment. "one hundredth" stays a fraction.
		if len(c.total) == 0 {
			c.total = []entry{cardinal(Int(100))}
		} else {
			c.total = []entry{cardinal(sumEntries(c.total).mul(Int(100)))}
		}
		c.unitsSince = true

	default:
		if frac, ok := vocab.Fraction(w); ok {
			if c.fractionWord(w, frac, ordinals) {
				// An ordinal reading leaves previous untouched.
				return nil
			}
			break
		}
		v, _ := vocab.Lookup(w)
		c.total = append(c.total, cardinal(valueNumber(v)))
		c.unitsSince = true
	}
	c.previous = w
	return nil
}

// fractionWord handles a word with a fraction reading.
//
// A trailing "s" ("seventy fifths") or a preceding "one"/"a" ("a fifth")
// favors the fraction. Otherwise, after the first word of the final
// segment, the ordinal wins ("seventy fifth" is 75) and fractionWord
// reports true.
func (c *chunk) fractionWord(w string, frac float64, ordinals bool) bool {
	c.deferred = true

	ord, isOrdinal := vocab.Ordinal(w)
	if ordinals && isOrdinal && c.previous != "" &&
		!strings.HasSuffix(w, "s") && !isArticle(c.previous) {
		c.total = append(c.total, cardinal(Number{i: ord}))
		return true
	}

	switch {
	case isOrdinal:
		c.total = append(c.total, ambiguous(ord, frac))
	case c.prefix != "":
		// "ten and a half": the fraction is a term of its own.
		c.total = append(c.total, cardinal(Float(frac)))
	default:
		// "two thirds"
		c.multiplier = c.multiplier.mul(Float(frac))
		c.prefix = ""
	}
	return false
}

// repeatedMagnitudeError reports a magnitude word that reappears after new
// units ("million four million"). It wraps ErrInvalidInput.
type repeatedMagnitudeError struct {
	word string
}

func (e *repeatedMagnitudeError) Error() string {
	return fmt.Sprintf("numtext: %q repeats a larger magnitude: %v", e.word, ErrInvalidInput)
}

func (e *repeatedMagnitudeError) Unwrap() error { return ErrInvalidInput }

func isArticle(w string) bool {
	return w == wordOne || w == wordA
}
