// Number-to-phrase rendering for English number text.
package numtext

import (
	"fmt"
	"math"
	"math/big"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/az-ai-labs/numwords/internal/vocab"
)

const (
	growGroup = 48 // estimated bytes for one 3-digit group

	wordNegativePrefix = "negative "
	wordPointSep       = " point "
	andSep             = " and "
)

// renderInt renders an integer of any size.
func renderInt(n *big.Int) string {
	if n.Sign() < 0 {
		return wordNegativePrefix + renderMagnitude(new(big.Int).Abs(n))
	}
	return renderMagnitude(n)
}

// renderFloat renders a float. Integral values go through renderInt.
// Returns "" for NaN and infinities.
func renderFloat(f float64, mode Mode) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}

	negative := f < 0
	abs := math.Abs(f)

	if mode == FractionWords && abs > 0 && abs < 1 {
		if w, ok := vocab.ReverseFraction(abs); ok {
			// "tenth" -> "one tenth"
			return withSign(negative, wordOne+" "+w)
		}
	}

	if abs == math.Trunc(abs) {
		i, _ := big.NewFloat(abs).Int(nil)
		return withSign(negative && i.Sign() != 0, renderMagnitude(i))
	}

	// Shortest decimal form that round-trips: 0.1 is "0.1", not
	// "0.1000000000000000055511151231257827".
	whole, frac, _ := strings.Cut(decimal.NewFromFloat(abs).String(), ".")
	i, _ := new(big.Int).SetString(whole, 10)

	var b strings.Builder
	b.Grow(growGroup + len(frac)*6)
	b.WriteString(renderMagnitude(i))
	b.WriteString(wordPointSep)
	for k := 0; k < len(frac); k++ {
		if k > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(vocab.DigitWord(int(frac[k] - '0')))
	}
	return withSign(negative, b.String())
}

// renderString parses s as an integer, then as a decimal, and renders it.
func renderString(s string, mode Mode) (string, error) {
	t := strings.TrimSpace(s)
	if i, ok := new(big.Int).SetString(strings.TrimPrefix(t, "+"), 10); ok {
		return renderInt(i), nil
	}
	d, err := decimal.NewFromString(t)
	if err != nil {
		return "", fmt.Errorf("numtext: %q: %w", s, ErrNotNumeric)
	}
	f, _ := d.Float64()
	return renderFloat(f, mode), nil
}

// renderMagnitude renders a non-negative integer.
func renderMagnitude(n *big.Int) string {
	if w, ok := vocab.ReverseInt(n); ok {
		return w
	}

	mags := vocab.RenderMagnitudes()
	groups := splitGroups(n.String())

	// parts holds rendered groups, most significant first.
	var parts []string
	if len(groups) > len(mags) {
		parts = renderOverflow(groups, mags)
	} else {
		for idx, g := range groups {
			s := renderGroup(g)
			if s == "" {
				continue
			}
			if mags[idx] != "" {
				s += " " + mags[idx]
			}
			parts = append(parts, s)
		}
		slices.Reverse(parts)
	}

	// "hundred decillion" reads "one hundred decillion" at the front.
	if _, ok := vocab.Magnitude(parts[0]); ok {
		parts[0] = wordOne + " " + parts[0]
	}

	last := len(parts) - 1
	if len(parts) >= 2 && !containsAnd(parts) && !slices.Contains(mags, parts[last]) {
		return strings.Join(parts[:last], " ") + andSep + parts[last]
	}
	return strings.Join(parts, " ")
}

// renderOverflow handles values with more groups than magnitude words.
// Groups are taken in windows of len(mags)-1; window k is rendered on its
// own and suffixed with the largest magnitude word repeated k times:
// 10^36 is "thousand decillion", 10^69 is "thousand decillion decillion".
func renderOverflow(groups []string, mags []string) []string {
	window := len(mags) - 1
	largest := mags[len(mags)-1]

	var parts []string
	for k, start := 0, 0; start < len(groups); k, start = k+1, start+window {
		end := min(start+window, len(groups))
		v, _ := new(big.Int).SetString(joinGroups(groups[start:end]), 10)
		if v.Sign() == 0 {
			continue
		}
		parts = append(parts, renderMagnitude(v)+strings.Repeat(" "+largest, k))
	}
	slices.Reverse(parts)
	return parts
}

// renderGroup renders one group of up to 3 digits, leading zeros allowed.
// Returns "" for an all-zero group.
func renderGroup(g string) string {
	n, _ := strconv.Atoi(g)
	if n == 0 {
		return ""
	}
	// A bare 100 group reads "one hundred", not "hundred".
	if n < 100 {
		if w, ok := reverseSmall(n); ok {
			return w
		}
	}

	var b strings.Builder
	b.Grow(growGroup)

	if h := n / 100; h > 0 {
		b.WriteString(vocab.DigitWord(h))
		b.WriteByte(' ')
		b.WriteString(vocab.WordHundred)
	}

	r := n % 100
	if r == 0 {
		return b.String()
	}
	if b.Len() > 0 {
		b.WriteString(andSep)
	}
	if w, ok := reverseSmall(r); ok {
		b.WriteString(w)
		return b.String()
	}
	// 25 -> "twenty five"
	tens, _ := reverseSmall(r / 10 * 10)
	b.WriteString(tens)
	b.WriteByte(' ')
	b.WriteString(vocab.DigitWord(r % 10))
	return b.String()
}

// splitGroups splits a digit string into 3-digit groups, least
// significant first: "1234567" -> ["567", "234", "1"].
func splitGroups(digits string) []string {
	groups := make([]string, 0, len(digits)/3+1)
	for end := len(digits); end > 0; end -= 3 {
		groups = append(groups, digits[max(end-3, 0):end])
	}
	return groups
}

// joinGroups reverses splitGroups for a window of groups, padding inner
// groups to 3 digits.
func joinGroups(groups []string) string {
	var b strings.Builder
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if i < len(groups)-1 {
			b.WriteString(strings.Repeat("0", 3-len(g)))
		}
		b.WriteString(g)
	}
	return b.String()
}

func reverseSmall(n int) (string, bool) {
	return vocab.ReverseInt(big.NewInt(int64(n)))
}

func containsAnd(parts []string) bool {
	for _, p := range parts {
		if strings.Contains(p, andSep) {
			return true
		}
	}
	return false
}

func withSign(negative bool, s string) string {
	if negative {
		return wordNegativePrefix + s
	}
	return s
}
