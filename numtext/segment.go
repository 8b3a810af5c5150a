package numtext

import (
	"fmt"

	"github.com/az-ai-labs/numwords/internal/vocab"
)

// splitByMagnitude cuts a phrase into segments, largest magnitude first.
//
// For every split magnitude present, its right-most occurrence closes a
// segment: "four hundred thousand seven hundred and twelve" becomes
// ["four hundred thousand"] and ["seven hundred and twelve"]. Whatever is
// left (0..999 or a trailing ordinal) becomes the last segment.
func splitByMagnitude(words []string) [][]string {
	var segments [][]string
	for _, m := range vocab.SplitMagnitudes() {
		i := lastIndex(words, m)
		if i < 0 {
			continue
		}
		segments = append(segments, words[:i+1])
		words = words[i+1:]
	}
	if len(words) > 0 {
		segments = append(segments, words)
	}
	return segments
}

// splitInterior splits words on sep tokens that have words on both sides.
// A leading or trailing sep stays part of its piece, and so does a sep
// right after another split point: "a and and b" is ["a"] ["and" "b"].
func splitInterior(words []string, sep string) [][]string {
	var (
		pieces [][]string
		cur    []string
	)
	for i, w := range words {
		if w == sep && len(cur) > 0 && i < len(words)-1 {
			pieces = append(pieces, cur)
			cur = nil
			continue
		}
		cur = append(cur, w)
	}
	if len(cur) > 0 {
		pieces = append(pieces, cur)
	}
	return pieces
}

// joinWith concatenates pieces with sep between them.
func joinWith(pieces [][]string, sep string) []string {
	var out []string
	for i, p := range pieces {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p...)
	}
	return out
}

// evalSegment evaluates one magnitude segment. Parts joined by "of" are
// multiplied: "a seventeenth of sixty two" is 1/17 * 62.
func evalSegment(words []string, ordinals bool, depth int) (Number, error) {
	parts := splitInterior(words, wordOf)
	value, err := processChunk(parts[0], ordinals, depth)
	if err != nil {
		return Number{}, err
	}
	for _, p := range parts[1:] {
		v, err := processChunk(p, ordinals, depth)
		if err != nil {
			return Number{}, err
		}
		value = value.mul(v)
	}
	return value, nil
}

// groupByMagnitudeOrder groups entries by the trend of their orders of
// magnitude. A new group starts whenever the order rises by more than it
// did at the previous step.
//
// Cardinal phrases descend ("one hundred twenty three": one group), while
// fraction phrases rise ("one thousandth": [1] [1000]). Ambiguous entries
// join the current group unchanged.
func groupByMagnitudeOrder(entries []entry) [][]entry {
	var (
		groups    [][]entry
		cur       []entry
		lastOrder int
		lastDiff  int
		seen      bool
	)
	for _, e := range entries {
		if e.ambiguous {
			cur = append(cur, e)
			continue
		}
		order := e.n.order()
		if !seen {
			lastOrder = order
			seen = true
		}
		diff := order - lastOrder
		if diff > lastDiff && len(cur) > 0 {
			groups = append(groups, cur)
			cur = nil
		}
		lastDiff = diff
		lastOrder = order
		cur = append(cur, e)
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

// resolveGroups applies deferred grouping to total.
//
// One group means the segment is a single fraction or ordinal: ambiguous
// entries fold their fraction into the multiplier. Several groups mean the
// first one is the integral total and every later group is a denominator.
func resolveGroups(total []entry, multiplier Number) ([]entry, Number, error) {
	groups := groupByMagnitudeOrder(total)
	if len(groups) == 1 {
		kept := make([]entry, 0, len(total))
		for _, e := range total {
			if e.ambiguous {
				multiplier = multiplier.mul(Float(e.fraction))
				continue
			}
			kept = append(kept, e)
		}
		return kept, multiplier, nil
	}

	kept := make([]entry, 0, len(groups[0]))
	for _, e := range groups[0] {
		kept = append(kept, cardinal(e.value()))
	}
	for _, g := range groups[1:] {
		d := sumEntries(g)
		if d.isZero() {
			return nil, Number{}, fmt.Errorf("numtext: zero denominator: %w", ErrInvalidInput)
		}
		multiplier = multiplier.mul(d.reciprocal())
	}
	return kept, multiplier, nil
}

func lastIndex(words []string, w string) int {
	for i := len(words) - 1; i >= 0; i-- {
		if words[i] == w {
			return i
		}
	}
	return -1
}
