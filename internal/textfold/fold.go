// Package textfold folds free-form number phrases into the plain lowercase
// form the vocabulary is keyed by.
//
// Folding applies NFKC compatibility composition (full-width digits and
// letters become ASCII, "½"-style ligatures decompose), drops combining
// marks ("fïve" -> "five") and lowercases with English rules.
//
// All functions are safe for concurrent use.
package textfold

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold returns the folded form of s. Invalid UTF-8 bytes are replaced with
// U+FFFD so later stages always see valid text.
func Fold(s string) string {
	if isLowerASCII(s) {
		return s
	}
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "\uFFFD")
	}

	// transform.Chain keeps state between calls, so it is built per call.
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFKC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return cases.Lower(language.English).String(out)
}

// isLowerASCII reports whether s is already folded: ASCII without
// uppercase letters.
func isLowerASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf || ('A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}
