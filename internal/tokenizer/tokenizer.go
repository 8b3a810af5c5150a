// Package tokenizer splits folded number phrases into tokens with byte
// offsets.
//
// The invariant s[t.Start:t.End] == t.Text holds for every token, and
// concatenating all token texts reconstructs the original string.
//
// Hyphens never join words: "thirty-five" is Word, Punctuation, Word.
// Digit runs may carry English thousands separators ("1,000") or
// underscores ("1_000"); a decimal point is always its own Punctuation
// token, so "2.5" is Number, Punctuation, Number.
//
// All functions are safe for concurrent use by multiple goroutines.
package tokenizer

import "fmt"

// TokenType classifies a token.
type TokenType int

const (
	Word        TokenType = iota // Letters, with apostrophes between letters
	Number                       // ASCII digits with optional "," or "_" grouping
	Punctuation                  // Punctuation marks; consecutive hyphens merge
	Space                        // Contiguous whitespace
	Symbol                       // Everything else
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Word:
		return "Word"
	case Number:
		return "Number"
	case Punctuation:
		return "Punctuation"
	case Space:
		return "Space"
	case Symbol:
		return "Symbol"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token represents a unit of text with its position and classification.
type Token struct {
	Text  string    // The token text
	Start int       // Byte offset in the original string (inclusive)
	End   int       // Byte offset in the original string (exclusive)
	Type  TokenType // Classification of the token
}

// String returns a debug representation, e.g. Word("five")[0:4].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// Tokens splits s into tokens of every type.
func Tokens(s string) []Token {
	if s == "" {
		return nil
	}
	return scan(s)
}

// Digits returns the digits of a Number token text with grouping
// separators removed ("1,000" -> "1000").
func Digits(text string) string {
	b := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		if isDigitByte(text[i]) {
			b = append(b, text[i])
		}
	}
	return string(b)
}
