package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

// scan splits s into tokens using a rune-by-rune state machine.
// The caller guarantees s is non-empty.
func scan(s string) []Token {
	tokens := make([]Token, 0, len(s)/4+1)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		// Whitespace: merge contiguous into one Space token
		if unicode.IsSpace(r) {
			start := i
			i += size
			for i < len(s) {
				nr, ns := utf8.DecodeRuneInString(s[i:])
				if !unicode.IsSpace(nr) {
					break
				}
				i += ns
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Space})
			continue
		}

		if isDigitByte(s[i]) {
			tok := scanNumber(s, i)
			tokens = append(tokens, tok)
			i = tok.End
			continue
		}

		if unicode.IsLetter(r) {
			tok := scanWord(s, i)
			tokens = append(tokens, tok)
			i = tok.End
			continue
		}

		if unicode.IsPunct(r) {
			start := i
			i += size
			// "--" and "---" stay one token
			if r == '-' {
				for i < len(s) && s[i] == '-' {
					i++
				}
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Punctuation})
			continue
		}

		tokens = append(tokens, Token{Text: s[i : i+size], Start: i, End: i + size, Type: Symbol})
		i += size
	}

	return tokens
}

// scanNumber reads a number token starting at position pos.
// A "," joins groups of exactly 3 digits (1,000,000); a "_" joins any
// digit runs (1_000).
func scanNumber(s string, pos int) Token {
	i := pos
	for i < len(s) && isDigitByte(s[i]) {
		i++
	}

	for i < len(s) {
		switch s[i] {
		case ',':
			// Exactly 3 digits followed by a non-digit or end
			if i+4 <= len(s) && isDigitByte(s[i+1]) && isDigitByte(s[i+2]) && isDigitByte(s[i+3]) &&
				(i+4 == len(s) || !isDigitByte(s[i+4])) {
				i += 4
				continue
			}
		case '_':
			if i+1 < len(s) && isDigitByte(s[i+1]) {
				i++
				for i < len(s) && isDigitByte(s[i]) {
					i++
				}
				continue
			}
		}
		break
	}

	return Token{Text: s[pos:i], Start: pos, End: i, Type: Number}
}

// scanWord reads a word token starting at position pos.
// Apostrophes (U+0027, U+2019, U+02BC) join letters on both sides.
func scanWord(s string, pos int) Token {
	i := consumeLetters(s, pos)

	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r != '\'' && r != '’' && r != 'ʼ' {
			break
		}
		next := i + size
		if next >= len(s) {
			break
		}
		nr, _ := utf8.DecodeRuneInString(s[next:])
		if !unicode.IsLetter(nr) {
			break
		}
		i = consumeLetters(s, next)
	}

	return Token{Text: s[pos:i], Start: pos, End: i, Type: Word}
}

// consumeLetters consumes a contiguous run of letters.
func consumeLetters(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !unicode.IsLetter(r) {
			break
		}
		pos += size
	}
	return pos
}

// isDigitByte returns true for ASCII digit bytes.
func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
