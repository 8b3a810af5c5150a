package textfold

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"already folded", "two hundred", "two hundred"},
		{"uppercase", "Two HUNDRED", "two hundred"},
		{"combining diaeresis", "fïve", "five"},
		{"precomposed accent", "séven", "seven"},
		{"full-width digits", "１２３", "123"},
		{"full-width letters", "Ｔｅｎ", "ten"},
		{"punctuation kept", "thirty-five.", "thirty-five."},
		{"invalid utf8", "ten\xff", "ten�"},
		{"invalid byte run", "a\xff\xfeb", "a\uFFFDb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Fold(tt.input); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFoldAlwaysValidUTF8(t *testing.T) {
	t.Parallel()

	inputs := []string{"\xff\xfe", string([]byte{0x00}), strings.Repeat("\xc3", 10), "Ñ"}
	for _, in := range inputs {
		if out := Fold(in); !utf8.ValidString(out) {
			t.Errorf("Fold(%q) = %q, not valid UTF-8", in, out)
		}
	}
}

func FuzzFold(f *testing.F) {
	f.Add("")
	f.Add("Twenty-One")
	f.Add("\xff\xfe")
	f.Add("１０")

	f.Fuzz(func(t *testing.T, s string) {
		out := Fold(s)
		if !utf8.ValidString(out) {
			t.Errorf("Fold(%q) produced invalid UTF-8", s)
		}
	})
}
