package vocab

import (
	"math/big"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/numwords/data"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	cases := []struct {
		word     string
		wantInt  int64
		wantFrac float64
		fraction bool
	}{
		{"zero", 0, 0, false},
		{"nine", 9, 0, false},
		{"fifteen", 15, 0, false},
		{"ninety", 90, 0, false},
		{"hundred", 100, 0, false},
		{"million", 1_000_000, 0, false},
		{"first", 1, 0, false},
		{"second", 2, 0, false},
		{"zeroth", 0, 0, false},
		{"half", 0, 0.5, true},
		{"halves", 0, 0.5, true},
		{"quarters", 0, 0.25, true},
		{"third", 0, 1.0 / 3, true}, // fraction shadows ordinal
		{"thirds", 0, 1.0 / 3, true},
		{"tenth", 0, 0.1, true},
		{"hundredth", 0, 0.01, true},
		{"thousandths", 0, 0.001, true},
	}

	for _, tt := range cases {
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()
			v, ok := Lookup(tt.word)
			require.True(t, ok)
			assert.Equal(t, tt.fraction, v.IsFraction())
			if tt.fraction {
				assert.Equal(t, tt.wantFrac, v.Fraction())
				assert.Nil(t, v.Int())
				return
			}
			assert.Equal(t, 0, v.Int().Cmp(big.NewInt(tt.wantInt)))
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()
	for _, w := range []string{"", "on", "and", "seconds", "firsts", "Hundred", "point"} {
		_, ok := Lookup(w)
		assert.False(t, ok, "Lookup(%q)", w)
		assert.False(t, IsNumberWord(w), "IsNumberWord(%q)", w)
	}
}

func TestOrdinalReadings(t *testing.T) {
	t.Parallel()

	cases := map[string]*big.Int{
		"first":       big.NewInt(1),
		"third":       big.NewInt(3),
		"twelfth":     big.NewInt(12),
		"ninetieth":   big.NewInt(90),
		"hundredth":   big.NewInt(100),
		"millionth":   big.NewInt(1_000_000),
		"decillionth": Pow10(33),
	}
	for w, want := range cases {
		got, ok := Ordinal(w)
		require.True(t, ok, w)
		assert.Equal(t, 0, got.Cmp(want), "Ordinal(%q) = %s", w, got)
	}

	_, ok := Ordinal("thirds")
	assert.False(t, ok, "plural fractions have no ordinal reading")
}

func TestMagnitudes(t *testing.T) {
	t.Parallel()

	exp, ok := Magnitude("hundred")
	require.True(t, ok)
	assert.Equal(t, 2, exp)

	exp, ok = Magnitude("decillion")
	require.True(t, ok)
	assert.Equal(t, 33, exp)

	exp, ok = OrdinalMagnitude("billionth")
	require.True(t, ok)
	assert.Equal(t, 9, exp)

	_, ok = Magnitude("billionth")
	assert.False(t, ok)
}

func TestSplitMagnitudes(t *testing.T) {
	t.Parallel()

	want := []string{
		"decillionth", "nonillionth", "octillionth", "septillionth", "sextillionth",
		"quintillionth", "quadrillionth", "trillionth", "billionth", "millionth", "thousandth",
		"decillion", "nonillion", "octillion", "septillion", "sextillion",
		"quintillion", "quadrillion", "trillion", "billion", "million", "thousand",
	}
	if diff := cmp.Diff(want, SplitMagnitudes()); diff != "" {
		t.Errorf("SplitMagnitudes() mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, IsSplitMagnitude("thousandth"))
	assert.False(t, IsSplitMagnitude("hundred"))
	assert.False(t, IsSplitMagnitude("hundredth"))
}

func TestRenderMagnitudes(t *testing.T) {
	t.Parallel()

	got := RenderMagnitudes()
	require.Len(t, got, 12)
	assert.Equal(t, "", got[0])
	assert.Equal(t, "thousand", got[1])
	assert.Equal(t, "decillion", got[len(got)-1])

	// Callers get a copy.
	got[1] = "mutated"
	assert.Equal(t, "thousand", RenderMagnitudes()[1])
}

func TestReverse(t *testing.T) {
	t.Parallel()

	ints := map[int64]string{
		0:             "zero",
		1:             "one",
		3:             "three",
		10:            "ten",
		19:            "nineteen",
		40:            "forty",
		100:           "hundred",
		1000:          "thousand",
		1_000_000_000: "billion",
	}
	for n, want := range ints {
		got, ok := ReverseInt(big.NewInt(n))
		require.True(t, ok, "%d", n)
		assert.Equal(t, want, got)
	}
	for _, n := range []int64{21, 99, 101, 2000} {
		_, ok := ReverseInt(big.NewInt(n))
		assert.False(t, ok, "%d has no word of its own", n)
	}

	w, ok := ReverseInt(Pow10(33))
	require.True(t, ok)
	assert.Equal(t, "decillion", w)

	fracs := map[float64]string{
		0.5:      "half",
		0.25:     "quarter",
		1.0 / 3:  "third",
		0.1:      "tenth",
		1.0 / 90: "ninetieth",
		0.001:    "thousandth",
		1e-33:    "decillionth",
	}
	for f, want := range fracs {
		got, ok := ReverseFraction(f)
		require.True(t, ok, "%v", f)
		assert.Equal(t, want, got)
	}
}

func TestDigits(t *testing.T) {
	t.Parallel()

	for i := range 10 {
		w := DigitWord(i)
		require.NotEmpty(t, w)
		d, ok := Digit(w)
		require.True(t, ok)
		assert.Equal(t, i, d)
	}
	assert.Equal(t, "", DigitWord(10))
	assert.Equal(t, "", DigitWord(-1))

	_, ok := Digit("ten")
	assert.False(t, ok, "decimal digits are single words zero..nine")
}

// TestTableInvariants checks the structural guarantees of every table.
func TestTableInvariants(t *testing.T) {
	t.Parallel()

	isKey := func(w string) bool {
		if w == "" || strings.ToLower(w) != w {
			return false
		}
		for _, r := range w {
			if r < 'a' || r > 'z' {
				return false
			}
		}
		return true
	}

	for w := range magnitudes {
		assert.True(t, isKey(w), "magnitude key %q", w)
	}
	for w, n := range ordinals {
		assert.True(t, isKey(w), "ordinal key %q", w)
		assert.GreaterOrEqual(t, n.Sign(), 0, "ordinal %q", w)
	}
	for w, f := range fractions {
		assert.True(t, isKey(w), "fraction key %q", w)
		assert.Greater(t, f, 0.0, "fraction %q", w)
		assert.LessOrEqual(t, f, 1.0, "fraction %q", w)
	}
	for w, n := range cardinals {
		assert.True(t, isKey(w), "cardinal key %q", w)
		assert.GreaterOrEqual(t, n.Sign(), 0, "cardinal %q", w)
	}
	for _, w := range reverseInts {
		assert.False(t, strings.HasSuffix(w, "s"), "reverse word %q", w)
	}
	for _, w := range reverseFractions {
		assert.False(t, strings.HasSuffix(w, "s"), "reverse word %q", w)
	}

	// Every plural fraction has its singular form.
	for w := range fractions {
		if strings.HasSuffix(w, "s") && w != "halves" {
			_, ok := fractions[strings.TrimSuffix(w, "s")]
			assert.True(t, ok, "plural %q without singular", w)
		}
	}
}

func TestDecodeRejectsBadAssets(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
	}{
		{"not yaml", "digits: [zero"},
		{"short digits", "digits: [zero, one]"},
		{"magnitudes without hundred", "digits: [a,b,c,d,e,f,g,h,i,j]\nmagnitudes:\n  - {word: thousand, exponent: 3}\n"},
		{"unordered magnitudes", "digits: [a,b,c,d,e,f,g,h,i,j]\nmagnitudes:\n  - {word: hundred, exponent: 2}\n  - {word: million, exponent: 6}\n  - {word: thousand, exponent: 3}\n"},
		{"fraction out of range", "digits: [a,b,c,d,e,f,g,h,i,j]\nmagnitudes:\n  - {word: hundred, exponent: 2}\nirregular_fractions:\n  - {word: double, value: 2}\n"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := decode([]byte(tt.raw))
			assert.Error(t, err)
		})
	}

	src, err := decode(data.EnglishVocab)
	require.NoError(t, err)
	assert.Len(t, src.Digits, 10)
}
