// Package vocab holds the closed English number vocabulary shared by the
// parser and the renderer in package numtext.
//
// Base word lists come from data/english.yaml and are decoded once by init().
// Every other table is derived from them by explicit composition:
//
//   - ordinal magnitudes: "<magnitude>th" for every magnitude word
//   - fractions: "half", "quarter" and the reciprocal of every ordinal above
//     the fraction threshold, in singular and "-s" plural spelling
//   - number words: the union of all tables with fixed precedence
//   - reverse words: value -> preferred spelling, for rendering
//   - split magnitudes: the word order used to segment phrases
//
// Tables are never modified after init. All functions are safe for
// concurrent use, and integers are returned as fresh copies.
package vocab

import (
	"fmt"
	"math/big"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/az-ai-labs/numwords/data"
)

const (
	ordinalSuffix = "th"
	pluralSuffix  = "s"

	// WordHundred is the only magnitude that groups units instead of
	// scaling a whole segment.
	WordHundred = "hundred"

	// WordHundredth is the ordinal form of WordHundred.
	WordHundredth = "hundredth"
)

type intWord struct {
	Word  string `yaml:"word"`
	Value int64  `yaml:"value"`
}

type magnitudeWord struct {
	Word     string `yaml:"word"`
	Exponent int    `yaml:"exponent"`
}

type fractionWord struct {
	Word  string  `yaml:"word"`
	Value float64 `yaml:"value"`
}

// source is the decoded form of english.yaml.
type source struct {
	Digits             []string        `yaml:"digits"`
	Teens              []intWord       `yaml:"teens"`
	Tens               []intWord       `yaml:"tens"`
	Magnitudes         []magnitudeWord `yaml:"magnitudes"`
	Ordinals           []intWord       `yaml:"ordinals"`
	FractionThreshold  int64           `yaml:"fraction_threshold"`
	IrregularFractions []fractionWord  `yaml:"irregular_fractions"`
}

// Value is a vocabulary value: an integer, or a fraction in (0, 1].
type Value struct {
	n    *big.Int
	frac float64
}

// IsFraction reports whether v is a fraction rather than an integer.
func (v Value) IsFraction() bool { return v.n == nil }

// Int returns a copy of the integer value, or nil for a fraction.
func (v Value) Int() *big.Int {
	if v.n == nil {
		return nil
	}
	return new(big.Int).Set(v.n)
}

// Fraction returns the fractional value. Zero for integers.
func (v Value) Fraction() float64 { return v.frac }

// Tables, populated by init().
var (
	digitWords        []string            // index = value
	cardinals         map[string]*big.Int // zero..nineteen, twenty..ninety
	magnitudes        map[string]int      // word -> exponent, hundred..decillion
	magnitudeOrder    []string            // ascending
	ordinals          map[string]*big.Int // first..ninetieth plus ordinal magnitudes
	ordinalMagnitudes map[string]int      // hundredth..decillionth -> exponent
	fractions         map[string]float64
	numberWords       map[string]Value
	reverseInts       map[string]string // decimal string -> word
	reverseFractions  map[float64]string
	splitMagnitudes   []string
	renderMagnitudes  []string
)

func init() {
	src, err := decode(data.EnglishVocab)
	if err != nil {
		panic(err)
	}
	build(src)
}

// decode parses and checks the vocabulary asset.
func decode(raw []byte) (source, error) {
	var src source
	if err := yaml.Unmarshal(raw, &src); err != nil {
		return source{}, fmt.Errorf("vocab: decode: %w", err)
	}
	if len(src.Digits) != 10 {
		return source{}, fmt.Errorf("vocab: want 10 digit words, got %d", len(src.Digits))
	}
	if len(src.Magnitudes) == 0 || src.Magnitudes[0].Word != WordHundred {
		return source{}, fmt.Errorf("vocab: magnitudes must start with %q", WordHundred)
	}
	for i := 1; i < len(src.Magnitudes); i++ {
		if src.Magnitudes[i].Exponent <= src.Magnitudes[i-1].Exponent {
			return source{}, fmt.Errorf("vocab: magnitude %q out of order", src.Magnitudes[i].Word)
		}
	}
	for _, f := range src.IrregularFractions {
		if f.Value <= 0 || f.Value > 1 {
			return source{}, fmt.Errorf("vocab: fraction %q out of range: %v", f.Word, f.Value)
		}
	}
	return src, nil
}

func build(src source) {
	digitWords = slices.Clone(src.Digits)

	cardinals = make(map[string]*big.Int, len(src.Digits)+len(src.Teens)+len(src.Tens))
	for i, w := range src.Digits {
		cardinals[w] = big.NewInt(int64(i))
	}
	for _, w := range slices.Concat(src.Teens, src.Tens) {
		cardinals[w.Word] = big.NewInt(w.Value)
	}

	magnitudes = make(map[string]int, len(src.Magnitudes))
	ordinalMagnitudes = make(map[string]int, len(src.Magnitudes))
	magnitudeOrder = make([]string, 0, len(src.Magnitudes))
	for _, m := range src.Magnitudes {
		magnitudes[m.Word] = m.Exponent
		ordinalMagnitudes[m.Word+ordinalSuffix] = m.Exponent
		magnitudeOrder = append(magnitudeOrder, m.Word)
	}

	ordinals = make(map[string]*big.Int, len(src.Ordinals)+len(src.Magnitudes))
	for _, o := range src.Ordinals {
		ordinals[o.Word] = big.NewInt(o.Value)
	}
	for _, m := range src.Magnitudes {
		ordinals[m.Word+ordinalSuffix] = Pow10(m.Exponent)
	}

	// Derived fractions first, irregular ones last so they win on a value
	// collision in the reverse table (0.25 renders as "quarter").
	var fractionList []fractionWord
	for _, w := range orderedOrdinals(src) {
		n := ordinals[w]
		if n.Cmp(big.NewInt(src.FractionThreshold)) <= 0 {
			continue
		}
		// Nearest float64 to 1/n, so 1e-33 looks up "decillionth".
		f, _ := new(big.Rat).SetFrac(big.NewInt(1), n).Float64()
		fractionList = append(fractionList,
			fractionWord{Word: w, Value: f},
			fractionWord{Word: w + pluralSuffix, Value: f})
	}
	fractionList = append(fractionList, src.IrregularFractions...)

	fractions = make(map[string]float64, len(fractionList))
	for _, f := range fractionList {
		fractions[f.Word] = f.Value
	}

	// Union in ascending precedence: a later table shadows an earlier one.
	// Fractions shadow ordinals of the same spelling, so "third" is 1/3
	// here; ordinal readings go through Ordinal.
	type layer struct {
		words []string
		value func(string) Value
	}
	intValue := func(table map[string]*big.Int) func(string) Value {
		return func(w string) Value { return Value{n: table[w]} }
	}
	var teensAndTens []string
	for _, w := range slices.Concat(src.Teens, src.Tens) {
		teensAndTens = append(teensAndTens, w.Word)
	}
	var ordinalMagnitudeWords, fractionWords []string
	for _, m := range magnitudeOrder {
		ordinalMagnitudeWords = append(ordinalMagnitudeWords, m+ordinalSuffix)
	}
	for _, f := range fractionList {
		fractionWords = append(fractionWords, f.Word)
	}
	layers := []layer{
		{words: orderedOrdinals(src), value: intValue(ordinals)},
		{words: ordinalMagnitudeWords, value: intValue(ordinals)},
		{words: src.Digits, value: intValue(cardinals)},
		{words: fractionWords, value: func(w string) Value { return Value{frac: fractions[w]} }},
		{words: teensAndTens, value: intValue(cardinals)},
		{words: magnitudeOrder, value: func(w string) Value { return Value{n: Pow10(magnitudes[w])} }},
	}

	numberWords = make(map[string]Value)
	reverseInts = make(map[string]string)
	reverseFractions = make(map[float64]string)
	for _, l := range layers {
		for _, w := range l.words {
			v := l.value(w)
			numberWords[w] = v
			if strings.HasSuffix(w, pluralSuffix) {
				continue
			}
			if v.IsFraction() {
				reverseFractions[v.frac] = w
			} else {
				reverseInts[v.n.String()] = w
			}
		}
	}

	// Ordinal magnitudes before cardinal ones, each largest first. Hundred
	// never splits a phrase: it groups the units before it.
	splitMagnitudes = splitMagnitudes[:0]
	for i := len(magnitudeOrder) - 1; i > 0; i-- {
		splitMagnitudes = append(splitMagnitudes, magnitudeOrder[i]+ordinalSuffix)
	}
	for i := len(magnitudeOrder) - 1; i > 0; i-- {
		splitMagnitudes = append(splitMagnitudes, magnitudeOrder[i])
	}

	renderMagnitudes = append([]string{""}, magnitudeOrder[1:]...)
}

// orderedOrdinals returns the ordinal words in table order: the listed
// ordinals followed by the ordinal magnitudes.
func orderedOrdinals(src source) []string {
	words := make([]string, 0, len(src.Ordinals)+len(src.Magnitudes))
	for _, o := range src.Ordinals {
		words = append(words, o.Word)
	}
	for _, m := range src.Magnitudes {
		words = append(words, m.Word+ordinalSuffix)
	}
	return words
}

// Pow10 returns 10^exp as a new integer.
func Pow10(exp int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil)
}

// Digit returns the value of a single digit word ("zero".."nine").
func Digit(word string) (int, bool) {
	i := slices.Index(digitWords, word)
	return i, i >= 0
}

// DigitWord returns the word for digit d, or "" when d is not in 0..9.
func DigitWord(d int) string {
	if d < 0 || d >= len(digitWords) {
		return ""
	}
	return digitWords[d]
}

// Magnitude returns the power-of-ten exponent of a cardinal magnitude word,
// hundred included.
func Magnitude(word string) (int, bool) {
	exp, ok := magnitudes[word]
	return exp, ok
}

// OrdinalMagnitude returns the exponent of an ordinal magnitude word
// ("thousandth" -> 3).
func OrdinalMagnitude(word string) (int, bool) {
	exp, ok := ordinalMagnitudes[word]
	return exp, ok
}

// Ordinal returns the ordinal reading of word ("third" -> 3).
func Ordinal(word string) (*big.Int, bool) {
	n, ok := ordinals[word]
	if !ok {
		return nil, false
	}
	return new(big.Int).Set(n), true
}

// Fraction returns the fraction reading of word ("thirds" -> 1/3).
func Fraction(word string) (float64, bool) {
	f, ok := fractions[word]
	return f, ok
}

// Lookup returns the value of word in the combined table.
func Lookup(word string) (Value, bool) {
	v, ok := numberWords[word]
	if !ok {
		return Value{}, false
	}
	if v.n != nil {
		v.n = new(big.Int).Set(v.n)
	}
	return v, true
}

// IsNumberWord reports whether word is in any table.
func IsNumberWord(word string) bool {
	_, ok := numberWords[word]
	return ok
}

// IsSplitMagnitude reports whether word starts a new magnitude segment.
func IsSplitMagnitude(word string) bool {
	return slices.Contains(splitMagnitudes, word)
}

// SplitMagnitudes returns the segmentation order: ordinal magnitudes then
// cardinal magnitudes, each from largest to smallest, hundred excluded.
func SplitMagnitudes() []string {
	return slices.Clone(splitMagnitudes)
}

// RenderMagnitudes returns the suffix for each 3-digit group, least
// significant first: "", "thousand", "million", ..., "decillion".
func RenderMagnitudes() []string {
	return slices.Clone(renderMagnitudes)
}

// ReverseInt returns the preferred word for an integer value, if the value
// has one of its own (0..20, tens, hundred, thousand, million, ...).
func ReverseInt(n *big.Int) (string, bool) {
	w, ok := reverseInts[n.String()]
	return w, ok
}

// ReverseFraction returns the singular fraction word for f ("tenth" for 0.1).
func ReverseFraction(f float64) (string, bool) {
	w, ok := reverseFractions[f]
	return w, ok
}
