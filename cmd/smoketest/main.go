package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/az-ai-labs/numwords/internal/tokenizer"
	"github.com/az-ai-labs/numwords/numtext"
)

const (
	maxWorkers   = 4
	expectedArgs = 3
	shardSize    = 10_000
	maxReported  = 20
)

type failure struct {
	value  string
	phrase string
	got    string
}

type Stats struct {
	mu           sync.Mutex
	checked      int
	intOK        int
	intFail      int
	decimalOK    int
	decimalFail  int
	reconFail    int
	tokenCounts  map[tokenizer.TokenType]int
	failures     []failure
	longestWords int
	longest      string
}

type shardState struct {
	checked      int
	intOK        int
	intFail      int
	decimalOK    int
	decimalFail  int
	reconFail    int
	tokenCounts  map[tokenizer.TokenType]int
	failures     []failure
	longestWords int
	longest      string
}

func main() {
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <from> <to>\n", os.Args[0])
		os.Exit(1)
	}

	from, err1 := strconv.ParseInt(os.Args[1], 10, 64)
	to, err2 := strconv.ParseInt(os.Args[2], 10, 64)
	if err1 != nil || err2 != nil || from > to {
		fmt.Fprintf(os.Stderr, "Invalid range %q..%q\n", os.Args[1], os.Args[2])
		os.Exit(1)
	}

	stats := &Stats{
		tokenCounts: make(map[tokenizer.TokenType]int),
	}

	fmt.Fprintf(os.Stderr, "Checking %d values\n", to-from+1)
	start := time.Now()

	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for lo := from; lo <= to; lo += shardSize {
		hi := to
		if uint64(to-lo) >= shardSize {
			hi = lo + shardSize - 1
		}
		wg.Add(1)
		semaphore <- struct{}{}
		go func(lo, hi int64) {
			defer wg.Done()
			defer func() { <-semaphore }()
			processShard(lo, hi, stats)
		}(lo, hi)
		if hi == to {
			break
		}
	}

	wg.Wait()

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(stats)

	if stats.intFail+stats.decimalFail+stats.reconFail > 0 {
		os.Exit(1)
	}
}

// processShard renders every value in [lo, hi], parses the phrase back and
// checks that the tokenizer reconstructs the phrase byte for byte. Each
// value is also checked as a hundredth ("12.34") in digit mode.
func processShard(lo, hi int64, stats *Stats) {
	s := &shardState{tokenCounts: make(map[tokenizer.TokenType]int)}

	for v := lo; ; v++ {
		s.checkValue(v)
		if v == hi {
			break
		}
	}

	mergeShardState(s, stats)
}

func (s *shardState) checkValue(v int64) {
	s.checked++

	phrase := numtext.RenderInt(v)
	s.tokenize(phrase)
	n, err := numtext.Parse(phrase)
	if got, ok := n.Int64(); err == nil && ok && got == v {
		s.intOK++
	} else {
		s.intFail++
		s.fail(strconv.FormatInt(v, 10), phrase, n, err)
	}

	f := float64(v) / 100
	phrase = numtext.RenderFloat(f, numtext.DigitWords)
	n, err = numtext.Parse(phrase)
	if err == nil && n.Float64() == f {
		s.decimalOK++
	} else {
		s.decimalFail++
		s.fail(strconv.FormatFloat(f, 'f', -1, 64), phrase, n, err)
	}
}

func (s *shardState) tokenize(phrase string) {
	tokens := tokenizer.Tokens(phrase)

	var sb strings.Builder
	sb.Grow(len(phrase))
	words := 0
	for _, tok := range tokens {
		s.tokenCounts[tok.Type]++
		sb.WriteString(tok.Text)
		if tok.Type == tokenizer.Word {
			words++
		}
	}
	if sb.String() != phrase {
		s.reconFail++
		pos, got, want := firstDivergence(phrase, sb.String())
		fmt.Fprintf(os.Stderr, "RECON_FAIL: %q: first divergence at byte %d (got 0x%02x, want 0x%02x)\n",
			phrase, pos, got, want)
	}
	if words > s.longestWords {
		s.longestWords = words
		s.longest = phrase
	}
}

func (s *shardState) fail(value, phrase string, n numtext.Number, err error) {
	if len(s.failures) >= maxReported {
		return
	}
	got := n.String()
	if err != nil {
		got = err.Error()
	}
	s.failures = append(s.failures, failure{value: value, phrase: phrase, got: got})
}

func mergeShardState(s *shardState, stats *Stats) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	stats.checked += s.checked
	stats.intOK += s.intOK
	stats.intFail += s.intFail
	stats.decimalOK += s.decimalOK
	stats.decimalFail += s.decimalFail
	stats.reconFail += s.reconFail

	for tokenType, count := range s.tokenCounts {
		stats.tokenCounts[tokenType] += count
	}
	for _, f := range s.failures {
		if len(stats.failures) < maxReported {
			stats.failures = append(stats.failures, f)
		}
	}
	if s.longestWords > stats.longestWords {
		stats.longestWords = s.longestWords
		stats.longest = s.longest
	}
}

// firstDivergence finds the byte position where two strings first differ.
// Returns the position and the differing bytes from each string.
func firstDivergence(original, reconstructed string) (pos int, got, want byte) {
	n := min(len(original), len(reconstructed))
	for i := range n {
		if original[i] != reconstructed[i] {
			return i, reconstructed[i], original[i]
		}
	}
	pos = n
	if pos < len(reconstructed) {
		got = reconstructed[pos]
	}
	if pos < len(original) {
		want = original[pos]
	}
	return pos, got, want
}

func printStats(stats *Stats) {
	fmt.Printf("Values checked:          %d\n", stats.checked)
	fmt.Printf("Integer round trip OK:   %d\n", stats.intOK)
	fmt.Printf("Integer round trip FAIL: %d\n", stats.intFail)
	fmt.Printf("Decimal round trip OK:   %d\n", stats.decimalOK)
	fmt.Printf("Decimal round trip FAIL: %d\n", stats.decimalFail)
	fmt.Printf("Reconstruction FAIL:     %d\n", stats.reconFail)
	fmt.Printf("Longest phrase:          %d words (%q)\n", stats.longestWords, stats.longest)
	fmt.Println()

	if len(stats.failures) > 0 {
		sort.Slice(stats.failures, func(i, j int) bool { return stats.failures[i].value < stats.failures[j].value })
		fmt.Println("First failures:")
		for _, f := range stats.failures {
			fmt.Printf("  %s -> %q -> %s\n", f.value, f.phrase, f.got)
		}
		fmt.Println()
	}

	totalTokens := 0
	for _, count := range stats.tokenCounts {
		totalTokens += count
	}

	fmt.Println("Token type distribution:")
	for _, tt := range []tokenizer.TokenType{tokenizer.Word, tokenizer.Number, tokenizer.Punctuation, tokenizer.Space, tokenizer.Symbol} {
		printTokenTypeStats(tt, stats.tokenCounts, totalTokens)
	}
}

func printTokenTypeStats(tokenType tokenizer.TokenType, counts map[tokenizer.TokenType]int, total int) {
	count := counts[tokenType]
	percentage := 0.0
	if total > 0 {
		percentage = float64(count) / float64(total) * 100
	}
	fmt.Printf("  %-15s %d  (%.1f%%)\n", tokenType.String()+":", count, percentage)
}
