package batch

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/az-ai-labs/numwords/internal/config"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// ReadItems reads one item per line. Blank lines and lines starting with
// "#" are skipped but still counted.
func ReadItems(r io.Reader) ([]Item, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var items []Item
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		items = append(items, Item{Line: line, Text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("batch: read line %d: %w", line+1, err)
	}
	return items, nil
}

// WriteResults encodes results to w in the given format: "text" writes
// one tab-separated line per result, "json" an indented array, "yaml" a
// sequence.
func WriteResults(w io.Writer, results []Result, format string) error {
	switch format {
	case config.FormatText, "":
		bw := bufio.NewWriter(w)
		for _, r := range results {
			if r.OK() {
				fmt.Fprintf(bw, "%d\t%s\t%s\n", r.Line, r.Input, r.Output)
			} else {
				fmt.Fprintf(bw, "%d\t%s\terror: %s\n", r.Line, r.Input, r.Error)
			}
		}
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("batch: write text: %w", err)
		}
		return nil

	case config.FormatJSON:
		if results == nil {
			results = []Result{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("batch: write json: %w", err)
		}
		return nil

	case config.FormatYAML:
		if results == nil {
			results = []Result{}
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("batch: write yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("batch: write yaml: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("batch: unknown format %q", format)
	}
}
