// internal/input/input.go
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"passgen-core/orderedset"
)

// Words returns the base words from either an inline comma-separated list or
// a file path ('-' = stdin). Entries are trimmed, blanks dropped, and the
// result deduplicated preserving first-seen order.
func Words(inline, path string, stdin io.Reader) ([]string, error) {
	if inline != "" {
		return dedupe(strings.Split(inline, ",")), nil
	}
	if path == "-" {
		return readWords(stdin, "stdin")
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer func() { _ = fh.Close() }()
	return readWords(fh, path)
}

func readWords(r io.Reader, name string) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input %s: %w", name, err)
	}
	return dedupe(lines), nil
}

func dedupe(raw []string) []string {
	set := orderedset.NewSized(len(raw))
	for _, w := range raw {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		set.Add(w)
	}
	return set.Values()
}
