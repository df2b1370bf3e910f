// internal/output/output.go
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"passgen/pkg/api"
)

// Supported output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// StreamText writes one candidate per line as they arrive.
func StreamText(w io.Writer, in <-chan string) error {
	for s := range in {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

// StreamJSONL writes one JSON-encoded candidate per line.
func StreamJSONL(w io.Writer, in <-chan string) error {
	enc := json.NewEncoder(w)
	for s := range in {
		if err := enc.Encode(s); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the stable v1 wordlist document, pretty-indented.
func WriteJSON(w io.Writer, list []string) error {
	doc := api.WordlistV1{Count: len(list), Candidates: list}
	if doc.Candidates == nil {
		doc.Candidates = []string{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
