// internal/writers/candidate.go
package writers

import (
	"fmt"
	"io"

	"passgen/internal/output"
)

// StartCandidateWriter spins up a writer goroutine consuming candidate
// strings. text and jsonl stream line by line; json buffers the full list to
// emit the document form. The returned error channel yields exactly one value
// after the input channel is closed and drained.
func StartCandidateWriter(out io.Writer, format string, bufSize int) (chan<- string, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan string, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case output.FormatJSON:
			var buf []string
			for s := range in {
				buf = append(buf, s)
			}
			err = output.WriteJSON(out, buf)

		case output.FormatJSONL:
			err = output.StreamJSONL(out, in)

		case output.FormatText:
			err = output.StreamText(out, in)

		default:
			err = fmt.Errorf("unsupported output %q", format)
		}

		// Drain after a mid-stream failure so producers never block.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
