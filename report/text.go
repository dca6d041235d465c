package report

import (
	"fmt"
	"io"

	"github.com/uamatch/uamatch"
)

// TextReporter writes one human readable line per result.
type TextReporter struct {
}

var _ uamatch.Reporter = (*TextReporter)(nil)

func (r *TextReporter) Write(w io.WriteCloser, results []uamatch.Result) error {
	for _, res := range results {
		outcome := uamatch.NoResult
		if res.Browser != nil {
			outcome = res.Browser.String()
		}
		if _, err := fmt.Fprintf(w, "%d: %s\n", res.Line, outcome); err != nil {
			return err
		}
	}
	return nil
}
