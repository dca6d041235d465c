package report

import (
	"fmt"
	"strings"

	"github.com/uamatch/uamatch"
)

// Formats lists the accepted values for --report-format.
var Formats = []string{"text", "json", "csv"}

// New returns the reporter for format.
func New(format string) (uamatch.Reporter, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return &TextReporter{}, nil
	case "json":
		return &JsonReporter{}, nil
	case "csv":
		return &CsvReporter{}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q (expected one of %s)", format, strings.Join(Formats, ", "))
	}
}
