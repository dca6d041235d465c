package uamatch

// Result is the outcome of detecting a single User-Agent line in batch mode.
type Result struct {
	// Line is the 1-based line number within the input
	Line int

	UserAgent string

	// Browser is nil when no rule matched
	Browser *Browser `json:",omitempty"`
}

// Matched reports whether a rule fired for this line.
func (r Result) Matched() bool {
	return r.Browser != nil
}

// Unmatched counts results without a detected browser.
func Unmatched(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Matched() {
			n++
		}
	}
	return n
}
