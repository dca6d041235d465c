package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/uamatch/uamatch/regexp"
)

// Rule pairs a browser label with the pattern that detects it.
type Rule struct {
	// Label is reported as the browser name when the rule fires, e.g. "Firefox".
	Label string

	// Description is a human readable explanation of what the rule targets.
	Description string

	// Regex is searched for anywhere in the input. Its single capture
	// group is the version.
	Regex *regexp.Regexp

	// Keywords are lowercase literals, at least one of which occurs, up to
	// case folding, in every string Regex can match. Rules with no keywords
	// are always evaluated.
	Keywords []string
}

// Validate checks the invariants every registered rule must hold.
func (r *Rule) Validate() error {
	if r.Label == "" {
		return errors.New("rule label is required")
	}
	if r.Regex == nil {
		return fmt.Errorf("%s: regex is required", r.Label)
	}
	if n := r.Regex.NumSubexp(); n != 1 {
		return fmt.Errorf("%s: %w: %q has %d", r.Label, ErrCaptureGroups, r.Regex.String(), n)
	}
	for _, k := range r.Keywords {
		if k == "" {
			return fmt.Errorf("%s: empty keyword", r.Label)
		}
		if k != strings.ToLower(k) {
			return fmt.Errorf("%s: keyword %q must be lowercase", r.Label, k)
		}
	}
	return nil
}
