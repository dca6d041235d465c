package uamatch

import "fmt"

// Browser is a successful detection: the label of the rule that fired and
// the version captured by its single capture group.
type Browser struct {
	Name    string
	Version string
}

func (b Browser) String() string {
	return fmt.Sprintf("Browser: %s Version: %s", b.Name, b.Version)
}

// NoResult is printed when no rule matches an input.
const NoResult = "No result :/"
