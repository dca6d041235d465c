package rules

import "github.com/uamatch/uamatch/config"

// Default returns the built-in rules in evaluation order. Edge is registered
// before Chrome because legacy Edge User-Agents also carry a Chrome/ token.
func Default() []*config.Rule {
	return []*config.Rule{
		Firefox(),
		Edge(),
		Chrome(),
	}
}

// DefaultRegistry builds a registry from the built-in rules followed by
// extra, in that order. A built-in pattern that does not compile panics in
// its constructor; any rule that fails validation, such as an extra rule
// reusing a built-in label, is returned as an error.
func DefaultRegistry(extra ...*config.Rule) (*config.Registry, error) {
	return config.Build(append(Default(), extra...)...)
}
