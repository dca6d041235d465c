package rules

import (
	"github.com/uamatch/uamatch/config"
	"github.com/uamatch/uamatch/regexp"
)

func Firefox() *config.Rule {
	return &config.Rule{
		Label:       "Firefox",
		Description: "Mozilla Firefox, identified by its firefox/<version> product token.",
		Regex:       regexp.MustCompile(`(?i)firefox/([\d\.]+)`),
		Keywords:    []string{"firefox/"},
	}
}
