package rules

import (
	"github.com/uamatch/uamatch/config"
	"github.com/uamatch/uamatch/regexp"
)

func Chrome() *config.Rule {
	return &config.Rule{
		Label:       "Chrome",
		Description: "Google Chrome or Chromium, identified by a chrome/ or chromium/ product token.",
		Regex:       regexp.MustCompile(`(?i)(?:chromium|chrome)/([\d\.]+)`),
		Keywords:    []string{"chromium/", "chrome/"},
	}
}
