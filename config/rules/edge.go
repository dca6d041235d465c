package rules

import (
	"github.com/uamatch/uamatch/config"
	"github.com/uamatch/uamatch/regexp"
)

// Edge matches the legacy EdgeHTML token. The major version must be exactly
// two digits, so edge/8.1 is not detected.
func Edge() *config.Rule {
	return &config.Rule{
		Label:       "Edge",
		Description: "Legacy Microsoft Edge (EdgeHTML), identified by an edge/<NN.N> token.",
		Regex:       regexp.MustCompile(`(?i)edge/(\d{2}\.\d+)`),
		Keywords:    []string{"edge/"},
	}
}
