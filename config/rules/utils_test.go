package rules

import (
	"fmt"
	"strings"

	"github.com/lucasjones/reggen"

	"github.com/uamatch/uamatch/config"
)

// newVersion generates a random version string matching pattern.
func newVersion(pattern string) string {
	v, err := reggen.Generate(pattern, 4)
	if err != nil {
		panic(fmt.Sprintf("rules: generate version from %q: %s", pattern, err))
	}
	return v
}

// generateSampleUserAgents embeds product/version into a handful of
// realistic User-Agent shapes and case variants.
func generateSampleUserAgents(product, version string) []string {
	token := product + "/" + version
	return []string{
		token,
		strings.ToLower(token),
		strings.ToUpper(token),
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) " + token,
		"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) " + token + " Safari/537.36",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7; " + token + ")",
	}
}

// validate checks that r is a well formed rule, that it fires with a
// non-empty version on every true positive and stays silent on every false
// positive. A rule that fails is a programming error, so validate panics.
func validate(r config.Rule, truePositives []string, falsePositives []string) *config.Rule {
	if err := r.Validate(); err != nil {
		panic(fmt.Sprintf("rules: %s", err))
	}
	for _, tp := range truePositives {
		m := r.Regex.FindStringSubmatch(tp)
		if len(m) < 2 || m[1] == "" {
			panic(fmt.Sprintf("rules: %s: failed to detect true positive %q", r.Label, tp))
		}
		if !containsKeyword(tp, r.Keywords) {
			panic(fmt.Sprintf("rules: %s: true positive %q contains none of the keywords %v", r.Label, tp, r.Keywords))
		}
	}
	for _, fp := range falsePositives {
		if r.Regex.MatchString(fp) {
			panic(fmt.Sprintf("rules: %s: matched false positive %q", r.Label, fp))
		}
	}
	return &r
}

func containsKeyword(s string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	s = strings.ToLower(s)
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
