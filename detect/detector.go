package detect

import (
	ahocorasick "github.com/BobuSumisu/aho-corasick"

	"github.com/uamatch/uamatch"
	"github.com/uamatch/uamatch/config"
	"github.com/uamatch/uamatch/logging"
)

// Detector applies a Registry to User-Agent strings.
//
// Rules are tried in registry order and the first rule whose pattern occurs
// anywhere in the input wins. A keyword prefilter skips rules whose keywords
// are all absent. Keywords and input are compared after Unicode simple case
// folding, the same equivalence (?i) patterns use, so a rule is never skipped
// when its pattern would match. A Detector holds no mutable state and is safe
// for concurrent use.
type Detector struct {
	registry *config.Registry
	rules    []config.Rule

	// keywords holds the case folded keywords of rules[i]
	keywords [][]string

	// prefilter is an aho-corasick trie over the case folded keywords of
	// every rule in the registry
	prefilter *ahocorasick.Trie
}

func NewDetector(reg *config.Registry) *Detector {
	d := &Detector{
		registry: reg,
		rules:    reg.Entries(),
	}
	var all []string
	d.keywords = make([][]string, len(d.rules))
	for i, rule := range d.rules {
		for _, k := range rule.Keywords {
			folded := foldString(k)
			d.keywords[i] = append(d.keywords[i], folded)
			all = append(all, folded)
		}
	}
	if len(all) > 0 {
		d.prefilter = ahocorasick.NewTrieBuilder().AddStrings(all).Build()
	}
	return d
}

func (d *Detector) Registry() *config.Registry {
	return d.registry
}

// Detect returns the browser identified by the first matching rule. The
// boolean is false when no rule matches, which is a normal outcome.
func (d *Detector) Detect(ua string) (uamatch.Browser, bool) {
	if ua == "" {
		return uamatch.Browser{}, false
	}

	present := d.presentKeywords(ua)
	for i, rule := range d.rules {
		if len(d.keywords[i]) > 0 && !anyPresent(d.keywords[i], present) {
			continue
		}
		m := rule.Regex.FindStringSubmatch(ua)
		if m == nil {
			continue
		}
		logging.Trace().Str("rule", rule.Label).Str("version", m[1]).Msg("rule matched")
		return uamatch.Browser{Name: rule.Label, Version: m[1]}, true
	}
	return uamatch.Browser{}, false
}

func (d *Detector) presentKeywords(ua string) map[string]struct{} {
	present := make(map[string]struct{})
	if d.prefilter == nil {
		return present
	}
	for _, m := range d.prefilter.MatchString(foldString(ua)) {
		present[string(m.Match())] = struct{}{}
	}
	return present
}

func anyPresent(keywords []string, present map[string]struct{}) bool {
	for _, k := range keywords {
		if _, ok := present[k]; ok {
			return true
		}
	}
	return false
}
