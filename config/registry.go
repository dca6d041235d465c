package config

import (
	"fmt"
	"slices"
	"strings"
)

// Registry is the immutable, ordered set of rules known to the detector.
//
// Entries are evaluated in insertion order and the first rule that matches
// wins. When an input could satisfy several rules, the earlier registration
// decides the label, so the result is the same on every run.
type Registry struct {
	rules []Rule

	// keywordToRules maps a keyword to the labels of the rules that declare it.
	keywordToRules map[string][]string

	// noKeywordRules lists labels of rules that must always be evaluated.
	noKeywordRules []string
}

// Build validates rules and assembles them into a Registry, preserving order.
// Rules are copied; later changes to the arguments do not affect the registry.
func Build(rules ...*Rule) (*Registry, error) {
	reg := &Registry{
		rules:          make([]Rule, 0, len(rules)),
		keywordToRules: make(map[string][]string),
	}
	seen := make(map[string]struct{}, len(rules))
	for i, r := range rules {
		if r == nil {
			return nil, fmt.Errorf("rule %d: nil rule", i)
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		if _, ok := seen[r.Label]; ok {
			return nil, fmt.Errorf("rule %d: %w: %s", i, ErrDuplicateLabel, r.Label)
		}
		seen[r.Label] = struct{}{}

		rule := *r
		rule.Keywords = slices.Clone(r.Keywords)
		reg.rules = append(reg.rules, rule)

		if len(rule.Keywords) == 0 {
			reg.noKeywordRules = append(reg.noKeywordRules, rule.Label)
			continue
		}
		for _, k := range rule.Keywords {
			if !slices.Contains(reg.keywordToRules[k], rule.Label) {
				reg.keywordToRules[k] = append(reg.keywordToRules[k], rule.Label)
			}
		}
	}
	return reg, nil
}

// MustBuild is like Build but panics when a rule is invalid. Use it for
// rules compiled into the binary, where a bad rule is a programming error.
func MustBuild(rules ...*Rule) *Registry {
	reg, err := Build(rules...)
	if err != nil {
		panic("config: invalid rule registry: " + err.Error())
	}
	return reg
}

// Entries returns the rules in evaluation order. The returned slice is a
// copy; the rules themselves must be treated as read-only.
func (r *Registry) Entries() []Rule {
	return slices.Clone(r.rules)
}

func (r *Registry) Len() int {
	return len(r.rules)
}

// Labels returns the rule labels in evaluation order.
func (r *Registry) Labels() []string {
	labels := make([]string, len(r.rules))
	for i, rule := range r.rules {
		labels[i] = rule.Label
	}
	return labels
}

// Keywords returns every declared keyword, sorted.
func (r *Registry) Keywords() []string {
	keywords := make([]string, 0, len(r.keywordToRules))
	for k := range r.keywordToRules {
		keywords = append(keywords, k)
	}
	slices.Sort(keywords)
	return keywords
}

func (r *Registry) String() string {
	return "Registry[" + strings.Join(r.Labels(), ", ") + "]"
}
