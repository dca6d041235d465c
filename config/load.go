package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goversion "github.com/hashicorp/go-version"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	"github.com/uamatch/uamatch/logging"
	"github.com/uamatch/uamatch/regexp"
)

// FileConfig is the on-disk shape of a rule file.
type FileConfig struct {
	// MinVersion is the oldest uamatch release able to load this file.
	MinVersion string     `toml:"minVersion" yaml:"minVersion"`
	Rules      []FileRule `toml:"rules" yaml:"rules"`

	currentVersion string
}

// FileRule is a rule as written in a rule file, before compilation.
type FileRule struct {
	Label       string   `toml:"label" yaml:"label"`
	Description string   `toml:"description" yaml:"description"`
	Regex       string   `toml:"regex" yaml:"regex"`
	Keywords    []string `toml:"keywords" yaml:"keywords"`
}

// SetCurrentVersion tells the config which uamatch version is loading it,
// so MinVersion can be enforced by Translate.
func (fc *FileConfig) SetCurrentVersion(v string) {
	fc.currentVersion = v
}

// Translate checks the version requirement and compiles every rule.
func (fc *FileConfig) Translate() ([]*Rule, error) {
	if err := fc.checkVersion(); err != nil {
		return nil, err
	}

	rules := make([]*Rule, 0, len(fc.Rules))
	for i, fr := range fc.Rules {
		re, err := regexp.Compile(fr.Regex)
		if err != nil {
			return nil, fmt.Errorf("rules[%d] (%s): %w", i, fr.Label, err)
		}
		keywords := make([]string, 0, len(fr.Keywords))
		for _, k := range fr.Keywords {
			keywords = append(keywords, strings.ToLower(k))
		}
		r := &Rule{
			Label:       fr.Label,
			Description: fr.Description,
			Regex:       re,
			Keywords:    keywords,
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("rules[%d]: %w", i, err)
		}
		rules = append(rules, r)
	}
	return rules, nil
}

func (fc *FileConfig) checkVersion() error {
	if fc.MinVersion == "" || fc.currentVersion == "" {
		return nil
	}
	required, err := goversion.NewVersion(fc.MinVersion)
	if err != nil {
		return fmt.Errorf("invalid minVersion %q: %w", fc.MinVersion, err)
	}
	current, err := goversion.NewVersion(fc.currentVersion)
	if err != nil {
		logging.Warn().
			Str("version", fc.currentVersion).
			Msg("unable to parse running version, skipping minVersion check")
		return nil
	}
	if current.LessThan(required) {
		return fmt.Errorf("%w: requires %s, running %s", ErrVersionTooOld, required, current)
	}
	return nil
}

// Parse decodes a rule file. format is "toml" or "yaml".
func Parse(data []byte, format string) (*FileConfig, error) {
	var fc FileConfig
	switch format {
	case "toml":
		k := koanf.New(".")
		if err := k.Load(rawbytes.Provider(data), toml.Parser()); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
		if err := k.UnmarshalWithConf("", &fc, koanf.UnmarshalConf{Tag: "toml"}); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &fc, nil
}

// LoadFile reads the rule file at path and compiles its rules. The format is
// chosen from the file extension.
func LoadFile(path, currentVersion string) ([]*Rule, error) {
	format, err := formatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule file: %w", err)
	}
	fc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	fc.SetCurrentVersion(currentVersion)
	rules, err := fc.Translate()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logging.Debug().Str("path", path).Int("rules", len(rules)).Msg("loaded rule file")
	return rules, nil
}

func formatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml", nil
	case ".yaml", ".yml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}
