// internal/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"passgen-core/casing"
	"passgen-core/engine"
	"passgen-core/leet"
	"passgen-core/pattern"
	"passgen-core/policy"
)

// Decorations are static value pools mixed into patterns.
type Decorations struct {
	SpecialChars []string `json:"special_chars" yaml:"special_chars"`
	NumSeq       []string `json:"num_seq" yaml:"num_seq"`
}

// Config mirrors the on-disk generation config. All keys are required;
// presence is checked by Load.
type Config struct {
	CaseVariants       []string            `json:"case_variants" yaml:"case_variants"`
	Separators         []string            `json:"separators" yaml:"separators"`
	Decorations        Decorations         `json:"decorations" yaml:"decorations"`
	Seasons            []string            `json:"seasons" yaml:"seasons"`
	Quarters           []string            `json:"quarters" yaml:"quarters"`
	Patterns           map[string][]string `json:"patterns" yaml:"patterns"`
	Transformations    map[string][]string `json:"transformations" yaml:"transformations"`
	PolicyRequirements []string            `json:"policy_requirements" yaml:"policy_requirements"`
}

// KeyError reports a missing or invalid config key.
type KeyError struct {
	Key    string
	Reason string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("config: key %q %s", e.Key, e.Reason)
}

// Load reads and validates the config at path. Files ending in .yaml/.yml
// decode as YAML; everything else decodes as JSON.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var c Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &c)
	default:
		err = json.Unmarshal(raw, &c)
	}
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	required := []struct {
		key     string
		present bool
	}{
		{"case_variants", c.CaseVariants != nil},
		{"separators", c.Separators != nil},
		{"decorations.special_chars", c.Decorations.SpecialChars != nil},
		{"decorations.num_seq", c.Decorations.NumSeq != nil},
		{"seasons", c.Seasons != nil},
		{"quarters", c.Quarters != nil},
		{"patterns", c.Patterns != nil},
		{"transformations", c.Transformations != nil},
		{"policy_requirements", c.PolicyRequirements != nil},
	}
	for _, r := range required {
		if !r.present {
			return &KeyError{Key: r.key, Reason: "is required"}
		}
	}
	if _, err := c.CaseForms(); err != nil {
		return err
	}
	if _, err := c.LeetTable(); err != nil {
		return err
	}
	return nil
}

// CaseForms maps case_variants to case forms, accepting canonical names and
// the legacy template tokens.
func (c *Config) CaseForms() (casing.Forms, error) {
	forms := make(casing.Forms, 0, len(c.CaseVariants))
	for _, v := range c.CaseVariants {
		switch v {
		case "lower", "{word_lc}":
			forms = append(forms, casing.Lower)
		case "upper", "{word_uc}":
			forms = append(forms, casing.Upper)
		case "title", "{word_tc}":
			forms = append(forms, casing.Title)
		default:
			return nil, &KeyError{Key: "case_variants", Reason: fmt.Sprintf("has unknown form %q", v)}
		}
	}
	return forms, nil
}

// LeetTable converts transformations into a substitution table. Keys must be
// single ASCII characters; uppercase keys fold to lowercase. Keys are walked
// in sorted order so folding collisions resolve deterministically.
func (c *Config) LeetTable() (leet.Table, error) {
	keys := make([]string, 0, len(c.Transformations))
	for k := range c.Transformations {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := make(leet.Table, len(keys))
	for _, k := range keys {
		if len(k) != 1 || k[0] > 0x7f {
			return nil, &KeyError{Key: "transformations", Reason: fmt.Sprintf("key %q is not a single ASCII character", k)}
		}
		ch := k[0]
		if ch >= 'A' && ch <= 'Z' {
			ch += 'a' - 'A'
		}
		t[ch] = append(t[ch], c.Transformations[k]...)
	}
	return t, nil
}

// TemplateGroups returns the pattern groups in sorted name order so runs are
// reproducible regardless of map iteration order. Template order within a
// group is preserved from the file.
func (c *Config) TemplateGroups() []engine.TemplateGroup {
	names := make([]string, 0, len(c.Patterns))
	for n := range c.Patterns {
		names = append(names, n)
	}
	sort.Strings(names)

	groups := make([]engine.TemplateGroup, 0, len(names))
	for _, n := range names {
		groups = append(groups, engine.TemplateGroup{Name: n, Templates: c.Patterns[n]})
	}
	return groups
}

// Pools assembles the placeholder pools for one run. The year pool holds the
// current year in now plus years-1 previous ones, newest first. The reserved
// word slot is bound per base word by the engine, not here.
func (c *Config) Pools(years int, now time.Time) pattern.Pools {
	if years < 1 {
		years = 1
	}
	yearVals := make([]string, 0, years)
	for i := 0; i < years; i++ {
		yearVals = append(yearVals, strconv.Itoa(now.Year()-i))
	}
	return pattern.Pools{
		"year":                yearVals,
		"season":              c.Seasons,
		"quarter":             c.Quarters,
		"special_chars":       c.Decorations.SpecialChars,
		"num_seq":             c.Decorations.NumSeq,
		pattern.SeparatorSlot: c.Separators,
	}
}

// Policy returns the recognized policy requirements plus any unknown names
// so callers can warn without failing.
func (c *Config) Policy() ([]policy.Requirement, []string) {
	return policy.Parse(c.PolicyRequirements)
}
