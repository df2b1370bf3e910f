// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passgen-core/casing"
	"passgen-core/policy"
)

const validJSON = `{
  "case_variants": ["lower", "{word_tc}"],
  "separators": ["-", "_"],
  "decorations": {"special_chars": ["!", "#"], "num_seq": ["123"]},
  "seasons": ["winter", "summer"],
  "quarters": ["Q1", "Q2"],
  "patterns": {
    "simple": ["{custom_word}{year}"],
    "decorated": ["{custom_word}{separators}{special_chars}"]
  },
  "transformations": {"a": ["4", "@"], "E": ["3"]},
  "policy_requirements": ["uppercase", "number", "strength"]
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJSON(t *testing.T) {
	c, err := Load(writeTemp(t, "conf.json", validJSON))
	require.NoError(t, err)

	forms, err := c.CaseForms()
	require.NoError(t, err)
	assert.Equal(t, casing.Forms{casing.Lower, casing.Title}, forms)

	table, err := c.LeetTable()
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "@"}, table['a'])
	assert.Equal(t, []string{"3"}, table['e'], "uppercase key folds to lowercase")

	reqs, unknown := c.Policy()
	assert.Equal(t, []policy.Requirement{policy.RequireUppercase, policy.RequireNumber}, reqs)
	assert.Equal(t, []string{"strength"}, unknown)
}

func TestLoadYAML(t *testing.T) {
	yamlConf := `
case_variants: [lower, upper]
separators: ["-"]
decorations:
  special_chars: ["!"]
  num_seq: ["01"]
seasons: [spring]
quarters: [Q3]
patterns:
  basic:
    - "{custom_word}{year}"
transformations:
  o: ["0"]
policy_requirements: []
`
	c, err := Load(writeTemp(t, "conf.yaml", yamlConf))
	require.NoError(t, err)
	assert.Equal(t, []string{"-"}, c.Separators)
	assert.Equal(t, []string{"{custom_word}{year}"}, c.Patterns["basic"])
}

func TestLoadMissingKey(t *testing.T) {
	// Drop seasons from the valid config.
	conf := `{
  "case_variants": [],
  "separators": [],
  "decorations": {"special_chars": [], "num_seq": []},
  "quarters": [],
  "patterns": {},
  "transformations": {},
  "policy_requirements": []
}`
	_, err := Load(writeTemp(t, "conf.json", conf))
	var kerr *KeyError
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, "seasons", kerr.Key)
}

func TestLoadBadCaseVariant(t *testing.T) {
	conf := `{
  "case_variants": ["camel"],
  "separators": [],
  "decorations": {"special_chars": [], "num_seq": []},
  "seasons": [],
  "quarters": [],
  "patterns": {},
  "transformations": {},
  "policy_requirements": []
}`
	_, err := Load(writeTemp(t, "conf.json", conf))
	var kerr *KeyError
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, "case_variants", kerr.Key)
}

func TestLoadBadTransformationKey(t *testing.T) {
	conf := `{
  "case_variants": [],
  "separators": [],
  "decorations": {"special_chars": [], "num_seq": []},
  "seasons": [],
  "quarters": [],
  "patterns": {},
  "transformations": {"ab": ["x"]},
  "policy_requirements": []
}`
	_, err := Load(writeTemp(t, "conf.json", conf))
	var kerr *KeyError
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, "transformations", kerr.Key)
}

func TestLoadMalformedJSON(t *testing.T) {
	_, err := Load(writeTemp(t, "conf.json", "{not json"))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestTemplateGroupsSorted(t *testing.T) {
	c, err := Load(writeTemp(t, "conf.json", validJSON))
	require.NoError(t, err)

	groups := c.TemplateGroups()
	require.Len(t, groups, 2)
	assert.Equal(t, "decorated", groups[0].Name)
	assert.Equal(t, "simple", groups[1].Name)
	assert.Equal(t, []string{"{custom_word}{year}"}, groups[1].Templates)
}

func TestPools(t *testing.T) {
	c, err := Load(writeTemp(t, "conf.json", validJSON))
	require.NoError(t, err)

	now := time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)
	pools := c.Pools(3, now)
	assert.Equal(t, []string{"2026", "2025", "2024"}, pools["year"])
	assert.Equal(t, []string{"-", "_"}, pools["separators"])
	assert.Equal(t, []string{"winter", "summer"}, pools["season"])
	assert.Equal(t, []string{"Q1", "Q2"}, pools["quarter"])
	assert.Equal(t, []string{"!", "#"}, pools["special_chars"])
	assert.Equal(t, []string{"123"}, pools["num_seq"])
}
