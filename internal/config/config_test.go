package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benritz/ormgen/internal/errs"
	"benritz/ormgen/internal/generate"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad(t *testing.T) {
	t.Setenv("ORMGEN_TEST_PASSWORD", "tiger")

	cfg, err := Load(strings.NewReader(`
source:
  url: postgres://db.local/hr
  username: scott
  password: ${ORMGEN_TEST_PASSWORD}
output:
  target: go
  derives: [db, json]
  qualify_fields: false
  sort_tables: true
  package: hr
tables:
  include: ["EMP*"]
  exclude: ["*_OLD"]
`))
	require.NoError(t, err)

	assert.Equal(t, "postgres://db.local/hr", cfg.Source.URL)
	assert.Equal(t, "scott", cfg.Source.Username)
	assert.Equal(t, "tiger", cfg.Source.Password)
	assert.Equal(t, "go", cfg.Output.Target)
	assert.Equal(t, []string{"db", "json"}, cfg.Output.Derives)
	require.NotNil(t, cfg.Output.QualifyFields)
	assert.False(t, *cfg.Output.QualifyFields)
	assert.True(t, cfg.Output.SortTables)
	assert.Equal(t, "hr", cfg.Output.Package)
	assert.Equal(t, []string{"EMP*"}, cfg.Tables.Include)
	assert.Equal(t, []string{"*_OLD"}, cfg.Tables.Exclude)

	_, err = generate.New(cfg.Options()...)
	require.NoError(t, err)
}

func TestLoadEmpty(t *testing.T) {
	cfg, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, cfg.Options())
}

func TestLoadRejects(t *testing.T) {
	tests := map[string]string{
		"unknown key":    "source:\n  host: db.local\n",
		"unknown target": "output:\n  target: cobol\n",
		"bad package":    "output:\n  package: 2models\n",
		"bad dialect":    "source:\n  dialect: oracle\n",
		"wrong type":     "output:\n  sort_tables: yes please\n",
		"empty derive":   "output:\n  derives: [\"\"]\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrConfig)
		})
	}
}

func TestValidateBytesNamesPath(t *testing.T) {
	require.NoError(t, validateBytes([]byte("output:\n  target: go\n")))

	err := validateBytes([]byte("output:\n  target: cobol\n"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid config")
	assert.ErrorContains(t, err, "output.target")
}

func TestLoadFileWithIncludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "source.yaml", "url: sqlite:///tmp/hr.db\ndialect: sqlite\n")
	writeFile(t, dir, "audit.yaml", "- AUDIT_*\n- TMP_*\n")
	main := writeFile(t, dir, "ormgen.yaml", `
source: !include source.yaml
tables:
  exclude:
    - !include audit.yaml
    - "*_OLD"
`)

	cfg, err := LoadFile(main)
	require.NoError(t, err)
	assert.Equal(t, "sqlite:///tmp/hr.db", cfg.Source.URL)
	assert.Equal(t, "sqlite", cfg.Source.Dialect)
	assert.Equal(t, []string{"AUDIT_*", "TMP_*", "*_OLD"}, cfg.Tables.Exclude)
}

func TestLoadFileIncludeCycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "source: !include b.yaml\n")
	writeFile(t, dir, "b.yaml", "url: !include a.yaml\n")

	_, err := LoadFile(filepath.Join(dir, "a.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConfig)
	assert.ErrorContains(t, err, "include cycle")
}

func TestLoadFileIncludeMissing(t *testing.T) {
	dir := t.TempDir()
	main := writeFile(t, dir, "ormgen.yaml", "source: !include nowhere.yaml\n")

	_, err := LoadFile(main)
	assert.ErrorContains(t, err, "included file not found: nowhere.yaml")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, errs.ErrConfig)
}

func TestOptionsRespectDefaults(t *testing.T) {
	cfg := &Root{Source: SourceSection{URL: "sqlite://hr.db"}}
	assert.Len(t, cfg.Options(), 1)

	yes := true
	cfg.Output.QualifyFields = &yes
	assert.Len(t, cfg.Options(), 2)
}
