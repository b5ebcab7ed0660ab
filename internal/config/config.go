package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"benritz/ormgen/internal/errs"
	"benritz/ormgen/internal/generate"

	"gopkg.in/yaml.v3"
)

type Root struct {
	Source SourceSection `yaml:"source"`
	Output OutputSection `yaml:"output"`
	Tables TablesSection `yaml:"tables"`
}

type SourceSection struct {
	URL      string `yaml:"url"`
	Dialect  string `yaml:"dialect"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type OutputSection struct {
	Target        string   `yaml:"target"`
	Derives       []string `yaml:"derives"`
	QualifyFields *bool    `yaml:"qualify_fields"`
	SortTables    bool     `yaml:"sort_tables"`
	Package       string   `yaml:"package"`
}

type TablesSection struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// LoadFile loads a config file. !include paths resolve relative to the
// file's directory.
func LoadFile(path string) (*Root, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.NewConfigError("config", path, err.Error())
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errs.NewConfigError("config", path, err.Error())
	}
	return load(raw, filepath.Dir(abs), map[string]struct{}{abs: {}})
}

// Load reads a config document. !include paths resolve relative to the
// working directory.
func Load(r io.Reader) (*Root, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errs.NewConfigError("config", nil, err.Error())
	}
	return load(raw, ".", map[string]struct{}{})
}

func load(raw []byte, baseDir string, seen map[string]struct{}) (*Root, error) {
	expanded, err := expandIncludes(raw, baseDir, seen)
	if err != nil {
		return nil, errs.NewConfigError("config", nil, err.Error())
	}
	if len(bytes.TrimSpace(expanded)) == 0 {
		return &Root{}, nil
	}
	if err := validateBytes(expanded); err != nil {
		return nil, errs.NewConfigError("config", nil, err.Error())
	}
	var cfg Root
	dec := yaml.NewDecoder(bytes.NewReader(expanded))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, errs.NewConfigError("config", nil, err.Error())
	}
	expandEnv(&cfg)
	return &cfg, nil
}

func expandEnv(cfg *Root) {
	cfg.Source.URL = os.ExpandEnv(cfg.Source.URL)
	cfg.Source.Username = os.ExpandEnv(cfg.Source.Username)
	cfg.Source.Password = os.ExpandEnv(cfg.Source.Password)
}

// Options converts the values present in the file into generate options.
// Absent values leave the generator defaults in place.
func (c *Root) Options() []generate.Option {
	var opts []generate.Option
	if c.Source.URL != "" {
		opts = append(opts, generate.WithSourceURL(c.Source.URL))
	}
	if c.Source.Dialect != "" {
		opts = append(opts, generate.WithDialect(c.Source.Dialect))
	}
	if c.Source.Username != "" {
		opts = append(opts, generate.WithUsername(c.Source.Username))
	}
	if c.Source.Password != "" {
		opts = append(opts, generate.WithPassword(c.Source.Password))
	}
	if c.Output.Target != "" {
		opts = append(opts, generate.WithTarget(c.Output.Target))
	}
	if len(c.Output.Derives) > 0 {
		opts = append(opts, generate.WithDerives(c.Output.Derives...))
	}
	if c.Output.QualifyFields != nil {
		opts = append(opts, generate.WithQualifiedFields(*c.Output.QualifyFields))
	}
	if c.Output.SortTables {
		opts = append(opts, generate.WithSortTables(true))
	}
	if c.Output.Package != "" {
		opts = append(opts, generate.WithPackage(c.Output.Package))
	}
	if len(c.Tables.Include) > 0 {
		opts = append(opts, generate.WithInclude(c.Tables.Include...))
	}
	if len(c.Tables.Exclude) > 0 {
		opts = append(opts, generate.WithExclude(c.Tables.Exclude...))
	}
	return opts
}
