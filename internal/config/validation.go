package config

import (
	_ "embed"
	"errors"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/encoding/yaml"
)

//go:embed config.cue
var configSchema string

// validateBytes checks an expanded ormgen config document against the
// #Config definition in config.cue. Errors name the offending path.
func validateBytes(raw []byte) error {
	cueCtx := cuecontext.New()
	schema := cueCtx.CompileString(configSchema, cue.Filename("config.cue"))
	if schema.Err() != nil {
		return fmt.Errorf("building ormgen config schema: %w", schema.Err())
	}

	yamlFile, err := yaml.Extract("ormgen.yaml", raw)
	if err != nil {
		return fmt.Errorf("decode yaml to cue: %w", err)
	}

	yamlData := cueCtx.BuildFile(yamlFile)
	if yamlData.Err() != nil {
		return fmt.Errorf("building yaml cue value: %w", yamlData.Err())
	}

	configField := schema.LookupPath(cue.ParsePath("config"))
	if !configField.Exists() {
		return errors.New("ormgen config schema has no config value")
	}

	unified := configField.Unify(yamlData)
	if err := unified.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
