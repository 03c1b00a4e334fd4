package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// TechniqueConfig configures one technique instance. An empty Template
// selects the technique's built-in template; a nil Enabled means enabled.
type TechniqueConfig struct {
	Name       string         `yaml:"name" toml:"name" json:"name"`
	Template   string         `yaml:"template" toml:"template" json:"template,omitempty"`
	Parameters map[string]any `yaml:"parameters" toml:"parameters" json:"parameters,omitempty"`
	Priority   int            `yaml:"priority" toml:"priority" json:"priority" validate:"min=-100,max=100"`
	Enabled    *bool          `yaml:"enabled" toml:"enabled" json:"enabled,omitempty"`
}

// IsEnabled reports whether the technique should run.
func (tc TechniqueConfig) IsEnabled() bool {
	return tc.Enabled == nil || *tc.Enabled
}

// ValidateTechnique checks a TechniqueConfig's field constraints.
func ValidateTechnique(tc TechniqueConfig) error {
	if err := validate.Struct(tc); err != nil {
		return fmt.Errorf("invalid technique config %q: %w", tc.Name, err)
	}
	return nil
}

// techniquesFile is the on-disk layout: a table of technique ID to config.
type techniquesFile struct {
	Techniques map[string]TechniqueConfig `yaml:"techniques" toml:"techniques"`
}

// LoadTechniqueConfigs reads per-technique configuration from a YAML (.yaml,
// .yml) or TOML (.toml) file. Entries without a name take their ID as name.
//
//	techniques:
//	  chain_of_thought:
//	    priority: 5
//	    parameters:
//	      enhanced_mode: true
//	  emotional_appeal:
//	    enabled: false
func LoadTechniqueConfigs(path string) (map[string]TechniqueConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read technique config %s: %w", path, err)
	}

	var file techniquesFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse YAML file %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &file); err != nil {
			return nil, fmt.Errorf("failed to parse TOML file %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported technique config format: %s", ext)
	}

	out := make(map[string]TechniqueConfig, len(file.Techniques))
	for id, tc := range file.Techniques {
		if tc.Name == "" {
			tc.Name = id
		}
		if err := ValidateTechnique(tc); err != nil {
			return nil, err
		}
		out[id] = tc
	}
	return out, nil
}
