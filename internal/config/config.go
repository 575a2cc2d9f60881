package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for paymig. Pointer
// fields distinguish "unset" from zero values so CLI > local > global
// precedence can be resolved per field.
type FileConfig struct {
	Mode            *string  `yaml:"mode"`
	Languages       *string  `yaml:"languages"` // comma-separated language ids
	Include         *string  `yaml:"include"`
	Exclude         *string  `yaml:"exclude"`
	MaxBytes        *int64   `yaml:"max_bytes"`
	MinConfidence   *float64 `yaml:"min_confidence"`
	NoColor         *bool    `yaml:"no_color"`
	NoCache         *bool    `yaml:"no_cache"`
	DefaultExcludes *bool    `yaml:"default_excludes"`
	Snippets        *bool    `yaml:"snippets"`
	ChangedOnly     *bool    `yaml:"changed_only"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
// It supports .paymig.yml/.yaml and paymig.yml/.yaml.
func LoadLocal(repoRoot string) (FileConfig, error) {
	for _, name := range []string{".paymig.yml", ".paymig.yaml", "paymig.yml", "paymig.yaml"} {
		p := filepath.Join(repoRoot, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return FileConfig{}, errors.New("no local config")
}

// LoadGlobal reads the user-level config under XDG_CONFIG_HOME (or the
// platform home directory fallback).
func LoadGlobal() (FileConfig, error) {
	dir := configDir()
	if dir == "" {
		return FileConfig{}, errors.New("no config dir")
	}
	for _, name := range []string{"config.yml", "config.yaml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return FileConfig{}, errors.New("no global config")
}

func configDir() string {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "paymig")
	}
	home, _ := os.UserHomeDir()
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "paymig")
}
