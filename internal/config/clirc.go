package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// CLIConfig is the optional `.decafrc.yaml` the CLI reads from the current
// directory. Nothing in the semantic core depends on it — it only tunes
// `cmd/decaf`'s own behavior.
type CLIConfig struct {
	// Color forces or disables ANSI diagnostic coloring. nil means "decide
	// from the terminal" (see cmd/decaf's isatty check).
	Color *bool `yaml:"color"`

	// CachePath is the analysis-cache database used when --cache is not
	// given; empty (the default) leaves caching off.
	CachePath string `yaml:"cache_path"`

	// Verbose turns on timing/progress lines by default.
	Verbose bool `yaml:"verbose"`
}

// LoadCLIConfig reads path if it exists; a missing file is not an error and
// yields the zero-value CLIConfig.
func LoadCLIConfig(path string) (*CLIConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &CLIConfig{}, nil
		}
		return nil, err
	}
	var cfg CLIConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
