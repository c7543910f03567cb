package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file Load looks for when none is given.
const DefaultPath = "qasmflow.yaml"

// Config holds optional tool settings. Every field has a working default;
// the file, when present, overrides defaults and QASMFLOW_OUTPUT overrides
// the output path on top of that.
type Config struct {
	Output struct {
		Path   string `yaml:"path"`
		Indent int    `yaml:"indent"`
	} `yaml:"output"`
	Player struct {
		IntervalMS int `yaml:"interval_ms"`
	} `yaml:"player"`
}

// Load reads the YAML config at path. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Output.Indent = 4
	cfg.Player.IntervalMS = 600

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if path := os.Getenv("QASMFLOW_OUTPUT"); path != "" {
		cfg.Output.Path = path
	}
}
