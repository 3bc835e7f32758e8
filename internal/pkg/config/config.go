// Package config layers graphshift settings: built-in defaults, an
// optional YAML file, then environment variables on top.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env"
	"gopkg.in/yaml.v3"
)

// DefaultSourceYear is the fixed year of the reference literal grammar.
const DefaultSourceYear = 2019

type Config struct {
	Align      string `yaml:"align" env:"GRAPHSHIFT_ALIGN"`
	SourceYear int    `yaml:"source_year" env:"GRAPHSHIFT_SOURCE_YEAR"`
	StripSetup bool   `yaml:"strip_setup" env:"GRAPHSHIFT_STRIP_SETUP"`
}

func Default() Config {
	return Config{
		Align:      "left",
		SourceYear: DefaultSourceYear,
	}
}

// Load returns the defaults overlaid with the YAML file at path (when
// path is non-empty) and then with any GRAPHSHIFT_* environment
// variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("error reading config file %w", err)
		}

		err = yaml.Unmarshal(data, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("error parsing config file %w", err)
		}
	}

	err := env.Parse(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("error parsing environment variables %w", err)
	}

	return cfg, nil
}
