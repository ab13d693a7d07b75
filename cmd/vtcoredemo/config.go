package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the initial geometry and a scripted sequence of operations
// to replay against a fresh Terminal: a small typed settings struct
// loaded from a YAML document on disk.
type Config struct {
	Cols           int      `yaml:"cols"`
	Rows           int      `yaml:"rows"`
	ScrollbackRows int      `yaml:"scrollback_rows"`
	Script         []string `yaml:"script"`
}

func defaultConfig() Config {
	return Config{
		Cols:           80,
		Rows:           24,
		ScrollbackRows: 200,
		Script: []string{
			"print Hello, vtcore!",
			"cr",
			"lf",
			"print Second line.",
		},
	}
}

func loadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("vtcoredemo: reading config: %w", err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("vtcoredemo: parsing config: %w", err)
	}
	return cfg, nil
}
