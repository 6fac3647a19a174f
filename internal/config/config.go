package config

import (
	"errors"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Bank struct {
		Dir string `yaml:"dir"`
	} `yaml:"bank"`
	Quiz struct {
		TimeLimit string `yaml:"timeLimit"`
		Questions int    `yaml:"questions"`
	} `yaml:"quiz"`
	Ledger struct {
		Path string `yaml:"path"`
	} `yaml:"ledger"`
}

// Default mirrors the engine's built-in constants: 20 seconds per question,
// up to 10 questions, bank under questions/, scores in scores.json.
func Default() Config {
	cfg := Config{}
	cfg.Bank.Dir = "questions"
	cfg.Quiz.TimeLimit = "20s"
	cfg.Quiz.Questions = 10
	cfg.Ledger.Path = "scores.json"
	return cfg
}

// Load reads YAML config from path. A missing file yields the defaults so the
// CLI works out of the box; a file that exists but fails to parse is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LimitDuration parses a duration string or returns the fallback if empty or invalid.
func LimitDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
