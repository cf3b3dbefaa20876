// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is read from an optional YAML file and then overridden by
// environment variables.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Datasets DatasetsConfig `yaml:"datasets"`
	Quiz     QuizConfig     `yaml:"quiz"`
}

type ServerConfig struct {
	Port      string `yaml:"port"`
	StaticDir string `yaml:"static_dir"`
}

type DatasetsConfig struct {
	Dir            string `yaml:"dir"`
	DefaultCountry string `yaml:"default_country"`
	CacheSize      int    `yaml:"cache_size"`
	// Watch invalidates cached datasets when their files change.
	Watch bool `yaml:"watch"`
}

type QuizConfig struct {
	Rounds int `yaml:"rounds"`
	// Synonyms are groups of names accepted in place of each other.
	Synonyms [][]string `yaml:"synonyms"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      ":8080",
			StaticDir: "static",
		},
		Datasets: DatasetsConfig{
			Dir:            "Telefonnummer",
			DefaultCountry: "Russia",
			CacheSize:      16,
		},
		Quiz: QuizConfig{
			Rounds:   10,
			Synonyms: [][]string{{"moscow", "moskva"}},
		},
	}
}

// LoadConfig builds the configuration from defaults, the YAML file at path
// (skipped when path is empty) and the environment.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.Server.Port = GetEnv("PORT", cfg.Server.Port)
	if cfg.Server.Port != "" && cfg.Server.Port[0] != ':' {
		cfg.Server.Port = ":" + cfg.Server.Port
	}
	cfg.Server.StaticDir = GetEnv("STATIC_DIR", cfg.Server.StaticDir)
	cfg.Datasets.Dir = GetEnv("DATA_DIR", cfg.Datasets.Dir)
	cfg.Datasets.DefaultCountry = GetEnv("DEFAULT_COUNTRY", cfg.Datasets.DefaultCountry)
	cfg.Datasets.CacheSize = GetEnvInt("DATASET_CACHE_SIZE", cfg.Datasets.CacheSize)
	cfg.Datasets.Watch = GetEnvBool("WATCH_DATASETS", cfg.Datasets.Watch)

	if cfg.Datasets.CacheSize <= 0 {
		return nil, fmt.Errorf("datasets.cache_size must be positive, got %d", cfg.Datasets.CacheSize)
	}
	if cfg.Quiz.Rounds <= 0 {
		cfg.Quiz.Rounds = 10
	}
	return cfg, nil
}
