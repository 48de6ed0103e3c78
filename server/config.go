package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/akshatha300/iris-classifier/server/dataset"
)

// Config holds the ratings server settings. Values come from the
// optional YAML file; environment variables override the file.
type Config struct {
	Addr        string `yaml:"addr"`
	DatasetPath string `yaml:"dataset_path"`
	StaticDir   string `yaml:"static_dir"`
	Debug       bool   `yaml:"debug"`
	LogFile     string `yaml:"log_file"`
	// Aliases fold country spellings onto the names the tables and
	// filters use. File entries extend the defaults.
	Aliases map[string]string `yaml:"country_aliases"`
}

func DefaultConfig() *Config {
	return &Config{
		Addr:        ":8080",
		DatasetPath: "data/imdb_movies.csv",
		StaticDir:   "static",
		Aliases:     dataset.DefaultAliases(),
	}
}

// Load reads the YAML config at path. A missing file just yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if addr := os.Getenv("RATINGS_ADDR"); addr != "" {
		c.Addr = addr
	}
	if path := os.Getenv("RATINGS_DATASET"); path != "" {
		c.DatasetPath = path
	}
	if dir := os.Getenv("RATINGS_STATIC_DIR"); dir != "" {
		c.StaticDir = dir
	}
	if debug := os.Getenv("RATINGS_DEBUG"); debug != "" {
		c.Debug = debug == "true" || debug == "1"
	}
	if file := os.Getenv("RATINGS_LOG_FILE"); file != "" {
		c.LogFile = file
	}
}
