// Package config resolves cricmetrics settings from defaults, a .env file,
// an optional YAML file and CRICMETRICS_* environment variables, in that
// order of increasing priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read when no config path is given. It may be absent.
const DefaultFile = "cricmetrics.yaml"

// Config holds the application settings.
type Config struct {
	DataDir string `yaml:"data_dir"` // directory of *.json match records
	LogDir  string `yaml:"log_dir"`  // rotating log file location, "" = no file
	TopN    int    `yaml:"top_n"`    // true batting rows shown, 0 = all
	Workers int    `yaml:"workers"`  // concurrent file readers

	// Set by Load, for logging once the logger is up.
	Source string `yaml:"-"` // config file read, "" = none
	DotEnv bool   `yaml:"-"` // a .env file was loaded
}

// Defaults returns the built-in settings.
func Defaults() *Config {
	return &Config{
		DataDir: "data",
		TopN:    25,
		Workers: 4,
	}
}

// Load resolves the configuration. An empty path means DefaultFile, which is
// skipped silently when missing; an explicit path must exist. Load does not
// log: it runs before the logger is configured.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	cfg.DotEnv = godotenv.Load() == nil

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		cfg.Source = path
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.DataDir = getEnv("CRICMETRICS_DATA_DIR", cfg.DataDir)
	cfg.LogDir = getEnv("CRICMETRICS_LOG_DIR", cfg.LogDir)
	if cfg.TopN, err = getEnvInt("CRICMETRICS_TOP_N", cfg.TopN); err != nil {
		return nil, err
	}
	if cfg.Workers, err = getEnvInt("CRICMETRICS_WORKERS", cfg.Workers); err != nil {
		return nil, err
	}

	if cfg.TopN < 0 {
		return nil, fmt.Errorf("top_n must not be negative, got %d", cfg.TopN)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", key, value)
	}
	return n, nil
}
