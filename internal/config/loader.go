package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	envConfigPath     = "CONFIG_PATH"
	defaultConfigPath = "./config.yaml"
)

// Load builds the service configuration. Values come from the environment
// first, then the YAML file, then env-default tags.
//
// The file is CONFIG_PATH, or ./config.yaml when that is unset. A missing
// default file is fine; a missing explicit one is an error.
func Load() (*Config, error) {
	var cfg Config

	path, explicit := configPath()
	if err := readSources(path, explicit, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

func configPath() (string, bool) {
	if p := os.Getenv(envConfigPath); p != "" {
		return p, true
	}
	return defaultConfigPath, false
}

func readSources(path string, explicit bool, cfg *Config) error {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		return nil
	case explicit:
		return fmt.Errorf("file %s: %w", path, err)
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return fmt.Errorf("read env: %w", err)
	}
	return nil
}
