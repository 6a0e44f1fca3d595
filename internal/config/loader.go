package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "./config.yaml"

// Load reads configuration from the file named by CONFIG_PATH.
// See LoadFrom for the lookup rules.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv("CONFIG_PATH"))
}

// LoadFrom reads configuration from path and the environment, ENV winning
// over YAML and YAML over env-default tags. An explicit path must exist.
// An empty path uses ./config.yaml when present and ENV + defaults otherwise.
func LoadFrom(path string) (*Config, error) {
	file, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if file != "" {
		err = cleanenv.ReadConfig(file, &cfg)
	} else {
		file = "env"
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", file, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// resolvePath returns the YAML file to read, or "" for ENV only.
func resolvePath(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config: file %s: %w", path, err)
		}
		return path, nil
	}
	if _, err := os.Stat(defaultPath); err == nil {
		return defaultPath, nil
	}
	return "", nil
}
