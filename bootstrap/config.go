/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package bootstrap

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigPathEnv names the environment variable holding the startup list
// path, consulted when LoadConfig is called with an empty path.
const ConfigPathEnv = "ENTITYBRIDGE_CONFIG"

// Config is the explicit startup list: which processing units to
// instantiate, in what order.
type Config struct {
	Units []string `yaml:"units"`
}

// LoadConfig reads a YAML startup list. A .env file in the working
// directory is loaded first so the config path and anything the units read
// from the environment can live there; a missing .env is not an error.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv(ConfigPathEnv)
	}
	if path == "" {
		return nil, fmt.Errorf("no config path given and %s is not set", ConfigPathEnv)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}
