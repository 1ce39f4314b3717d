package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"email-ticket-analyzer/internal/models"

	"gopkg.in/yaml.v2"
)

// Default returns the configuration used when no config file is present
func Default() *models.Config {
	return &models.Config{
		Log: models.LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads the configuration from the specified YAML file and returns a Config struct.
// Keys missing from the file keep their Default values.
func Load(filepath string) (*models.Config, error) {
	configFile, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(configFile, config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath, err)
	}

	return config, nil
}

// LoadOrDefault behaves like Load but falls back to Default when the file does not exist
func LoadOrDefault(filepath string) (*models.Config, error) {
	cfg, err := Load(filepath)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}
