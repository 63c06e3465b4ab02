// Package config handles configuration for dark-instruments.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/devicelab-dev/dark-instruments/pkg/core"
)

// Config represents the workspace configuration (config.yaml).
type Config struct {
	// Bridge settings
	AdbPath string `yaml:"adbPath"` // Explicit adb binary; empty searches PATH
	Device  string `yaml:"device"`  // Target serial; empty requires a single online device

	// Logging
	LogFile string `yaml:"logFile"`
	Verbose bool   `yaml:"verbose"`

	OCR OCRConfig `yaml:"ocr"`
}

// OCRConfig tunes text recognition.
type OCRConfig struct {
	Lang string `yaml:"lang"` // Tesseract language code, default eng
	DPI  int    `yaml:"dpi"`  // Default 120
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided config file
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, core.ErrInvalidConfig.WithCause(fmt.Errorf("%s: %w", path, err))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromDir looks for config.yaml or config.yml in the directory.
func LoadFromDir(dir string) (*Config, error) {
	// Try config.yaml first
	configPath := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// Try config.yml
	configPath = filepath.Join(dir, "config.yml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// No config file found, return empty config
	return &Config{}, nil
}

// Validate rejects values no component can use.
func (c *Config) Validate() error {
	if c.OCR.DPI < 0 {
		return core.ErrInvalidConfig.WithMessage(fmt.Sprintf("invalid configuration: ocr.dpi must not be negative (got %d)", c.OCR.DPI))
	}
	return nil
}
