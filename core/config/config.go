package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tristendillon/relscan/core/logger"
	"gopkg.in/yaml.v3"
)

const FileName = "relscan.yaml"

const (
	FormatText  = "text"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

var ErrUnknownFormat = errors.New("unknown report format")

type Config struct {
	Root             string   `yaml:"root"`
	Extension        string   `yaml:"extension"`
	IncludeFunctions bool     `yaml:"include_functions"`
	SkipMalformed    bool     `yaml:"skip_malformed"`
	Format           string   `yaml:"format"`
	Exclude          []string `yaml:"exclude"`
}

// Default scans ./src for .ts files, keeps type-like imports only and aborts
// on malformed class lines.
func Default() *Config {
	return &Config{
		Root:      "src",
		Extension: ".ts",
		Format:    FormatText,
	}
}

// Load reads relscan.yaml from wd, or the file at explicit when set. Missing
// keys keep their defaults.
func Load(wd, explicit string) (*Config, error) {
	filePath := explicit
	if filePath == "" {
		candidate := filepath.Join(wd, FileName)
		if _, err := os.Stat(candidate); err == nil {
			filePath = candidate
		}
	}

	if filePath == "" {
		logger.Debug("No config file found, using default config")
		return Default(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	logger.Debug("Config file found: %s", filePath)
	logger.Debug("Config: %+v", *cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filePath, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Root == "" {
		return errors.New("root must not be empty")
	}
	if c.Extension == "" {
		return errors.New("extension must not be empty")
	}
	switch c.Format {
	case FormatText, FormatYAML, FormatTable:
	default:
		return fmt.Errorf("%w %q (want %s)", ErrUnknownFormat, c.Format,
			strings.Join([]string{FormatText, FormatYAML, FormatTable}, ", "))
	}
	return nil
}

// RootPath resolves the scan root against the working directory.
func (c *Config) RootPath(wd string) string {
	if filepath.IsAbs(c.Root) {
		return c.Root
	}
	return filepath.Join(wd, c.Root)
}

// Write stores cfg as YAML at path, creating or truncating the file.
func Write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}
