package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for the gojson tool
type Config struct {
	Output OutputConfig `yaml:"output"`
	Keys   KeysConfig   `yaml:"keys"`
	Dev    DevConfig    `yaml:"dev"`
}

// OutputConfig controls how parsed documents are written back out
type OutputConfig struct {
	Compact bool   `yaml:"compact"`
	Indent  string `yaml:"indent"`
}

// KeysConfig controls object key rewriting on output
type KeysConfig struct {
	// Case is one of: none, snake, camel, kebab, pascal
	Case string `yaml:"case"`
}

// DevConfig controls development options
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// NewConfig returns a config with sensible defaults
func NewConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Compact: false,
			Indent:  "  ",
		},
		Keys: KeysConfig{
			Case: "none",
		},
		Dev: DevConfig{
			Debug: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks config values that cannot be expressed in the YAML schema
func (c *Config) Validate() error {
	switch c.Keys.Case {
	case "", "none", "snake", "camel", "kebab", "pascal":
	default:
		return fmt.Errorf("invalid keys.case '%s': expected none, snake, camel, kebab or pascal", c.Keys.Case)
	}
	if c.Output.Indent == "" && !c.Output.Compact {
		return fmt.Errorf("output.indent must not be empty unless output.compact is set")
	}
	return nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".gojson.yml", ".gojson.yaml", "gojson.yml", "gojson.yaml"}

	// Start from current directory
	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		// Move up one directory
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// MergeCLI overlays command-line values onto the config; CLI flags win over
// file values when both are present.
func (c *Config) MergeCLI(compact bool, indent, keyCase string) {
	if compact {
		c.Output.Compact = true
	}
	if indent != "" {
		c.Output.Indent = indent
	}
	if keyCase != "" {
		c.Keys.Case = keyCase
	}
}
