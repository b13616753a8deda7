// Package config handles YAML configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/jadedmc/nanoid"
)

// DefaultConfigPath is the default configuration file path
const DefaultConfigPath = "/etc/nanoid/config.yaml"

// Config represents the complete application configuration
type Config struct {
	Defaults Defaults  `yaml:"defaults"`
	Profiles []Profile `yaml:"profiles"`
}

// Defaults overrides the built-in generation parameters
type Defaults struct {
	Size     *int   `yaml:"size"`
	Alphabet string `yaml:"alphabet"`
}

// GetSize returns the default identifier size (default: 21)
func (d Defaults) GetSize() int {
	if d.Size == nil {
		return nanoid.DefaultSize
	}
	return *d.Size
}

// GetAlphabet returns the default alphabet (default: the 64-symbol URL-safe set)
func (d Defaults) GetAlphabet() string {
	if d.Alphabet == "" {
		return nanoid.DefaultAlphabet
	}
	return d.Alphabet
}

// Profile is a named set of generation parameters. Fields left unset
// fall back to the configuration defaults.
type Profile struct {
	Name     string `yaml:"name"`
	Size     *int   `yaml:"size"`
	Alphabet string `yaml:"alphabet"`
}

// Load reads and parses a configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse parses YAML configuration data
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Resolve returns the effective size and alphabet for the given profile
// name. An empty name resolves to the configuration defaults.
func (c *Config) Resolve(name string) (size int, alphabet string, err error) {
	size = c.Defaults.GetSize()
	alphabet = c.Defaults.GetAlphabet()

	if name == "" {
		return size, alphabet, nil
	}

	for _, profile := range c.Profiles {
		if profile.Name != name {
			continue
		}

		if profile.Size != nil {
			size = *profile.Size
		}
		if profile.Alphabet != "" {
			alphabet = profile.Alphabet
		}
		return size, alphabet, nil
	}

	return 0, "", fmt.Errorf("config: profile %q not found", name)
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if err := validateSize("defaults", c.Defaults.Size); err != nil {
		return err
	}
	if err := validateAlphabet("defaults", c.Defaults.Alphabet); err != nil {
		return err
	}

	names := make(map[string]bool)
	for i, profile := range c.Profiles {
		if profile.Name == "" {
			return fmt.Errorf("config: profile at index %d has empty name", i)
		}

		if names[profile.Name] {
			return fmt.Errorf("config: duplicate profile %q", profile.Name)
		}
		names[profile.Name] = true

		scope := fmt.Sprintf("profile %q", profile.Name)
		if err := validateSize(scope, profile.Size); err != nil {
			return err
		}
		if err := validateAlphabet(scope, profile.Alphabet); err != nil {
			return err
		}
	}

	return nil
}

// validateSize checks an optional size override
func validateSize(scope string, size *int) error {
	if size == nil {
		return nil
	}

	if *size < 0 {
		return fmt.Errorf("config: %s has negative size %d", scope, *size)
	}

	return nil
}

// validateAlphabet checks an optional alphabet override. An empty string
// means the alphabet is not set and falls back to the next level.
func validateAlphabet(scope, alphabet string) error {
	if alphabet == "" {
		return nil
	}

	count := utf8.RuneCountInString(alphabet)
	if count < nanoid.MinAlphabetSize {
		return fmt.Errorf("config: %s alphabet must contain at least %d symbols, got %d", scope, nanoid.MinAlphabetSize, count)
	}
	if count > nanoid.MaxAlphabetSize {
		return fmt.Errorf("config: %s alphabet must contain at most %d symbols, got %d", scope, nanoid.MaxAlphabetSize, count)
	}

	seen := make(map[rune]bool, count)
	for _, char := range alphabet {
		if seen[char] {
			return fmt.Errorf("config: %s alphabet has duplicate symbol %q", scope, char)
		}
		seen[char] = true
	}

	return nil
}
