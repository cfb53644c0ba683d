// Package config loads the generation config: where the content lives,
// where the documents go, and the form fields typed in by the user.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hikarutsuji/rirekisho/internal/fileutil"
	"github.com/hikarutsuji/rirekisho/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits. The form fields end up inside printed documents;
// a runaway value would wreck the page layout long before these caps.
const (
	MaxOriginLength     = 2048 // Browser URL limit
	MaxPathLength       = 4096
	MaxPostalCodeLength = 10  // "123-4567"
	MaxAddressLength    = 200 // Two-line address block
	MaxPhoneLength      = 30
	MaxTextLength       = 2000 // Motivation / preference blocks
)

// Config holds all configuration for document generation.
type Config struct {
	Source SourceConfig `yaml:"source"`
	Output OutputConfig `yaml:"output"`
	Form   FormConfig   `yaml:"form"`
	Photo  PhotoConfig  `yaml:"photo"`
}

// SourceConfig defines where the content set is fetched from.
type SourceConfig struct {
	Origin string `yaml:"origin"` // Site origin URL (empty = use dir)
	Dir    string `yaml:"dir"`    // Local content checkout (empty = use origin)
}

// OutputConfig defines where the generated documents are written.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Default output directory (empty = current directory)
}

// FormConfig carries the user-entered résumé fields.
type FormConfig struct {
	PostalCode string `yaml:"postalCode"`
	Address    string `yaml:"address"`
	Phone      string `yaml:"phone"`
	Motivation string `yaml:"motivation"`
	Preference string `yaml:"preference"`
}

// PhotoConfig points at the ID photo file to embed.
type PhotoConfig struct {
	Path string `yaml:"path"` // Empty = no photo
}

// Validate checks field lengths. Called automatically by LoadConfig, but
// available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("source.origin", c.Source.Origin, MaxOriginLength); err != nil {
		return err
	}
	if err := validateFieldLength("source.dir", c.Source.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("form.postalCode", c.Form.PostalCode, MaxPostalCodeLength); err != nil {
		return err
	}
	if err := validateFieldLength("form.address", c.Form.Address, MaxAddressLength); err != nil {
		return err
	}
	if err := validateFieldLength("form.phone", c.Form.Phone, MaxPhoneLength); err != nil {
		return err
	}
	if err := validateFieldLength("form.motivation", c.Form.Motivation, MaxTextLength); err != nil {
		return err
	}
	if err := validateFieldLength("form.preference", c.Form.Preference, MaxTextLength); err != nil {
		return err
	}
	if err := validateFieldLength("photo.path", c.Photo.Path, MaxPathLength); err != nil {
		return err
	}
	if c.Source.Origin != "" && c.Source.Dir != "" {
		return fmt.Errorf("source: origin and dir are mutually exclusive")
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/rirekisho/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "rirekisho", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
