// Package config loads the YAML configuration of the symbols CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"

	symbols "github.com/alnah/go-materialsymbols"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidConfig   = errors.New("invalid config value")
)

// MaxInputSize limits config files to prevent memory exhaustion (1MB).
const MaxInputSize = 1 << 20

// AppDirName is the directory searched under the user config directory.
const AppDirName = "go-materialsymbols"

// Field length limits.
const (
	MaxVariantLength = 20   // "self-hosted"
	MaxSourceLength  = 2048 // Browser URL limit
	MaxColorLength   = 100  // "rgba(255, 255, 255, 0.3)" or color name
	MaxTitleLength   = 200
	MaxLangLength    = 35 // BCP 47 tags
	MaxStyleLength   = 50 // chroma style name
)

// Config holds the CLI configuration.
type Config struct {
	Variant  VariantConfig  `yaml:"variant"`
	Icon     IconConfig     `yaml:"icon"`
	Document DocumentConfig `yaml:"document"`
}

// VariantConfig selects the icon font variant.
type VariantConfig struct {
	Name   string `yaml:"name"`   // outlined, rounded, sharp, self-hosted (default: rounded)
	Source string `yaml:"source"` // Font path or URL, required for self-hosted
}

// IconConfig sets default icon styling.
type IconConfig struct {
	Size  int    `yaml:"size"`  // Pixels, 0 = inherit
	Color string `yaml:"color"` // dark, dark-inactive, light, light-inactive, or any CSS color
}

// DocumentConfig defines options for rendered Markdown documents.
type DocumentConfig struct {
	Title          string `yaml:"title"`
	Lang           string `yaml:"lang"`
	HighlightStyle string `yaml:"highlightStyle"` // chroma style for code blocks
}

// DefaultConfig returns a configuration using the rounded hosted variant and
// inherited icon size and color.
func DefaultConfig() *Config {
	return &Config{
		Variant:  VariantConfig{Name: "rounded"},
		Icon:     IconConfig{},
		Document: DocumentConfig{},
	}
}

// Validate checks field lengths and the icon size. The variant is checked by ResolveVariant.
// Custom colors and font sources are not checked beyond their length:
// a wrong value only shows as a broken icon in the browser.
func (c *Config) Validate() error {
	if err := validateFieldLength("variant.name", c.Variant.Name, MaxVariantLength); err != nil {
		return err
	}
	if err := validateFieldLength("variant.source", c.Variant.Source, MaxSourceLength); err != nil {
		return err
	}
	if err := validateFieldLength("icon.color", c.Icon.Color, MaxColorLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.lang", c.Document.Lang, MaxLangLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.highlightStyle", c.Document.HighlightStyle, MaxStyleLength); err != nil {
		return err
	}

	if c.Icon.Size < 0 {
		return fmt.Errorf("%w: icon.size must be 0 or positive, got %d", ErrInvalidConfig, c.Icon.Size)
	}

	return nil
}

// ResolveVariant returns the configured font variant. The variant section is
// resolved on demand so commands that render no stylesheet ignore it.
func (c *Config) ResolveVariant() (symbols.Variant, error) {
	v, err := symbols.ParseVariant(c.Variant.Name, c.Variant.Source)
	if err != nil {
		return symbols.Variant{}, fmt.Errorf("%w: variant: %w", ErrInvalidConfig, err)
	}
	return v, nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// Parse decodes and validates YAML config data. Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	if len(data) > MaxInputSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigParse, len(data), MaxInputSize)
	}

	cfg := DefaultConfig()
	if len(data) > 0 {
		if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	return LoadConfigFS(afero.NewOsFs(), nameOrPath)
}

// LoadConfigFS is LoadConfig reading from fsys.
func LoadConfigFS(fsys afero.Fs, nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(fsys, nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := afero.ReadFile(fsys, configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SearchPaths returns the locations LoadConfig checks for nameOrPath, in order.
// A file path is returned as-is; a config name expands to the current
// directory and the user config directory, each with .yaml then .yml.
func SearchPaths(nameOrPath string) []string {
	if nameOrPath == "" {
		return nil
	}
	if isFilePath(nameOrPath) {
		return []string{nameOrPath}
	}

	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, nameOrPath+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDirName, nameOrPath+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(fsys afero.Fs, name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileExists(fsys, p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
