package assets

import (
	"embed"
	"fmt"
	"strings"
	"unicode"
)

// Names of the built-in assets.
const (
	SelfHostedStyle  = "self-hosted"
	DocumentTemplate = "document"
)

//go:embed styles/*
var styles embed.FS

//go:embed templates/*
var templates embed.FS

// EmbeddedLoader loads assets from the embedded filesystem.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a CSS style from embedded assets by name.
// The name should not include the .css extension.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	return string(content), nil
}

// LoadTemplate loads an HTML template from embedded assets by name.
// The name should not include the .html extension.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// ValidateAssetName checks that an asset name is a bare file stem.
// Empty names, path separators, dots and whitespace are rejected with
// ErrInvalidAssetName, which rules out traversal and extension tricks.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a CSS style by name using the embedded loader.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadTemplate loads an HTML template by name using the embedded loader.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}
