// Package config loads the process-wide defaults a caller wires this
// library with: default numbering prefix, default currency, the emission
// syntax (CII or UBL) and the ZUGFeRD/Factur-X profile to assume on embed.
// The einvoice core itself stays config-free; this package is an optional
// convenience layer for callers assembling a service around it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults a caller loads once per process.
type Config struct {
	Numbering  NumberingConfig  `yaml:"numbering"`
	Invoice    InvoiceConfig    `yaml:"invoice"`
	Syntax     SyntaxConfig     `yaml:"syntax"`
	PDF        PDFConfig        `yaml:"pdf"`
	Validation ValidationConfig `yaml:"validation"`
}

// NumberingConfig configures the default numbering.Sequencer.
type NumberingConfig struct {
	Prefix string `yaml:"prefix"`
}

// InvoiceConfig holds the defaults applied to a new Builder.
type InvoiceConfig struct {
	DefaultCurrencyCode string `yaml:"default_currency_code"`
	DefaultTypeCode     int    `yaml:"default_type_code"`
}

// SyntaxConfig selects which XML syntax Write emits by default and
// which CIUS overlay Validate applies.
type SyntaxConfig struct {
	// Schema is either "CII" or "UBL".
	Schema string `yaml:"schema"`
	// Profile names the default specification identifier URN assumed
	// when a caller does not set one explicitly (see profile_constants.go).
	Profile string `yaml:"profile"`
}

// PDFConfig configures Embed's default ZUGFeRD/Factur-X profile.
type PDFConfig struct {
	DefaultProfile string `yaml:"default_profile"`
}

// ValidationConfig toggles which CIUS overlays run in addition to the
// mandatory §14 UStG and EN 16931 layers.
type ValidationConfig struct {
	RequireXRechnung bool `yaml:"require_xrechnung"`
	RequirePeppol    bool `yaml:"require_peppol"`
}

var appConfig *Config

// Load reads and parses the YAML configuration file at path. If path is
// empty, "config/einvoice.yaml" is tried, then the same path resolved
// against the parent directory (mirroring a binary run from a cmd/
// subdirectory of the project root).
func Load(path string) (*Config, error) {
	if path == "" {
		path = "config/einvoice.yaml"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		rootPath := filepath.Join("..", path)
		if _, err := os.Stat(rootPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config: file not found: %s", path)
		}
		path = rootPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot read file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: cannot parse file: %w", err)
	}

	appConfig = &cfg
	return &cfg, nil
}

// Get returns the global configuration loaded by the most recent call to
// Load or MustLoad. It panics if none has been loaded.
func Get() *Config {
	if appConfig == nil {
		panic("config: not loaded - call Load() first")
	}
	return appConfig
}

// MustLoad calls Load and panics if it returns an error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return cfg
}
