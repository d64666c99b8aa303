// Package config provides run configuration for shamv.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sivchari/shamv/internal/digest"
)

// ErrInvalidFormat indicates an unknown output format.
var ErrInvalidFormat = errors.New("invalid output format")

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Config represents the configuration for a single shamv invocation.
type Config struct {
	// Digest settings
	Algorithm string `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`

	// Rename settings
	DryRun bool `json:"dryRun" yaml:"dryRun"`
	Force  bool `json:"force" yaml:"force"`

	// Output settings
	OutputFormat string `json:"outputFormat,omitempty" yaml:"outputFormat,omitempty"`
	Color        bool   `json:"color" yaml:"color"`
	Verbose      bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"`

	algorithm digest.Algorithm
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		OutputFormat: FormatText,
		algorithm:    digest.Default,
	}
}

// Validate resolves the algorithm and checks the output format.
// An empty format falls back to text.
func (c *Config) Validate() error {
	alg, err := digest.Parse(c.Algorithm)
	if err != nil {
		return err
	}

	c.algorithm = alg

	if c.OutputFormat == "" {
		c.OutputFormat = FormatText
	}

	if !slices.Contains(Formats, c.OutputFormat) {
		return fmt.Errorf("%w %q (want one of %v)", ErrInvalidFormat, c.OutputFormat, Formats)
	}

	return nil
}

// DigestAlgorithm returns the resolved algorithm. Call Validate first.
func (c *Config) DigestAlgorithm() digest.Algorithm {
	return c.algorithm
}
