// Package config loads remapper settings from a YAML file.
//
//	case: snake
//	depth: 2
//	deep_casing: true
//	strict: false
//	format: yaml
//	prefix: INPUT_
//	output_name: json
package config

import (
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"env-remapper/internal/casing"
	"env-remapper/internal/inputs"
	"env-remapper/internal/remap"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultOutputName is the name the document is published under.
const DefaultOutputName = "json"

// File is the on-disk settings document.
type File struct {
	Case       string `yaml:"case"`
	Depth      *int   `yaml:"depth"`
	DeepCasing *bool  `yaml:"deep_casing"`
	Strict     *bool  `yaml:"strict"`
	Format     string `yaml:"format"`
	Prefix     string `yaml:"prefix"`
	OutputName string `yaml:"output_name"`
}

// Settings are fully defaulted run settings.
type Settings struct {
	Options    remap.Options
	Format     string
	Prefix     string
	OutputName string
}

// Defaults returns the settings used without a config file.
func Defaults() Settings {
	return Settings{
		Options:    remap.DefaultOptions(),
		Format:     FormatJSON,
		Prefix:     inputs.DefaultPrefix,
		OutputName: DefaultOutputName,
	}
}

// LoadFile loads and parses a YAML settings file from the given path.
func LoadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into Settings, validating it and filling defaults.
func Parse(data []byte) (Settings, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return Settings{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := f.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid config: %w", err)
	}

	return f.apply(Defaults()), nil
}

// Validate implements validation.Validatable.
func (f *File) Validate() error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Case, validation.In(modeValues()...)),
		validation.Field(&f.Depth, validation.Min(0)),
		validation.Field(&f.Format, validation.In(FormatJSON, FormatYAML)),
	)
}

// apply overlays the values set in f on s.
func (f *File) apply(s Settings) Settings {
	if f.Case != "" {
		s.Options.Case = casing.Mode(f.Case)
	}

	if f.Depth != nil {
		s.Options.Depth = *f.Depth
	}

	if f.DeepCasing != nil {
		s.Options.DeepCasing = *f.DeepCasing
	}

	if f.Strict != nil {
		s.Options.Strict = *f.Strict
	}

	if f.Format != "" {
		s.Format = f.Format
	}

	if f.Prefix != "" {
		s.Prefix = f.Prefix
	}

	if f.OutputName != "" {
		s.OutputName = f.OutputName
	}

	return s
}

func modeValues() []any {
	modes := casing.Modes()
	values := make([]any, len(modes))

	for i, m := range modes {
		values[i] = string(m)
	}

	return values
}
