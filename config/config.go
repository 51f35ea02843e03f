// Package config loads the settings of the glox command-line front end from
// a TOML or YAML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file format.
type Format int

const (
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Output formats for parse trees.
const (
	OutputSexpr  = "sexpr"
	OutputSource = "source"
	OutputJSON   = "json"
	OutputYAML   = "yaml"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrInvalid           = errors.New("invalid config")
)

// Config holds the front end settings.
type Config struct {
	// Color enables colored diagnostics and REPL output.
	Color bool `toml:"color" yaml:"color"`
	// Output is the parse tree format: sexpr, source, json or yaml.
	Output string `toml:"output" yaml:"output"`
	// MaxArguments caps function parameters and call arguments.
	MaxArguments int `toml:"max_arguments" yaml:"max_arguments"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `toml:"log_level" yaml:"log_level"`
	// Prompt is shown before each REPL line.
	Prompt string `toml:"prompt" yaml:"prompt"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Color:        true,
		Output:       OutputSexpr,
		MaxArguments: 32,
		LogLevel:     "warn",
		Prompt:       "> ",
	}
}

// Load reads the configuration file at path. The format is taken from the
// file extension; values missing from the file keep their defaults.
func Load(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := LoadFromString(string(content), detectFormat(path))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromString parses configuration content in the given format.
// FormatAuto is treated as TOML.
func LoadFromString(content string, format Format) (Config, error) {
	cfg := Default()

	switch format {
	case FormatAuto, FormatTOML:
		if _, err := toml.Decode(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse TOML config: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal([]byte(content), &cfg); err != nil {
			return Config{}, fmt.Errorf("parse YAML config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every setting has a usable value.
func (c Config) Validate() error {
	switch c.Output {
	case OutputSexpr, OutputSource, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%w: output %q is not one of sexpr, source, json, yaml", ErrInvalid, c.Output)
	}
	if c.MaxArguments <= 0 {
		return fmt.Errorf("%w: max_arguments must be positive, got %d", ErrInvalid, c.MaxArguments)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns LogLevel as a slog.Level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q: %v", ErrInvalid, c.LogLevel, err)
	}
	return level, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatTOML
	}
}
