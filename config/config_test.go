package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromString(t *testing.T) {
	tests := []struct {
		name    string
		content string
		format  Format
		want    Config
	}{
		{
			"empty keeps defaults",
			"",
			FormatTOML,
			Default(),
		},
		{
			"toml",
			"color = false\noutput = \"json\"\nmax_arguments = 8\n",
			FormatTOML,
			Config{Color: false, Output: OutputJSON, MaxArguments: 8, LogLevel: "warn", Prompt: "> "},
		},
		{
			"auto is toml",
			"prompt = \"lox> \"\n",
			FormatAuto,
			Config{Color: true, Output: OutputSexpr, MaxArguments: 32, LogLevel: "warn", Prompt: "lox> "},
		},
		{
			"yaml",
			"output: yaml\nlog_level: debug\n",
			FormatYAML,
			Config{Color: true, Output: OutputYAML, MaxArguments: 32, LogLevel: "debug", Prompt: "> "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadFromString(tt.content, tt.format)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("got %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestLoadFromString_errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		format  Format
		is      error
	}{
		{"unknown output", "output = \"xml\"", FormatTOML, ErrInvalid},
		{"zero max arguments", "max_arguments: 0", FormatYAML, ErrInvalid},
		{"unknown log level", "log_level = \"loud\"", FormatTOML, ErrInvalid},
		{"unsupported format", "", Format(9), ErrUnsupportedFormat},
		{"malformed toml", "output = ", FormatTOML, nil},
		{"malformed yaml", "output: [", FormatYAML, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromString(tt.content, tt.format)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Fatalf("got %v, expected %v", err, tt.is)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "glox.yml")
	if err := os.WriteFile(yamlPath, []byte("output: source\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(yamlPath)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output != OutputSource {
		t.Errorf("got output %q, expected %q", cfg.Output, OutputSource)
	}

	tomlPath := filepath.Join(dir, "glox.toml")
	if err := os.WriteFile(tomlPath, []byte("output = \"nope\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(tomlPath); !errors.Is(err, ErrInvalid) {
		t.Errorf("got %v, expected %v", err, ErrInvalid)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, expected a not-exist error", err)
	}
}

func TestConfig_Level(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "error"
	level, err := cfg.Level()
	if err != nil {
		t.Fatal(err)
	}
	if level != slog.LevelError {
		t.Fatalf("got %s, expected %s", level, slog.LevelError)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"glox.toml":  FormatTOML,
		"glox.yaml":  FormatYAML,
		"GLOX.YML":   FormatYAML,
		"glox":       FormatTOML,
		"dir/x.conf": FormatTOML,
	}
	for path, want := range tests {
		if got := detectFormat(path); got != want {
			t.Errorf("%s: got %s, expected %s", path, got, want)
		}
	}
}
