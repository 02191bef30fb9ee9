// Package config holds interpreter constants and the nano.yaml runtime
// configuration.
//
// nano.yaml is optional. When present it can adjust the evaluation
// depth limit and the REPL behavior:
//
//	max_eval_depth: 10000
//	repl:
//	  prompt: ">> "
//	  history: ~/.nano_history.db
//	  color: auto   # auto | always | never
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level nano.yaml configuration.
type Config struct {
	// MaxEvalDepth bounds evaluator recursion. Zero means the default.
	MaxEvalDepth int `yaml:"max_eval_depth,omitempty"`

	REPL REPLConfig `yaml:"repl,omitempty"`
}

// REPLConfig configures the interactive session.
type REPLConfig struct {
	// Prompt is printed before each input line.
	Prompt string `yaml:"prompt,omitempty"`

	// History is the path of the SQLite history database. A leading
	// "~/" expands to the user's home directory. Empty disables
	// persistent history.
	History string `yaml:"history,omitempty"`

	// Color controls ANSI colored error output: auto, always, never.
	Color string `yaml:"color,omitempty"`
}

// Default returns the configuration used when no nano.yaml exists.
func Default() *Config {
	return &Config{
		MaxEvalDepth: DefaultMaxEvalDepth,
		REPL: REPLConfig{
			Prompt:  DefaultPrompt,
			History: "~/" + DefaultHistoryFile,
			Color:   DefaultColorMode,
		},
	}
}

// Load reads and validates a nano.yaml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes nano.yaml content and fills in defaults for omitted fields.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing nano.yaml: %w", err)
	}

	if cfg.MaxEvalDepth < 0 {
		return nil, fmt.Errorf("nano.yaml: max_eval_depth must not be negative")
	}
	if cfg.MaxEvalDepth == 0 {
		cfg.MaxEvalDepth = DefaultMaxEvalDepth
	}
	if cfg.REPL.Prompt == "" {
		cfg.REPL.Prompt = DefaultPrompt
	}
	if cfg.REPL.Color == "" {
		cfg.REPL.Color = DefaultColorMode
	}
	switch cfg.REPL.Color {
	case "auto", "always", "never":
	default:
		return nil, fmt.Errorf("nano.yaml: invalid color mode %q", cfg.REPL.Color)
	}

	return cfg, nil
}

// Discover loads nano.yaml from the working directory or the home
// directory, falling back to defaults when neither exists.
func Discover() (*Config, error) {
	if cfg, err := Load(ConfigFileName); err == nil {
		return cfg, nil
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ConfigFileName)
		if cfg, err := Load(path); err == nil {
			return cfg, nil
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return Default(), nil
}

// ExpandHome resolves a leading "~/" in a configured path.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
