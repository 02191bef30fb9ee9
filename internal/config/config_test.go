package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFullConfig(t *testing.T) {
	data := []byte(`
max_eval_depth: 500
repl:
  prompt: "nano> "
  history: /tmp/nano_history.db
  color: never
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.MaxEvalDepth != 500 {
		t.Errorf("MaxEvalDepth = %d, want 500", cfg.MaxEvalDepth)
	}
	if cfg.REPL.Prompt != "nano> " {
		t.Errorf("Prompt = %q", cfg.REPL.Prompt)
	}
	if cfg.REPL.History != "/tmp/nano_history.db" {
		t.Errorf("History = %q", cfg.REPL.History)
	}
	if cfg.REPL.Color != "never" {
		t.Errorf("Color = %q", cfg.REPL.Color)
	}
}

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.MaxEvalDepth != DefaultMaxEvalDepth {
		t.Errorf("MaxEvalDepth = %d, want default %d", cfg.MaxEvalDepth, DefaultMaxEvalDepth)
	}
	if cfg.REPL.Prompt != DefaultPrompt {
		t.Errorf("Prompt = %q, want default %q", cfg.REPL.Prompt, DefaultPrompt)
	}
	if cfg.REPL.Color != DefaultColorMode {
		t.Errorf("Color = %q, want default %q", cfg.REPL.Color, DefaultColorMode)
	}
}

func TestParseRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"negative depth", "max_eval_depth: -1"},
		{"bad color mode", "repl:\n  color: sometimes"},
		{"not yaml", ": ["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte("max_eval_depth: 42"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxEvalDepth != 42 {
		t.Errorf("MaxEvalDepth = %d, want 42", cfg.MaxEvalDepth)
	}

	if _, err := Load(filepath.Join(dir, "absent.yaml")); !os.IsNotExist(err) {
		t.Errorf("err = %v, want not-exist", err)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got := ExpandHome("~/x.db")
	want := filepath.Join(home, "x.db")
	if got != want {
		t.Errorf("ExpandHome = %q, want %q", got, want)
	}

	if got := ExpandHome("/abs/x.db"); got != "/abs/x.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}
