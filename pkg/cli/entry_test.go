package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/funvibe/joy/internal/config"
	"github.com/funvibe/joy/internal/evaluator"
	"github.com/funvibe/joy/internal/value"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Keep the test away from any real config in the user's home.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prompt == "" || cfg.HistoryFile == "" {
		t.Errorf("defaults incomplete: %+v", cfg)
	}
	if cfg.RecursionLimit != config.DefaultRecursionLimit {
		t.Errorf("recursion limit = %d, want %d", cfg.RecursionLimit, config.DefaultRecursionLimit)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "recursion_limit: 128\nprompt: \"joy> \"\nprelude:\n  - lib.joy\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RecursionLimit != 128 {
		t.Errorf("recursion limit = %d, want 128", cfg.RecursionLimit)
	}
	if cfg.Prompt != "joy> " {
		t.Errorf("prompt = %q", cfg.Prompt)
	}
	if len(cfg.Prelude) != 1 || cfg.Prelude[0] != "lib.joy" {
		t.Errorf("prelude = %v", cfg.Prelude)
	}
	// Unset keys keep their defaults.
	if cfg.HistoryFile != config.DefaultHistoryFile {
		t.Errorf("history file = %q", cfg.HistoryFile)
	}
}

func TestLoadConfig_ExplicitMissingFileFails(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for an explicit missing path")
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("recursion_limit: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestRunPrelude(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lib.joy")
	if err := os.WriteFile(path, []byte("DEFINE square == dup * ."), 0o644); err != nil {
		t.Fatal(err)
	}

	e := evaluator.New()
	if err := runPrelude(e, []string{path}); err != nil {
		t.Fatal(err)
	}
	if _, ok := e.Definition("square"); !ok {
		t.Error("prelude definition was not retained")
	}
	if err := e.Run("4 square"); err != nil {
		t.Fatal(err)
	}
	top, _ := e.Ctx.Stack.Pop()
	if top.Inspect() != "16" {
		t.Errorf("square = %s, want 16", top.Inspect())
	}
}

func TestCompleteWord(t *testing.T) {
	e := evaluator.New()
	e.Define("myword", value.Quotation{})

	got := completeWord(e, "1 2 du")
	found := false
	for _, c := range got {
		if c == "1 2 dup" {
			found = true
		}
	}
	if !found {
		t.Errorf("completions %v missing %q", got, "1 2 dup")
	}

	if got := completeWord(e, "myw"); len(got) != 1 || got[0] != "myword" {
		t.Errorf("completions = %v, want [myword]", got)
	}

	if got := completeWord(e, "trailing "); got != nil {
		t.Errorf("empty partial should not complete, got %v", got)
	}
}
