package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "jlox.yaml", `
log_level: debug
color: false
max_call_depth: 50
history_file: ~/.hist
requires: ">= 1.0.0"
`)
	cfg, err := loadConfig(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "debug" || cfg.MaxCallDepth != 50 || cfg.HistoryFile != "~/.hist" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.colorEnabled() {
		t.Error("expected color to be disabled")
	}
	if err := cfg.checkVersion(version); err != nil {
		t.Errorf("unexpected version error: %v", err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	cfg, err := loadConfig(missing, false)
	if err != nil {
		t.Fatalf("a missing default config is not an error: %v", err)
	}
	if cfg.LogLevel != "warn" || !cfg.colorEnabled() {
		t.Errorf("unexpected defaults %+v", cfg)
	}

	if _, err := loadConfig(missing, true); err == nil {
		t.Error("expected an error for a missing explicit config")
	}

	empty := writeFile(t, "empty.yaml", "")
	if cfg, err := loadConfig(empty, true); err != nil || cfg.LogLevel != "warn" {
		t.Errorf("expected defaults for an empty file, got %+v, %v", cfg, err)
	}
}

func TestLoadConfigUnknownField(t *testing.T) {
	path := writeFile(t, "jlox.yaml", "log_levle: debug\n")
	_, err := loadConfig(path, true)
	if err == nil || !strings.Contains(err.Error(), "log_levle") {
		t.Errorf("expected an unknown field error, got %v", err)
	}
}

func TestCheckVersion(t *testing.T) {
	cases := []struct {
		requires string
		ok       bool
	}{
		{"", true},
		{"^1.0", true},
		{">= 1.0.0, < 2.0.0", true},
		{">= 2.0.0", false},
		{"not a constraint", false},
	}
	for _, c := range cases {
		cfg := &config{Requires: c.requires}
		if err := cfg.checkVersion("1.0.0"); (err == nil) != c.ok {
			t.Errorf("checkVersion with %q: %v", c.requires, err)
		}
	}
}
