package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TABLERO_THEME_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.KeyMappings.Quit != "q" || cfg.KeyMappings.OpenCard != "enter" {
		t.Errorf("default key mappings not applied: %+v", cfg.KeyMappings)
	}
	if cfg.ColorScheme.Accent == "" {
		t.Errorf("default color scheme not applied")
	}
}

func TestLoadFillsPartialConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("TABLERO_THEME_FILE", "")

	path := filepath.Join(dir, "tablero", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	partial := "key_mappings:\n  quit: Q\n"
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.KeyMappings.Quit != "Q" {
		t.Errorf("explicit binding lost: %q", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.AddCard != "a" {
		t.Errorf("missing binding not defaulted: %q", cfg.KeyMappings.AddCard)
	}
}

func TestThemeFileOverridesScheme(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	theme := filepath.Join(dir, "theme.yaml")
	if err := os.WriteFile(theme, []byte("theme:\n  accent: \"#123456\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write theme file: %v", err)
	}
	t.Setenv("TABLERO_THEME_FILE", theme)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ColorScheme.Accent != "#123456" {
		t.Errorf("theme file override lost: %q", cfg.ColorScheme.Accent)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TABLERO_THEME_FILE", "")

	cfg := defaultConfig()
	cfg.KeyMappings.Quit = "ctrl+q"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.KeyMappings.Quit != "ctrl+q" {
		t.Errorf("round trip lost the binding: %q", loaded.KeyMappings.Quit)
	}
}
