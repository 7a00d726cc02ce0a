package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvConfigPath, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Colors.Low != "" || cfg.Colors.High != "" {
		t.Errorf("expected empty color overrides, got %+v", cfg.Colors)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "colors:\n  low: BrightMagenta\n  high: Cyan\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Colors.Low != "BrightMagenta" {
		t.Errorf("Colors.Low = %q, want BrightMagenta", cfg.Colors.Low)
	}
	if cfg.Colors.High != "Cyan" {
		t.Errorf("Colors.High = %q, want Cyan", cfg.Colors.High)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("colors: ["), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigPath, path)

	if _, err := Load(); err == nil {
		t.Error("Load succeeded on malformed settings file")
	}
}
