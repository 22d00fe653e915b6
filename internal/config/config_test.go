package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Timeline.Title != "Project Timeline" {
		t.Errorf("Default title = %q, want Project Timeline", cfg.Timeline.Title)
	}

	if cfg.Timeline.Dataset != "" {
		t.Errorf("Default dataset = %q, want embedded (empty)", cfg.Timeline.Dataset)
	}

	if cfg.Timeline.DefaultSection != "All" {
		t.Errorf("Default section = %q, want All", cfg.Timeline.DefaultSection)
	}

	if cfg.Addr() != "localhost:8080" {
		t.Errorf("Default addr = %q, want localhost:8080", cfg.Addr())
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
timeline:
  title: Cokomi Project Timeline
  dataset: data/steps.csv
  sections:
    Payments:
      color: "#000000"
  server:
    port: 9090
    request_timeout: 5s
  log:
    level: debug
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Timeline.Title != "Cokomi Project Timeline" {
		t.Errorf("Title = %q", cfg.Timeline.Title)
	}
	if cfg.Timeline.Dataset != "data/steps.csv" {
		t.Errorf("Dataset = %q, want data/steps.csv", cfg.Timeline.Dataset)
	}
	if cfg.Timeline.Sections["Payments"].Color != "#000000" {
		t.Errorf("Payments color = %q", cfg.Timeline.Sections["Payments"].Color)
	}
	if cfg.Timeline.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Timeline.Server.Port)
	}
	if cfg.Timeline.Server.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v, want 5s", cfg.Timeline.Server.RequestTimeout)
	}
	// Unset keys keep their defaults
	if cfg.Timeline.Server.Host != "localhost" {
		t.Errorf("Host = %q, want default localhost", cfg.Timeline.Server.Host)
	}
	if cfg.Timeline.Log.Level != "debug" || cfg.Timeline.Log.Format != "text" {
		t.Errorf("Log = %+v", cfg.Timeline.Log)
	}
}

func TestLoadTOMLConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "timeline.toml")

	configContent := `
[timeline]
title = "From TOML"
dataset = "steps.yaml"

[timeline.server]
port = 7070

[timeline.log]
format = "json"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Timeline.Title != "From TOML" {
		t.Errorf("Title = %q", cfg.Timeline.Title)
	}
	if cfg.Timeline.Server.Port != 7070 {
		t.Errorf("Port = %d", cfg.Timeline.Server.Port)
	}
	if cfg.Timeline.Log.Format != "json" || cfg.Timeline.Log.Level != "info" {
		t.Errorf("Log = %+v", cfg.Timeline.Log)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	tmpDir := t.TempDir()

	yamlPath := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(yamlPath, []byte("timeline: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(yamlPath); err == nil {
		t.Error("expected YAML parse error")
	}

	tomlPath := filepath.Join(tmpDir, "bad.toml")
	if err := os.WriteFile(tomlPath, []byte("[timeline\ntitle = "), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(tomlPath); err == nil {
		t.Error("expected TOML parse error")
	}

	if _, err := Load(filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("expected read error")
	}
}

func TestFindConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, ".timeline")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create .timeline dir: %v", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("timeline:\n  title: test"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	found, err := FindConfig(tmpDir)
	if err != nil {
		t.Fatalf("FindConfig failed: %v", err)
	}
	if found != configPath {
		t.Errorf("FindConfig = %q, want %q", found, configPath)
	}

	subDir := filepath.Join(tmpDir, "src", "pkg")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatalf("Failed to create subdir: %v", err)
	}

	found, err = FindConfig(subDir)
	if err != nil {
		t.Fatalf("FindConfig from subdir failed: %v", err)
	}
	if found != configPath {
		t.Errorf("FindConfig from subdir = %q, want %q", found, configPath)
	}
}

func TestLoadFromDirDefaults(t *testing.T) {
	cfg, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFromDir failed: %v", err)
	}
	if cfg.Timeline.Title != DefaultConfig().Timeline.Title {
		t.Errorf("expected defaults, got title %q", cfg.Timeline.Title)
	}
}

func TestSaveConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".timeline", "config.yaml")

	cfg := DefaultConfig()
	cfg.Timeline.Dataset = "custom.json"

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load after save failed: %v", err)
	}

	if loaded.Timeline.Dataset != "custom.json" {
		t.Errorf("Loaded dataset = %q, want custom.json", loaded.Timeline.Dataset)
	}
	if loaded.Timeline.Server.ShutdownTimeout != 5*time.Second {
		t.Errorf("Loaded shutdown timeout = %v", loaded.Timeline.Server.ShutdownTimeout)
	}
}

func TestDatasetPath(t *testing.T) {
	cfg := DefaultConfig()
	tmpDir := t.TempDir()

	if path := cfg.DatasetPath(tmpDir); path != "" {
		t.Errorf("DatasetPath with no dataset = %q, want empty", path)
	}

	cfg.Timeline.Dataset = "steps.json"
	if path := cfg.DatasetPath(tmpDir); path != filepath.Join(tmpDir, "steps.json") {
		t.Errorf("DatasetPath = %q", path)
	}

	absPath := filepath.Join(tmpDir, "absolute", "steps.json")
	cfg.Timeline.Dataset = absPath
	if path := cfg.DatasetPath(tmpDir); path != absPath {
		t.Errorf("Absolute DatasetPath = %q, want %s", path, absPath)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"uppercase level", func(c *Config) { c.Timeline.Log.Level = "DEBUG" }, false},
		{"warning alias", func(c *Config) { c.Timeline.Log.Level = "warning" }, false},
		{"empty format", func(c *Config) { c.Timeline.Log.Format = "" }, false},
		{"bad port", func(c *Config) { c.Timeline.Server.Port = 70000 }, true},
		{"bad level", func(c *Config) { c.Timeline.Log.Level = "verbose" }, true},
		{"bad format", func(c *Config) { c.Timeline.Log.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
