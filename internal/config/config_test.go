package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("expected default model gpt-4o-mini, got %q", cfg.Model)
	}
	if cfg.DefaultTemplate != "simple-shop" {
		t.Errorf("expected default template simple-shop, got %q", cfg.DefaultTemplate)
	}
	if cfg.DefaultType != "general" {
		t.Errorf("expected default store type general, got %q", cfg.DefaultType)
	}
	if cfg.Server.Port != 8090 {
		t.Errorf("expected default port 8090, got %d", cfg.Server.Port)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.matjar.yml")

	original := DefaultConfig()
	original.Model = "gpt-4o"
	original.DBPath = "stores.db"
	original.DefaultType = "fashion"
	original.DefaultTemplate = "fashion-luxury"
	original.Server.Port = 9000

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Model != original.Model {
		t.Errorf("model: got %q, want %q", loaded.Model, original.Model)
	}
	if loaded.DBPath != original.DBPath {
		t.Errorf("db_path: got %q, want %q", loaded.DBPath, original.DBPath)
	}
	if loaded.DefaultType != original.DefaultType {
		t.Errorf("default_store_type: got %q, want %q", loaded.DefaultType, original.DefaultType)
	}
	if loaded.DefaultTemplate != original.DefaultTemplate {
		t.Errorf("default_template: got %q, want %q", loaded.DefaultTemplate, original.DefaultTemplate)
	}
	if loaded.Server.Port != original.Server.Port {
		t.Errorf("server.port: got %d, want %d", loaded.Server.Port, original.Server.Port)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.DefaultTemplate != "simple-shop" {
		t.Errorf("expected default template, got %q", cfg.DefaultTemplate)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Override model via env var.
	os.Setenv("MATJAR_MODEL", "gpt-4o")
	defer os.Unsetenv("MATJAR_MODEL")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Model != "gpt-4o" {
		t.Errorf("env override failed: got %q, want gpt-4o", loaded.Model)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateEmptyModel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Model = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty model")
	}
}

func TestValidateEmptyDBPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DBPath = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty db_path")
	}
}

func TestValidateUnknownStoreType(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultType = "spaceships"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown default_store_type")
	}
}

func TestValidateBadPort(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for port 0")
	}
	cfg.Server.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for out-of-range port")
	}
}

func TestAddr(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.Addr(); got != "127.0.0.1:8090" {
		t.Errorf("Addr() = %q", got)
	}
}
