package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewModelLoadsSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("[audio]\nmaster_volume = 35\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	model, cleanup, err := newModel(Config{SettingsPath: path, Width: 60, Height: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer cleanup()
	if len(model.Sections()) == 0 {
		t.Fatal("expected sections built")
	}
	if model.Current() != model.Sections()[0] {
		t.Fatal("expected first section current")
	}
}

func TestNewModelMissingFileStartsFromDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.toml")
	_, cleanup, err := newModel(Config{SettingsPath: path, WatchInterval: time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cleanup()
}

func TestNewModelRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("[audio\nmaster_volume = "), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	if _, _, err := newModel(Config{SettingsPath: path}); err == nil {
		t.Fatal("expected parse error")
	}
}
