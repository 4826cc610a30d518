package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	values, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(values) != 0 {
		t.Fatalf("expected empty values, got %#v", values)
	}
}

func TestSaveWritesTablesAndLoadFlattens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.toml")
	values := Values{
		Key("audio", "master_volume"): int64(80),
		Key("graphics", "fullscreen"):  true,
		Key("graphics", "renderer"):    "vulkan",
	}
	if err := Save(path, values); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !strings.Contains(string(data), "[audio]") || !strings.Contains(string(data), "[graphics]") {
		t.Fatalf("expected one table per section, got:\n%s", data)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got := loaded["audio.master_volume"]; got != int64(80) {
		t.Fatalf("expected master volume 80, got %#v", got)
	}
	if got := loaded["graphics.fullscreen"]; got != true {
		t.Fatalf("expected fullscreen true, got %#v", got)
	}
	if got := loaded["graphics.renderer"]; got != "vulkan" {
		t.Fatalf("expected renderer vulkan, got %#v", got)
	}
}

func TestLoadRejectsInvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("[audio\nmaster_volume = "), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValuesKeysSorted(t *testing.T) {
	v := Values{"b.x": 1, "a.y": 2}
	keys := v.Keys()
	if len(keys) != 2 || keys[0] != "a.y" || keys[1] != "b.x" {
		t.Fatalf("expected sorted keys, got %v", keys)
	}
	clone := v.Clone()
	clone["c.z"] = 3
	if _, ok := v["c.z"]; ok {
		t.Fatal("expected clone to be independent")
	}
}
