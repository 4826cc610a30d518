package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/popup-settings/internal/app"
	"github.com/atomicstack/popup-settings/internal/backend"
	"github.com/atomicstack/popup-settings/internal/config"
)

func TestProbeTerminalPrefersFixedPanelSize(t *testing.T) {
	info := probeTerminal(app.Config{Width: 72, Height: 18})
	if info.PanelWidth != 72 || info.PanelHeight != 18 {
		t.Fatalf("expected fixed panel size 72x18, got %dx%d", info.PanelWidth, info.PanelHeight)
	}
	if !info.Interactive && (info.Width != 0 || info.Source != "") {
		t.Fatalf("expected no terminal size without a terminal, got %+v", info)
	}
}

func TestProbeTerminalFollowsTerminalSize(t *testing.T) {
	info := probeTerminal(app.Config{})
	if info.PanelWidth != info.Width || info.PanelHeight != info.Height {
		t.Fatalf("expected panel size to follow the terminal, got %+v", info)
	}
}

func TestDescribeSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if got := describeSettingsFile(path); got.Exists || got.Error != "" {
		t.Fatalf("expected missing file without error, got %+v", got)
	}
	if err := os.WriteFile(path, []byte("[audio]\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	stamp := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	got := describeSettingsFile(path)
	if !got.Exists || got.Size != 8 || !got.Modified.Equal(stamp) {
		t.Fatalf("expected existing file details, got %+v", got)
	}
}

func TestDescribeWatcher(t *testing.T) {
	if got := describeWatcher(app.Config{}); got.Mode != "disabled" {
		t.Fatalf("expected disabled watcher, got %+v", got)
	}
	missing := filepath.Join(t.TempDir(), "nope", "settings.toml")
	got := describeWatcher(app.Config{SettingsPath: missing, WatchInterval: 2 * time.Second})
	if got.Mode != string(backend.ModePolling) || got.Interval != "2s" {
		t.Fatalf("expected polling every 2s, got %+v", got)
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	cfg := config.Config{
		App: app.Config{
			SettingsPath:  path,
			Width:         80,
			Height:        24,
			ShowFooter:    true,
			Mouse:         true,
			WatchInterval: 2 * time.Second,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"settings":      path,
			"width":         "80",
			"height":        "24",
			"footer":        "true",
			"mouse":         "true",
			"watchInterval": "2s",
		},
		Args: []string{"--settings", path},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["settings"] != path {
		t.Fatalf("expected settings flag %q, got %v", path, flagsValue["settings"])
	}
	if flagsValue["watchInterval"] != "2s" {
		t.Fatalf("expected watch interval 2s, got %v", flagsValue["watchInterval"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	file, ok := payload["settings"].(settingsFileDetails)
	if !ok || file.Path != path || file.Exists {
		t.Fatalf("expected settings file details for %q, got %#v", path, payload["settings"])
	}
	watcher, ok := payload["watcher"].(watcherDetails)
	if !ok || watcher.Mode != string(backend.ProbeMode(path)) {
		t.Fatalf("expected watcher mode in payload, got %#v", payload["watcher"])
	}
	terminal, ok := payload["terminal"].(terminalDetails)
	if !ok || terminal.PanelWidth != 80 || terminal.PanelHeight != 24 {
		t.Fatalf("expected panel size 80x24, got %#v", payload["terminal"])
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}
