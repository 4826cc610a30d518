package main

import (
	"fmt"
	"os"
	"time"

	"github.com/atomicstack/popup-settings/internal/app"
	"github.com/atomicstack/popup-settings/internal/backend"
	"github.com/atomicstack/popup-settings/internal/config"
	"github.com/atomicstack/popup-settings/internal/logging"
	"github.com/atomicstack/popup-settings/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	if logging.TraceEnabled() {
		events.App.Start(startupTracePayload(runtimeCfg))
	}

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload records what the panel is about to edit and how it
// will be drawn.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
		"settings": describeSettingsFile(cfg.App.SettingsPath),
		"watcher":  describeWatcher(cfg.App),
		"terminal": probeTerminal(cfg.App),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	return payload
}

type settingsFileDetails struct {
	Path     string    `json:"path"`
	Exists   bool      `json:"exists"`
	Size     int64     `json:"size,omitempty"`
	Modified time.Time `json:"modified,omitempty"`
	Error    string    `json:"error,omitempty"`
}

func describeSettingsFile(path string) settingsFileDetails {
	details := settingsFileDetails{Path: path}
	info, err := os.Stat(path)
	switch {
	case err == nil:
		details.Exists = true
		details.Size = info.Size()
		details.Modified = info.ModTime().UTC()
	case !os.IsNotExist(err):
		details.Error = err.Error()
	}
	return details
}

type watcherDetails struct {
	Mode     string `json:"mode"`
	Interval string `json:"interval"`
}

func describeWatcher(cfg app.Config) watcherDetails {
	if cfg.WatchInterval <= 0 {
		return watcherDetails{Mode: "disabled", Interval: "0s"}
	}
	return watcherDetails{
		Mode:     string(backend.ProbeMode(cfg.SettingsPath)),
		Interval: cfg.WatchInterval.String(),
	}
}

// terminalDetails compares the terminal the popup opened in with the size
// the panel will actually use.
type terminalDetails struct {
	Source      string `json:"source,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	PanelWidth  int    `json:"panel_width"`
	PanelHeight int    `json:"panel_height"`
	Interactive bool   `json:"interactive"`
	Error       string `json:"error,omitempty"`
}

// probeTerminal sizes the first terminal among stdout and stdin. A fixed
// -width or -height takes precedence over the probed size.
func probeTerminal(cfg app.Config) terminalDetails {
	details := terminalDetails{PanelWidth: cfg.Width, PanelHeight: cfg.Height}
	for _, probe := range []struct {
		name string
		file *os.File
	}{
		{"stdout", os.Stdout},
		{"stdin", os.Stdin},
	} {
		fd := int(probe.file.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		width, height, err := term.GetSize(fd)
		if err != nil {
			details.Error = err.Error()
			continue
		}
		details.Source = probe.name
		details.Width = width
		details.Height = height
		details.Interactive = true
		details.Error = ""
		break
	}
	if details.PanelWidth == 0 {
		details.PanelWidth = details.Width
	}
	if details.PanelHeight == 0 {
		details.PanelHeight = details.Height
	}
	return details
}
