package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/popup-settings/internal/backend"
	"github.com/atomicstack/popup-settings/internal/logging/events"
	"github.com/atomicstack/popup-settings/internal/settings"
	"github.com/atomicstack/popup-settings/internal/state"
	"github.com/atomicstack/popup-settings/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	SettingsPath  string
	Width         int
	Height        int
	ShowFooter    bool
	Mouse         bool
	WatchInterval time.Duration
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, cleanup, err := newModel(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	program := tea.NewProgram(model, opts...)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// newModel loads the settings file and wires the store, watcher and panel.
func newModel(cfg Config) (*ui.Model, func(), error) {
	path := cfg.SettingsPath
	if path == "" {
		path = settings.DefaultPath()
	}
	values, err := settings.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load settings: %w", err)
	}
	events.Settings.Loaded(path, len(values))
	store := state.NewSettingsStore(values)

	var watcher *backend.Watcher
	if cfg.WatchInterval > 0 {
		watcher = backend.NewWatcher(path, cfg.WatchInterval)
	}
	model := ui.NewModel(ui.Options{
		SettingsPath: path,
		Store:        store,
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFooter:   cfg.ShowFooter,
		Mouse:        cfg.Mouse,
		Watcher:      watcher,
	})
	cleanup := func() {
		if watcher != nil {
			watcher.Stop()
		}
		model.Close()
	}
	return model, cleanup, nil
}
