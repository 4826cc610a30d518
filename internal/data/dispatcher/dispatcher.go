package dispatcher

import (
	"github.com/atomicstack/popup-settings/internal/backend"
	"github.com/atomicstack/popup-settings/internal/logging/events"
	"github.com/atomicstack/popup-settings/internal/settings"
	"github.com/atomicstack/popup-settings/internal/state"
)

type Result struct {
	SettingsUpdated bool
	// Skipped is set when a reload was dropped to keep unsaved edits.
	Skipped bool
}

type Dispatcher struct {
	settings state.SettingsStore
}

func New(s state.SettingsStore) *Dispatcher {
	return &Dispatcher{settings: s}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	switch evt.Kind {
	case backend.KindSettings:
		values, ok := evt.Data.(settings.Values)
		if !ok {
			return res
		}
		if d.settings.Dirty() {
			events.Settings.ReloadSkipped(len(d.settings.DirtyKeys()))
			res.Skipped = true
			return res
		}
		d.settings.Replace(values)
		events.Settings.Reloaded(len(values))
		res.SettingsUpdated = true
	}
	return res
}
