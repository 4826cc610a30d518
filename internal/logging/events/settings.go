package events

import "github.com/atomicstack/popup-settings/internal/logging"

type SettingsTracer struct{}

var Settings = SettingsTracer{}

func (SettingsTracer) Loaded(path string, keys int) {
	logging.Trace("settings.load", map[string]interface{}{"path": path, "keys": keys})
}

func (SettingsTracer) Saved(path string, keys int) {
	logging.Trace("settings.save", map[string]interface{}{"path": path, "keys": keys})
}

func (SettingsTracer) Reloaded(keys int) {
	logging.Trace("settings.reload", map[string]interface{}{"keys": keys})
}

// ReloadSkipped records an on-disk change ignored because of unsaved edits.
func (SettingsTracer) ReloadSkipped(dirty int) {
	logging.Trace("settings.reload-skipped", map[string]interface{}{"dirty": dirty})
}

func (SettingsTracer) Changed(key string, value interface{}) {
	logging.Trace("settings.change", map[string]interface{}{"key": key, "value": value})
}
