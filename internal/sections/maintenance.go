package sections

import (
	"github.com/atomicstack/popup-settings/internal/controls"
	"github.com/atomicstack/popup-settings/internal/section"
	"github.com/atomicstack/popup-settings/internal/settings"
	"github.com/atomicstack/popup-settings/internal/state"
)

type Maintenance struct{}

func (Maintenance) Header() string { return "Maintenance" }

func (Maintenance) CreateIcon() section.Icon { return section.Icon{Glyph: "✚"} }

func (Maintenance) Table() string { return "maintenance" }

func (Maintenance) FilterTerms() []string { return nil }

func (m Maintenance) Controls(store state.SettingsStore) []section.Control {
	key := func(name string) string { return settings.Key(m.Table(), name) }
	return []section.Control{
		controls.NewCheckbox(store, key("delete_unused"), "Delete unused files on exit", false, "cleanup", "storage"),
		controls.NewSlider(store, key("cache_size_mb"), "Cache size", 64, 2048, 64, 512, "MB", "storage", "disk"),
	}
}
