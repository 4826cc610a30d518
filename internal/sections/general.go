package sections

import (
	"github.com/atomicstack/popup-settings/internal/controls"
	"github.com/atomicstack/popup-settings/internal/section"
	"github.com/atomicstack/popup-settings/internal/settings"
	"github.com/atomicstack/popup-settings/internal/state"
)

type General struct{}

func (General) Header() string { return "General" }

func (General) CreateIcon() section.Icon { return section.Icon{Glyph: "⚙"} }

func (General) Table() string { return "general" }

func (General) FilterTerms() []string { return nil }

func (g General) Controls(store state.SettingsStore) []section.Control {
	key := func(name string) string { return settings.Key(g.Table(), name) }
	return []section.Control{
		controls.NewEnum(store, key("language"), "Language", []string{"en", "de", "fr", "ja"}, "en", "locale"),
		controls.NewCheckbox(store, key("prefer_original"), "Prefer original metadata", false, "unicode", "romanised"),
		controls.NewEnum(store, key("release_stream"), "Release stream", []string{"stable", "beta", "nightly"}, "stable", "update"),
		controls.NewCheckbox(store, key("check_updates"), "Check for updates", true, "update"),
	}
}
