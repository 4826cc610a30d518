package sections

import (
	"github.com/atomicstack/popup-settings/internal/controls"
	"github.com/atomicstack/popup-settings/internal/section"
	"github.com/atomicstack/popup-settings/internal/settings"
	"github.com/atomicstack/popup-settings/internal/state"
)

type Audio struct{}

func (Audio) Header() string { return "Audio" }

func (Audio) CreateIcon() section.Icon { return section.Icon{Glyph: "♪"} }

func (Audio) Table() string { return "audio" }

func (Audio) FilterTerms() []string { return nil }

func (a Audio) Controls(store state.SettingsStore) []section.Control {
	key := func(name string) string { return settings.Key(a.Table(), name) }
	return []section.Control{
		controls.NewSlider(store, key("master_volume"), "Master volume", 0, 100, 5, 80, "%", "sound", "level"),
		controls.NewSlider(store, key("music_volume"), "Music volume", 0, 100, 5, 60, "%", "sound"),
		controls.NewSlider(store, key("effect_volume"), "Effect volume", 0, 100, 5, 70, "%", "sound", "sfx"),
		controls.NewSlider(store, key("offset_ms"), "Audio offset", -300, 300, 5, 0, "ms", "latency", "sync"),
		controls.NewCheckbox(store, key("mute_unfocused"), "Mute when unfocused", false),
	}
}
