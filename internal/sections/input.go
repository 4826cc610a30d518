package sections

import (
	"github.com/atomicstack/popup-settings/internal/controls"
	"github.com/atomicstack/popup-settings/internal/section"
	"github.com/atomicstack/popup-settings/internal/settings"
	"github.com/atomicstack/popup-settings/internal/state"
)

type Input struct{}

func (Input) Header() string { return "Input" }

func (Input) CreateIcon() section.Icon { return section.Icon{Glyph: "⌨"} }

func (Input) Table() string { return "input" }

func (i Input) FilterTerms() []string {
	return []string{i.Header(), "keyboard", "mouse"}
}

func (i Input) Controls(store state.SettingsStore) []section.Control {
	key := func(name string) string { return settings.Key(i.Table(), name) }
	return []section.Control{
		controls.NewSlider(store, key("cursor_sensitivity"), "Cursor sensitivity", 10, 60, 1, 10, "", "mouse", "speed"),
		controls.NewCheckbox(store, key("raw_input"), "High precision mouse", false, "raw"),
		controls.NewEnum(store, key("confine_cursor"), "Confine cursor", []string{"never", "fullscreen", "always"}, "fullscreen", "mouse"),
		controls.NewCheckbox(store, key("disable_wheel"), "Disable mouse wheel during play", false),
	}
}
