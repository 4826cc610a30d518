// Package sections defines the concrete settings sections shown by the
// panel. Each variant fixes its header and icon and contributes its own
// controls.
package sections

import (
	"github.com/atomicstack/popup-settings/internal/section"
	"github.com/atomicstack/popup-settings/internal/state"
	"github.com/atomicstack/popup-settings/internal/visual"
)

// Variant is a section definition that can build its controls.
type Variant interface {
	section.Variant
	// Table is the settings file table holding the section's keys.
	Table() string
	Controls(store state.SettingsStore) []section.Control
	// FilterTerms returns extra search terms, or nil for the header alone.
	FilterTerms() []string
}

// All returns the section definitions in display order.
func All() []Variant {
	return []Variant{
		General{},
		Audio{},
		Graphics{},
		Input{},
		Maintenance{},
	}
}

// Build constructs every section for panel, binding controls to store.
func Build(panel section.Panel, store state.SettingsStore, clock visual.Clock) []*section.Section {
	variants := All()
	out := make([]*section.Section, 0, len(variants))
	for _, v := range variants {
		out = append(out, New(v, panel, store, clock))
	}
	return out
}

// New constructs one section from a definition.
func New(v Variant, panel section.Panel, store state.SettingsStore, clock visual.Clock) *section.Section {
	opts := []section.Option{section.WithControls(v.Controls(store)...)}
	if clock != nil {
		opts = append(opts, section.WithClock(clock))
	}
	if terms := v.FilterTerms(); len(terms) > 0 {
		opts = append(opts, section.WithFilterTerms(terms...))
	}
	return section.New(v, panel, opts...)
}
