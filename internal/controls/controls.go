// Package controls provides the settings widgets placed inside a section.
// Every control is bound to one key of a state.SettingsStore and takes part
// in filtering through its label and keywords.
package controls

import (
	"fmt"
	"strconv"

	"github.com/atomicstack/popup-settings/internal/logging/events"
	"github.com/atomicstack/popup-settings/internal/section"
	"github.com/atomicstack/popup-settings/internal/state"
)

type base struct {
	key       string
	label     string
	keywords  []string
	store     state.SettingsStore
	matching  bool
	filtering bool
}

func newBase(store state.SettingsStore, key, label string, keywords []string) base {
	return base{
		key:      key,
		label:    label,
		keywords: append([]string(nil), keywords...),
		store:    store,
		matching: true,
	}
}

// Key returns the settings key the control edits.
func (b *base) Key() string { return b.key }

func (b *base) Label() string { return b.label }

func (b *base) FilterTerms() []string {
	return append([]string{b.label}, b.keywords...)
}

func (b *base) FilterableChildren() []section.Filterable { return nil }

func (b *base) SetMatchingFilter(matching bool) { b.matching = matching }

func (b *base) SetFilteringActive(active bool) { b.filtering = active }

// FilteringActive reports whether the last filter pass had a query.
func (b *base) FilteringActive() bool { return b.filtering }

func (b *base) Visible() bool { return b.matching }

func (b *base) set(value interface{}) {
	b.store.Set(b.key, value)
	events.Settings.Changed(b.key, value)
}

// Checkbox toggles a boolean setting.
type Checkbox struct {
	base
}

// NewCheckbox registers def as the key's default and returns the control.
func NewCheckbox(store state.SettingsStore, key, label string, def bool, keywords ...string) *Checkbox {
	store.SetDefault(key, def)
	return &Checkbox{base: newBase(store, key, label, keywords)}
}

// Checked returns the stored value.
func (c *Checkbox) Checked() bool {
	return c.store.Bool(c.key)
}

func (c *Checkbox) Value() string {
	if c.Checked() {
		return "on"
	}
	return "off"
}

func (c *Checkbox) Activate() bool {
	c.set(!c.Checked())
	return true
}

// Adjust turns the checkbox on for positive deltas and off for negative ones.
func (c *Checkbox) Adjust(delta int) bool {
	if delta == 0 {
		return false
	}
	want := delta > 0
	if want == c.Checked() {
		return false
	}
	c.set(want)
	return true
}

// Slider edits an integer within [Min, Max] in Step increments.
type Slider struct {
	base
	Min  int
	Max  int
	Step int
	Unit string
}

// NewSlider registers def as the key's default and returns the control.
func NewSlider(store state.SettingsStore, key, label string, lo, hi, step, def int, unit string, keywords ...string) *Slider {
	if step <= 0 {
		step = 1
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	store.SetDefault(key, clampInt(def, lo, hi))
	return &Slider{base: newBase(store, key, label, keywords), Min: lo, Max: hi, Step: step, Unit: unit}
}

// Current returns the stored value clamped to the slider range.
func (s *Slider) Current() int {
	return clampInt(s.store.Int(s.key), s.Min, s.Max)
}

// Fraction returns the position of the value within the range.
func (s *Slider) Fraction() float64 {
	if s.Max == s.Min {
		return 1
	}
	return float64(s.Current()-s.Min) / float64(s.Max-s.Min)
}

func (s *Slider) Value() string {
	return strconv.Itoa(s.Current()) + s.Unit
}

// Activate steps the slider up, wrapping to Min after Max.
func (s *Slider) Activate() bool {
	next := s.Current() + s.Step
	if next > s.Max {
		next = s.Min
	}
	if next == s.Current() {
		return false
	}
	s.set(next)
	return true
}

func (s *Slider) Adjust(delta int) bool {
	next := clampInt(s.Current()+delta*s.Step, s.Min, s.Max)
	if next == s.Current() {
		return false
	}
	s.set(next)
	return true
}

// Enum cycles through a fixed list of string options.
type Enum struct {
	base
	Options []string
}

// NewEnum registers def as the key's default and returns the control.
func NewEnum(store state.SettingsStore, key, label string, options []string, def string, keywords ...string) *Enum {
	if len(options) == 0 {
		panic(fmt.Sprintf("controls: enum %q has no options", key))
	}
	store.SetDefault(key, def)
	// options are searchable too, so "vulkan" finds the renderer control
	terms := append(append([]string(nil), keywords...), options...)
	return &Enum{base: newBase(store, key, label, terms), Options: append([]string(nil), options...)}
}

// Index returns the position of the stored option, or 0 when unknown.
func (e *Enum) Index() int {
	current := e.store.String(e.key)
	for i, opt := range e.Options {
		if opt == current {
			return i
		}
	}
	return 0
}

func (e *Enum) Value() string {
	return e.Options[e.Index()]
}

func (e *Enum) Activate() bool {
	return e.Adjust(1)
}

// Adjust moves through the options, wrapping at either end.
func (e *Enum) Adjust(delta int) bool {
	n := len(e.Options)
	if delta == 0 || n < 2 {
		return false
	}
	idx := ((e.Index()+delta)%n + n) % n
	e.set(e.Options[idx])
	return true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var (
	_ section.Control = (*Checkbox)(nil)
	_ section.Control = (*Slider)(nil)
	_ section.Control = (*Enum)(nil)
)
