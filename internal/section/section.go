package section

import (
	"time"

	"github.com/atomicstack/popup-settings/internal/logging/events"
	"github.com/atomicstack/popup-settings/internal/visual"
)

// Icon is the glyph drawn beside a section header.
type Icon struct {
	Glyph string
}

// Variant supplies what differs between concrete sections.
type Variant interface {
	Header() string
	// CreateIcon is called once, while the section is constructed.
	CreateIcon() Icon
}

// Panel is the owning settings panel as seen from a section.
type Panel interface {
	CurrentSection() ReadOnlyBinding
	ScrollTo(s *Section)
}

// Control is a child placed in a section's flow region.
type Control interface {
	Filterable
	Label() string
	// Value renders the control's present value.
	Value() string
	// Activate toggles or cycles the control, reporting whether it changed.
	Activate() bool
	// Adjust nudges the control by delta steps, reporting whether it changed.
	Adjust(delta int) bool
	// Visible reports whether the last filter pass kept the control.
	Visible() bool
}

// Input is a keyboard intent routed to the current section.
type Input int

const (
	InputActivate Input = iota
	InputIncrease
	InputDecrease
	InputFocusNext
	InputFocusPrev
)

type options struct {
	clock    visual.Clock
	terms    []string
	controls []Control
}

// Option customises a section at construction.
type Option func(*options)

// WithClock sets the time source used by the section's visual nodes.
func WithClock(clock visual.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// WithFilterTerms replaces the default filter terms (the header alone).
func WithFilterTerms(terms ...string) Option {
	return func(o *options) { o.terms = append([]string(nil), terms...) }
}

// WithControls adds controls to the flow region in order.
func WithControls(controls ...Control) Option {
	return func(o *options) { o.controls = append(o.controls, controls...) }
}

// Section is a headered group of controls taking part in the panel's
// current-section protocol.
type Section struct {
	header string
	icon   Icon
	terms  []string

	panel    Panel
	selected ReadOnlyBinding
	unbind   func()

	node      *visual.Node
	separator *visual.Node
	headerVis *visual.Node
	body      *visual.Node
	presenter *Presenter
	gate      Gate

	controls        []Control
	focus           int
	hovered         bool
	filteringActive bool
	matchingFilter  bool
}

// New builds a section for variant v owned by panel. The header text is read
// once here. The section subscribes to the panel's current-section binding
// and evaluates its fade state immediately.
func New(v Variant, panel Panel, opts ...Option) *Section {
	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	header := v.Header()
	s := &Section{
		header:         header,
		icon:           v.CreateIcon(),
		panel:          panel,
		focus:          -1,
		matchingFilter: true,
	}
	if len(o.terms) > 0 {
		s.terms = o.terms
	} else {
		s.terms = []string{header}
	}
	s.node = visual.NewNode(header, o.clock, 1)
	s.separator = visual.NewNode(header+"/separator", o.clock, 1)
	s.headerVis = visual.NewNode(header+"/header", o.clock, 1)
	s.body = visual.NewNode(header+"/body", o.clock, 1)
	s.presenter = NewPresenter(s.headerVis, s.body)
	s.gate = NewGate(s.IsCurrent)
	s.Add(o.controls...)

	if panel != nil {
		s.selected = panel.CurrentSection()
	}
	if s.selected != nil {
		s.unbind = s.selected.BindValueChanged(s.onCurrentChanged, true)
	} else {
		s.updateContentFade()
	}
	return s
}

// Header returns the section title.
func (s *Section) Header() string {
	return s.header
}

// Icon returns the glyph created at construction.
func (s *Section) Icon() Icon {
	return s.icon
}

// FilterTerms returns the section's own terms.
func (s *Section) FilterTerms() []string {
	return append([]string(nil), s.terms...)
}

// FilterableChildren returns the controls in insertion order.
func (s *Section) FilterableChildren() []Filterable {
	out := make([]Filterable, 0, len(s.controls))
	for _, c := range s.controls {
		out = append(out, c)
	}
	return out
}

// Add appends controls to the flow region.
func (s *Section) Add(controls ...Control) {
	for _, c := range controls {
		if c == nil {
			continue
		}
		s.controls = append(s.controls, c)
	}
}

// Controls returns the flow region's children.
func (s *Section) Controls() []Control {
	return append([]Control(nil), s.controls...)
}

// SetMatchingFilter shows or hides the whole section.
func (s *Section) SetMatchingFilter(matching bool) {
	s.matchingFilter = matching
	target := 0.0
	if matching {
		target = 1
	}
	s.node.FadeTo(target, 0, visual.EasingNone)
	if !matching {
		s.focus = -1
	}
}

// MatchingFilter reports the outcome of the last filter pass.
func (s *Section) MatchingFilter() bool {
	return s.matchingFilter
}

// SetFilteringActive stores whether a query is applied.
func (s *Section) SetFilteringActive(active bool) {
	s.filteringActive = active
}

// FilteringActive reports the stored filtering flag.
func (s *Section) FilteringActive() bool {
	return s.filteringActive
}

// IsCurrent reports whether the panel's binding points at this section.
func (s *Section) IsCurrent() bool {
	return s.selected != nil && s.selected.Value() == s
}

// AcceptsInput reports whether children may receive input.
func (s *Section) AcceptsInput() bool {
	return s.gate.Accepts()
}

// Hovered reports whether the pointer is over the section.
func (s *Section) Hovered() bool {
	return s.hovered
}

// HoverEnter is called when the pointer moves onto the section.
func (s *Section) HoverEnter() {
	if s.hovered {
		return
	}
	s.hovered = true
	events.Section.Hover(s.header, true)
	s.updateContentFade()
}

// HoverLeave is called when the pointer leaves the section.
func (s *Section) HoverLeave() {
	if !s.hovered {
		return
	}
	s.hovered = false
	events.Section.Hover(s.header, false)
	s.updateContentFade()
}

// Click handles a pointer press on the section. target is the index of the
// control under the pointer, or -1 for the header and padding. A section
// that is not current swallows the click and asks the panel to select it.
func (s *Section) Click(target int) ClickResult {
	if !s.gate.Accepts() {
		events.Section.ClickGated(s.header)
		if s.panel != nil {
			s.panel.ScrollTo(s)
		}
		return ClickResult{ScrollRequested: true}
	}
	c := s.visibleControl(target)
	if c == nil {
		return ClickResult{}
	}
	s.focus = target
	changed := c.Activate()
	events.Section.ControlActivated(s.header, c.Label(), c.Value())
	return ClickResult{Delivered: true, Changed: changed}
}

// HandleInput routes a keyboard intent to the focused control. It reports
// false when the section is not current or nothing handled the input.
func (s *Section) HandleInput(in Input) bool {
	if !s.gate.Accepts() {
		return false
	}
	switch in {
	case InputFocusNext:
		return s.moveFocus(1)
	case InputFocusPrev:
		return s.moveFocus(-1)
	}
	c := s.visibleControl(s.focus)
	if c == nil {
		if !s.moveFocus(1) {
			return false
		}
		c = s.visibleControl(s.focus)
	}
	var changed bool
	switch in {
	case InputActivate:
		changed = c.Activate()
	case InputIncrease:
		changed = c.Adjust(1)
	case InputDecrease:
		changed = c.Adjust(-1)
	}
	if changed {
		events.Section.ControlActivated(s.header, c.Label(), c.Value())
	}
	return changed
}

// Focused returns the index of the focused control, or -1.
func (s *Section) Focused() int {
	if s.visibleControl(s.focus) == nil {
		return -1
	}
	return s.focus
}

func (s *Section) moveFocus(delta int) bool {
	n := len(s.controls)
	if n == 0 {
		return false
	}
	start := s.focus
	if start < 0 || start >= n {
		if delta > 0 {
			start = -1
		} else {
			start = n
		}
	}
	for i := 1; i <= n; i++ {
		idx := start + delta*i
		if idx < 0 || idx >= n {
			idx = ((idx % n) + n) % n
		}
		if s.controls[idx].Visible() {
			changed := idx != s.focus
			s.focus = idx
			return changed
		}
	}
	return false
}

func (s *Section) visibleControl(idx int) Control {
	if idx < 0 || idx >= len(s.controls) {
		return nil
	}
	c := s.controls[idx]
	if !c.Visible() {
		return nil
	}
	return c
}

// Node is the whole-section visual driven by the filter.
func (s *Section) Node() *visual.Node {
	return s.node
}

// SeparatorNode is the rule drawn above the section.
func (s *Section) SeparatorNode() *visual.Node {
	return s.separator
}

// HeaderNode is the header label visual.
func (s *Section) HeaderNode() *visual.Node {
	return s.headerVis
}

// BodyNode is the flow region visual holding the controls.
func (s *Section) BodyNode() *visual.Node {
	return s.body
}

// Animating reports whether any of the section's visuals is mid-fade.
func (s *Section) Animating() bool {
	return s.node.Animating() || s.headerVis.Animating() || s.body.Animating()
}

// Close drops the binding subscription; call when the panel tears down.
func (s *Section) Close() {
	if s.unbind != nil {
		s.unbind()
		s.unbind = nil
	}
}

func (s *Section) onCurrentChanged(evt ValueChangedEvent) {
	if evt.New == s && evt.Old != s {
		events.Section.Current(s.header, true)
	} else if evt.Old == s && evt.New != s {
		events.Section.Current(s.header, false)
		s.focus = -1
	}
	s.updateContentFade()
}

func (s *Section) updateContentFade() {
	target := s.presenter.Present(s.IsCurrent(), s.hovered)
	events.Section.Fade(s.header, target.Header, target.Body)
}
