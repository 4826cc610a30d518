package section

import (
	"testing"
	"time"

	"github.com/atomicstack/popup-settings/internal/visual"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testVariant struct {
	header string
}

func (v testVariant) Header() string   { return v.header }
func (v testVariant) CreateIcon() Icon { return Icon{Glyph: "*"} }

type testPanel struct {
	binding *Binding
	scrolls []*Section
}

func newTestPanel() *testPanel {
	return &testPanel{binding: NewBinding()}
}

func (p *testPanel) CurrentSection() ReadOnlyBinding { return p.binding }

func (p *testPanel) ScrollTo(s *Section) {
	p.scrolls = append(p.scrolls, s)
	p.binding.Set(s)
}

type testControl struct {
	label       string
	activations int
	level       int
	matching    bool
	active      bool
}

func newTestControl(label string) *testControl {
	return &testControl{label: label, matching: true}
}

func (c *testControl) FilterTerms() []string            { return []string{c.label} }
func (c *testControl) FilterableChildren() []Filterable { return nil }
func (c *testControl) SetMatchingFilter(m bool)         { c.matching = m }
func (c *testControl) SetFilteringActive(a bool)        { c.active = a }
func (c *testControl) Label() string                    { return c.label }
func (c *testControl) Value() string                    { return "" }
func (c *testControl) Visible() bool                    { return c.matching }

func (c *testControl) Activate() bool {
	c.activations++
	return true
}

func (c *testControl) Adjust(delta int) bool {
	c.level += delta
	return true
}

func targets(s *Section) Opacities {
	return Opacities{Header: s.HeaderNode().Target(), Body: s.BodyNode().Target()}
}

func TestDeriveMatchesFadeTable(t *testing.T) {
	cases := []struct {
		current, hovered bool
		want             Opacities
	}{
		{true, true, Opacities{1, 1}},
		{true, false, Opacities{1, 1}},
		{false, true, Opacities{0.5, 0.25}},
		{false, false, Opacities{0.25, 0.25}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Derive(tc.current, tc.hovered), "current=%v hovered=%v", tc.current, tc.hovered)
	}
}

type fadeCall struct {
	target   float64
	duration time.Duration
	easing   visual.Easing
}

type recordingFader struct {
	calls []fadeCall
}

func (r *recordingFader) FadeTo(target float64, d time.Duration, e visual.Easing) {
	r.calls = append(r.calls, fadeCall{target, d, e})
}

func TestPresenterIssuesTimedFades(t *testing.T) {
	header, body := &recordingFader{}, &recordingFader{}
	p := NewPresenter(header, body)

	got := p.Present(false, true)

	assert.Equal(t, Opacities{Header: 0.5, Body: 0.25}, got)
	require.Len(t, header.calls, 1)
	require.Len(t, body.calls, 1)
	assert.Equal(t, fadeCall{0.5, 500 * time.Millisecond, visual.EasingOutQuint}, header.calls[0])
	assert.Equal(t, fadeCall{0.25, 500 * time.Millisecond, visual.EasingOutQuint}, body.calls[0])
}

func TestNewSectionEvaluatesStateImmediately(t *testing.T) {
	p := newTestPanel()
	s := New(testVariant{"Audio"}, p)

	assert.False(t, s.IsCurrent())
	assert.Equal(t, Opacities{0.25, 0.25}, targets(s))
	assert.Equal(t, 1, p.binding.Subscribers())
}

func TestNewSectionWithoutPanelToleratesMissingBinding(t *testing.T) {
	s := New(testVariant{"Audio"}, nil)
	assert.False(t, s.IsCurrent())
	assert.False(t, s.AcceptsInput())
	assert.Equal(t, Opacities{0.25, 0.25}, targets(s))
}

func TestSingletonSelection(t *testing.T) {
	p := newTestPanel()
	sections := []*Section{
		New(testVariant{"A"}, p),
		New(testVariant{"B"}, p),
		New(testVariant{"C"}, p),
	}
	requests := []int{1, 0, 2, 2, 1}
	for _, idx := range requests {
		p.ScrollTo(sections[idx])
		current := 0
		for _, s := range sections {
			if s.IsCurrent() {
				current++
			}
		}
		require.Equal(t, 1, current)
		require.True(t, sections[idx].IsCurrent())
	}
	assert.Equal(t, Opacities{1, 1}, targets(sections[1]))
	assert.Equal(t, Opacities{0.25, 0.25}, targets(sections[0]))
}

func TestSelectingCurrentSectionIsNoOp(t *testing.T) {
	p := newTestPanel()
	a := New(testVariant{"A"}, p)
	b := New(testVariant{"B"}, p)
	require.True(t, p.binding.Set(a))

	notified := 0
	p.binding.BindValueChanged(func(ValueChangedEvent) { notified++ }, false)
	before := a.HeaderNode().Retargets() + a.BodyNode().Retargets() + b.HeaderNode().Retargets()

	assert.False(t, p.binding.Set(a))
	assert.Equal(t, 0, notified)
	after := a.HeaderNode().Retargets() + a.BodyNode().Retargets() + b.HeaderNode().Retargets()
	assert.Equal(t, before, after)
}

func TestClickOnNonCurrentSectionRequestsScroll(t *testing.T) {
	p := newTestPanel()
	ctrl := newTestControl("Master volume")
	a := New(testVariant{"A"}, p)
	b := New(testVariant{"B"}, p, WithControls(ctrl))
	p.binding.Set(a)

	res := b.Click(0)

	assert.Equal(t, ClickResult{ScrollRequested: true}, res)
	assert.Equal(t, 0, ctrl.activations)
	require.Len(t, p.scrolls, 1)
	assert.Same(t, b, p.scrolls[0])
	assert.True(t, b.IsCurrent())
}

func TestClickOnCurrentSectionReachesControl(t *testing.T) {
	p := newTestPanel()
	ctrl := newTestControl("Master volume")
	b := New(testVariant{"B"}, p, WithControls(ctrl))
	p.binding.Set(b)

	res := b.Click(0)

	assert.True(t, res.Delivered)
	assert.False(t, res.ScrollRequested)
	assert.Equal(t, 1, ctrl.activations)
	assert.Empty(t, p.scrolls)
	assert.Equal(t, 0, b.Focused())
}

func TestClickOnHeaderOfCurrentSectionDoesNothing(t *testing.T) {
	p := newTestPanel()
	b := New(testVariant{"B"}, p, WithControls(newTestControl("x")))
	p.binding.Set(b)

	assert.Equal(t, ClickResult{}, b.Click(-1))
	assert.Empty(t, p.scrolls)
}

func TestHandleInputIsGated(t *testing.T) {
	p := newTestPanel()
	first, second := newTestControl("one"), newTestControl("two")
	s := New(testVariant{"S"}, p, WithControls(first, second))

	assert.False(t, s.HandleInput(InputActivate))
	assert.Equal(t, 0, first.activations)

	p.binding.Set(s)
	assert.True(t, s.HandleInput(InputActivate))
	assert.Equal(t, 1, first.activations)

	assert.True(t, s.HandleInput(InputFocusNext))
	assert.True(t, s.HandleInput(InputIncrease))
	assert.Equal(t, 1, second.level)

	second.matching = false
	assert.True(t, s.HandleInput(InputFocusNext))
	assert.Equal(t, 0, s.Focused())
	assert.True(t, s.HandleInput(InputDecrease))
	assert.Equal(t, -1, first.level)
}

func TestLosingCurrentClearsFocus(t *testing.T) {
	p := newTestPanel()
	a := New(testVariant{"A"}, p, WithControls(newTestControl("one")))
	b := New(testVariant{"B"}, p)
	p.binding.Set(a)
	a.HandleInput(InputFocusNext)
	require.Equal(t, 0, a.Focused())

	p.ScrollTo(b)
	assert.Equal(t, -1, a.Focused())
}

func TestHoverRetriggersFadeForThatSectionOnly(t *testing.T) {
	p := newTestPanel()
	a := New(testVariant{"A"}, p)
	b := New(testVariant{"B"}, p)

	b.HoverEnter()
	assert.Equal(t, Opacities{0.5, 0.25}, targets(b))
	assert.Equal(t, Opacities{0.25, 0.25}, targets(a))

	b.HoverLeave()
	assert.Equal(t, Opacities{0.25, 0.25}, targets(b))
}

func TestEndToEndSelectionScenario(t *testing.T) {
	p := newTestPanel()
	a := New(testVariant{"A"}, p)
	b := New(testVariant{"B"}, p)
	c := New(testVariant{"C"}, p)
	p.binding.Set(a)

	b.HoverEnter()
	assert.Equal(t, Opacities{0.5, 0.25}, targets(b))
	assert.Equal(t, Opacities{1, 1}, targets(a))
	assert.Equal(t, Opacities{0.25, 0.25}, targets(c))
	cRetargets := c.HeaderNode().Retargets()

	res := b.Click(-1)
	require.True(t, res.ScrollRequested)

	assert.Same(t, b, p.binding.Value())
	assert.Equal(t, Opacities{0.25, 0.25}, targets(a))
	assert.Equal(t, Opacities{1, 1}, targets(b))
	assert.Equal(t, Opacities{0.25, 0.25}, targets(c))
	assert.Equal(t, cRetargets, c.HeaderNode().Retargets())
}

func TestCloseUnbinds(t *testing.T) {
	p := newTestPanel()
	s := New(testVariant{"A"}, p)
	s.Close()
	s.Close()
	assert.Equal(t, 0, p.binding.Subscribers())
}

func TestMatchingFilterDrivesSectionOpacity(t *testing.T) {
	s := New(testVariant{"Audio"}, newTestPanel())
	s.SetMatchingFilter(false)
	assert.Equal(t, 0.0, s.Node().Target())
	assert.False(t, s.Node().Visible())
	s.SetMatchingFilter(true)
	assert.Equal(t, 1.0, s.Node().Target())
}
