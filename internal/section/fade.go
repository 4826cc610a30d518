package section

import (
	"time"

	"github.com/atomicstack/popup-settings/internal/visual"
)

// FadeDuration is the length of every selection/hover fade.
const FadeDuration = 500 * time.Millisecond

const (
	opaque       = 1.0
	hoverHeader  = 0.5
	dimmedHeader = 0.25
	dimmedBody   = 0.25
)

// Fader is the slice of a visual node the presenter drives.
type Fader interface {
	FadeTo(target float64, duration time.Duration, easing visual.Easing)
}

// Opacities is the derived header/body emphasis of a section.
type Opacities struct {
	Header float64
	Body   float64
}

// Derive maps selection and hover state onto target opacities. The current
// section is fully opaque regardless of hover; any other section is dimmed,
// with its header lifted while hovered.
func Derive(isCurrent, isHovered bool) Opacities {
	if isCurrent {
		return Opacities{Header: opaque, Body: opaque}
	}
	if isHovered {
		return Opacities{Header: hoverHeader, Body: dimmedBody}
	}
	return Opacities{Header: dimmedHeader, Body: dimmedBody}
}

// Presenter issues the timed fades for one section.
type Presenter struct {
	header Fader
	body   Fader
}

// NewPresenter binds a presenter to the header and body faders.
func NewPresenter(header, body Fader) *Presenter {
	return &Presenter{header: header, body: body}
}

// Present derives the targets and starts the fades, returning the targets.
func (p *Presenter) Present(isCurrent, isHovered bool) Opacities {
	target := Derive(isCurrent, isHovered)
	if p.header != nil {
		p.header.FadeTo(target.Header, FadeDuration, visual.EasingOutQuint)
	}
	if p.body != nil {
		p.body.FadeTo(target.Body, FadeDuration, visual.EasingOutQuint)
	}
	return target
}
