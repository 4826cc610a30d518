package section

// Gate decides whether a section's descendants are considered for input.
// Only the current section accepts input; the first click anywhere else is
// turned into a request to bring that section into view.
type Gate struct {
	isCurrent func() bool
}

// NewGate returns a gate that consults isCurrent on every event.
func NewGate(isCurrent func() bool) Gate {
	return Gate{isCurrent: isCurrent}
}

// Accepts reports whether input may reach the section's children.
func (g Gate) Accepts() bool {
	if g.isCurrent == nil {
		return false
	}
	return g.isCurrent()
}

// ClickResult describes what a click on a section did.
type ClickResult struct {
	// Delivered is true when the click reached a child control.
	Delivered bool
	// ScrollRequested is true when the section asked the panel to select it.
	ScrollRequested bool
	// Changed is true when the targeted control changed its value.
	Changed bool
}
