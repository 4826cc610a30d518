package state

// Viewport is a vertical window of Height rows over Content rows of
// section layout, starting at Offset.
type Viewport struct {
	Offset  int
	Height  int
	Content int
}

// MaxOffset returns the largest offset that still fills the window.
func (v *Viewport) MaxOffset() int {
	if v.Height <= 0 {
		return 0
	}
	limit := v.Content - v.Height
	if limit < 0 {
		return 0
	}
	return limit
}

// Clamp keeps the offset inside [0, MaxOffset].
func (v *Viewport) Clamp() {
	if v.Offset > v.MaxOffset() {
		v.Offset = v.MaxOffset()
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}

// ScrollBy moves the window by delta rows, reporting whether it moved.
func (v *Viewport) ScrollBy(delta int) bool {
	old := v.Offset
	v.Offset += delta
	v.Clamp()
	return v.Offset != old
}

// ScrollToRow puts row at the top of the window, as far as the content
// allows.
func (v *Viewport) ScrollToRow(row int) bool {
	old := v.Offset
	v.Offset = row
	v.Clamp()
	return v.Offset != old
}

// Visible reports whether row lies inside the window.
func (v *Viewport) Visible(row int) bool {
	if v.Height <= 0 {
		return true
	}
	return row >= v.Offset && row < v.Offset+v.Height
}
