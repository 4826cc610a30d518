package visual

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Blend renders opacity on a terminal: the foreground is mixed towards the
// background so that 0 disappears into it and 1 leaves fg untouched. Colors
// that fail to parse are returned unchanged.
func Blend(fg, bg string, opacity float64) lipgloss.Color {
	opacity = clamp(opacity)
	front, err := colorful.Hex(fg)
	if err != nil {
		return lipgloss.Color(fg)
	}
	back, err := colorful.Hex(bg)
	if err != nil {
		return lipgloss.Color(fg)
	}
	if opacity >= 1 {
		return lipgloss.Color(front.Hex())
	}
	return lipgloss.Color(back.BlendLab(front, opacity).Clamped().Hex())
}
