package theme

import "github.com/charmbracelet/lipgloss"

// Palette holds the hex colors that visual opacity is blended between.
// Faded text is mixed from its foreground towards Background.
type Palette struct {
	Background string
	Header     string
	Body       string
	Value      string
	Separator  string
	Focus      string
	Icon       string
}

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Palette Palette

	Title             *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Footer            *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Cursor            *lipgloss.Style
	NoMatches         *lipgloss.Style
}

var defaultStyles = Styles{
	Palette: Palette{
		Background: "#1c1c1c",
		Header:     "#ffcc22",
		Body:       "#d0d0d0",
		Value:      "#66ccff",
		Separator:  "#444444",
		Focus:      "#ff66aa",
		Icon:       "#ffcc22",
	},
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
	NoMatches: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
