package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/popup-settings/internal/controls"
	"github.com/atomicstack/popup-settings/internal/section"
	"github.com/atomicstack/popup-settings/internal/visual"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	// separator rule plus header label
	sectionHeaderRows  = 2
	sectionPaddingRows = 1

	defaultRuleWidth = 40
	maxLabelWidth    = 28
	sliderBarWidth   = 10
	infoTTL          = 5 * time.Second
)

// layout assigns row bounds to every section and sizes the viewport.
// Sections hidden by the filter take no rows.
func (m *Model) layout() {
	row := 0
	for _, s := range m.sections {
		if !s.MatchingFilter() {
			s.Node().SetBounds(visual.Bounds{Top: row})
			continue
		}
		h := sectionHeight(s)
		s.Node().SetBounds(visual.Bounds{Top: row, Height: h})
		row += h
	}
	m.viewport.Content = row
	m.viewport.Height = m.contentHeight()
	m.viewport.Clamp()
}

func sectionHeight(s *section.Section) int {
	h := sectionHeaderRows + sectionPaddingRows
	for _, c := range s.Controls() {
		if c.Visible() {
			h++
		}
	}
	return h
}

// contentHeight is the number of rows left for sections, or 0 when the
// panel height is unknown.
func (m *Model) contentHeight() int {
	if m.height <= 0 {
		return 0
	}
	used := 3 // title, status line, filter prompt
	if m.showFooter {
		used++
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

// View implements tea.Model.
func (m *Model) View() string {
	m.layout()
	lines := make([]string, 0, 32)
	lines = append(lines, m.fit(m.titleLine()))

	rows := m.contentRows()
	if len(rows) == 0 {
		lines = append(lines, m.fit(styles.NoMatches.Render(fmt.Sprintf("No matches for %q", m.query.Trimmed()))))
	}
	start, end := m.viewport.Offset, len(rows)
	if m.viewport.Height > 0 && start+m.viewport.Height < end {
		end = start + m.viewport.Height
	}
	for i := start; i < end; i++ {
		line := m.pad(m.fit(rows[i]))
		if m.zones != nil {
			line = m.zones.Mark(rowZoneID(i), line)
		}
		lines = append(lines, line)
	}

	lines = append(lines, m.fit(m.statusLine()))
	if m.showFooter {
		lines = append(lines, m.fit(m.help.View(m.keys)))
	}
	lines = append(lines, m.fit(m.filterPrompt()))

	out := strings.Join(lines, "\n")
	if m.zones != nil {
		out = m.zones.Scan(out)
	}
	return out
}

func (m *Model) titleLine() string {
	title := defaultTitle
	if m.store.Dirty() {
		title += " [modified]"
	}
	return styles.Title.Render(title)
}

func (m *Model) statusLine() string {
	switch {
	case m.errMsg != "":
		return styles.Error.Render("Error: " + m.errMsg)
	case m.backendErr != "":
		return styles.Error.Render(m.backendErr)
	}
	if info := m.currentInfo(); info != "" {
		return styles.Info.Render(info)
	}
	return ""
}

// contentRows renders every visible section, one string per layout row.
func (m *Model) contentRows() []string {
	rows := make([]string, 0, m.viewport.Content)
	for _, s := range m.sections {
		if !s.MatchingFilter() {
			continue
		}
		rows = append(rows, m.renderSection(s)...)
	}
	return rows
}

func (m *Model) renderSection(s *section.Section) []string {
	pal := styles.Palette
	whole := s.Node().Opacity()
	headerOpacity := s.HeaderNode().Opacity() * whole
	bodyOpacity := s.BodyNode().Opacity() * whole
	paint := func(color string, opacity float64) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(visual.Blend(color, pal.Background, opacity))
	}

	rows := make([]string, 0, sectionHeight(s))
	rows = append(rows, paint(pal.Separator, s.SeparatorNode().Opacity()*whole).Render(strings.Repeat("─", m.ruleWidth())))
	header := paint(pal.Icon, headerOpacity).Render(s.Icon().Glyph) + " " +
		paint(pal.Header, headerOpacity).Bold(true).Render(s.Header())
	rows = append(rows, header)

	labelWidth := m.labelWidth()
	focused := -1
	if s.IsCurrent() {
		focused = s.Focused()
	}
	for i, c := range s.Controls() {
		if !c.Visible() {
			continue
		}
		marker := "  "
		if i == focused {
			marker = paint(pal.Focus, bodyOpacity).Render("› ")
		}
		label := truncate.StringWithTail(c.Label(), uint(labelWidth), "…")
		if gap := labelWidth - ansi.StringWidth(label); gap > 0 {
			label += strings.Repeat(" ", gap)
		}
		rows = append(rows, marker+
			paint(pal.Body, bodyOpacity).Render(label)+" "+
			paint(pal.Value, bodyOpacity).Render(controlValue(c)))
	}
	for i := 0; i < sectionPaddingRows; i++ {
		rows = append(rows, "")
	}
	return rows
}

func controlValue(c section.Control) string {
	switch v := c.(type) {
	case *controls.Checkbox:
		if v.Checked() {
			return "[x]"
		}
		return "[ ]"
	case *controls.Slider:
		filled := int(v.Fraction()*sliderBarWidth + 0.5)
		return strings.Repeat("■", filled) + strings.Repeat("·", sliderBarWidth-filled) + " " + v.Value()
	case *controls.Enum:
		return "‹ " + v.Value() + " ›"
	}
	return c.Value()
}

func (m *Model) ruleWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultRuleWidth
}

func (m *Model) labelWidth() int {
	w := maxLabelWidth
	if m.width > 0 && m.width/2 < w {
		w = m.width / 2
	}
	if w < 1 {
		w = 1
	}
	return w
}

// fit truncates a styled line to the panel width.
func (m *Model) fit(line string) string {
	if m.width <= 0 || ansi.StringWidth(line) <= m.width {
		return line
	}
	return ansi.Truncate(line, m.width, "…")
}

// pad extends a line to the panel width so the whole row is hit-testable.
func (m *Model) pad(line string) string {
	if m.width <= 0 {
		return line
	}
	if gap := m.width - ansi.StringWidth(line); gap > 0 {
		return line + strings.Repeat(" ", gap)
	}
	return line
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.width
	m.layout()
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = m.clock().Add(infoTTL)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg == "" {
		return ""
	}
	if !m.infoExpire.IsZero() && m.clock().After(m.infoExpire) {
		return ""
	}
	return m.infoMsg
}
