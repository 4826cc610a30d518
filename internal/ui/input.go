package ui

import (
	"strings"
	"unicode"

	"github.com/atomicstack/popup-settings/internal/logging/events"
	"github.com/atomicstack/popup-settings/internal/section"
	uistate "github.com/atomicstack/popup-settings/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	// a space extends a query in progress instead of toggling
	if keyMsg.Type == tea.KeySpace {
		if m.query.Text != "" {
			m.appendToFilter(" ")
		} else {
			m.routeInput(section.InputActivate)
		}
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		events.App.Stop("ctrl+c")
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Back):
		if m.clearFilter() {
			return nil
		}
		events.App.Stop("escape")
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Save):
		return m.save()
	case key.Matches(keyMsg, m.keys.Copy):
		return m.copyCurrent()
	case key.Matches(keyMsg, m.keys.Up):
		m.selectRelative(-1)
		return nil
	case key.Matches(keyMsg, m.keys.Down):
		m.selectRelative(1)
		return nil
	case key.Matches(keyMsg, m.keys.FocusNext):
		m.routeInput(section.InputFocusNext)
		return nil
	case key.Matches(keyMsg, m.keys.FocusPrev):
		m.routeInput(section.InputFocusPrev)
		return nil
	case key.Matches(keyMsg, m.keys.Activate):
		m.routeInput(section.InputActivate)
		return nil
	case key.Matches(keyMsg, m.keys.Increase):
		m.routeInput(section.InputIncrease)
		return nil
	case key.Matches(keyMsg, m.keys.Decrease):
		m.routeInput(section.InputDecrease)
		return nil
	}
	m.handleTextInput(keyMsg)
	return nil
}

// routeInput hands a keyboard intent to the current section. Sections
// refuse input unless they are current, so nothing else can receive it.
func (m *Model) routeInput(in section.Input) bool {
	current := m.current.Value()
	if current == nil {
		return false
	}
	changed := current.HandleInput(in)
	if changed && in != section.InputFocusNext && in != section.InputFocusPrev {
		m.noteSettingsEdited()
	}
	return changed
}

// selectRelative moves the current section by delta among the sections
// left visible by the filter.
func (m *Model) selectRelative(delta int) bool {
	visible := m.visibleSections()
	if len(visible) == 0 {
		return false
	}
	idx := -1
	current := m.current.Value()
	for i, s := range visible {
		if s == current {
			idx = i
			break
		}
	}
	next := idx + delta
	if idx < 0 {
		next = 0
	}
	if next < 0 {
		next = 0
	}
	if next >= len(visible) {
		next = len(visible) - 1
	}
	if visible[next] == current {
		return false
	}
	m.ScrollTo(visible[next])
	return true
}

func (m *Model) visibleSections() []*section.Section {
	out := make([]*section.Section, 0, len(m.sections))
	for _, s := range m.sections {
		if s.MatchingFilter() {
			out = append(out, s)
		}
	}
	return out
}

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.query.Pos() {
		m.filterCursorDirty = true
	}
}

func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+u":
		return m.clearFilter()
	case "ctrl+w":
		before := m.query.Pos()
		if !m.query.DeleteWordBackward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.WordBackspace(m.query.Text)
		m.applyQuery()
		return true
	case "ctrl+a":
		before := m.query.Pos()
		if !m.query.MoveStart() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.query.Cursor)
		return true
	case "ctrl+e":
		before := m.query.Pos()
		if !m.query.MoveEnd() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.query.Cursor)
		return true
	case "alt+b":
		before := m.query.Pos()
		if !m.query.MoveWordBackward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.CursorWord(m.query.Cursor)
		return true
	case "alt+f":
		before := m.query.Pos()
		if !m.query.MoveWordForward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.CursorWord(m.query.Cursor)
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeFilterRune()
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	}
	return false
}

func (m *Model) appendToFilter(text string) bool {
	before := m.query.Pos()
	if !m.query.Insert(text) {
		return false
	}
	m.noteFilterCursorChange(before)
	events.Filter.Append(m.query.Text)
	m.applyQuery()
	return true
}

func (m *Model) removeFilterRune() bool {
	before := m.query.Pos()
	if !m.query.DeleteRuneBackward() {
		return false
	}
	m.noteFilterCursorChange(before)
	events.Filter.Backspace(m.query.Text)
	m.applyQuery()
	return true
}

func (m *Model) clearFilter() bool {
	before := m.query.Pos()
	if !m.query.Clear() {
		return false
	}
	m.noteFilterCursorChange(before)
	events.Filter.Cleared()
	m.applyQuery()
	return true
}

// applyQuery runs the filter pass over every section. When the current
// section no longer matches, the best ranked visible section takes over.
func (m *Model) applyQuery() {
	query := m.query.Trimmed()
	visible := 0
	for _, s := range m.sections {
		if section.ApplyFilter(s, query) {
			visible++
		}
	}
	events.Filter.Applied(query, visible)
	m.errMsg = ""
	m.forceClearInfo()

	if current := m.current.Value(); current == nil || !current.MatchingFilter() {
		candidates := m.visibleSections()
		if len(candidates) > 0 {
			labels := make([]string, len(candidates))
			for i, s := range candidates {
				labels[i] = strings.Join(section.CollectTerms(s), " ")
			}
			idx := uistate.BestMatchIndex(labels, query)
			if idx < 0 {
				// every candidate passed the filter, so the first in
				// display order still matches the query
				idx = 0
			}
			m.ScrollTo(candidates[idx])
		}
	}
	m.layout()
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	if m.query.Text == "" {
		runes := []rune("(type to search)")
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(m.query.Text)
	pos := m.query.Pos()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
