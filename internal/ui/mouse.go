package ui

import (
	"fmt"

	"github.com/atomicstack/popup-settings/internal/logging/events"
	"github.com/atomicstack/popup-settings/internal/section"
	tea "github.com/charmbracelet/bubbletea"
)

const wheelStep = 3

func rowZoneID(row int) string {
	return fmt.Sprintf("row-%d", row)
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || !m.mouse {
		return nil
	}
	switch {
	case ev.Button == tea.MouseButtonWheelUp:
		m.wheel(-wheelStep)
	case ev.Button == tea.MouseButtonWheelDown:
		m.wheel(wheelStep)
	case ev.Action == tea.MouseActionMotion:
		row, ok := m.rowAt(ev)
		if !ok {
			m.setHovered(nil)
			return nil
		}
		s, _ := m.targetAtRow(row)
		m.setHovered(s)
	case ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft:
		row, ok := m.rowAt(ev)
		if !ok {
			return nil
		}
		m.clickRow(row)
	}
	return nil
}

// rowAt resolves a pointer position to a content row through the zones
// marked by the last render.
func (m *Model) rowAt(ev tea.MouseMsg) (int, bool) {
	if m.zones == nil {
		return 0, false
	}
	end := m.viewport.Content
	if m.viewport.Height > 0 && m.viewport.Offset+m.viewport.Height < end {
		end = m.viewport.Offset + m.viewport.Height
	}
	for row := m.viewport.Offset; row < end; row++ {
		if m.zones.Get(rowZoneID(row)).InBounds(ev) {
			return row, true
		}
	}
	return 0, false
}

// targetAtRow maps a content row to its section and the index of the
// control drawn there, or -1 for the separator, header and padding rows.
func (m *Model) targetAtRow(row int) (*section.Section, int) {
	for _, s := range m.visibleSections() {
		b := s.Node().Bounds()
		if !b.Contains(row) {
			continue
		}
		line := row - b.Top - sectionHeaderRows
		for i, c := range s.Controls() {
			if !c.Visible() {
				continue
			}
			if line == 0 {
				return s, i
			}
			line--
		}
		return s, -1
	}
	return nil, -1
}

func (m *Model) setHovered(s *section.Section) {
	if s == m.hovered {
		return
	}
	if m.hovered != nil {
		m.hovered.HoverLeave()
	}
	m.hovered = s
	if s != nil {
		s.HoverEnter()
	}
}

// clickRow delivers a press to the section under row. A section that is
// not current turns the click into a selection request.
func (m *Model) clickRow(row int) section.ClickResult {
	s, idx := m.targetAtRow(row)
	if s == nil {
		return section.ClickResult{}
	}
	m.setHovered(s)
	res := s.Click(idx)
	if res.Changed {
		m.noteSettingsEdited()
	}
	return res
}

// wheel scrolls the viewport; the section at the top becomes current.
func (m *Model) wheel(delta int) {
	m.layout()
	if !m.viewport.ScrollBy(delta) {
		return
	}
	top, _ := m.targetAtRow(m.viewport.Offset)
	if top == nil {
		return
	}
	m.current.Set(top)
	events.Panel.Wheel(m.viewport.Offset, top.Header())
}
