package ui

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/atomicstack/popup-settings/internal/format/table"
	"github.com/atomicstack/popup-settings/internal/logging"
	"github.com/atomicstack/popup-settings/internal/section"
	"github.com/atomicstack/popup-settings/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) save() tea.Cmd {
	if m.settingsPath == "" {
		m.errMsg = "no settings file configured"
		return nil
	}
	m.pendingSave = m.store.Snapshot()
	return m.bus.Save(m.settingsPath, m.pendingSave)
}

func (m *Model) handleSaveResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.SaveResult)
	if !ok {
		return nil
	}
	saved := m.pendingSave
	m.pendingSave = nil
	if result.Err != nil {
		logging.Error(result.Err)
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		return nil
	}
	// edits made while the write was in flight stay dirty
	if reflect.DeepEqual(saved, m.store.Snapshot()) {
		m.store.MarkClean()
	}
	m.errMsg = ""
	m.setInfo(fmt.Sprintf("Saved %d settings to %s", result.Keys, result.Path))
	return nil
}

func (m *Model) copyCurrent() tea.Cmd {
	current := m.current.Value()
	if current == nil {
		return nil
	}
	return m.bus.Copy(current.Header(), sectionText(current))
}

func (m *Model) handleCopyResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.CopyResult)
	if !ok {
		return nil
	}
	if result.Err != nil {
		logging.Error(result.Err)
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		return nil
	}
	m.setInfo(fmt.Sprintf("Copied %s to clipboard", result.Label))
	return nil
}

// sectionText renders the visible controls of s as an aligned plain-text
// table under the section header.
func sectionText(s *section.Section) string {
	rows := make([][]string, 0, len(s.Controls()))
	for _, c := range s.Controls() {
		if c.Visible() {
			rows = append(rows, []string{c.Label(), c.Value()})
		}
	}
	var b strings.Builder
	b.WriteString(s.Header())
	for _, line := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight}) {
		b.WriteString("\n  ")
		b.WriteString(line)
	}
	return b.String()
}

func (m *Model) noteSettingsEdited() {
	m.errMsg = ""
	m.forceClearInfo()
}
