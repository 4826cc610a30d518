package ui

import (
	"fmt"

	"github.com/atomicstack/popup-settings/internal/backend"
	"github.com/atomicstack/popup-settings/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Err != nil {
		logging.Error(evt.Err)
		m.backendErr = fmt.Sprintf("settings watcher: %v", evt.Err)
		return
	}
	m.backendErr = ""
	res := m.dispatcher.Handle(evt)
	if res.Skipped {
		m.setInfo("Settings file changed on disk; keeping unsaved edits")
		return
	}
	if res.SettingsUpdated {
		m.layout()
	}
}
