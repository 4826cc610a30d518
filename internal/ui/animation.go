package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const frameInterval = time.Second / 60

type frameMsg struct{}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func (m *Model) animating() bool {
	for _, s := range m.sections {
		if s.Animating() {
			return true
		}
	}
	return false
}

// scheduleFrame keeps one frame tick in flight while any fade runs.
func (m *Model) scheduleFrame() tea.Cmd {
	if m.frameScheduled || !m.animating() {
		return nil
	}
	m.frameScheduled = true
	return frameCmd()
}

func (m *Model) handleFrameMsg(tea.Msg) tea.Cmd {
	m.frameScheduled = false
	return nil
}
