package command

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/atomicstack/popup-settings/internal/logging/events"
	"github.com/atomicstack/popup-settings/internal/settings"
	tea "github.com/charmbracelet/bubbletea"
)

// Action produces the command that performs a request.
type Action func() tea.Cmd

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler Action
}

// SaveResult reports the outcome of writing the settings file.
type SaveResult struct {
	Path string
	Keys int
	Err  error
}

// CopyResult reports the outcome of a clipboard copy.
type CopyResult struct {
	Label string
	Err   error
}

// Bus coordinates the execution of panel actions.
type Bus struct {
	writeClipboard func(string) error
}

// New initialises a command bus that writes to the system clipboard.
func New() *Bus {
	return &Bus{writeClipboard: clipboard.WriteAll}
}

// NewWithClipboard initialises a command bus with a custom clipboard writer.
func NewWithClipboard(write func(string) error) *Bus {
	return &Bus{writeClipboard: write}
}

// Execute wraps an action into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		cmd := req.Handler()
		if cmd == nil {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		msg := cmd()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}

// Save writes a snapshot of the settings to path.
func (b *Bus) Save(path string, values settings.Values) tea.Cmd {
	snapshot := values.Clone()
	return b.Execute(Request{
		ID:    "settings:save",
		Label: path,
		Handler: func() tea.Cmd {
			return func() tea.Msg {
				err := settings.Save(path, snapshot)
				if err == nil {
					events.Settings.Saved(path, len(snapshot))
				}
				return SaveResult{Path: path, Keys: len(snapshot), Err: err}
			}
		},
	})
}

// Copy places text on the clipboard. label names what was copied.
func (b *Bus) Copy(label, text string) tea.Cmd {
	return b.Execute(Request{
		ID:    "clipboard:copy",
		Label: label,
		Handler: func() tea.Cmd {
			if text == "" || b.writeClipboard == nil {
				return nil
			}
			return func() tea.Msg {
				if err := b.writeClipboard(text); err != nil {
					return CopyResult{Label: label, Err: fmt.Errorf("copy %s: %w", label, err)}
				}
				return CopyResult{Label: label}
			}
		},
	})
}
