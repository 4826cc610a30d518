package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/popup-settings/internal/backend"
	"github.com/atomicstack/popup-settings/internal/data/dispatcher"
	"github.com/atomicstack/popup-settings/internal/logging/events"
	"github.com/atomicstack/popup-settings/internal/section"
	"github.com/atomicstack/popup-settings/internal/sections"
	"github.com/atomicstack/popup-settings/internal/settings"
	"github.com/atomicstack/popup-settings/internal/state"
	"github.com/atomicstack/popup-settings/internal/theme"
	"github.com/atomicstack/popup-settings/internal/ui/command"
	uistate "github.com/atomicstack/popup-settings/internal/ui/state"
	"github.com/atomicstack/popup-settings/internal/visual"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

const defaultTitle = "Settings"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	// SettingsPath is where ctrl+s writes the settings file.
	SettingsPath string
	// Store holds the loaded settings. A fresh store is used when nil.
	Store state.SettingsStore
	// Width and Height pin the panel size; zero follows the terminal.
	Width  int
	Height int
	// ShowFooter renders the key help line.
	ShowFooter bool
	// Mouse enables hover and click handling.
	Mouse bool
	// Watcher streams settings file reloads.
	Watcher *backend.Watcher
	// Clock drives fades. Defaults to time.Now.
	Clock visual.Clock
	// Bus runs save and clipboard actions. Defaults to command.New().
	Bus *command.Bus
}

// Model implements the Bubble Tea model for the settings panel. It is the
// owning panel of every section and the only writer of the current-section
// binding.
type Model struct {
	sections []*section.Section
	current  *section.Binding
	hovered  *section.Section

	store        state.SettingsStore
	dispatcher   *dispatcher.Dispatcher
	bus          *command.Bus
	backend      *backend.Watcher
	backendErr   string
	settingsPath string
	pendingSave  settings.Values

	query    uistate.Query
	viewport uistate.Viewport

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	mouse       bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	filterCursor      cursor.Model
	filterCursorDirty bool
	cursorFocused     bool

	keys  keyMap
	help  help.Model
	zones *zone.Manager

	clock          visual.Clock
	frameScheduled bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the panel and its sections.
func NewModel(opts Options) *Model {
	store := opts.Store
	if store == nil {
		store = state.NewSettingsStore(nil)
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	bus := opts.Bus
	if bus == nil {
		bus = command.New()
	}
	m := &Model{
		current:      section.NewBinding(),
		store:        store,
		dispatcher:   dispatcher.New(store),
		bus:          bus,
		backend:      opts.Watcher,
		settingsPath: opts.SettingsPath,
		showFooter:   opts.ShowFooter,
		mouse:        opts.Mouse,
		keys:         defaultKeyMap(),
		help:         help.New(),
		clock:        clock,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	if m.mouse {
		m.zones = zone.New()
	}
	m.help.Width = m.width

	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c

	m.sections = sections.Build(m, store, clock)
	if len(m.sections) > 0 {
		m.current.Set(m.sections[0])
	}
	m.layout()
	m.registerHandlers()
	return m
}

// CurrentSection exposes the current-section binding read-only.
func (m *Model) CurrentSection() section.ReadOnlyBinding {
	return m.current
}

// ScrollTo makes s current and scrolls it to the top of the viewport.
// Requests for the section that is already current are ignored.
func (m *Model) ScrollTo(s *section.Section) {
	if s == nil {
		return
	}
	if m.current.Value() == s {
		events.Panel.ScrollNoOp(s.Header())
		return
	}
	m.layout()
	if s.MatchingFilter() {
		m.viewport.ScrollToRow(s.Node().Bounds().Top)
	}
	m.current.Set(s)
	events.Panel.ScrollTo(s.Header(), m.viewport.Offset)
}

// Sections returns the panel's sections in display order.
func (m *Model) Sections() []*section.Section {
	return m.sections
}

// Current returns the current section, or nil.
func (m *Model) Current() *section.Section {
	return m.current.Value()
}

// Close releases section subscriptions and the zone manager.
func (m *Model) Close() {
	for _, s := range m.sections {
		s.Close()
	}
	if m.zones != nil {
		m.zones.Close()
		m.zones = nil
	}
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.cursorFocused = true
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):       m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(frameMsg{}):           m.handleFrameMsg,
		reflect.TypeOf(backendEventMsg{}):    m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):     m.handleBackendDoneMsg,
		reflect.TypeOf(command.SaveResult{}): m.handleSaveResultMsg,
		reflect.TypeOf(command.CopyResult{}): m.handleCopyResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		if m.cursorFocused {
			m.filterCursor.Blink = false
			if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if cmd := m.scheduleFrame(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
