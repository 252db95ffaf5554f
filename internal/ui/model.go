package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/screen-keeper/internal/keepalive"
	"github.com/stigoleg/screen-keeper/internal/settings"
)

// Options wires a Model to the automation core.
type Options struct {
	Scheduler *keepalive.Scheduler
	Store     settings.Store
	Settings  settings.Settings
	// Events is usually the channel from Notifier.Subscribe.
	Events  <-chan keepalive.Event
	Version string
	// Notice is shown on the first screen, e.g. a missing-dependency hint.
	Notice string
}

// Model holds the current state of the UI.
type Model struct {
	State    state
	Selected int
	Input    string
	Editing  inputKind
	ShowHelp bool

	Scheduler *keepalive.Scheduler
	Store     settings.Store
	Settings  settings.Settings

	ErrorMessage  string
	StatusMessage string
	Notice        string

	Ticks     int
	LastTick  time.Time
	LastError string

	events  <-chan keepalive.Event
	keys    KeyMap
	help    help.Model
	version string
}

// InitialModel returns the model for opts. It opens on the running screen
// when the scheduler is already running.
func InitialModel(opts Options) Model {
	m := Model{
		State:     stateMenu,
		Scheduler: opts.Scheduler,
		Store:     opts.Store,
		Settings:  opts.Settings,
		Notice:    opts.Notice,
		events:    opts.Events,
		keys:      DefaultKeys(),
		help:      NewHelpModel(),
		version:   opts.Version,
	}
	if m.Scheduler != nil && m.Scheduler.IsRunning() {
		m.State = stateRunning
	}
	return m
}

// SetVersion sets the version shown in the footer.
func (m *Model) SetVersion(v string) {
	m.version = v
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := Update(msg, m)
	return newModel, cmd
}

// View implements tea.Model
func (m Model) View() string {
	return View(m)
}

// eventMsg carries one automation event into the update loop.
type eventMsg keepalive.Event

// waitForEvent blocks on events until the next one arrives. A closed or nil
// channel ends the pump.
func waitForEvent(events <-chan keepalive.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return nil
		}
		return eventMsg(e)
	}
}
