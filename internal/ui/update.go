package ui

import (
	"fmt"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/screen-keeper/internal/clock"
	"github.com/stigoleg/screen-keeper/internal/keepalive"
	"github.com/stigoleg/screen-keeper/internal/settings"
	"github.com/stigoleg/screen-keeper/internal/util"
)

const maxInputLen = 8

// Update handles messages and updates the model accordingly.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		m = applyEvent(m, keepalive.Event(msg))
		return m, waitForEvent(m.events)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.State != stateInput && key.Matches(msg, m.keys.Help) {
			m.ShowHelp = !m.ShowHelp
			return m, nil
		}
		switch m.State {
		case stateMenu:
			return updateMenu(msg, m)
		case stateInput:
			return updateInput(msg, m)
		case stateRunning:
			return updateRunning(msg, m)
		}
	}

	return m, nil
}

func applyEvent(m Model, e keepalive.Event) Model {
	switch e.Type {
	case keepalive.EventTick:
		m.Ticks++
		m.LastTick = e.At
	case keepalive.EventError:
		m.LastError = e.Message
	case keepalive.EventScheduleStarted:
		m.Ticks = 0
		m.LastError = ""
		m.StatusMessage = fmt.Sprintf("Automation started by daily schedule at %s", e.StartTime)
		if m.State == stateMenu {
			m.State = stateRunning
		}
	}
	return m
}

func updateMenu(msg tea.KeyMsg, m Model) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.Selected > 0 {
			m.Selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.Selected < menuCount-1 {
			m.Selected++
		}
	case key.Matches(msg, m.keys.Choose):
		return choose(m)
	}
	if item, ok := m.keys.shortcut(msg); ok {
		m.Selected = item
		return choose(m)
	}
	return m, nil
}

// choose runs the selected menu entry.
func choose(m Model) (Model, tea.Cmd) {
	m.ErrorMessage = ""
	m.StatusMessage = ""
	switch m.Selected {
	case menuStart:
		return startAutomation(m), nil
	case menuInterval:
		m.State = stateInput
		m.Editing = inputInterval
		m.Input = fmt.Sprintf("%d", m.Settings.IntervalSeconds)
	case menuDailyTime:
		m.State = stateInput
		m.Editing = inputDaily
		m.Input = m.Settings.DailyStartTime
	case menuDailyToggle:
		return setDaily(m, !m.Settings.DailyAutoStart, m.Settings.DailyStartTime), nil
	case menuAction:
		if m.Settings.ActionType == settings.ActionKey {
			m.Settings.ActionType = settings.ActionPointer
		} else {
			m.Settings.ActionType = settings.ActionKey
		}
		m = persist(m)
		m = rearm(m)
	case menuQuit:
		return m, tea.Quit
	}
	return m, nil
}

func updateInput(msg tea.KeyMsg, m Model) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.State = stateMenu
		m.ErrorMessage = ""
		return m, nil
	case key.Matches(msg, m.keys.Save):
		return submitInput(m), nil
	case key.Matches(msg, m.keys.Erase):
		if len(m.Input) > 0 {
			m.Input = m.Input[:len(m.Input)-1]
			m.ErrorMessage = ""
		}
		return m, nil
	}

	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			if len(m.Input) >= maxInputLen || !acceptsRune(m.Editing, r) {
				continue
			}
			m.Input += string(r)
			m.ErrorMessage = ""
		}
	}
	return m, nil
}

func acceptsRune(kind inputKind, r rune) bool {
	if unicode.IsDigit(r) {
		return true
	}
	switch kind {
	case inputInterval:
		return r == 'h' || r == 'm' || r == 's' || r == '.'
	case inputDaily:
		r = unicode.ToUpper(r)
		return r == ':' || r == 'A' || r == 'P' || r == 'M'
	}
	return false
}

func submitInput(m Model) Model {
	if m.Input == "" {
		m.ErrorMessage = "Please enter a value"
		return m
	}

	switch m.Editing {
	case inputInterval:
		d, err := util.ParseInterval(m.Input)
		if err != nil {
			m.ErrorMessage = firstLine(err.Error())
			return m
		}
		seconds := int(d.Round(time.Second) / time.Second)
		if seconds < settings.MinIntervalSeconds {
			seconds = settings.MinIntervalSeconds
			m.StatusMessage = fmt.Sprintf("Interval raised to the %ds minimum", settings.MinIntervalSeconds)
		} else {
			m.StatusMessage = fmt.Sprintf("Interval set to %s", time.Duration(seconds)*time.Second)
		}
		m.Settings.IntervalSeconds = seconds
		m.State = stateMenu
		m = persist(m)
		return rearm(m)

	case inputDaily:
		next := setDaily(m, true, m.Input)
		if next.ErrorMessage == "" {
			next.State = stateMenu
		}
		return next
	}
	return m
}

func updateRunning(msg tea.KeyMsg, m Model) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Stop):
		if err := m.Scheduler.Stop(); err != nil {
			m.ErrorMessage = err.Error()
			return m, nil
		}
		m.State = stateMenu
		m.ErrorMessage = ""
		m.StatusMessage = "Automation stopped"
	}
	return m, nil
}

func startAutomation(m Model) Model {
	if err := m.Scheduler.Start(m.Settings); err != nil {
		m.ErrorMessage = err.Error()
		return m
	}
	m.State = stateRunning
	m.Ticks = 0
	m.LastTick = time.Time{}
	m.LastError = ""
	return m
}

// setDaily arms or disarms the daily trigger and stores the choice.
func setDaily(m Model, enabled bool, at string) Model {
	next := m.Settings
	next.DailyAutoStart = enabled

	if enabled {
		tod, err := clock.ParseTimeOfDay(at)
		if err != nil {
			m.ErrorMessage = firstLine(err.Error())
			return m
		}
		next.DailyStartTime = tod.String()
	}

	if err := m.Scheduler.ConfigureDaily(enabled, next.DailyStartTime, next); err != nil {
		m.ErrorMessage = err.Error()
		return m
	}

	m.Settings = next
	if enabled {
		m.StatusMessage = fmt.Sprintf("Daily schedule set for %s", next.DailyStartTime)
	} else {
		m.StatusMessage = "Daily schedule disabled"
	}
	return persist(m)
}

// rearm applies changed settings to whatever is armed.
func rearm(m Model) Model {
	if m.Scheduler.IsRunning() {
		if err := m.Scheduler.Start(m.Settings); err != nil {
			m.ErrorMessage = err.Error()
			return m
		}
	}
	if m.Settings.DailyAutoStart {
		if err := m.Scheduler.ConfigureDaily(true, m.Settings.DailyStartTime, m.Settings); err != nil {
			m.ErrorMessage = err.Error()
		}
	}
	return m
}

func persist(m Model) Model {
	if m.Store == nil {
		return m
	}
	if err := settings.Save(m.Store, m.Settings); err != nil {
		m.ErrorMessage = fmt.Sprintf("Could not save settings: %v", err)
	}
	return m
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
