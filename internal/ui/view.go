package ui

import (
	"fmt"
	"strings"

	"github.com/stigoleg/screen-keeper/internal/keepalive"
	"github.com/stigoleg/screen-keeper/internal/settings"
)

// View renders the current state of the model to a string.
func View(m Model) string {
	if m.ShowHelp {
		return helpView(m)
	}

	switch m.State {
	case stateMenu:
		return menuView(m)
	case stateInput:
		return inputView(m)
	case stateRunning:
		return runningView(m)
	}

	return ""
}

// StatusLine summarizes the scheduler in one line, e.g.
// "Automation: Running • Daily start 09:00".
func StatusLine(s *keepalive.Scheduler) string {
	status := "Automation: Stopped"
	if s != nil && s.IsRunning() {
		status = "Automation: Running"
	}
	if s != nil {
		if at, ok := s.DailyStartTime(); ok {
			status += fmt.Sprintf(" • Daily start %s", at)
		}
	}
	return status
}

func menuItems(m Model) []string {
	daily := fmt.Sprintf("Enable daily start at %s", m.Settings.DailyStartTime)
	if m.Settings.DailyAutoStart {
		daily = fmt.Sprintf("Disable daily start at %s", m.Settings.DailyStartTime)
	}
	action := "Switch to key press"
	if m.Settings.ActionType == settings.ActionKey {
		action = "Switch to pointer nudge"
	}

	items := make([]string, menuCount)
	items[menuStart] = "Start automation"
	items[menuInterval] = fmt.Sprintf("Change interval (%s)", m.Settings.EffectiveInterval())
	items[menuDailyTime] = "Set daily start time"
	items[menuDailyToggle] = daily
	items[menuAction] = action
	items[menuQuit] = "Quit"
	return items
}

func menuView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Screen Keeper"))
	b.WriteString("\n")
	b.WriteString(statusView(m))
	b.WriteString("\n\n")

	for i, opt := range menuItems(m) {
		if i == m.Selected {
			b.WriteString(Current.SelectedItem.Render("> " + opt))
		} else {
			b.WriteString(Current.Menu.Render("  " + opt))
		}
		b.WriteString("\n")
	}

	b.WriteString(messagesView(m))
	b.WriteString(footerView(m))
	return b.String()
}

func inputView(m Model) string {
	var b strings.Builder

	title, prompt := "Interval", "Seconds between actions, or a duration like 2m:"
	if m.Editing == inputDaily {
		title, prompt = "Daily Start", "Time to start automation every day (HH:MM):"
	}

	b.WriteString(Current.Title.Render(title))
	b.WriteString("\n\n")
	b.WriteString(Current.Menu.Render(prompt))
	b.WriteString("\n")

	input := m.Input
	if input == "" {
		input = " "
	}
	b.WriteString(Current.InputBox.Render(input))
	b.WriteString("\n")

	b.WriteString(messagesView(m))
	b.WriteString(footerView(m))
	return b.String()
}

func runningView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Screen Keeper"))
	b.WriteString("\n")
	b.WriteString(statusView(m))
	b.WriteString("\n\n")

	cfg := m.Settings
	if m.Scheduler != nil {
		if running, ok := m.Scheduler.Settings(); ok {
			cfg = running
		}
	}

	action := "pointer nudge"
	if cfg.ActionType == settings.ActionKey {
		action = fmt.Sprintf("press %q", cfg.Key)
	}
	row(&b, "Action", action)
	row(&b, "Every", cfg.EffectiveInterval().String())
	if cfg.UseTimeRestriction {
		row(&b, "Active between", fmt.Sprintf("%s and %s", cfg.StartTime, cfg.EndTime))
	}
	row(&b, "Actions", fmt.Sprintf("%d", m.Ticks))
	if !m.LastTick.IsZero() {
		row(&b, "Last action", m.LastTick.Format("15:04:05"))
	}
	if m.LastError != "" {
		b.WriteString(Current.Error.Render("Last error: " + m.LastError))
		b.WriteString("\n")
	}

	b.WriteString(messagesView(m))
	b.WriteString(footerView(m))
	return b.String()
}

func row(b *strings.Builder, label, value string) {
	b.WriteString(Current.Label.Render(label))
	b.WriteString(Current.Value.Render(value))
	b.WriteString("\n")
}

func statusView(m Model) string {
	line := StatusLine(m.Scheduler)
	if m.Scheduler != nil && m.Scheduler.IsRunning() {
		return Current.ActiveStatus.Render(line)
	}
	return Current.InactiveStatus.Render(line)
}

func messagesView(m Model) string {
	var b strings.Builder
	if m.Notice != "" && m.State == stateMenu {
		b.WriteString("\n" + Current.Help.Render(m.Notice))
	}
	if m.StatusMessage != "" {
		b.WriteString("\n" + Current.Notice.Render(m.StatusMessage))
	}
	if m.ErrorMessage != "" {
		b.WriteString("\n" + Current.Error.Render(m.ErrorMessage))
	}
	return b.String()
}

func footerView(m Model) string {
	footer := "\n\n" + m.help.View(m.keys.ForState(m.State))
	if m.version != "" {
		footer += "\n" + Current.Help.Render("v"+m.version)
	}
	return footer
}

func helpView(m Model) string {
	help := `Screen Keeper Help

Usage:
  screenkeeper [flags]

Flags:
  -i, --interval string   Time between actions in seconds or as a duration (e.g., "90", "2m")
  -a, --action string     Action to perform: pointer or key
  -k, --key string        Key to press when the action is key (e.g., "space", "f15")
  -w, --window string     Only act between these times (e.g., "09:00-17:00")
      --daily string      Start automation every day at this time (e.g., "09:00")
      --config string     Settings file to use
      --start             Start automation immediately
      --headless          Run without the terminal UI
  -v, --version           Show version information
  -h, --help              Show help message

Menu shortcuts:
  s  start automation       i  change interval
  t  set daily start time   d  toggle daily start
  a  switch pointer/key     ?  toggle this help

Examples:
  screenkeeper                        # Start with interactive TUI
  screenkeeper --start -i 2m          # Nudge the pointer every two minutes
  screenkeeper -a key -k f15 --start  # Press F15 every minute
  screenkeeper --daily 09:00 -w 09:00-17:00 --headless

Press '?' to close help`

	return Current.Help.Render(help) + "\n\n" + m.help.View(m.keys.ForState(m.State))
}
