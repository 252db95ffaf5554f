package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap groups the bindings by screen. Menu shortcuts are indexed by menu
// entry, so pressing one behaves exactly like choosing that entry.
type KeyMap struct {
	Quit key.Binding
	Help key.Binding

	Up        key.Binding
	Down      key.Binding
	Choose    key.Binding
	Shortcuts [menuCount]key.Binding

	Save   key.Binding
	Erase  key.Binding
	Cancel key.Binding

	Stop key.Binding
}

func binding(label, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, desc))
}

// DefaultKeys returns the stock bindings.
func DefaultKeys() KeyMap {
	k := KeyMap{
		Quit:   binding("q", "quit", "q", "ctrl+c"),
		Help:   binding("?", "help", "?"),
		Up:     binding("↑/k", "up", "up", "k"),
		Down:   binding("↓/j", "down", "down", "j"),
		Choose: binding("enter", "choose", "enter", " "),
		Save:   binding("enter", "save", "enter"),
		Erase:  binding("⌫", "erase", "backspace"),
		Cancel: binding("esc", "cancel", "esc"),
		Stop:   binding("s/enter", "stop", "s", "enter", "esc"),
	}
	k.Shortcuts[menuStart] = binding("s", "start", "s")
	k.Shortcuts[menuInterval] = binding("i", "interval", "i")
	k.Shortcuts[menuDailyTime] = binding("t", "daily time", "t")
	k.Shortcuts[menuDailyToggle] = binding("d", "daily on/off", "d")
	k.Shortcuts[menuAction] = binding("a", "pointer/key", "a")
	// menuQuit is covered by Quit.
	return k
}

// shortcut reports the menu entry bound to msg.
func (k KeyMap) shortcut(msg tea.KeyMsg) (int, bool) {
	for item, b := range k.Shortcuts {
		if key.Matches(msg, b) {
			return item, true
		}
	}
	return 0, false
}

// NewHelpModel returns the compact help footer.
func NewHelpModel() help.Model {
	return help.New()
}

// screenHelp is the help.KeyMap for one screen.
type screenHelp struct {
	short []key.Binding
	full  [][]key.Binding
}

func (h screenHelp) ShortHelp() []key.Binding  { return h.short }
func (h screenHelp) FullHelp() [][]key.Binding { return h.full }

// ForState returns the bindings that apply on screen s.
func (k KeyMap) ForState(s state) help.KeyMap {
	switch s {
	case stateMenu:
		var shortcuts []key.Binding
		for _, b := range k.Shortcuts {
			if b.Enabled() {
				shortcuts = append(shortcuts, b)
			}
		}
		return screenHelp{
			short: []key.Binding{k.Up, k.Down, k.Choose, k.Shortcuts[menuStart], k.Help, k.Quit},
			full:  [][]key.Binding{{k.Up, k.Down, k.Choose}, shortcuts, {k.Help, k.Quit}},
		}
	case stateInput:
		return screenHelp{
			short: []key.Binding{k.Save, k.Erase, k.Cancel},
			full:  [][]key.Binding{{k.Save, k.Erase, k.Cancel}},
		}
	case stateRunning:
		return screenHelp{
			short: []key.Binding{k.Stop, k.Help, k.Quit},
			full:  [][]key.Binding{{k.Stop}, {k.Help, k.Quit}},
		}
	}
	return screenHelp{short: []key.Binding{k.Help, k.Quit}}
}
