package ui

// state represents the different states of the TUI.
type state int

const (
	stateMenu state = iota
	stateInput
	stateRunning
)

func (s state) String() string {
	switch s {
	case stateMenu:
		return "Menu"
	case stateInput:
		return "Input"
	case stateRunning:
		return "Running"
	default:
		return "Unknown"
	}
}

// inputKind is what the input screen is editing.
type inputKind int

const (
	inputInterval inputKind = iota
	inputDaily
)

// Menu entries, in display order.
const (
	menuStart = iota
	menuInterval
	menuDailyTime
	menuDailyToggle
	menuAction
	menuQuit
	menuCount
)
