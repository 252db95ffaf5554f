//go:build linux

package linux

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrPointerUnavailable is returned by actuators that cannot read the pointer.
var ErrPointerUnavailable = errors.New("pointer position is not available on this display server")

// keysyms maps normalized key names onto X keysym names where they differ.
var keysyms = map[string]string{
	"enter":     "Return",
	"escape":    "Escape",
	"tab":       "Tab",
	"backspace": "BackSpace",
	"delete":    "Delete",
	"space":     "space",
	"up":        "Up",
	"down":      "Down",
	"left":      "Left",
	"right":     "Right",
	"home":      "Home",
	"end":       "End",
	"pageup":    "Prior",
	"pagedown":  "Next",
	"shift":     "Shift_L",
	"control":   "Control_L",
	"alt":       "Alt_L",
	"command":   "Super_L",
}

// Keysym converts a normalized key name to its X keysym. Function keys and
// single characters pass through unchanged.
func Keysym(name string) string {
	if sym, ok := keysyms[name]; ok {
		return sym
	}
	if len(name) > 1 && name[0] == 'f' {
		if _, err := strconv.Atoi(name[1:]); err == nil {
			return strings.ToUpper(name)
		}
	}
	return name
}

// Xdotool drives the X11 pointer and keyboard through the xdotool binary.
type Xdotool struct{}

func (Xdotool) Name() string {
	return "xdotool"
}

// PointerPosition parses the KEY=VALUE lines of `xdotool getmouselocation --shell`.
func (Xdotool) PointerPosition() (x, y int, err error) {
	out, err := run("xdotool", "getmouselocation", "--shell")
	if err != nil {
		return 0, 0, err
	}
	return parseMouseLocation(out)
}

func parseMouseLocation(out string) (x, y int, err error) {
	var haveX, haveY bool
	for _, line := range strings.Split(out, "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		switch key {
		case "X":
			x, err = strconv.Atoi(value)
			haveX = err == nil
		case "Y":
			y, err = strconv.Atoi(value)
			haveY = err == nil
		}
		if err != nil {
			return 0, 0, fmt.Errorf("parse xdotool output %q: %w", out, err)
		}
	}
	if !haveX || !haveY {
		return 0, 0, fmt.Errorf("parse xdotool output %q: missing coordinates", out)
	}
	return x, y, nil
}

func (Xdotool) MovePointerTo(x, y int) error {
	_, err := run("xdotool", "mousemove", strconv.Itoa(x), strconv.Itoa(y))
	return err
}

func (Xdotool) PressKey(name string) error {
	_, err := run("xdotool", "key", "--clearmodifiers", Keysym(name))
	return err
}

// Wtype sends key presses on Wayland. Wayland offers clients no way to read
// or warp the global pointer, so pointer calls fail.
type Wtype struct{}

func (Wtype) Name() string {
	return "wtype"
}

func (Wtype) PointerPosition() (x, y int, err error) {
	return 0, 0, ErrPointerUnavailable
}

func (Wtype) MovePointerTo(x, y int) error {
	return ErrPointerUnavailable
}

func (Wtype) PressKey(name string) error {
	_, err := run("wtype", "-k", Keysym(name))
	return err
}
