//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	keyeventfKeyUp = 0x0002
)

var (
	moduser32        = windows.NewLazySystemDLL("user32.dll")
	procGetCursorPos = moduser32.NewProc("GetCursorPos")
	procSetCursorPos = moduser32.NewProc("SetCursorPos")
	procKeybdEvent   = moduser32.NewProc("keybd_event")
)

// windowsVirtualKeys maps normalized key names onto virtual-key codes.
var windowsVirtualKeys = map[string]byte{
	"backspace": 0x08,
	"tab":       0x09,
	"enter":     0x0D,
	"shift":     0x10,
	"control":   0x11,
	"alt":       0x12,
	"escape":    0x1B,
	"space":     0x20,
	"pageup":    0x21,
	"pagedown":  0x22,
	"end":       0x23,
	"home":      0x24,
	"left":      0x25,
	"up":        0x26,
	"right":     0x27,
	"down":      0x28,
	"delete":    0x2E,
	"command":   0x5B,
}

func windowsVirtualKey(name string) (byte, bool) {
	if vk, ok := windowsVirtualKeys[name]; ok {
		return vk, true
	}
	if n, ok := functionKeyNumber(name); ok {
		return byte(0x70 + n - 1), true
	}
	if len(name) == 1 {
		c := name[0]
		switch {
		case c >= 'a' && c <= 'z':
			return c - 'a' + 'A', true
		case c >= '0' && c <= '9':
			return c, true
		}
	}
	return 0, false
}

// windowsActuator calls user32 directly.
type windowsActuator struct{}

func newInputActuator() (InputActuator, error) {
	if err := moduser32.Load(); err != nil {
		return nil, fmt.Errorf("windows: load user32: %w", err)
	}
	return windowsActuator{}, nil
}

func (windowsActuator) Name() string {
	return "user32"
}

func (windowsActuator) PointerPosition() (Point, error) {
	var pt struct{ X, Y int32 }
	r, _, err := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if r == 0 {
		return Point{}, fmt.Errorf("windows: GetCursorPos: %w", err)
	}
	return Point{X: int(pt.X), Y: int(pt.Y)}, nil
}

func (windowsActuator) MovePointerTo(x, y int) error {
	r, _, err := procSetCursorPos.Call(uintptr(int32(x)), uintptr(int32(y)))
	if r == 0 {
		return fmt.Errorf("windows: SetCursorPos: %w", err)
	}
	return nil
}

func (windowsActuator) PressKey(name string) error {
	vk, ok := windowsVirtualKey(normalizeKeyName(name))
	if !ok {
		return fmt.Errorf("windows: unknown key %q", name)
	}
	// keybd_event has no return value.
	procKeybdEvent.Call(uintptr(vk), 0, 0, 0)
	procKeybdEvent.Call(uintptr(vk), 0, keyeventfKeyUp, 0)
	return nil
}

func dependencyMessage() string {
	return ""
}
