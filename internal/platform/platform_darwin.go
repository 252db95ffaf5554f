//go:build darwin

package platform

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/stigoleg/screen-keeper/internal/util"
)

// permissionWarnEvery rate-limits the Accessibility hint in the log.
const permissionWarnEvery = 60 * time.Second

// darwinKeyCodes maps normalized key names onto macOS virtual key codes.
var darwinKeyCodes = map[string]int{
	"a": 0x00, "s": 0x01, "d": 0x02, "f": 0x03, "h": 0x04, "g": 0x05, "z": 0x06, "x": 0x07,
	"c": 0x08, "v": 0x09, "b": 0x0B, "q": 0x0C, "w": 0x0D, "e": 0x0E, "r": 0x0F, "y": 0x10,
	"t": 0x11, "1": 0x12, "2": 0x13, "3": 0x14, "4": 0x15, "6": 0x16, "5": 0x17, "9": 0x19,
	"7": 0x1A, "8": 0x1C, "0": 0x1D, "o": 0x1F, "u": 0x20, "i": 0x22, "p": 0x23, "l": 0x25,
	"j": 0x26, "k": 0x28, "n": 0x2D, "m": 0x2E,
	"enter":     0x24,
	"tab":       0x30,
	"space":     0x31,
	"backspace": 0x33,
	"escape":    0x35,
	"command":   0x37,
	"shift":     0x38,
	"alt":       0x3A,
	"control":   0x3B,
	"delete":    0x75,
	"home":      0x73,
	"end":       0x77,
	"pageup":    0x74,
	"pagedown":  0x79,
	"left":      0x7B,
	"right":     0x7C,
	"down":      0x7D,
	"up":        0x7E,
}

// darwinFunctionKeyCodes holds F1..F20; macOS has no virtual codes above F20.
var darwinFunctionKeyCodes = [...]int{
	0x7A, 0x78, 0x63, 0x76, 0x60, 0x61, 0x62, 0x64, 0x65, 0x6D,
	0x67, 0x6F, 0x69, 0x6B, 0x71, 0x6A, 0x40, 0x4F, 0x50, 0x5A,
}

func darwinKeyCode(name string) (int, bool) {
	if code, ok := darwinKeyCodes[name]; ok {
		return code, true
	}
	if n, ok := functionKeyNumber(name); ok && n <= len(darwinFunctionKeyCodes) {
		return darwinFunctionKeyCodes[n-1], true
	}
	return 0, false
}

// darwinActuator posts CoreGraphics events through osascript's JavaScript
// bridge. The process needs the Accessibility permission.
type darwinActuator struct {
	// last time we warned about Accessibility, unix nanos
	lastPermWarnNS int64
}

func newInputActuator() (InputActuator, error) {
	return &darwinActuator{}, nil
}

func (a *darwinActuator) Name() string {
	return "osascript"
}

func (a *darwinActuator) PointerPosition() (Point, error) {
	out, err := a.runJXA(`
ObjC.import('CoreGraphics');
var p = $.CGEventGetLocation($.CGEventCreate(null));
console.log(Math.round(p.x) + "," + Math.round(p.y));
`)
	if err != nil {
		return Point{}, err
	}

	// console.log writes to stderr; the coordinates are on the last line.
	lines := strings.Split(out, "\n")
	xs, ys, ok := strings.Cut(strings.TrimSpace(lines[len(lines)-1]), ",")
	if !ok {
		return Point{}, fmt.Errorf("darwin: unexpected pointer output %q", out)
	}
	x, errX := strconv.Atoi(xs)
	y, errY := strconv.Atoi(ys)
	if errX != nil || errY != nil {
		return Point{}, fmt.Errorf("darwin: unexpected pointer output %q", out)
	}
	return Point{X: x, Y: y}, nil
}

func (a *darwinActuator) MovePointerTo(x, y int) error {
	_, err := a.runJXA(fmt.Sprintf(`
ObjC.import('CoreGraphics');
var ev = $.CGEventCreateMouseEvent(null, $.kCGEventMouseMoved, {x: %d, y: %d}, $.kCGMouseButtonLeft);
$.CGEventPost($.kCGHIDEventTap, ev);
`, x, y))
	return err
}

func (a *darwinActuator) PressKey(name string) error {
	normalized := normalizeKeyName(name)
	code, ok := darwinKeyCode(normalized)
	if !ok {
		return fmt.Errorf("darwin: unknown key %q", name)
	}

	_, err := a.runJXA(fmt.Sprintf(`
ObjC.import('CoreGraphics');
$.CGEventPost($.kCGHIDEventTap, $.CGEventCreateKeyboardEvent(null, %d, true));
delay(0.01);
$.CGEventPost($.kCGHIDEventTap, $.CGEventCreateKeyboardEvent(null, %d, false));
`, code, code))
	return err
}

func (a *darwinActuator) runJXA(script string) (string, error) {
	out, err := util.RunCommand("osascript", "-l", "JavaScript", "-e", script)
	if err != nil {
		a.warnAccessibilityOnce(err)
		return out, err
	}
	return out, nil
}

func (a *darwinActuator) warnAccessibilityOnce(err error) {
	nowNS := time.Now().UnixNano()
	last := atomic.LoadInt64(&a.lastPermWarnNS)
	if last != 0 && time.Duration(nowNS-last) < permissionWarnEvery {
		return
	}
	atomic.StoreInt64(&a.lastPermWarnNS, nowNS)

	log.Printf(
		"darwin: input event failed (%v). Enable Accessibility for the process posting events: System Settings, Privacy and Security, Accessibility.",
		err,
	)
}

func dependencyMessage() string {
	if !util.HasCommand("osascript") {
		return "osascript not found; pointer and key automation will not work."
	}
	return ""
}
