package platform

import "strings"

var keyAliases = map[string]string{
	"return": "enter",
	"esc":    "escape",
	"ctrl":   "control",
	"cmd":    "command",
	"super":  "command",
	"win":    "command",
	"option": "alt",
	"del":    "delete",
	"pgup":   "pageup",
	"pgdn":   "pagedown",
}

// normalizeKeyName lower-cases a key name and folds common aliases onto one
// spelling, so each actuator only maps a single vocabulary.
func normalizeKeyName(name string) string {
	if name == " " {
		return "space"
	}
	n := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := keyAliases[n]; ok {
		return alias
	}
	return n
}

// functionKeyNumber returns n for "fN" (1..24).
func functionKeyNumber(name string) (int, bool) {
	if len(name) < 2 || len(name) > 3 || name[0] != 'f' {
		return 0, false
	}
	n := 0
	for _, r := range name[1:] {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	if n < 1 || n > 24 {
		return 0, false
	}
	return n, true
}
