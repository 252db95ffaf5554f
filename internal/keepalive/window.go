package keepalive

import "github.com/stigoleg/screen-keeper/internal/clock"

// InWindow reports whether now lies in [start, end], inclusive at both ends
// with minute resolution. A start later than end is not treated as a window
// spanning midnight: such a window matches nothing.
func InWindow(now, start, end clock.TimeOfDay) bool {
	return start.Compare(now) <= 0 && now.Compare(end) <= 0
}
