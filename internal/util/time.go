package util

import (
	"fmt"
	"strings"
	"time"
)

// ParseClock parses a time of day in either 12-hour or 24-hour format and
// returns its hour and minute.
// Supported formats:
// - 24-hour: "HH:MM" (e.g., "23:30", "09:45")
// - 12-hour: "HH:MM[AM|PM]" (e.g., "11:30PM", "09:45AM")
func ParseClock(timeStr string) (hour, minute int, err error) {
	timeStr = strings.TrimSpace(strings.ToUpper(timeStr))

	formats := []string{"15:04", "3:04PM", "3:04 PM", "03:04PM", "03:04 PM"}
	for _, format := range formats {
		if t, perr := time.Parse(format, timeStr); perr == nil {
			return t.Hour(), t.Minute(), nil
		}
	}

	return 0, 0, fmt.Errorf("invalid time format: %s\n\nValid formats:\n"+
		"• 24-hour format: HH:MM (e.g., '23:30', '09:45')\n"+
		"• 12-hour format: HH:MM[AM|PM] (e.g., '11:30PM', '9:45 AM')", timeStr)
}
