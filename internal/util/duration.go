package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseInterval parses a tick interval. A bare integer is read as seconds,
// anything else must be a Go duration string such as "90s" or "2m".
func ParseInterval(input string) (time.Duration, error) {
	input = strings.TrimSpace(input)

	if seconds, err := strconv.Atoi(input); err == nil {
		if seconds <= 0 {
			return 0, intervalError(input)
		}
		return time.Duration(seconds) * time.Second, nil
	}

	d, err := time.ParseDuration(input)
	if err != nil || d <= 0 {
		return 0, intervalError(input)
	}
	return d, nil
}

func intervalError(input string) error {
	return fmt.Errorf("invalid interval format: %s\n\nValid formats:\n"+
		"• Seconds: 60, 90\n"+
		"• Duration: 45s, 2m, 1m30s", input)
}
