package util

import (
	"strings"
	"testing"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name      string
		timeStr   string
		wantHour  int
		wantMin   int
		wantError bool
	}{
		// 24-hour format tests
		{
			name:     "valid 24h time - evening",
			timeStr:  "22:30",
			wantHour: 22,
			wantMin:  30,
		},
		{
			name:     "valid 24h time - morning",
			timeStr:  "09:45",
			wantHour: 9,
			wantMin:  45,
		},
		{
			name:     "valid 24h time - midnight",
			timeStr:  "00:00",
			wantHour: 0,
			wantMin:  0,
		},
		{
			name:     "valid 24h time - single digit hour",
			timeStr:  "9:05",
			wantHour: 9,
			wantMin:  5,
		},

		// 12-hour format tests
		{
			name:     "valid 12h time - PM",
			timeStr:  "10:30PM",
			wantHour: 22,
			wantMin:  30,
		},
		{
			name:     "valid 12h time - with space AM",
			timeStr:  "09:45 AM",
			wantHour: 9,
			wantMin:  45,
		},
		{
			name:     "valid 12h time - lowercase pm",
			timeStr:  "12:15pm",
			wantHour: 12,
			wantMin:  15,
		},

		// Error cases
		{
			name:      "invalid format - no minutes",
			timeStr:   "22:",
			wantError: true,
		},
		{
			name:      "invalid format - no separator",
			timeStr:   "2230",
			wantError: true,
		},
		{
			name:      "invalid format - extra characters",
			timeStr:   "22:30xyz",
			wantError: true,
		},
		{
			name:      "invalid format - out of range hours",
			timeStr:   "25:00",
			wantError: true,
		},
		{
			name:      "invalid format - out of range minutes",
			timeStr:   "22:60",
			wantError: true,
		},
		{
			name:      "invalid format - empty string",
			timeStr:   "",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, err := ParseClock(tt.timeStr)

			if tt.wantError {
				if err == nil {
					t.Errorf("ParseClock(%q) expected error but got none", tt.timeStr)
				}
				if err != nil && !strings.Contains(err.Error(), "Valid formats") {
					t.Errorf("ParseClock(%q) error should contain format help, got: %v", tt.timeStr, err)
				}
				return
			}

			if err != nil {
				t.Errorf("ParseClock(%q) unexpected error: %v", tt.timeStr, err)
				return
			}
			if hour != tt.wantHour {
				t.Errorf("ParseClock(%q) got hour %d, want %d", tt.timeStr, hour, tt.wantHour)
			}
			if minute != tt.wantMin {
				t.Errorf("ParseClock(%q) got minute %d, want %d", tt.timeStr, minute, tt.wantMin)
			}
		})
	}
}
