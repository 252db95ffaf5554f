package platform

import "testing"

func TestNormalizeKeyName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Space", "space"},
		{" ", "space"},
		{"RETURN", "enter"},
		{"esc", "escape"},
		{"Ctrl", "control"},
		{"cmd", "command"},
		{"option", "alt"},
		{"a", "a"},
		{" F13 ", "f13"},
	}

	for _, tt := range tests {
		if got := normalizeKeyName(tt.in); got != tt.want {
			t.Errorf("normalizeKeyName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFunctionKeyNumber(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"f1", 1, true},
		{"f15", 15, true},
		{"f24", 24, true},
		{"f25", 0, false},
		{"f0", 0, false},
		{"f", 0, false},
		{"fx", 0, false},
		{"space", 0, false},
	}

	for _, tt := range tests {
		got, ok := functionKeyNumber(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("functionKeyNumber(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
