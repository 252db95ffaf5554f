// Package settings holds the automation settings and the key-value store they
// are persisted in.
package settings

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stigoleg/screen-keeper/internal/clock"
)

// ErrInvalidConfiguration reports a missing or malformed settings field.
var ErrInvalidConfiguration = errors.New("invalid configuration")

const (
	// MinIntervalSeconds is the shortest period an automation loop runs at.
	MinIntervalSeconds = 10

	// MaxIntervalSeconds is the longest accepted period, one day.
	MaxIntervalSeconds = 24 * 60 * 60
)

// ActionType selects what a tick does.
type ActionType string

const (
	ActionPointer ActionType = "pointer"
	ActionKey     ActionType = "key"
)

// ParseActionType accepts the canonical names and the legacy "mouse" and
// "keyboard" values older settings files contain.
func ParseActionType(s string) (ActionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pointer", "mouse":
		return ActionPointer, nil
	case "key", "keyboard":
		return ActionKey, nil
	default:
		return "", fmt.Errorf("%w: unknown action type %q (want pointer or key)", ErrInvalidConfiguration, s)
	}
}

// Settings is an immutable-by-convention snapshot handed to the scheduler.
type Settings struct {
	ActionType         ActionType `yaml:"action_type"`
	Key                string     `yaml:"key"`
	IntervalSeconds    int        `yaml:"interval_seconds"`
	UseTimeRestriction bool       `yaml:"use_time_restriction"`
	StartTime          string     `yaml:"start_time"`
	EndTime            string     `yaml:"end_time"`
	DailyAutoStart     bool       `yaml:"daily_auto_start"`
	DailyStartTime     string     `yaml:"daily_start_time"`
}

// Defaults returns the settings used when nothing has been stored yet.
func Defaults() Settings {
	return Settings{
		ActionType:         ActionPointer,
		Key:                "space",
		IntervalSeconds:    60,
		UseTimeRestriction: false,
		StartTime:          "09:00",
		EndTime:            "17:00",
		DailyAutoStart:     false,
		DailyStartTime:     "09:00",
	}
}

// EffectiveInterval returns the tick period, clamped to
// [MinIntervalSeconds, MaxIntervalSeconds].
func (s Settings) EffectiveInterval() time.Duration {
	seconds := min(max(s.IntervalSeconds, MinIntervalSeconds), MaxIntervalSeconds)
	return time.Duration(seconds) * time.Second
}

// Window parses the time restriction bounds.
func (s Settings) Window() (start, end clock.TimeOfDay, err error) {
	start, err = clock.ParseTimeOfDay(s.StartTime)
	if err != nil {
		return start, end, fmt.Errorf("%w: start time: %v", ErrInvalidConfiguration, err)
	}
	end, err = clock.ParseTimeOfDay(s.EndTime)
	if err != nil {
		return start, end, fmt.Errorf("%w: end time: %v", ErrInvalidConfiguration, err)
	}
	return start, end, nil
}

// Validate checks the fields an automation loop depends on. The daily start
// time is validated by the daily trigger itself.
func (s Settings) Validate() error {
	action, err := ParseActionType(string(s.ActionType))
	if err != nil {
		return err
	}
	if action == ActionKey && strings.TrimSpace(s.Key) == "" {
		return fmt.Errorf("%w: action type key requires a key", ErrInvalidConfiguration)
	}
	if s.IntervalSeconds > MaxIntervalSeconds {
		return fmt.Errorf("%w: interval of %d seconds is longer than one day", ErrInvalidConfiguration, s.IntervalSeconds)
	}
	if s.UseTimeRestriction {
		if _, _, err := s.Window(); err != nil {
			return err
		}
	}
	return nil
}

// Normalized maps legacy action names onto their canonical values.
func (s Settings) Normalized() Settings {
	if action, err := ParseActionType(string(s.ActionType)); err == nil {
		s.ActionType = action
	}
	return s
}
