package keepalive

import (
	"fmt"
	"time"

	"github.com/stigoleg/screen-keeper/internal/settings"
)

// EventType defines the kind of automation event.
type EventType string

const (
	EventTick            EventType = "tick"
	EventError           EventType = "error"
	EventScheduleStarted EventType = "schedule_started"
)

// Event is delivered to the observer after ticks, failures and daily starts.
type Event struct {
	Type EventType
	At   time.Time

	// Tick
	Action settings.ActionType
	Key    string

	// Schedule started, as HH:MM
	StartTime string

	// Error
	Message string
}

func (e Event) String() string {
	ts := e.At.Format(time.RFC3339)
	switch e.Type {
	case EventTick:
		if e.Key != "" {
			return fmt.Sprintf("%s tick action=%s key=%s", ts, e.Action, e.Key)
		}
		return fmt.Sprintf("%s tick action=%s", ts, e.Action)
	case EventScheduleStarted:
		return fmt.Sprintf("%s daily schedule started at %s", ts, e.StartTime)
	case EventError:
		return fmt.Sprintf("%s error: %s", ts, e.Message)
	default:
		return fmt.Sprintf("%s %s", ts, e.Type)
	}
}
