package clock

import (
	"fmt"
	"sync"
	"time"

	"github.com/stigoleg/screen-keeper/internal/util"
)

// TimeOfDay is a wall-clock time with minute resolution.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" (12-hour forms with AM/PM are accepted too).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hour, minute, err := util.ParseClock(s)
	if err != nil {
		return TimeOfDay{}, err
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// TimeOfDayOf truncates t to its hour and minute in t's location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Compare returns -1, 0 or +1 depending on whether t is before, equal to or
// after o.
func (t TimeOfDay) Compare(o TimeOfDay) int {
	a, b := t.minutes(), o.minutes()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (t TimeOfDay) minutes() int {
	return t.Hour*60 + t.Minute
}

// Next returns the first instant strictly after ref at which the wall clock in
// ref's location reads t.
func (t TimeOfDay) Next(ref time.Time) time.Time {
	y, m, d := ref.Date()
	candidate := time.Date(y, m, d, t.Hour, t.Minute, 0, 0, ref.Location())
	for !candidate.After(ref) {
		d++
		candidate = time.Date(y, m, d, t.Hour, t.Minute, 0, 0, ref.Location())
	}
	return candidate
}

// EveryDayAt arms a timer on c that calls f once per day when the wall clock
// reads at. The next occurrence is recomputed after every firing so daylight
// saving shifts are followed.
func EveryDayAt(c Clock, at TimeOfDay, f func()) Timer {
	d := &dailyTimer{clock: c, at: at, f: f}
	d.mu.Lock()
	d.armLocked(c.Now())
	d.mu.Unlock()
	return d
}

type dailyTimer struct {
	mu      sync.Mutex
	clock   Clock
	at      TimeOfDay
	f       func()
	timer   Timer
	target  time.Time
	stopped bool
}

func (d *dailyTimer) armLocked(ref time.Time) {
	d.target = d.at.Next(ref)
	d.timer = d.clock.AfterFunc(d.target.Sub(ref), d.fire)
}

func (d *dailyTimer) fire() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	// Runtime timers may wake a little early; never re-arm for the same day.
	ref := d.clock.Now()
	if ref.Before(d.target) {
		ref = d.target
	}
	d.armLocked(ref)
	d.mu.Unlock()

	d.f()
}

func (d *dailyTimer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return false
	}
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
	return true
}
