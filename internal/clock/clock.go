// Package clock provides the timer primitives the scheduler is built on: one-shot
// timers, fixed-period timers and a once-a-day trigger at a wall-clock time.
package clock

import (
	"sync"
	"time"
)

// Timer is a cancellable scheduled callback. Stop reports whether the call
// cancelled a timer that was still live.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. Callbacks run on goroutines owned by the clock.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
	Every(d time.Duration, f func()) Timer
}

type realClock struct{}

// Real returns a Clock backed by the runtime timers.
func Real() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Every calls f every d. A non-positive d yields a timer that never fires.
func (realClock) Every(d time.Duration, f func()) Timer {
	if d <= 0 {
		return inertTimer{}
	}
	t := &periodicTimer{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}
	go t.run(f)
	return t
}

type periodicTimer struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *periodicTimer) run(f func()) {
	defer t.ticker.Stop()
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			select {
			case <-t.done:
				return
			default:
			}
			f()
		}
	}
}

func (t *periodicTimer) Stop() bool {
	stopped := false
	t.once.Do(func() {
		close(t.done)
		stopped = true
	})
	return stopped
}

type inertTimer struct{}

func (inertTimer) Stop() bool { return false }
