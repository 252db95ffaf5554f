// Package clocktest provides a manually advanced clock.Clock for tests.
package clocktest

import (
	"sync"
	"time"

	"github.com/stigoleg/screen-keeper/internal/clock"
)

// Clock is a fake clock. Timers only fire from Advance or Set, synchronously on
// the calling goroutine, in due-time order.
type Clock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*timer
	seq    int
}

type timer struct {
	c      *Clock
	id     int
	when   time.Time
	period time.Duration
	f      func()
	live   bool
}

var _ clock.Clock = (*Clock)(nil)

// New returns a fake clock reading start.
func New(start time.Time) *Clock {
	return &Clock{now: start}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) AfterFunc(d time.Duration, f func()) clock.Timer {
	return c.add(d, 0, f)
}

// Every matches the runtime clock: a non-positive d never fires.
func (c *Clock) Every(d time.Duration, f func()) clock.Timer {
	if d <= 0 {
		return &timer{c: c, f: f}
	}
	return c.add(d, d, f)
}

func (c *Clock) add(d, period time.Duration, f func()) *timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &timer{c: c, id: c.seq, when: c.now.Add(d), period: period, f: f, live: true}
	c.timers = append(c.timers, t)
	return t
}

// Pending returns the number of live timers.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// Advance moves the clock forward by d, firing every timer that falls due.
func (c *Clock) Advance(d time.Duration) {
	c.Set(c.Now().Add(d))
}

// Set moves the clock forward to target, firing every timer that falls due.
// Setting a time in the past is a no-op.
func (c *Clock) Set(target time.Time) {
	for {
		c.mu.Lock()
		next := c.nextDueLocked(target)
		if next == nil {
			if target.After(c.now) {
				c.now = target
			}
			c.mu.Unlock()
			return
		}
		c.now = next.when
		if next.period > 0 {
			next.when = next.when.Add(next.period)
		} else {
			c.removeLocked(next)
		}
		f := next.f
		c.mu.Unlock()

		f()
	}
}

func (c *Clock) nextDueLocked(target time.Time) *timer {
	var next *timer
	for _, t := range c.timers {
		if t.when.After(target) {
			continue
		}
		if next == nil || t.when.Before(next.when) || (t.when.Equal(next.when) && t.id < next.id) {
			next = t
		}
	}
	return next
}

func (c *Clock) removeLocked(t *timer) {
	t.live = false
	for i, candidate := range c.timers {
		if candidate == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}

func (t *timer) Stop() bool {
	t.c.mu.Lock()
	defer t.c.mu.Unlock()
	if !t.live {
		return false
	}
	t.c.removeLocked(t)
	return true
}
