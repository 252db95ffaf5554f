package keepalive

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stigoleg/screen-keeper/internal/clock/clocktest"
	"github.com/stigoleg/screen-keeper/internal/platform"
)

type actuatorCall struct {
	Op  string
	X   int
	Y   int
	Key string
	At  time.Time
}

// recordingActuator records every call and can be told to fail.
type recordingActuator struct {
	mu      sync.Mutex
	clock   *clocktest.Clock
	pos     platform.Point
	calls   []actuatorCall
	failKey error
	failPos error
	// failMoveTo fails moves to this exact point.
	failMoveTo *platform.Point
	panicOn    string
}

func newRecordingActuator(c *clocktest.Clock) *recordingActuator {
	return &recordingActuator{clock: c, pos: platform.Point{X: 100, Y: 200}}
}

func (a *recordingActuator) now() time.Time {
	if a.clock == nil {
		return time.Now()
	}
	return a.clock.Now()
}

func (a *recordingActuator) Name() string { return "recording" }

func (a *recordingActuator) PointerPosition() (platform.Point, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.panicOn == "position" {
		panic("position exploded")
	}
	if a.failPos != nil {
		return platform.Point{}, a.failPos
	}
	return a.pos, nil
}

func (a *recordingActuator) MovePointerTo(x, y int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.failMoveTo != nil && a.failMoveTo.X == x && a.failMoveTo.Y == y {
		return errors.New("move refused")
	}
	a.calls = append(a.calls, actuatorCall{Op: "move", X: x, Y: y, At: a.now()})
	a.pos = platform.Point{X: x, Y: y}
	return nil
}

func (a *recordingActuator) PressKey(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.failKey != nil {
		return a.failKey
	}
	a.calls = append(a.calls, actuatorCall{Op: "key", Key: name, At: a.now()})
	return nil
}

func (a *recordingActuator) setFailKey(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failKey = err
}

func (a *recordingActuator) Calls() []actuatorCall {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]actuatorCall, len(a.calls))
	copy(out, a.calls)
	return out
}

func (a *recordingActuator) count(op string) int {
	n := 0
	for _, c := range a.Calls() {
		if c.Op == op {
			n++
		}
	}
	return n
}

// eventLog collects events from a Notifier.
type eventLog struct {
	mu     sync.Mutex
	events []Event
}

func (l *eventLog) observe(e Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

func (l *eventLog) All() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

func (l *eventLog) OfType(t EventType) []Event {
	var out []Event
	for _, e := range l.All() {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

type fixture struct {
	clock     *clocktest.Clock
	actuator  *recordingActuator
	events    *eventLog
	scheduler *Scheduler
}

// at returns a time on a fixed local date.
func at(hour, minute, second int) time.Time {
	return time.Date(2024, time.March, 4, hour, minute, second, 0, time.Local)
}

func newFixture(t *testing.T, start time.Time) *fixture {
	t.Helper()
	c := clocktest.New(start)
	act := newRecordingActuator(c)
	events := &eventLog{}
	n := NewNotifier()
	n.SetObserver(events.observe)
	s := NewScheduler(Options{Clock: c, Actuator: act, Notifier: n})
	t.Cleanup(s.Close)
	return &fixture{clock: c, actuator: act, events: events, scheduler: s}
}
