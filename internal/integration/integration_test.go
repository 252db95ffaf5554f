package integration

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stigoleg/screen-keeper/internal/clock/clocktest"
	"github.com/stigoleg/screen-keeper/internal/config"
	"github.com/stigoleg/screen-keeper/internal/keepalive"
	"github.com/stigoleg/screen-keeper/internal/platform"
	"github.com/stigoleg/screen-keeper/internal/settings"
)

// countingActuator tracks the pointer and counts presses.
type countingActuator struct {
	mu      sync.Mutex
	pos     platform.Point
	moves   int
	presses []string
}

func (a *countingActuator) Name() string { return "counting" }

func (a *countingActuator) PointerPosition() (platform.Point, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pos, nil
}

func (a *countingActuator) MovePointerTo(x, y int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pos = platform.Point{X: x, Y: y}
	a.moves++
	return nil
}

func (a *countingActuator) PressKey(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.presses = append(a.presses, name)
	return nil
}

func (a *countingActuator) snapshot() (platform.Point, int, []string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pos, a.moves, append([]string(nil), a.presses...)
}

func drain(events <-chan keepalive.Event) []keepalive.Event {
	var out []keepalive.Event
	for {
		select {
		case e := <-events:
			out = append(out, e)
		default:
			return out
		}
	}
}

func countType(events []keepalive.Event, t keepalive.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// TestStoredSettingsDriveDailySchedule persists settings to a YAML file,
// reloads them, applies flag overrides and lets the daily trigger start a
// time-restricted key loop.
func TestStoredSettingsDriveDailySchedule(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screen-keeper", "settings.yaml")

	store, err := settings.OpenFileStore(path)
	require.NoError(t, err)
	saved := settings.Defaults()
	saved.ActionType = settings.ActionKey
	saved.Key = "f15"
	saved.IntervalSeconds = 300
	saved.DailyAutoStart = true
	saved.DailyStartTime = "09:00"
	require.NoError(t, settings.Save(store, saved))

	reopened, err := settings.OpenFileStore(path)
	require.NoError(t, err)
	loaded, err := settings.Load(reopened)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)

	flags, err := config.Parse([]string{"-i", "60", "-w", "09:00-09:05"}, nil)
	require.NoError(t, err)
	current := flags.Apply(loaded)

	c := clocktest.New(time.Date(2024, 6, 3, 8, 30, 0, 0, time.Local))
	act := &countingActuator{}
	notifier := keepalive.NewNotifier()
	events, cancel := notifier.Subscribe(64)
	defer cancel()

	sched := keepalive.NewScheduler(keepalive.Options{Clock: c, Actuator: act, Notifier: notifier})
	shutdown := keepalive.NewShutdown(time.Second)
	shutdown.AddScheduler(sched)

	require.NoError(t, sched.ConfigureDaily(current.DailyAutoStart, current.DailyStartTime, current))
	assert.False(t, sched.IsRunning())

	// 09:00 start, ticks at 09:01 .. 09:10, only 09:01 .. 09:05 inside the window.
	c.Set(time.Date(2024, 6, 3, 9, 10, 0, 0, time.Local))

	got := drain(events)
	require.NotEmpty(t, got)
	assert.Equal(t, keepalive.EventScheduleStarted, got[0].Type)
	assert.Equal(t, "09:00", got[0].StartTime)
	assert.Equal(t, 5, countType(got, keepalive.EventTick))
	assert.Zero(t, countType(got, keepalive.EventError))

	_, _, presses := act.snapshot()
	assert.Equal(t, []string{"f15", "f15", "f15", "f15", "f15"}, presses)

	require.NoError(t, shutdown.Run())
	assert.False(t, sched.IsRunning())
	assert.Zero(t, c.Pending())

	// Flag overrides are not written back.
	again, err := settings.Load(reopened)
	require.NoError(t, err)
	assert.Equal(t, 300, again.IntervalSeconds)
	assert.False(t, again.UseTimeRestriction)
}

// TestPointerLoopLeavesPointerInPlace runs a pointer loop for a while and
// checks every nudge was undone.
func TestPointerLoopLeavesPointerInPlace(t *testing.T) {
	c := clocktest.New(time.Date(2024, 6, 3, 12, 0, 0, 0, time.Local))
	act := &countingActuator{pos: platform.Point{X: 640, Y: 360}}
	notifier := keepalive.NewNotifier()
	events, cancel := notifier.Subscribe(256)
	defer cancel()

	sched := keepalive.NewScheduler(keepalive.Options{Clock: c, Actuator: act, Notifier: notifier})
	defer sched.Close()

	cfg := settings.Defaults()
	cfg.IntervalSeconds = 15
	require.NoError(t, sched.Start(cfg))

	c.Advance(10*time.Minute + time.Second)

	pos, moves, _ := act.snapshot()
	assert.Equal(t, platform.Point{X: 640, Y: 360}, pos)
	assert.Equal(t, 80, moves, "40 ticks, each a nudge and a restore")
	assert.Equal(t, 40, countType(drain(events), keepalive.EventTick))
}

// TestLegacySettingsFile loads a file written with the older action names.
func TestLegacySettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	legacy := "settings:\n  action_type: keyboard\n  key: shift\n  interval_seconds: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	store, err := settings.OpenFileStore(path)
	require.NoError(t, err)

	loaded, err := settings.Load(store)
	require.NoError(t, err)
	assert.Equal(t, settings.ActionKey, loaded.ActionType)
	assert.Equal(t, "shift", loaded.Key)
	assert.Equal(t, 10*time.Second, loaded.EffectiveInterval())
	assert.Equal(t, "17:00", loaded.EndTime, "missing fields fall back to defaults")
}
