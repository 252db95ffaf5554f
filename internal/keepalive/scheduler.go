package keepalive

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/stigoleg/screen-keeper/internal/clock"
	"github.com/stigoleg/screen-keeper/internal/platform"
	"github.com/stigoleg/screen-keeper/internal/settings"
)

// Options configures a Scheduler. A nil Clock uses the runtime clock and a
// nil Notifier gets a fresh one.
type Options struct {
	Clock    clock.Clock
	Actuator platform.InputActuator
	Notifier *Notifier
}

// Scheduler owns the interval trigger that performs keep-alive actions and
// the daily trigger that re-arms it.
//
// Timer callbacks are serialized on fireMu. Public methods take fireMu
// before mu, so once Start, Stop, ConfigureDaily or Close returns no
// callback of a replaced timer acts again. Observers must not call back
// into the Scheduler synchronously.
type Scheduler struct {
	clock      clock.Clock
	notifier   *Notifier
	dispatcher *Dispatcher

	fireMu sync.Mutex

	mu          sync.Mutex
	running     bool
	interval    clock.Timer
	intervalGen uint64
	run         runConfig
	daily       clock.Timer
	dailyGen    uint64
	dailyAt     clock.TimeOfDay
}

// runConfig is the snapshot an interval trigger was armed with.
type runConfig struct {
	settings settings.Settings
	start    clock.TimeOfDay
	end      clock.TimeOfDay
}

// NewScheduler returns an idle scheduler.
func NewScheduler(opts Options) *Scheduler {
	c := opts.Clock
	if c == nil {
		c = clock.Real()
	}
	n := opts.Notifier
	if n == nil {
		n = NewNotifier()
	}
	return &Scheduler{
		clock:      c,
		notifier:   n,
		dispatcher: NewDispatcher(opts.Actuator, c, n),
	}
}

// Notifier returns the notifier events are emitted on.
func (s *Scheduler) Notifier() *Notifier {
	return s.notifier
}

// IsRunning reports whether an interval trigger is live.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Settings returns the snapshot the running loop was started with.
func (s *Scheduler) Settings() (settings.Settings, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return settings.Settings{}, false
	}
	return s.run.settings, true
}

// DailyStartTime returns the time the daily trigger is armed for.
func (s *Scheduler) DailyStartTime() (clock.TimeOfDay, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.daily == nil {
		return clock.TimeOfDay{}, false
	}
	return s.dailyAt, true
}

// Start arms the interval trigger with cfg, replacing any running loop.
// Invalid settings are rejected with ErrInvalidConfiguration and leave the
// scheduler as it was.
func (s *Scheduler) Start(cfg settings.Settings) error {
	s.fireMu.Lock()
	defer s.fireMu.Unlock()
	return s.start(cfg)
}

func (s *Scheduler) start(cfg settings.Settings) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg = cfg.Normalized()

	rc := runConfig{settings: cfg}
	if cfg.UseTimeRestriction {
		start, end, err := cfg.Window()
		if err != nil {
			return err
		}
		rc.start, rc.end = start, end
	}
	period := cfg.EffectiveInterval()
	if period <= 0 {
		return fmt.Errorf("%w: interval %s is not positive", ErrInvalidConfiguration, period)
	}

	replaced := s.arm(rc, period)

	if replaced {
		log.Printf("scheduler: restarted (action=%s interval=%s)", cfg.ActionType, period)
	} else {
		log.Printf("scheduler: started (action=%s interval=%s)", cfg.ActionType, period)
	}
	return nil
}

// arm replaces the interval trigger and reports whether one was running.
func (s *Scheduler) arm(rc runConfig, period time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := s.running
	if s.interval != nil {
		s.interval.Stop()
		s.interval = nil
	}
	s.intervalGen++
	gen := s.intervalGen
	s.run = rc
	s.interval = s.clock.Every(period, func() { s.tick(gen) })
	s.running = true
	return replaced
}

// Stop cancels the interval trigger. Stopping an idle scheduler is a no-op.
func (s *Scheduler) Stop() error {
	s.fireMu.Lock()
	defer s.fireMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return nil
	}
	s.stopIntervalLocked()
	log.Printf("scheduler: stopped")
	return nil
}

func (s *Scheduler) stopIntervalLocked() {
	if s.interval != nil {
		s.interval.Stop()
		s.interval = nil
	}
	s.intervalGen++
	s.running = false
	s.run = runConfig{}
}

// ConfigureDaily arms, replaces or cancels the daily trigger. When enabled,
// the trigger calls Start(cfg) every day at dailyStartTime (HH:MM) and emits
// EventScheduleStarted. An unparseable time is rejected with
// ErrInvalidConfiguration and the existing daily trigger is kept. cfg is
// validated when the trigger fires; a failure there becomes an error event.
func (s *Scheduler) ConfigureDaily(enabled bool, dailyStartTime string, cfg settings.Settings) error {
	s.fireMu.Lock()
	defer s.fireMu.Unlock()

	if !enabled {
		s.mu.Lock()
		armed := s.daily != nil
		s.stopDailyLocked()
		s.mu.Unlock()
		if armed {
			log.Printf("scheduler: daily schedule disabled")
		}
		return nil
	}

	at, err := clock.ParseTimeOfDay(dailyStartTime)
	if err != nil {
		return fmt.Errorf("%w: daily start time: %v", ErrInvalidConfiguration, err)
	}

	s.mu.Lock()
	s.stopDailyLocked()
	gen := s.dailyGen
	s.daily = clock.EveryDayAt(s.clock, at, func() { s.fireDaily(gen, at, cfg) })
	s.dailyAt = at
	s.mu.Unlock()

	log.Printf("scheduler: daily schedule set for %s", at)
	return nil
}

func (s *Scheduler) stopDailyLocked() {
	if s.daily != nil {
		s.daily.Stop()
		s.daily = nil
	}
	s.dailyGen++
	s.dailyAt = clock.TimeOfDay{}
}

// Close cancels both triggers.
func (s *Scheduler) Close() {
	s.fireMu.Lock()
	defer s.fireMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopIntervalLocked()
	s.stopDailyLocked()
	log.Printf("scheduler: closed")
}

func (s *Scheduler) tick(gen uint64) {
	s.fireMu.Lock()

	s.mu.Lock()
	if gen != s.intervalGen || !s.running {
		s.mu.Unlock()
		s.fireMu.Unlock()
		return
	}
	rc := s.run
	s.mu.Unlock()

	now := s.clock.Now()
	if rc.settings.UseTimeRestriction && !InWindow(clock.TimeOfDayOf(now), rc.start, rc.end) {
		s.fireMu.Unlock()
		return
	}

	result := s.dispatcher.Perform(rc.settings.ActionType, rc.settings.Key)
	s.fireMu.Unlock()

	if !result.OK {
		s.notifier.Emit(Event{Type: EventError, At: now, Message: result.Message})
		return
	}

	event := Event{Type: EventTick, At: now, Action: rc.settings.ActionType}
	if rc.settings.ActionType == settings.ActionKey {
		event.Key = rc.settings.Key
	}
	s.notifier.Emit(event)
}

func (s *Scheduler) fireDaily(gen uint64, at clock.TimeOfDay, cfg settings.Settings) {
	s.fireMu.Lock()

	s.mu.Lock()
	stale := gen != s.dailyGen
	s.mu.Unlock()
	if stale {
		s.fireMu.Unlock()
		return
	}

	err := s.start(cfg)
	s.fireMu.Unlock()

	now := s.clock.Now()
	if err != nil {
		log.Printf("scheduler: daily start at %s failed: %v", at, err)
		s.notifier.Emit(Event{Type: EventError, At: now, Message: err.Error()})
		return
	}
	s.notifier.Emit(Event{Type: EventScheduleStarted, At: now, StartTime: at.String()})
}
