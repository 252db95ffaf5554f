package keepalive

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

// ErrShutdownTimeout is returned when shutdown steps do not finish in time.
var ErrShutdownTimeout = errors.New("shutdown timeout exceeded")

// Shutdown runs registered steps once, in reverse registration order, within
// a deadline. A panicking step is reported as an error and the remaining
// steps still run.
type Shutdown struct {
	mu      sync.Mutex
	steps   []shutdownStep
	timeout time.Duration
	once    sync.Once
	err     error
}

type shutdownStep struct {
	name string
	fn   func() error
}

// NewShutdown returns a Shutdown with the given deadline (5s when <= 0).
func NewShutdown(timeout time.Duration) *Shutdown {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Shutdown{timeout: timeout}
}

// Add registers a step.
func (s *Shutdown) Add(name string, fn func() error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps = append(s.steps, shutdownStep{name: name, fn: fn})
}

// AddScheduler registers stopping both of sched's triggers.
func (s *Shutdown) AddScheduler(sched *Scheduler) {
	s.Add("scheduler", func() error {
		sched.Close()
		return nil
	})
}

// Run executes the steps. Later calls return the first call's result.
func (s *Shutdown) Run() error {
	s.once.Do(func() {
		s.err = s.run()
	})
	return s.err
}

func (s *Shutdown) run() error {
	s.mu.Lock()
	steps := make([]shutdownStep, len(s.steps))
	copy(steps, s.steps)
	s.mu.Unlock()

	if len(steps) == 0 {
		return nil
	}

	var (
		errsMu sync.Mutex
		errs   []error
	)
	record := func(err error) {
		errsMu.Lock()
		errs = append(errs, err)
		errsMu.Unlock()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := len(steps) - 1; i >= 0; i-- {
			step := steps[i]
			if err := runStep(step); err != nil {
				log.Printf("shutdown: %s: %v", step.name, err)
				record(fmt.Errorf("%s: %w", step.name, err))
				continue
			}
			log.Printf("shutdown: %s done", step.name)
		}
	}()

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	select {
	case <-done:
	case <-timer.C:
		log.Printf("shutdown: gave up after %v", s.timeout)
		record(ErrShutdownTimeout)
	}

	errsMu.Lock()
	defer errsMu.Unlock()
	return errors.Join(errs...)
}

func runStep(step shutdownStep) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return step.fn()
}
