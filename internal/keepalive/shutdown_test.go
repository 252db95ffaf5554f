package keepalive

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdownRunsStepsInReverseOrder(t *testing.T) {
	s := NewShutdown(time.Second)
	var order []string
	for _, name := range []string{"log file", "store", "scheduler"} {
		name := name
		s.Add(name, func() error {
			order = append(order, name)
			return nil
		})
	}

	require.NoError(t, s.Run())
	assert.Equal(t, []string{"scheduler", "store", "log file"}, order)
}

func TestShutdownCollectsErrorsAndPanics(t *testing.T) {
	s := NewShutdown(time.Second)
	boom := errors.New("boom")
	ran := false

	s.Add("last", func() error { ran = true; return nil })
	s.Add("panics", func() error { panic("bad step") })
	s.Add("fails", func() error { return boom })

	err := s.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "panics: panic: bad step")
	assert.True(t, ran, "steps after a failing one still run")
}

func TestShutdownRunsOnce(t *testing.T) {
	s := NewShutdown(time.Second)
	calls := 0
	s.Add("count", func() error { calls++; return errors.New("once") })

	first := s.Run()
	second := s.Run()
	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestShutdownTimeout(t *testing.T) {
	s := NewShutdown(20 * time.Millisecond)
	release := make(chan struct{})
	defer close(release)
	s.Add("stuck", func() error {
		<-release
		return nil
	})

	start := time.Now()
	err := s.Run()
	assert.ErrorIs(t, err, ErrShutdownTimeout)
	assert.Less(t, time.Since(start), time.Second)
}

func TestShutdownEmpty(t *testing.T) {
	assert.NoError(t, NewShutdown(0).Run())
}

func TestShutdownStopsScheduler(t *testing.T) {
	f := newFixture(t, at(8, 0, 0))
	require.NoError(t, f.scheduler.Start(keyConfig(10)))
	require.NoError(t, f.scheduler.ConfigureDaily(true, "09:00", keyConfig(10)))

	s := NewShutdown(time.Second)
	s.AddScheduler(f.scheduler)
	require.NoError(t, s.Run())

	assert.False(t, f.scheduler.IsRunning())
	assert.Zero(t, f.clock.Pending())
}
