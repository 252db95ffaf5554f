package keepalive

import (
	"fmt"
	"log"
	"time"

	"github.com/stigoleg/screen-keeper/internal/clock"
	"github.com/stigoleg/screen-keeper/internal/platform"
	"github.com/stigoleg/screen-keeper/internal/settings"
)

const (
	// NudgeOffset is how far the pointer is moved on each axis.
	NudgeOffset = 10

	// RestoreDelay is how long the pointer stays nudged before it is moved
	// back.
	RestoreDelay = 100 * time.Millisecond
)

// Result is the outcome of one dispatched action.
type Result struct {
	OK      bool
	Message string
}

// Dispatcher turns an action type into input actuator calls.
type Dispatcher struct {
	actuator platform.InputActuator
	clock    clock.Clock
	notifier *Notifier
}

// NewDispatcher returns a dispatcher. Restore failures are reported through
// notifier.
func NewDispatcher(actuator platform.InputActuator, c clock.Clock, notifier *Notifier) *Dispatcher {
	if c == nil {
		c = clock.Real()
	}
	return &Dispatcher{actuator: actuator, clock: c, notifier: notifier}
}

// Perform runs one action. Actuator errors and panics are converted into a
// failed Result; nothing escapes.
func (d *Dispatcher) Perform(action settings.ActionType, key string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: panic: %v", ErrActuatorFailure, r)
			log.Printf("dispatcher: %v", err)
			result = Result{Message: err.Error()}
		}
	}()

	var err error
	switch {
	case d.actuator == nil:
		err = fmt.Errorf("%w: no input actuator", ErrActuatorFailure)
	case action == settings.ActionPointer:
		err = d.nudge()
	case action == settings.ActionKey:
		if perr := d.actuator.PressKey(key); perr != nil {
			err = fmt.Errorf("%w: press %q: %v", ErrActuatorFailure, key, perr)
		}
	default:
		err = fmt.Errorf("%w: unknown action %q", ErrInvalidConfiguration, action)
	}

	if err != nil {
		log.Printf("dispatcher: %v", err)
		return Result{Message: err.Error()}
	}
	return Result{OK: true}
}

// nudge moves the pointer away and arms a one-shot restore. It does not wait
// for the restore.
func (d *Dispatcher) nudge() error {
	origin, err := d.actuator.PointerPosition()
	if err != nil {
		return fmt.Errorf("%w: read pointer: %v", ErrActuatorFailure, err)
	}
	if err := d.actuator.MovePointerTo(origin.X+NudgeOffset, origin.Y+NudgeOffset); err != nil {
		return fmt.Errorf("%w: move pointer: %v", ErrActuatorFailure, err)
	}

	d.clock.AfterFunc(RestoreDelay, func() {
		d.restore(origin)
	})
	return nil
}

func (d *Dispatcher) restore(origin platform.Point) {
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		err = d.actuator.MovePointerTo(origin.X, origin.Y)
	}()
	if err == nil {
		return
	}

	err = fmt.Errorf("%w: restore pointer to %s: %v", ErrActuatorFailure, origin, err)
	log.Printf("dispatcher: %v", err)
	d.notifier.Emit(Event{
		Type:    EventError,
		At:      d.clock.Now(),
		Message: err.Error(),
	})
}
