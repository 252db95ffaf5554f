package keepalive

import (
	"errors"

	"github.com/stigoleg/screen-keeper/internal/settings"
)

var (
	// ErrInvalidConfiguration is returned synchronously by Start and
	// ConfigureDaily; the schedule is left as it was.
	ErrInvalidConfiguration = settings.ErrInvalidConfiguration

	// ErrActuatorFailure wraps input actuator errors. It is only ever
	// surfaced through error events.
	ErrActuatorFailure = errors.New("actuator failure")
)
