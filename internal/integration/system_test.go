package integration

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stigoleg/screen-keeper/internal/platform"
)

// TestRealActuatorRoundTrip moves the real pointer and puts it back. It
// needs a desktop session, so it only runs with SCREENKEEPER_SYSTEM_TEST=1.
func TestRealActuatorRoundTrip(t *testing.T) {
	if os.Getenv("SCREENKEEPER_SYSTEM_TEST") != "1" {
		t.Skip("set SCREENKEEPER_SYSTEM_TEST=1 to drive the real pointer")
	}
	if msg := platform.DependencyMessage(); msg != "" {
		t.Skipf("actuator unavailable: %s", msg)
	}

	act, err := platform.NewInputActuator()
	require.NoError(t, err)
	t.Logf("using actuator %s", act.Name())

	origin, err := act.PointerPosition()
	require.NoError(t, err, "should read the pointer position")

	require.NoError(t, act.MovePointerTo(origin.X+10, origin.Y+10))
	moved, err := act.PointerPosition()
	require.NoError(t, err)
	assert.Equal(t, platform.Point{X: origin.X + 10, Y: origin.Y + 10}, moved)

	require.NoError(t, act.MovePointerTo(origin.X, origin.Y))
	back, err := act.PointerPosition()
	require.NoError(t, err)
	assert.Equal(t, origin, back)

	assert.NoError(t, act.PressKey("shift"))
}
