// Package platform provides the Input Actuator: the one capability the
// automation core needs from the operating system. The implementation is
// chosen once, at construction, by build tags.
package platform

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned on platforms without an actuator.
var ErrUnsupported = errors.New("unsupported platform")

// Point is a pointer position in screen coordinates.
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// InputActuator moves the pointer and presses keys.
type InputActuator interface {
	Name() string
	PointerPosition() (Point, error)
	MovePointerTo(x, y int) error
	PressKey(name string) error
}

// NewInputActuator returns the actuator for the running platform. Each
// platform (darwin, windows, linux, other) implements newInputActuator.
func NewInputActuator() (InputActuator, error) {
	return newInputActuator()
}

// DependencyMessage describes missing helper tools or permissions, or
// returns "" when the actuator should work.
func DependencyMessage() string {
	return dependencyMessage()
}
