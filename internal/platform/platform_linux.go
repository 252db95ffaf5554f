//go:build linux

package platform

import (
	"log"

	"github.com/stigoleg/screen-keeper/internal/platform/linux"
)

type linuxBackend interface {
	Name() string
	PointerPosition() (x, y int, err error)
	MovePointerTo(x, y int) error
	PressKey(name string) error
}

// linuxActuator adapts the xdotool or wtype backend to InputActuator.
type linuxActuator struct {
	backend linuxBackend
}

func newInputActuator() (InputActuator, error) {
	caps := linux.DetectCapabilities()

	var backend linuxBackend = linux.Xdotool{}
	if caps.DisplayServer == linux.DisplayServerWayland {
		backend = linux.Wtype{}
	}
	log.Printf("linux: display=%s actuator=%s", caps.DisplayServer, backend.Name())
	return &linuxActuator{backend: backend}, nil
}

func (a *linuxActuator) Name() string {
	return a.backend.Name()
}

func (a *linuxActuator) PointerPosition() (Point, error) {
	x, y, err := a.backend.PointerPosition()
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

func (a *linuxActuator) MovePointerTo(x, y int) error {
	return a.backend.MovePointerTo(x, y)
}

func (a *linuxActuator) PressKey(name string) error {
	return a.backend.PressKey(normalizeKeyName(name))
}

func dependencyMessage() string {
	return linux.GetDependencyMessage()
}
