//go:build !darwin && !windows && !linux

package platform

// unsupportedActuator implements InputActuator for unsupported platforms.
type unsupportedActuator struct{}

func (unsupportedActuator) Name() string {
	return "unsupported"
}

func (unsupportedActuator) PointerPosition() (Point, error) {
	return Point{}, ErrUnsupported
}

func (unsupportedActuator) MovePointerTo(x, y int) error {
	return ErrUnsupported
}

func (unsupportedActuator) PressKey(name string) error {
	return ErrUnsupported
}

func newInputActuator() (InputActuator, error) {
	return unsupportedActuator{}, nil
}

func dependencyMessage() string {
	return "Pointer and key automation is not supported on this platform."
}
