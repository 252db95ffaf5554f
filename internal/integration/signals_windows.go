//go:build windows

package integration

import (
	"errors"
	"os"
)

func shutdownSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}

func isSuspend(os.Signal) bool {
	return false
}

func sendSignal(*os.Process, string) error {
	return errors.New("sending signals is not supported on windows")
}
