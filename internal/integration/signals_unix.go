//go:build !windows

package integration

import (
	"os"
	"syscall"
)

func shutdownSignals() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
		syscall.SIGTSTP,
	}
}

func isSuspend(sig os.Signal) bool {
	return sig == syscall.SIGTSTP
}

func sendSignal(proc *os.Process, name string) error {
	sigs := map[string]os.Signal{
		"INT":  syscall.SIGINT,
		"TERM": syscall.SIGTERM,
		"QUIT": syscall.SIGQUIT,
		"TSTP": syscall.SIGTSTP,
	}
	return proc.Signal(sigs[name])
}
