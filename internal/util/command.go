package util

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// commandTimeout bounds helper tools such as xdotool or osascript so a wedged
// display server cannot stall a tick.
const commandTimeout = 3 * time.Second

// HasCommand checks if a command is available in the system PATH.
func HasCommand(name string) bool {
	if name == "" {
		return false
	}
	_, err := exec.LookPath(name)
	return err == nil
}

// RunCommand executes a command and returns its trimmed combined output.
func RunCommand(name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	out := strings.TrimSpace(buf.String())

	if ctx.Err() == context.DeadlineExceeded {
		return out, fmt.Errorf("%s timed out after %s", name, commandTimeout)
	}
	if err != nil {
		return out, fmt.Errorf("%s %s: %w (output: %q)", name, strings.Join(args, " "), err, out)
	}
	return out, nil
}
