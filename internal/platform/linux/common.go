//go:build linux

package linux

import (
	"github.com/stigoleg/screen-keeper/internal/util"
)

// hasCommand checks if a command is available in the system PATH.
// This is a convenience wrapper around util.HasCommand.
func hasCommand(name string) bool {
	return util.HasCommand(name)
}

// run executes a helper tool, overridable in tests.
var run = util.RunCommand
