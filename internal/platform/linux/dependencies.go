//go:build linux

package linux

import (
	"fmt"
	"log"
	"strings"
)

// DependencyInfo describes a missing helper tool and how to install it.
type DependencyInfo struct {
	Name       string
	WhyNeeded  string
	InstallCmd string
}

// InstallCommand returns a distro-specific installation command for tool.
func InstallCommand(tool string, distro DistroInfo) string {
	switch distro.PkgManager {
	case "apt":
		return fmt.Sprintf("sudo apt update && sudo apt install %s", tool)
	case "dnf", "yum":
		return fmt.Sprintf("sudo %s install %s", distro.PkgManager, tool)
	case "pacman":
		return fmt.Sprintf("sudo pacman -S %s", tool)
	case "zypper":
		return fmt.Sprintf("sudo zypper install %s", tool)
	case "apk":
		return fmt.Sprintf("sudo apk add %s", tool)
	default:
		return fmt.Sprintf("Install %s using your distribution's package manager", tool)
	}
}

// MissingDependencies lists the tools the detected display server needs but
// the PATH lacks.
func MissingDependencies(caps Capabilities, distro DistroInfo) []DependencyInfo {
	var missing []DependencyInfo

	switch caps.DisplayServer {
	case DisplayServerWayland:
		if !caps.WtypeAvailable {
			missing = append(missing, DependencyInfo{
				Name:       "wtype",
				WhyNeeded:  "Sends key presses on Wayland (pointer nudges are not available on Wayland)",
				InstallCmd: InstallCommand("wtype", distro),
			})
		}
	default:
		if !caps.XdotoolAvailable {
			missing = append(missing, DependencyInfo{
				Name:       "xdotool",
				WhyNeeded:  "Reads and moves the pointer and sends key presses on X11",
				InstallCmd: InstallCommand("xdotool", distro),
			})
		}
	}

	return missing
}

// FormatDependencyMessages formats dependency information into a user-facing
// message. It returns "" when nothing is missing.
func FormatDependencyMessages(missing []DependencyInfo) string {
	if len(missing) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Missing dependencies detected:\n\n")
	for i, dep := range missing {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, dep.Name))
		b.WriteString(fmt.Sprintf("   Why needed: %s\n", dep.WhyNeeded))
		b.WriteString(fmt.Sprintf("   Install with: %s\n", dep.InstallCmd))
	}
	b.WriteString("\nTicks will report errors until they are installed.")
	return b.String()
}

// GetDependencyMessage returns the formatted dependency message if
// dependencies are missing.
func GetDependencyMessage() string {
	caps := DetectCapabilities()
	msg := FormatDependencyMessages(MissingDependencies(caps, DetectDistribution()))
	if msg != "" {
		log.Printf("linux: missing dependencies detected (display=%s)", caps.DisplayServer)
	}
	return msg
}
