package core

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// RequireMacOS returns an error when the process is not running on macOS.
// Every command checks this before touching the filesystem or spawning
// system tools.
func RequireMacOS() error {
	if runtime.GOOS != "darwin" {
		return fmt.Errorf("macpurge is designed for macOS only (running on %s)", runtime.GOOS)
	}
	return nil
}

// MacOSVersion returns the major and minor version numbers of the current
// macOS release, or zeros when they cannot be determined.
func MacOSVersion() (major, minor int) {
	_, _, version, err := host.PlatformInformation()
	if err != nil {
		return 0, 0
	}
	parts := strings.Split(version, ".")
	if len(parts) > 0 {
		major, _ = strconv.Atoi(parts[0])
	}
	if len(parts) > 1 {
		minor, _ = strconv.Atoi(parts[1])
	}
	return major, minor
}

// MacOSVersionString returns a human-readable macOS version string.
// Examples: "macOS 15.2 (Sequoia)", "macOS 14.6 (Sonoma)"
func MacOSVersionString() string {
	_, _, version, err := host.PlatformInformation()
	if err != nil || version == "" {
		return "macOS"
	}

	major, _ := MacOSVersion()
	var name string
	switch major {
	case 26:
		name = "Tahoe"
	case 15:
		name = "Sequoia"
	case 14:
		name = "Sonoma"
	case 13:
		name = "Ventura"
	case 12:
		name = "Monterey"
	case 11:
		name = "Big Sur"
	}

	if name == "" {
		return fmt.Sprintf("macOS %s", version)
	}
	return fmt.Sprintf("macOS %s (%s)", version, name)
}
