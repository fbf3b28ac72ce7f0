package maintain

import "strings"

// Action is a named sequence of external commands run in order. Every
// step is a full argv; nothing passes through a shell.
type Action struct {
	Name        string
	Description string
	Steps       [][]string
}

// CommandLine renders the action's steps as one shell-style line for
// dry-run display.
func (a Action) CommandLine() string {
	parts := make([]string, 0, len(a.Steps))
	for _, step := range a.Steps {
		parts = append(parts, strings.Join(step, " "))
	}
	return strings.Join(parts, " && ")
}

// FlushDNS clears the directory-services DNS cache and signals the
// resolver daemon to drop its own.
func FlushDNS() Action {
	return Action{
		Name:        "Flush DNS Cache",
		Description: "Clear the DNS cache and restart mDNSResponder",
		Steps: [][]string{
			{"sudo", "dscacheutil", "-flushcache"},
			{"sudo", "killall", "-HUP", "mDNSResponder"},
		},
	}
}

// PurgeMemory forces the kernel to release inactive memory.
func PurgeMemory() Action {
	return Action{
		Name:        "Purge Inactive Memory",
		Description: "Release inactive RAM back to the system",
		Steps:       [][]string{{"sudo", "purge"}},
	}
}

// RunPeriodic executes the system daily, weekly, and monthly maintenance
// scripts in one shot.
func RunPeriodic() Action {
	return Action{
		Name:        "Run Maintenance Scripts",
		Description: "Run the periodic daily/weekly/monthly scripts",
		Steps:       [][]string{{"sudo", "periodic", "daily", "weekly", "monthly"}},
	}
}
