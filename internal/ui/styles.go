package ui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"}
	ColorAccent  = lipgloss.AdaptiveColor{Light: "#0891b2", Dark: "#22d3ee"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
)

// ─── Shared styles ───────────────────────────────────────────────────────────

var (
	Title   = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	Header  = lipgloss.NewStyle().Bold(true)
	Success = lipgloss.NewStyle().Foreground(ColorSuccess)
	Warn    = lipgloss.NewStyle().Foreground(ColorWarning)
	Err     = lipgloss.NewStyle().Foreground(ColorError)
	Muted   = lipgloss.NewStyle().Foreground(ColorMuted)
	Accent  = lipgloss.NewStyle().Foreground(ColorAccent)
)

// DisplayPath shortens a path under the user's home directory to the
// familiar ~/ form.
func DisplayPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + path[len(home):]
	}
	return path
}
