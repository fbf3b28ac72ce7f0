package config

import "path/filepath"

// Root is one cleanable directory within a target. Only the contents of
// the directory are removed, never the directory itself.
type Root struct {
	// Path is the absolute directory whose contents are cleaned.
	Path string

	// RequiresAdmin indicates removal must go through sudo rather than
	// process-level primitives.
	RequiresAdmin bool
}

// CleanTarget represents a category of files that can be cleaned.
type CleanTarget struct {
	// Name is the unique identifier for this target.
	Name string

	// Roots is the ordered list of directories to clean.
	Roots []Root

	// Description is a human-readable description.
	Description string

	// Category groups related targets (e.g., "system", "dev", "user").
	Category string

	// RiskLevel is one of "low", "medium", "high".
	RiskLevel string
}

// GetCleanTargets returns all cleanup targets, resolved against the given
// home directory.
func GetCleanTargets(home string) []CleanTarget {
	return []CleanTarget{
		// ── Logs ────────────────────────────────────────────────────
		{
			Name: "Logs",
			Roots: []Root{
				{Path: filepath.Join(home, "Library", "Logs")},
				{Path: "/private/var/log", RequiresAdmin: true},
			},
			Description: "Application and system log files",
			Category:    "system",
			RiskLevel:   "low",
		},

		// ── Caches ──────────────────────────────────────────────────
		{
			Name: "Caches",
			Roots: []Root{
				{Path: filepath.Join(home, "Library", "Caches")},
				{Path: "/Library/Caches", RequiresAdmin: true},
			},
			Description: "User and system application caches",
			Category:    "system",
			RiskLevel:   "low",
		},

		// ── Xcode ───────────────────────────────────────────────────
		{
			Name: "XcodeDerivedData",
			Roots: []Root{
				{Path: filepath.Join(home, "Library", "Developer", "Xcode", "DerivedData")},
			},
			Description: "Xcode build intermediates and indexes",
			Category:    "dev",
			RiskLevel:   "low",
		},

		// ── Developer caches ────────────────────────────────────────
		{
			Name: "DevCaches",
			Roots: []Root{
				{Path: filepath.Join(home, ".npm", "_cacache")},
				{Path: filepath.Join(home, ".cargo", "registry", "cache")},
				{Path: filepath.Join(home, ".gradle", "caches")},
				{Path: filepath.Join(home, "go", "pkg", "mod", "cache")},
			},
			Description: "npm, cargo, Gradle, and Go module caches",
			Category:    "dev",
			RiskLevel:   "medium",
		},

		// ── Trash ───────────────────────────────────────────────────
		{
			Name: "Trash",
			Roots: []Root{
				{Path: filepath.Join(home, ".Trash")},
			},
			Description: "Files sitting in the user trash bin",
			Category:    "user",
			RiskLevel:   "medium",
		},
	}
}

// GetTargetsByCategory returns clean targets filtered by category.
func GetTargetsByCategory(home, category string) []CleanTarget {
	var result []CleanTarget
	for _, t := range GetCleanTargets(home) {
		if t.Category == category {
			result = append(result, t)
		}
	}
	return result
}

// GetTargetByName returns the target with the given name, if present.
func GetTargetByName(home, name string) (CleanTarget, bool) {
	for _, t := range GetCleanTargets(home) {
		if t.Name == name {
			return t, true
		}
	}
	return CleanTarget{}, false
}

// ProtectedPaths returns roots that must never be measured for deletion
// or deleted, regardless of target configuration. All of them sit behind
// System Integrity Protection on a stock install.
func ProtectedPaths() []string {
	return []string{
		"/System",
		"/usr",
		"/bin",
		"/sbin",
		"/Applications",
	}
}

// ScanTopSkips returns directory names the large-file scanner ignores at
// the top level of the start directory.
func ScanTopSkips() []string {
	return []string{".Trash", "Library", ".cache", "node_modules", ".git"}
}

// ScanNestedSkips returns directory names the large-file scanner prunes
// at any depth.
func ScanNestedSkips() []string {
	return []string{
		"node_modules", ".git", ".cache", "__pycache__", ".venv",
		"venv", ".tox", ".mypy_cache", ".pytest_cache", "Pods",
		".bundle", "vendor", ".gradle", "build", "DerivedData",
	}
}
