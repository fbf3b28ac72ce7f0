package clean

import (
	"os"
	"path/filepath"
)

// Skip records a path the engine declined to act on and why. Skips are
// reported instead of raised so one bad entry never aborts the rest of
// an operation.
type Skip struct {
	Path   string
	Reason string
}

// Remover removes a single path recursively with elevated privileges.
// It is an interface so deletion logic stays testable without real
// privilege escalation.
type Remover interface {
	Remove(path string) error
}

// Deleter empties target directories child by child, crediting freed
// bytes as it goes.
type Deleter struct {
	elevated Remover
}

// NewDeleter returns a Deleter that delegates admin-only removals to the
// given elevated remover.
func NewDeleter(elevated Remover) *Deleter {
	return &Deleter{elevated: elevated}
}

// DeleteContents removes every immediate child of dir and returns the
// bytes credited as freed, plus any per-child skips. Each child is
// measured before removal. With elevated=false removal is best-effort
// in-process and the pre-measured size is credited even when removal
// partially fails; with elevated=true each child goes through the
// elevated remover and is credited only on success. A missing dir frees
// nothing; an unlistable dir frees nothing and reports a single skip.
func (d *Deleter) DeleteContents(dir string, elevated bool) (int64, []Skip) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, []Skip{{Path: dir, Reason: "cannot list: " + err.Error()}}
	}

	var freed int64
	var skipped []Skip
	for _, entry := range entries {
		child := filepath.Join(dir, entry.Name())
		size := childSize(child, entry)

		if elevated {
			if err := d.elevated.Remove(child); err != nil {
				skipped = append(skipped, Skip{Path: child, Reason: err.Error()})
				continue
			}
			freed += size
			continue
		}

		if err := removeInProcess(child, entry); err != nil {
			skipped = append(skipped, Skip{Path: child, Reason: err.Error()})
		}
		freed += size
	}
	return freed, skipped
}

// childSize measures one child before removal: full subtree size for
// directories, lstat size for files and symlinks.
func childSize(path string, entry os.DirEntry) int64 {
	if entry.IsDir() {
		return DirSize(path)
	}
	info, err := entry.Info()
	if err != nil {
		return 0
	}
	return info.Size()
}

// removeInProcess removes one child with process privileges. Directory
// children are removed recursively with nested errors ignored; files and
// symlinks are unlinked. A child that already vanished is not an error.
func removeInProcess(path string, entry os.DirEntry) error {
	if entry.IsDir() {
		_ = os.RemoveAll(path)
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
