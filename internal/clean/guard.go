package clean

import (
	"path/filepath"
	"strings"
)

// Guard classifies paths that must never be measured for deletion or
// deleted. It is advisory: SIP enforces the real protection, the guard
// keeps the engine from attempting operations guaranteed to fail.
type Guard struct {
	roots []string
}

// NewGuard builds a guard from a set of protected root paths.
func NewGuard(roots []string) *Guard {
	resolved := make([]string, 0, len(roots))
	for _, r := range roots {
		resolved = append(resolved, canonical(r))
	}
	return &Guard{roots: resolved}
}

// Protected reports whether path equals, or lives under, any protected
// root. The path is resolved to canonical absolute form first, so a
// symlink into a protected tree is still caught. Name-prefix siblings
// ("/usrlocal" next to "/usr") are not protected.
func (g *Guard) Protected(path string) bool {
	p := canonical(path)
	for _, root := range g.roots {
		if p == root || strings.HasPrefix(p, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// canonical resolves a path to absolute form with symlinks evaluated.
// When the path does not fully exist, the deepest existing ancestor is
// resolved and the missing suffix reattached, so nonexistent descendants
// still land under their resolved parent.
func canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	dir, base := filepath.Split(abs)
	dir = filepath.Clean(dir)
	if dir == abs {
		return abs // hit the filesystem root
	}
	return filepath.Join(canonical(dir), base)
}
