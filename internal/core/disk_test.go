package core

import (
	"path/filepath"
	"testing"
)

func TestFreeSpaceReportsBytes(t *testing.T) {
	free, err := FreeSpace(t.TempDir())
	if err != nil {
		t.Fatalf("FreeSpace() error: %v", err)
	}
	if free <= 0 {
		t.Errorf("FreeSpace() = %d, want > 0", free)
	}
}

func TestFreeSpaceMissingPath(t *testing.T) {
	if _, err := FreeSpace(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("FreeSpace() on a missing path should fail")
	}
}
