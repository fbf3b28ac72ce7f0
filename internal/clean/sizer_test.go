package clean

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"pgregory.net/rapid"
)

// writeFile creates a file of the given size, making parent directories
// as needed.
func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestDirSizeSumsRegularFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.log"), 100)
	writeFile(t, filepath.Join(dir, "sub", "b.log"), 200)
	writeFile(t, filepath.Join(dir, "sub", "deep", "c.log"), 300)

	if got := DirSize(dir); got != 600 {
		t.Errorf("DirSize() = %d, want 600", got)
	}
}

func TestDirSizeEmptyDir(t *testing.T) {
	if got := DirSize(t.TempDir()); got != 0 {
		t.Errorf("DirSize() on empty dir = %d, want 0", got)
	}
}

func TestDirSizeMissingRoot(t *testing.T) {
	if got := DirSize(filepath.Join(t.TempDir(), "nope")); got != 0 {
		t.Errorf("DirSize() on missing root = %d, want 0", got)
	}
}

func TestDirSizeIgnoresSymlinkTargets(t *testing.T) {
	outside := t.TempDir()
	writeFile(t, filepath.Join(outside, "big.bin"), 4096)

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "real.txt"), 10)
	if err := os.Symlink(filepath.Join(outside, "big.bin"), filepath.Join(dir, "flink")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	if err := os.Symlink(outside, filepath.Join(dir, "dlink")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	if got := DirSize(dir); got != 10 {
		t.Errorf("DirSize() = %d, want 10 (symlink targets must not count)", got)
	}
}

func TestDirSizeMatchesWrittenBytes(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		dir := t.TempDir()
		numFiles := rapid.IntRange(0, 12).Draw(rt, "numFiles")
		var want int64
		for i := 0; i < numFiles; i++ {
			size := rapid.IntRange(0, 8192).Draw(rt, "size")
			name := fmt.Sprintf("f%d.dat", i)
			if rapid.Bool().Draw(rt, "nested") {
				name = filepath.Join("sub", name)
			}
			writeFile(t, filepath.Join(dir, name), size)
			want += int64(size)
		}
		if got := DirSize(dir); got != want {
			rt.Fatalf("DirSize() = %d, want %d", got, want)
		}
	})
}
