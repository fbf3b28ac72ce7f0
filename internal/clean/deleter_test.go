package clean

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// fakeRemover stands in for sudo in tests: it removes in-process and can
// be told to fail for specific child names.
type fakeRemover struct {
	failNames map[string]bool
	removed   []string
}

func (f *fakeRemover) Remove(path string) error {
	if f.failNames[filepath.Base(path)] {
		return errors.New("sudo rm: exited 1: operation not permitted")
	}
	f.removed = append(f.removed, path)
	return os.RemoveAll(path)
}

func TestDeleteContentsRemovesChildren(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a"), 100)
	writeFile(t, filepath.Join(dir, "b"), 200)
	writeFile(t, filepath.Join(dir, "sub", "c"), 300)

	d := NewDeleter(&fakeRemover{})
	freed, skipped := d.DeleteContents(dir, false)

	if freed != 600 {
		t.Errorf("freed = %d, want 600", freed)
	}
	if len(skipped) != 0 {
		t.Errorf("unexpected skips: %v", skipped)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("the directory itself was removed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("directory not emptied: %d entries remain", len(entries))
	}
}

func TestDeleteContentsMissingDir(t *testing.T) {
	d := NewDeleter(&fakeRemover{})
	freed, skipped := d.DeleteContents(filepath.Join(t.TempDir(), "gone"), false)
	if freed != 0 || len(skipped) != 0 {
		t.Errorf("missing dir: freed=%d skips=%v, want 0 and none", freed, skipped)
	}
}

func TestDeleteContentsCreditsFailedRemovals(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("cannot provoke permission failures as root")
	}
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a"), 100)
	writeFile(t, filepath.Join(dir, "b"), 200)
	// Read-only parent: children can be listed and measured but not
	// unlinked.
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatalf("Chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	d := NewDeleter(&fakeRemover{})
	freed, skipped := d.DeleteContents(dir, false)

	if freed != 300 {
		t.Errorf("freed = %d, want 300 (pre-measured sizes credit even when removal fails)", freed)
	}
	if len(skipped) != 2 {
		t.Errorf("skips = %v, want both children reported", skipped)
	}
	if _, err := os.Lstat(filepath.Join(dir, "a")); err != nil {
		t.Error("children should still exist")
	}
}

func TestDeleteContentsUnlistableDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("cannot provoke permission failures as root")
	}
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "hidden"), 50)
	if err := os.Chmod(dir, 0o000); err != nil {
		t.Fatalf("Chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	freed, skipped := NewDeleter(&fakeRemover{}).DeleteContents(dir, false)
	if freed != 0 {
		t.Errorf("freed = %d, want 0", freed)
	}
	if len(skipped) != 1 || skipped[0].Path != dir {
		t.Errorf("skips = %v, want one entry for the directory itself", skipped)
	}
}

func TestDeleteContentsUnlinksSymlinkOnly(t *testing.T) {
	outside := t.TempDir()
	target := filepath.Join(outside, "payload.bin")
	writeFile(t, target, 8192)

	dir := t.TempDir()
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	d := NewDeleter(&fakeRemover{})
	freed, skipped := d.DeleteContents(dir, false)

	if len(skipped) != 0 {
		t.Errorf("unexpected skips: %v", skipped)
	}
	if _, err := os.Lstat(link); !os.IsNotExist(err) {
		t.Error("the link itself should have been removed")
	}
	info, err := os.Lstat(target)
	if err != nil {
		t.Fatalf("the symlink target was removed: %v", err)
	}
	if info.Size() != 8192 {
		t.Errorf("target size changed: %d", info.Size())
	}
	if freed >= 8192 {
		t.Errorf("freed = %d, credited the symlink target", freed)
	}
}

func TestDeleteContentsElevated(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a"), 100)
	writeFile(t, filepath.Join(dir, "b"), 200)

	fake := &fakeRemover{}
	d := NewDeleter(fake)
	freed, skipped := d.DeleteContents(dir, true)

	if freed != 300 {
		t.Errorf("freed = %d, want 300", freed)
	}
	if len(skipped) != 0 {
		t.Errorf("unexpected skips: %v", skipped)
	}
	if len(fake.removed) != 2 {
		t.Errorf("remover called %d times, want 2", len(fake.removed))
	}
}

func TestDeleteContentsElevatedFailureNotCredited(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "good"), 100)
	writeFile(t, filepath.Join(dir, "stuck"), 200)

	d := NewDeleter(&fakeRemover{failNames: map[string]bool{"stuck": true}})
	freed, skipped := d.DeleteContents(dir, true)

	if freed != 100 {
		t.Errorf("freed = %d, want 100 (a failed child must not be credited)", freed)
	}
	if len(skipped) != 1 {
		t.Fatalf("skips = %v, want exactly one", skipped)
	}
	if filepath.Base(skipped[0].Path) != "stuck" {
		t.Errorf("skip path = %s, want the stuck child", skipped[0].Path)
	}
	if _, err := os.Lstat(filepath.Join(dir, "good")); !os.IsNotExist(err) {
		t.Error("the sibling should still have been removed")
	}
	if _, err := os.Lstat(filepath.Join(dir, "stuck")); err != nil {
		t.Error("the failed child should remain on disk")
	}
}
