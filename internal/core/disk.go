//go:build !windows

package core

import "golang.org/x/sys/unix"

// FreeSpace returns the number of bytes available to the current user on
// the volume containing path.
func FreeSpace(path string) (int64, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, err
	}
	return int64(stat.Bavail) * int64(stat.Bsize), nil
}
