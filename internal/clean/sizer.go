package clean

import (
	"io/fs"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
)

// DirSize returns the total size in bytes of all regular files under
// root. Symbolic links contribute nothing and are never followed.
// Unreadable entries and subtrees contribute zero. A missing root
// returns 0.
func DirSize(root string) int64 {
	var total atomic.Int64
	conf := fastwalk.Config{Follow: false}
	_ = fastwalk.Walk(&conf, root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		total.Add(info.Size())
		return nil
	})
	return total.Load()
}
