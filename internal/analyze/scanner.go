package analyze

import (
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
)

// LargeFile is one scan hit: a regular file at or above the size
// threshold.
type LargeFile struct {
	Path string
	Size int64
}

// progressInterval is how many examined files pass between OnProgress
// calls.
const progressInterval = 1000

// Scanner finds unusually large files under a start directory, pruning
// well-known cache, dependency, and build directories by name.
type Scanner struct {
	sem        chan struct{}
	topSkip    map[string]bool
	nestedSkip map[string]bool
	examined   atomic.Int64

	// OnProgress, when set, receives the running examined-file count
	// every progressInterval files. It may be called from concurrent
	// workers and must be safe for that.
	OnProgress func(examined int64)
}

// NewScanner creates a scanner with bounded concurrency. topSkip names
// are ignored at the top level of the start directory; nestedSkip names
// are pruned at any depth. Both match exactly, case-sensitive.
func NewScanner(maxConcurrency int, topSkip, nestedSkip []string) *Scanner {
	if maxConcurrency <= 0 {
		maxConcurrency = 8
	}
	return &Scanner{
		sem:        make(chan struct{}, maxConcurrency),
		topSkip:    nameSet(topSkip),
		nestedSkip: nameSet(nestedSkip),
	}
}

func nameSet(names []string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// Examined returns the number of files examined so far.
func (s *Scanner) Examined() int64 {
	return s.examined.Load()
}

// Scan walks startDir and returns every regular file of at least minSize
// bytes, sorted by size descending with ties in encounter order.
// Symlinks are never followed. Unreadable subtrees are skipped. Each
// top-level directory is walked by its own worker into an isolated
// result list; lists merge in top-level order once all workers finish,
// so results are deterministic for a given tree.
func (s *Scanner) Scan(startDir string, minSize int64) []LargeFile {
	entries, err := os.ReadDir(startDir)
	if err != nil {
		return nil
	}

	results := make([][]LargeFile, len(entries))
	var wg sync.WaitGroup

	for i, entry := range entries {
		if s.topSkip[entry.Name()] || entry.Type()&os.ModeSymlink != 0 {
			continue
		}
		path := filepath.Join(startDir, entry.Name())

		if !entry.IsDir() {
			if !entry.Type().IsRegular() {
				continue
			}
			if size, ok := s.examineFile(entry); ok && size >= minSize {
				results[i] = []LargeFile{{Path: path, Size: size}}
			}
			continue
		}

		wg.Add(1)
		go func(i int, dir string) {
			defer wg.Done()
			s.sem <- struct{}{}
			defer func() { <-s.sem }()

			var found []LargeFile
			s.walkSubtree(dir, minSize, &found)
			results[i] = found
		}(i, path)
	}
	wg.Wait()

	var merged []LargeFile
	for _, r := range results {
		merged = append(merged, r...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Size > merged[j].Size
	})
	return merged
}

// walkSubtree walks one top-level directory sequentially, collecting
// hits into found. Sequential traversal keeps encounter order stable for
// tie-breaking.
func (s *Scanner) walkSubtree(dir string, minSize int64, found *[]LargeFile) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return // unreadable subtree contributes nothing
	}
	for _, entry := range entries {
		if entry.Type()&os.ModeSymlink != 0 {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if s.nestedSkip[entry.Name()] {
				continue
			}
			s.walkSubtree(path, minSize, found)
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}
		if size, ok := s.examineFile(entry); ok && size >= minSize {
			*found = append(*found, LargeFile{Path: path, Size: size})
		}
	}
}

// examineFile counts one candidate and returns its lstat size.
func (s *Scanner) examineFile(entry os.DirEntry) (int64, bool) {
	n := s.examined.Add(1)
	if s.OnProgress != nil && n%progressInterval == 0 {
		s.OnProgress(n)
	}
	info, err := entry.Info()
	if err != nil {
		return 0, false
	}
	return info.Size(), true
}
