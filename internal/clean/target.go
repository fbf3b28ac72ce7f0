package clean

import "github.com/lakshaymaurya-felt/macpurge/internal/config"

// RootResult is the outcome of one target root in an estimate or execute
// pass.
type RootResult struct {
	Path     string
	Elevated bool

	// Bytes is reclaimable size after Estimate, credited freed size
	// after Execute.
	Bytes int64
}

// Report is the outcome of one engine pass over a target. Expected
// failures (missing roots, permission problems, protected roots, failed
// elevated removals) land in Skipped; they never abort the pass.
type Report struct {
	Target  string
	Roots   []RootResult
	Skipped []Skip
}

// Total returns the summed bytes over all roots in the report.
func (r Report) Total() int64 {
	var total int64
	for _, root := range r.Roots {
		total += root.Bytes
	}
	return total
}

// Engine drives clean targets through the estimate/execute pair. It is
// stateless: both operations are safe to call in any order and any
// number of times, though the expected flow is Estimate, confirmation,
// Execute.
type Engine struct {
	guard   *Guard
	deleter *Deleter
}

// NewEngine wires an Engine from its guard and deleter.
func NewEngine(guard *Guard, deleter *Deleter) *Engine {
	return &Engine{guard: guard, deleter: deleter}
}

// Estimate computes the reclaimable bytes for every root of the target.
// It mutates nothing. Protected roots are excluded from the total and
// reported as skipped.
func (e *Engine) Estimate(target config.CleanTarget) Report {
	rep := Report{Target: target.Name}
	for _, root := range target.Roots {
		if e.guard.Protected(root.Path) {
			rep.Skipped = append(rep.Skipped, Skip{Path: root.Path, Reason: "protected system path"})
			continue
		}
		rep.Roots = append(rep.Roots, RootResult{
			Path:     root.Path,
			Elevated: root.RequiresAdmin,
			Bytes:    DirSize(root.Path),
		})
	}
	return rep
}

// Execute deletes the contents of every non-protected root and reports
// the bytes credited as freed. Roots are re-checked against the guard;
// the filesystem may have changed since a prior Estimate, and the freed
// total is the authoritative one.
func (e *Engine) Execute(target config.CleanTarget) Report {
	rep := Report{Target: target.Name}
	for _, root := range target.Roots {
		if e.guard.Protected(root.Path) {
			rep.Skipped = append(rep.Skipped, Skip{Path: root.Path, Reason: "protected system path"})
			continue
		}
		freed, skips := e.deleter.DeleteContents(root.Path, root.RequiresAdmin)
		rep.Roots = append(rep.Roots, RootResult{
			Path:     root.Path,
			Elevated: root.RequiresAdmin,
			Bytes:    freed,
		})
		rep.Skipped = append(rep.Skipped, skips...)
	}
	return rep
}
