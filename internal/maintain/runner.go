package maintain

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/lakshaymaurya-felt/macpurge/internal/core"
)

// actionTimeout bounds a single step. The weekly periodic script can
// rebuild databases, so the window is generous.
const actionTimeout = 10 * time.Minute

// Runner executes maintenance actions step by step.
type Runner struct {
	// Timeout overrides actionTimeout when positive.
	Timeout time.Duration
}

// Run executes every step of the action in order and stops at the first
// failure. The returned error names the failing step and carries its
// diagnostic output.
func (r Runner) Run(action Action) error {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = actionTimeout
	}
	for _, step := range action.Steps {
		if err := runStep(step, timeout); err != nil {
			return fmt.Errorf("%s: %w", strings.Join(step, " "), err)
		}
	}
	return nil
}

func runStep(argv []string, timeout time.Duration) error {
	if len(argv) == 0 {
		return errors.New("empty command")
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	output, err := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("timed out after %s", timeout)
	}
	if err != nil {
		return core.TranslateCommandError(err, output)
	}
	return nil
}
