package clean

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/lakshaymaurya-felt/macpurge/internal/core"
)

// removeTimeout bounds a single elevated removal.
const removeTimeout = 120 * time.Second

// SudoRemover removes paths through `sudo rm -rf`, the only way to clear
// admin-owned directories without running the whole process as root.
type SudoRemover struct {
	// Timeout overrides removeTimeout when positive.
	Timeout time.Duration
}

// Remove recursively deletes one path with elevated privileges. A nonzero
// exit surfaces as an error carrying the command's diagnostic output; it
// is an expected per-child failure, not a fatal one.
func (s SudoRemover) Remove(path string) error {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = removeTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sudo", "rm", "-rf", path)
	output, err := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("sudo rm timed out after %s", timeout)
	}
	if err != nil {
		return fmt.Errorf("sudo rm: %w", core.TranslateCommandError(err, output))
	}
	return nil
}

// EnsureElevationTool verifies sudo exists before any elevated removal is
// attempted. Its absence is the one hard failure in the deletion path.
func EnsureElevationTool() error {
	if _, err := exec.LookPath("sudo"); err != nil {
		return fmt.Errorf("sudo not found in PATH: %w", err)
	}
	return nil
}
