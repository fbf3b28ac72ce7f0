package core

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"
)

// TranslateCommandError converts an external-command failure into a
// readable error. Nonzero exits carry the command's diagnostic output,
// truncated at a valid UTF-8 boundary. Other failures pass through
// unchanged.
func TranslateCommandError(err error, output []byte) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		outputStr := strings.TrimSpace(string(output))
		if len(outputStr) > 200 {
			outputStr = outputStr[:200]
			// Truncate at a valid UTF-8 boundary
			for len(outputStr) > 0 && !utf8.ValidString(outputStr) {
				outputStr = outputStr[:len(outputStr)-1]
			}
			outputStr += "..."
		}
		if outputStr != "" {
			return fmt.Errorf("exited %d: %s", exitErr.ExitCode(), outputStr)
		}
		return fmt.Errorf("exited %d", exitErr.ExitCode())
	}
	return err
}
