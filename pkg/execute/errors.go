package execute

import (
	"fmt"
	"strings"
)

// ProcessError reports a failed external command.
//
// It is returned for both kinds of failure: the command could not be
// started (ExitCode is -1 and Err holds the start error) or the command
// ran and exited non-zero (ExitCode holds the process exit code).
type ProcessError struct {
	// Cmd is the full command line, executable first
	Cmd []string

	// ExitCode is the process exit code, or -1 if the process never ran
	ExitCode int

	// Stdout is the captured standard output up to the failure
	Stdout string

	// Stderr is the captured standard error up to the failure
	Stderr string

	// Err is the underlying error from the exec layer
	Err error
}

// Error implements the error interface.
func (e *ProcessError) Error() string {
	cmdline := strings.Join(e.Cmd, " ")
	if e.ExitCode < 0 {
		return fmt.Sprintf("command %q failed to start: %v", cmdline, e.Err)
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		return fmt.Sprintf("command %q exited with code %d: %s", cmdline, e.ExitCode, stderr)
	}
	return fmt.Sprintf("command %q exited with code %d", cmdline, e.ExitCode)
}

// Unwrap returns the underlying exec error.
func (e *ProcessError) Unwrap() error {
	return e.Err
}
