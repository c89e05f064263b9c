// Package execute runs external commands on behalf of the rest of the
// system and reports their outcome in a uniform way.
//
// Every component that needs to shell out (filesystem creation, gpg key
// handling, platform probing) depends on the Runner interface rather than
// os/exec directly, so tests can substitute a scripted implementation
// (see the testing subpackage).
package execute

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/jnavila/curtin/internal/logger"
)

// Runner executes external commands and resolves tool paths.
//
// Implementations must capture stdout and stderr separately and surface any
// failure (start failure or non-zero exit) as a *ProcessError so callers can
// inspect the exit code and captured output.
type Runner interface {
	// Run executes name with args and blocks until it finishes or ctx is
	// cancelled.
	//
	// Returns:
	//   - stdout: Captured standard output
	//   - stderr: Captured standard error
	//   - err: *ProcessError if the command could not be started or exited
	//     non-zero, nil otherwise
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)

	// LookPath resolves name against the execution search path.
	LookPath(name string) (string, error)
}

// SystemRunner is the Runner used in production. It executes commands with
// os/exec and logs every invocation at debug level.
type SystemRunner struct{}

// NewSystemRunner creates a Runner backed by the local system.
func NewSystemRunner() *SystemRunner {
	return &SystemRunner{}
}

// Run executes the command, capturing stdout and stderr separately.
func (r *SystemRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	argv := append([]string{name}, args...)
	logger.Debug("running command: %s", strings.Join(argv, " "))

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return stdout.String(), stderr.String(), &ProcessError{
			Cmd:      argv,
			ExitCode: exitCode,
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
			Err:      err,
		}
	}

	return stdout.String(), stderr.String(), nil
}

// LookPath resolves name using the system search path.
func (r *SystemRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
