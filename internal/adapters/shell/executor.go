// Package shell runs runner tools as child processes.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"go.trai.ch/devrun/internal/core/domain"
	"go.trai.ch/zerr"
)

// Runner implements ports.ProcessRunner with os/exec.
//
// The child shares the terminal: stdin, stdout and stderr are passed through
// untouched. The context is only checked before the child starts; once running,
// the child receives terminal signals itself and is always waited for.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner creates a Runner wired to the process's standard streams.
func NewRunner() *Runner {
	return &Runner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run starts the invocation, waits for it and returns its exit code.
func (r *Runner) Run(ctx context.Context, inv domain.Invocation) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}

	path, err := exec.LookPath(inv.Program)
	if err != nil {
		return -1, spawnError(err, inv)
	}

	cmd := exec.Command(path, inv.Args...) //nolint:gosec // runner and script come from the user
	cmd.Args[0] = inv.Program
	cmd.Dir = inv.Dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Start(); err != nil {
		return -1, spawnError(err, inv)
	}
	return exitCode(cmd.Wait())
}

// exitCode maps the result of Wait to a process exit status.
// A child terminated by a signal has no exit status and is reported as a generic failure.
func exitCode(err error) (int, error) {
	if err == nil {
		return int(domain.ExitSuccess), nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		return int(domain.ExitGenericError), nil
	}
	return int(domain.ExitGenericError), zerr.Wrap(err, "failed to wait for runner")
}

func spawnError(err error, inv domain.Invocation) error {
	wrapped := zerr.Wrap(domain.ErrSpawnFailed, err.Error())
	wrapped = zerr.With(wrapped, "program", inv.Program)
	return zerr.With(wrapped, "dir", inv.Dir)
}
