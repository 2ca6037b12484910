package domain

import (
	"errors"
	"strconv"
)

// ExitCode is a process exit status.
type ExitCode int

const (
	// ExitSuccess is returned when everything went fine.
	ExitSuccess ExitCode = 0
	// ExitGenericError covers resolution failures without a dedicated code.
	ExitGenericError ExitCode = 1
	// ExitRunnerNotFound is returned when no runner was detected.
	ExitRunnerNotFound ExitCode = 2
	// ExitSpawnFailed mirrors the shell's "command not found" status.
	ExitSpawnFailed ExitCode = 127
)

// IsSuccess reports whether the code means success.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

// String returns the decimal representation.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }

// ExitCodeFor maps an engine error to the process exit code.
func ExitCodeFor(err error) ExitCode {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrRunnerNotFound):
		return ExitRunnerNotFound
	case errors.Is(err, ErrSpawnFailed):
		return ExitSpawnFailed
	default:
		return ExitGenericError
	}
}
