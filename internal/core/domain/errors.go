package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

var (
	// ErrRunnerNotFound is returned when no detector matched within the search depth.
	ErrRunnerNotFound = zerr.New("no runner found")

	// ErrNoRunnerAvailable is returned when a match list is empty at selection time.
	ErrNoRunnerAvailable = zerr.New("no runner available")

	// ErrScriptNotFound is returned when a requested script is absent from the discovered scripts.
	ErrScriptNotFound = zerr.New("script not found")

	// ErrSpawnFailed is returned when the runner process could not be started.
	ErrSpawnFailed = zerr.New("failed to start runner")

	// ErrConfigReadFailed is returned when a config file exists but cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when a config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidEnvOverride is returned when an environment override has an invalid value.
	ErrInvalidEnvOverride = zerr.New("invalid environment override")

	// ErrWorkingDirFailed is returned when the current directory cannot be determined.
	ErrWorkingDirFailed = zerr.New("failed to get current directory")

	// ErrCommandRequired is returned when a dispatch is requested without a command name.
	ErrCommandRequired = zerr.New("no command given")
)

// ScriptNotFoundError reports a missing script together with what is available.
type ScriptNotFoundError struct {
	Script     string
	SourceFile string
	Available  []string
	Suggestion string
}

// Error implements the error interface.
func (e *ScriptNotFoundError) Error() string {
	var b strings.Builder
	b.WriteString(`script "`)
	b.WriteString(e.Script)
	b.WriteString(`" not found`)
	if e.SourceFile != "" {
		b.WriteString(" in ")
		b.WriteString(e.SourceFile)
	}
	return b.String()
}

// Unwrap returns ErrScriptNotFound so callers can use errors.Is.
func (e *ScriptNotFoundError) Unwrap() error {
	return ErrScriptNotFound
}
