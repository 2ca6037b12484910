// Package dispatch turns a resolved runner and a command name into a running process.
package dispatch

import (
	"context"
	"errors"
	"slices"
	"strings"

	"go.trai.ch/devrun/internal/core/domain"
	"go.trai.ch/devrun/internal/core/ports"
	"go.trai.ch/devrun/internal/engine/similarity"
	"go.trai.ch/zerr"
)

// ScriptSource discovers the scripts a runner exposes in a directory.
type ScriptSource interface {
	ForRunner(runner domain.DetectedRunner, dir string) (domain.ScriptList, bool)
}

// Request describes a single dispatch.
type Request struct {
	Runner  domain.DetectedRunner
	Command string
	Args    []string
	Dir     string
	DryRun  bool
}

// Result is the outcome of a dispatch.
type Result struct {
	Invocation domain.Invocation
	DryRun     bool
	// ExitCode is the child's exit status. It is zero for dry runs.
	ExitCode int
}

// Dispatcher validates requests and hands them to the process runner.
type Dispatcher struct {
	scripts ScriptSource
	runner  ports.ProcessRunner
}

// New creates a Dispatcher.
func New(scripts ScriptSource, runner ports.ProcessRunner) *Dispatcher {
	return &Dispatcher{scripts: scripts, runner: runner}
}

// Dispatch runs req.Command through req.Runner in req.Dir.
//
// Node.js runners are checked against the scripts in package.json first; other
// ecosystems are passed through unchecked. A non-zero exit of the child is not an
// error and is reported in Result.ExitCode.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (Result, error) {
	if req.Command == "" {
		return Result{}, domain.ErrCommandRequired
	}

	if req.Runner.Ecosystem == domain.EcosystemNodeJs {
		name, err := d.validate(req)
		if err != nil {
			return Result{}, err
		}
		req.Command = name
	}

	inv := Invocation(req)
	if req.DryRun {
		return Result{Invocation: inv, DryRun: true}, nil
	}

	if err := ctx.Err(); err != nil {
		return Result{Invocation: inv}, err
	}

	code, err := d.runner.Run(ctx, inv)
	if err != nil {
		if !errors.Is(err, domain.ErrSpawnFailed) {
			err = zerr.Wrap(domain.ErrSpawnFailed, err.Error())
		}
		err = zerr.Wrap(err, "failed to dispatch "+req.Command)
		return Result{Invocation: inv}, zerr.With(err, "runner", req.Runner.Name)
	}
	return Result{Invocation: inv, ExitCode: code}, nil
}

// Invocation builds the program call for a request: the runner, its run prefix,
// the command and the passthrough arguments.
func Invocation(req Request) domain.Invocation {
	args := make([]string, 0, len(req.Runner.RunPrefix)+1+len(req.Args))
	args = append(args, req.Runner.RunPrefix...)
	args = append(args, req.Command)
	args = append(args, req.Args...)
	return domain.Invocation{Program: req.Runner.Name, Args: args, Dir: req.Dir}
}

// validate returns the script name as spelled in the source file.
func (d *Dispatcher) validate(req Request) (string, error) {
	list, ok := d.scripts.ForRunner(req.Runner, req.Dir)
	if !ok {
		return req.Command, nil
	}
	names := list.Names()
	if similarity.IsExactMatch(req.Command, names) {
		return canonicalName(req.Command, names), nil
	}

	notFound := &domain.ScriptNotFoundError{
		Script:     req.Command,
		SourceFile: list.SourceFile,
		Available:  slices.Clone(names),
	}
	if suggestion, ok := similarity.Suggest(req.Command, names); ok {
		notFound.Suggestion = suggestion
	}
	return "", notFound
}

func canonicalName(command string, names []string) string {
	for _, n := range names {
		if n == command {
			return n
		}
	}
	for _, n := range names {
		if strings.EqualFold(n, command) {
			return n
		}
	}
	return command
}
