// Package app implements the application layer for devrun.
package app

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"go.trai.ch/devrun/internal/core/domain"
	"go.trai.ch/devrun/internal/core/ports"
	"go.trai.ch/devrun/internal/engine/discovery"
	"go.trai.ch/devrun/internal/engine/dispatch"
	"go.trai.ch/devrun/internal/engine/registry"
	"go.trai.ch/devrun/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// UnsetLevels marks Options.Levels as not given on the command line.
const UnsetLevels = -1

// Options holds the settings shared by every command. They are merged over the
// loaded configuration.
type Options struct {
	// Levels overrides the configured search depth unless it is UnsetLevels.
	Levels int
	// Ignore is appended to the configured ignore list.
	Ignore  []string
	Verbose bool
	Quiet   bool
}

// RunOptions configures App.Run.
type RunOptions struct {
	Options
	DryRun bool
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	registry     *registry.Registry
	resolver     *resolver.Resolver
	scripts      *discovery.Discoverer
	dispatcher   *dispatch.Dispatcher
	prober       ports.ToolProber
	logger       ports.Logger
	workDir      string
	now          func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	reg *registry.Registry,
	res *resolver.Resolver,
	scripts *discovery.Discoverer,
	dispatcher *dispatch.Dispatcher,
	prober ports.ToolProber,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		registry:     reg,
		resolver:     res,
		scripts:      scripts,
		dispatcher:   dispatcher,
		prober:       prober,
		logger:       logger,
		now:          time.Now,
	}
}

// WithWorkDir sets the directory the search starts from. The process working
// directory is used when it is empty.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithClock replaces the clock used to time dispatched commands.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// RunResult is the outcome of App.Run.
type RunResult struct {
	Runner     domain.DetectedRunner
	Invocation domain.Invocation
	DryRun     bool
	// ExitCode is the exit status of the child process.
	ExitCode int
	// Elapsed is the wall time of the child. It is zero for dry runs.
	Elapsed time.Duration
	// ShowTiming reports whether the caller should print Elapsed.
	ShowTiming bool
}

// Run resolves the runner for the working directory and dispatches command through it.
func (a *App) Run(ctx context.Context, command string, args []string, opts RunOptions) (RunResult, error) {
	cwd, cfg, err := a.setup(opts.Options)
	if err != nil {
		return RunResult{}, err
	}

	name := cfg.ResolveAlias(command)
	if name != command {
		a.logger.Debug(fmt.Sprintf("alias %s → %s", command, name))
	}

	res, err := a.resolver.Search(cwd, cfg.Levels, cfg.Ignore)
	if err != nil {
		return RunResult{}, err
	}
	runner, err := resolver.Select(res.Matches)
	if err != nil {
		return RunResult{}, err
	}
	a.warnConflicts(res.Matches, runner)
	a.logger.Debug(fmt.Sprintf("using %s (%s) in %s", runner.Name, runner.DetectedFile, res.Dir))

	start := a.now()
	out, err := a.dispatcher.Dispatch(ctx, dispatch.Request{
		Runner:  runner,
		Command: name,
		Args:    args,
		Dir:     res.Dir,
		DryRun:  opts.DryRun,
	})
	if err != nil {
		return RunResult{Runner: runner, Invocation: out.Invocation}, err
	}

	result := RunResult{
		Runner:     runner,
		Invocation: out.Invocation,
		DryRun:     out.DryRun,
		ExitCode:   out.ExitCode,
		ShowTiming: cfg.ShowTiming && !cfg.Quiet && !out.DryRun,
	}
	if !out.DryRun {
		result.Elapsed = a.now().Sub(start)
	}
	return result, nil
}

// ListReport is the data behind the list command.
type ListReport struct {
	Runner  domain.DetectedRunner
	Dir     string
	Scripts domain.ScriptList
	// Found is false when the runner's ecosystem has no script source in Dir.
	Found bool
}

// List reports the scripts exposed by the selected runner.
func (a *App) List(opts Options) (ListReport, error) {
	cwd, cfg, err := a.setup(opts)
	if err != nil {
		return ListReport{}, err
	}
	res, err := a.resolver.Search(cwd, cfg.Levels, cfg.Ignore)
	if err != nil {
		return ListReport{}, err
	}
	runner, err := resolver.Select(res.Matches)
	if err != nil {
		return ListReport{}, err
	}

	list, ok := a.scripts.ForRunner(runner, res.Dir)
	return ListReport{Runner: runner, Dir: res.Dir, Scripts: list, Found: ok}, nil
}

// RunnerStatus is a detected runner annotated with why it was not chosen.
type RunnerStatus struct {
	Runner  domain.DetectedRunner
	Ignored bool
}

// WhyReport is the data behind the why command.
type WhyReport struct {
	Dir   string
	Level int
	// Selected is nil when every detected runner was ignored.
	Selected  *domain.DetectedRunner
	Others    []RunnerStatus
	Conflicts []resolver.Conflict
}

// Why explains which runner would be used and what else was detected next to it.
// The search itself ignores nothing, so ignored runners are still reported.
func (a *App) Why(opts Options) (WhyReport, error) {
	cwd, cfg, err := a.setup(opts)
	if err != nil {
		return WhyReport{}, err
	}
	res, err := a.resolver.Search(cwd, cfg.Levels, nil)
	if err != nil {
		return WhyReport{}, err
	}

	report := WhyReport{Dir: res.Dir, Level: res.Level}
	var candidates []domain.DetectedRunner
	for _, m := range res.Matches {
		if !isIgnored(m.Name, cfg.Ignore) {
			candidates = append(candidates, m)
		}
	}
	if selected, err := resolver.Select(candidates); err == nil {
		report.Selected = &selected
	}
	for _, m := range res.Matches {
		if report.Selected != nil && m.Name == report.Selected.Name {
			continue
		}
		report.Others = append(report.Others, RunnerStatus{Runner: m, Ignored: isIgnored(m.Name, cfg.Ignore)})
	}
	report.Conflicts = resolver.Conflicts(candidates)
	return report, nil
}

// ToolCheck is the probe result for one detected runner.
type ToolCheck struct {
	Runner domain.DetectedRunner
	Status ports.ToolStatus
}

// DoctorReport is the data behind the doctor command.
type DoctorReport struct {
	Dir string
	// Tools covers every runner in Dir, ignored ones included.
	Tools     []ToolCheck
	Conflicts []resolver.Conflict
	Selected  domain.DetectedRunner
	Scripts   domain.ScriptList
	// HasScripts is false when the selected runner exposes no script source.
	HasScripts bool
}

// Doctor probes every runner detected in the project directory.
// The ignore list only decides which directory is diagnosed and which runner
// is selected; ignored runners are still probed and checked for conflicts.
func (a *App) Doctor(ctx context.Context, opts Options) (DoctorReport, error) {
	cwd, cfg, err := a.setup(opts)
	if err != nil {
		return DoctorReport{}, err
	}
	res, err := a.resolver.Search(cwd, cfg.Levels, cfg.Ignore)
	if err != nil {
		return DoctorReport{}, err
	}
	selected, err := resolver.Select(res.Matches)
	if err != nil {
		return DoctorReport{}, err
	}

	all := a.registry.DetectAll(res.Dir)
	checks := make([]ToolCheck, len(all))
	g, gctx := errgroup.WithContext(ctx)
	for i, m := range all {
		g.Go(func() error {
			checks[i] = ToolCheck{Runner: m, Status: a.prober.Probe(gctx, m.Name)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return DoctorReport{}, err
	}

	report := DoctorReport{
		Dir:       res.Dir,
		Tools:     checks,
		Conflicts: resolver.Conflicts(all),
		Selected:  selected,
	}
	report.Scripts, report.HasScripts = a.scripts.ForRunner(selected, res.Dir)
	return report, nil
}

// setup resolves the working directory, loads the configuration and applies
// opts on top of it.
func (a *App) setup(opts Options) (string, *domain.Config, error) {
	cwd := a.workDir
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", nil, zerr.Wrap(domain.ErrWorkingDirFailed, err.Error())
		}
		cwd = wd
	}

	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return "", nil, zerr.Wrap(err, "failed to load configuration")
	}
	if opts.Levels != UnsetLevels {
		cfg.Levels = opts.Levels
	}
	cfg.Ignore = append(slices.Clone(cfg.Ignore), opts.Ignore...)
	cfg.Verbose = cfg.Verbose || opts.Verbose
	cfg.Quiet = cfg.Quiet || opts.Quiet

	a.logger.SetVerbose(cfg.Verbose)
	a.logger.SetQuiet(cfg.Quiet)
	for _, src := range cfg.Sources {
		a.logger.Debug("config: " + src)
	}
	return cwd, cfg, nil
}

func (a *App) warnConflicts(matches []domain.DetectedRunner, selected domain.DetectedRunner) {
	for _, c := range resolver.Conflicts(matches) {
		files := make([]string, 0, len(c.Runners))
		for _, r := range c.Runners {
			files = append(files, r.DetectedFile)
		}
		a.logger.Warn(fmt.Sprintf("multiple %s lockfiles found (%s), using %s",
			c.Ecosystem, strings.Join(files, ", "), selected.Name))
	}
}

func isIgnored(name string, ignore []string) bool {
	for _, i := range ignore {
		if strings.EqualFold(strings.TrimSpace(i), name) {
			return true
		}
	}
	return false
}
