package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/devrun/cmd/devrun/commands"
	"go.trai.ch/devrun/internal/adapters/console"
	fsadapter "go.trai.ch/devrun/internal/adapters/fs"
	"go.trai.ch/devrun/internal/app"
	"go.trai.ch/devrun/internal/core/domain"
	"go.trai.ch/devrun/internal/core/ports"
	"go.trai.ch/devrun/internal/core/ports/mocks"
	"go.trai.ch/devrun/internal/engine/discovery"
	"go.trai.ch/devrun/internal/engine/dispatch"
	"go.trai.ch/devrun/internal/engine/registry"
	"go.trai.ch/devrun/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

const root = "/work"

type harness struct {
	cli    *commands.CLI
	loader *mocks.MockConfigLoader
	runner *mocks.MockProcessRunner
	prober *mocks.MockToolProber
	logger *mocks.MockLogger
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newHarness(t *testing.T, files fstest.MapFS) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		loader: mocks.NewMockConfigLoader(ctrl),
		runner: mocks.NewMockProcessRunner(ctrl),
		prober: mocks.NewMockToolProber(ctrl),
		logger: mocks.NewMockLogger(ctrl),
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	h.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	h.logger.EXPECT().SetVerbose(gomock.Any()).AnyTimes()
	h.logger.EXPECT().SetQuiet(gomock.Any()).AnyTimes()
	h.loader.EXPECT().Load(root).Return(domain.DefaultConfig(), nil).AnyTimes()

	fsys := fsadapter.NewMapFSAdapter(root, files)
	scripts := discovery.New(fsys)
	reg := registry.New(fsys)
	a := app.New(
		h.loader,
		reg,
		resolver.New(reg, nil),
		scripts,
		dispatch.New(scripts, h.runner),
		h.prober,
		h.logger,
	).WithWorkDir(root)

	h.cli = commands.New(&app.Components{
		App:     a,
		Logger:  h.logger,
		Console: console.ModePlain,
	})
	h.cli.SetOutput(h.stdout, h.stderr)
	return h
}

func (h *harness) execute(args ...string) error {
	h.cli.SetArgs(args)
	return h.cli.Execute(context.Background())
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *commands.ExitError
	require.ErrorAs(t, err, &exitErr)
	return exitErr.Code
}

func TestRoot_Dispatch_PassesFlagsThrough(t *testing.T) {
	h := newHarness(t, fstest.MapFS{"Cargo.toml": {}})

	h.runner.EXPECT().Run(gomock.Any(), domain.Invocation{
		Program: "cargo",
		Args:    []string{"test", "--release", "-v"},
		Dir:     root,
	}).Return(0, nil)

	require.NoError(t, h.execute("test", "--release", "-v"))
}

func TestRoot_Dispatch_ChildExitCode(t *testing.T) {
	h := newHarness(t, fstest.MapFS{"Makefile": {}})

	h.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(2, nil)

	err := h.execute("check")
	assert.Equal(t, 2, exitCode(t, err))
}

func TestRoot_DryRun(t *testing.T) {
	h := newHarness(t, fstest.MapFS{"go.mod": {}})

	require.NoError(t, h.execute("-n", "test", "./..."))
	assert.Equal(t, "→ go test ./... (in /work)\n", h.stdout.String())
}

func TestRoot_ScriptNotFound(t *testing.T) {
	h := newHarness(t, fstest.MapFS{
		"package.json": {Data: []byte(`{"scripts": {"build": "tsc", "test": "vitest"}}`)},
	})

	h.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.True(t, errors.Is(err, domain.ErrScriptNotFound))
	})

	err := h.execute("biuld")
	assert.Equal(t, int(domain.ExitGenericError), exitCode(t, err))
	assert.Equal(t, "\nAvailable scripts: build, test\n\nDid you mean: devrun build\n", h.stdout.String())
}

func TestRoot_RunnerNotFound(t *testing.T) {
	h := newHarness(t, fstest.MapFS{"README.md": {}})

	h.logger.EXPECT().Error(gomock.Any())

	err := h.execute("-l", "0", "build")
	assert.Equal(t, int(domain.ExitRunnerNotFound), exitCode(t, err))
	assert.Equal(t, "Use --levels=N to increase search depth\n", h.stderr.String())
}

func TestRoot_SpawnFailed(t *testing.T) {
	h := newHarness(t, fstest.MapFS{"Makefile": {}})

	h.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(0, domain.ErrSpawnFailed)
	h.logger.EXPECT().Error(gomock.Any())

	err := h.execute("all")
	assert.Equal(t, int(domain.ExitSpawnFailed), exitCode(t, err))
}

func TestRoot_Help(t *testing.T) {
	h := newHarness(t, fstest.MapFS{})

	require.NoError(t, h.execute())
	assert.Contains(t, h.stdout.String(), "devrun [command] [args...]")
}

func TestRoot_VerboseAndQuietExclusive(t *testing.T) {
	h := newHarness(t, fstest.MapFS{"Makefile": {}})

	err := h.execute("-v", "-q", "list")
	require.Error(t, err)
}

func TestList(t *testing.T) {
	h := newHarness(t, fstest.MapFS{
		"package.json": {Data: []byte(`{"scripts": {"build": "tsc", "test": "vitest"}}`)},
	})

	require.NoError(t, h.execute("list"))
	assert.Equal(t, "Detected: npm (package.json)\n\nAvailable scripts:\n  build  tsc\n  test   vitest\n", h.stdout.String())
}

func TestWhy_Ignore(t *testing.T) {
	h := newHarness(t, fstest.MapFS{"go.mod": {}, "Makefile": {}})

	require.NoError(t, h.execute("why", "--ignore", "go"))
	assert.Contains(t, h.stdout.String(), "Using: make\n")
	assert.Contains(t, h.stdout.String(), "  go (go.mod) (ignored via --ignore)\n")
}

func TestDoctor(t *testing.T) {
	h := newHarness(t, fstest.MapFS{"justfile": {Data: []byte("build:\n    go build\n")}})

	h.prober.EXPECT().Probe(gomock.Any(), "just").
		Return(ports.ToolStatus{Name: "just", Installed: true, Version: "1.25.2"})

	require.NoError(t, h.execute("doctor"))
	out := h.stdout.String()
	assert.Contains(t, out, "  ✓ just 1.25.2 (justfile)\n")
	assert.Contains(t, out, "✓ 1 script available in justfile\n")
}

func TestVersion(t *testing.T) {
	h := newHarness(t, fstest.MapFS{})

	require.NoError(t, h.execute("version"))
	assert.Equal(t, "devrun version dev (commit none, built unknown)\n", h.stdout.String())
}

func TestCompletion(t *testing.T) {
	h := newHarness(t, fstest.MapFS{})

	require.NoError(t, h.execute("completion", "bash"))
	assert.Contains(t, h.stdout.String(), "bash completion")
}
