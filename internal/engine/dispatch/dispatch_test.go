package dispatch_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	fsadapter "go.trai.ch/devrun/internal/adapters/fs"
	"go.trai.ch/devrun/internal/core/domain"
	"go.trai.ch/devrun/internal/core/ports/mocks"
	"go.trai.ch/devrun/internal/engine/discovery"
	"go.trai.ch/devrun/internal/engine/dispatch"
	"go.uber.org/mock/gomock"
)

const root = "/project"

var (
	npm = domain.DetectedRunner{
		Name: "npm", DetectedFile: "package.json", Ecosystem: domain.EcosystemNodeJs, Priority: 5, RunPrefix: []string{"run"},
	}
	cargo = domain.DetectedRunner{
		Name: "cargo", DetectedFile: "Cargo.toml", Ecosystem: domain.EcosystemRust, Priority: 6,
	}
)

func newDispatcher(t *testing.T, files fstest.MapFS) (*dispatch.Dispatcher, *mocks.MockProcessRunner) {
	t.Helper()
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockProcessRunner(ctrl)
	scripts := discovery.New(fsadapter.NewMapFSAdapter(root, files))
	return dispatch.New(scripts, runner), runner
}

var packageJSON = fstest.MapFS{
	"package.json": {Data: []byte(`{"scripts":{"dev":"vite","build":"vite build","test":"vitest","start":"node ."}}`)},
}

func TestDispatch_NodeRunsKnownScript(t *testing.T) {
	d, runner := newDispatcher(t, packageJSON)

	want := domain.Invocation{Program: "npm", Args: []string{"run", "build", "--", "--watch"}, Dir: root}
	runner.EXPECT().Run(gomock.Any(), want).Return(0, nil)

	res, err := d.Dispatch(context.Background(), dispatch.Request{
		Runner: npm, Command: "build", Args: []string{"--", "--watch"}, Dir: root,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, want, res.Invocation)
}

func TestDispatch_NodeMatchIsCaseInsensitive(t *testing.T) {
	d, runner := newDispatcher(t, packageJSON)

	runner.EXPECT().
		Run(gomock.Any(), domain.Invocation{Program: "npm", Args: []string{"run", "dev"}, Dir: root}).
		Return(0, nil)

	_, err := d.Dispatch(context.Background(), dispatch.Request{Runner: npm, Command: "DEV", Dir: root})
	require.NoError(t, err)
}

func TestDispatch_NodeUnknownScript(t *testing.T) {
	d, _ := newDispatcher(t, packageJSON)

	_, err := d.Dispatch(context.Background(), dispatch.Request{Runner: npm, Command: "tets", Dir: root})
	require.ErrorIs(t, err, domain.ErrScriptNotFound)

	var notFound *domain.ScriptNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "tets", notFound.Script)
	assert.Equal(t, "package.json", notFound.SourceFile)
	assert.Equal(t, "test", notFound.Suggestion)
	assert.Equal(t, []string{"dev", "build", "test", "start"}, notFound.Available)
	assert.Equal(t, domain.ExitGenericError, domain.ExitCodeFor(err))
}

func TestDispatch_NodeUnknownScriptWithoutSuggestion(t *testing.T) {
	d, _ := newDispatcher(t, packageJSON)

	_, err := d.Dispatch(context.Background(), dispatch.Request{Runner: npm, Command: "deploy", Dir: root})
	var notFound *domain.ScriptNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Empty(t, notFound.Suggestion)
}

func TestDispatch_NodeWithoutScriptsIsNotGated(t *testing.T) {
	d, runner := newDispatcher(t, fstest.MapFS{"package.json": {Data: []byte(`{"name":"x"}`)}})

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(0, nil)

	_, err := d.Dispatch(context.Background(), dispatch.Request{Runner: npm, Command: "anything", Dir: root})
	require.NoError(t, err)
}

func TestDispatch_OtherEcosystemsAreNotGated(t *testing.T) {
	d, runner := newDispatcher(t, fstest.MapFS{"Cargo.toml": {}})

	runner.EXPECT().
		Run(gomock.Any(), domain.Invocation{Program: "cargo", Args: []string{"nextest"}, Dir: root}).
		Return(0, nil)

	_, err := d.Dispatch(context.Background(), dispatch.Request{Runner: cargo, Command: "nextest", Dir: root})
	require.NoError(t, err)
}

func TestDispatch_RelaysChildExitCode(t *testing.T) {
	d, runner := newDispatcher(t, fstest.MapFS{"Cargo.toml": {}})
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(3, nil)

	res, err := d.Dispatch(context.Background(), dispatch.Request{Runner: cargo, Command: "test", Dir: root})
	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
}

func TestDispatch_DryRunDoesNotSpawn(t *testing.T) {
	d, _ := newDispatcher(t, packageJSON)

	res, err := d.Dispatch(context.Background(), dispatch.Request{
		Runner: npm, Command: "test", Args: []string{"--coverage"}, Dir: root, DryRun: true,
	})
	require.NoError(t, err)
	assert.True(t, res.DryRun)
	assert.Equal(t, "npm run test --coverage", res.Invocation.String())
}

func TestDispatch_DryRunStillValidates(t *testing.T) {
	d, _ := newDispatcher(t, packageJSON)

	_, err := d.Dispatch(context.Background(), dispatch.Request{Runner: npm, Command: "nope", Dir: root, DryRun: true})
	require.ErrorIs(t, err, domain.ErrScriptNotFound)
}

func TestDispatch_SpawnFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "plain error", err: errors.New("exec: \"cargo\": executable file not found in $PATH")},
		{name: "sentinel", err: domain.ErrSpawnFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, runner := newDispatcher(t, fstest.MapFS{"Cargo.toml": {}})
			runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(-1, tt.err)

			_, err := d.Dispatch(context.Background(), dispatch.Request{Runner: cargo, Command: "build", Dir: root})
			require.ErrorIs(t, err, domain.ErrSpawnFailed)
			assert.Equal(t, domain.ExitSpawnFailed, domain.ExitCodeFor(err))
		})
	}
}

func TestDispatch_CancelledContext(t *testing.T) {
	d, _ := newDispatcher(t, fstest.MapFS{"Cargo.toml": {}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.Dispatch(ctx, dispatch.Request{Runner: cargo, Command: "build", Dir: root})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDispatch_EmptyCommand(t *testing.T) {
	d, _ := newDispatcher(t, packageJSON)

	_, err := d.Dispatch(context.Background(), dispatch.Request{Runner: npm, Dir: root})
	require.ErrorIs(t, err, domain.ErrCommandRequired)
}

func TestInvocation(t *testing.T) {
	zig := domain.DetectedRunner{Name: "zig", Ecosystem: domain.EcosystemZig, RunPrefix: []string{"build"}}
	inv := dispatch.Invocation(dispatch.Request{Runner: zig, Command: "test", Args: []string{"-Doptimize=ReleaseFast"}, Dir: root})
	assert.Equal(t, domain.Invocation{Program: "zig", Args: []string{"build", "test", "-Doptimize=ReleaseFast"}, Dir: root}, inv)
}
