// Package commands implements the CLI commands for devrun.
package commands

import (
	"context"
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/devrun/internal/adapters/console"
	"go.trai.ch/devrun/internal/app"
	"go.trai.ch/devrun/internal/build"
	"go.trai.ch/devrun/internal/core/domain"
	"go.trai.ch/devrun/internal/core/ports"
	"go.trai.ch/devrun/internal/ui/report"
)

// ExitError carries the exit code of a command whose failure has already been reported.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit status " + strconv.Itoa(e.Code)
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// CLI represents the command line interface for devrun.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	mode    console.Mode
	stdout  io.Writer
	stderr  io.Writer
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given components.
func New(c *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:   "devrun [command] [args...]",
		Short: "Run project scripts with the right tool, whatever the ecosystem",
		Long: `devrun detects the project type from the files in the current directory or its
parents and runs the command with the matching tool, e.g. "devrun test" becomes
"npm run test", "cargo test" or "make test".`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.PersistentFlags().IntP("levels", "l", domain.DefaultSearchLevels, "Number of parent directories to search")
	rootCmd.PersistentFlags().StringSliceP("ignore", "i", nil, "Runner to skip during detection (repeatable)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show detection details")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only print errors")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	rootCmd.Flags().BoolP("dry-run", "n", false, "Print the command instead of running it")

	// Registered after -v so the version flag does not claim the shorthand.
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	// Everything after the command name belongs to the child process.
	rootCmd.Flags().SetInterspersed(false)

	cli := &CLI{
		app:     c.App,
		logger:  c.Logger,
		mode:    c.Console,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		rootCmd: rootCmd,
	}
	rootCmd.RunE = cli.runRoot

	rootCmd.AddCommand(cli.newListCmd())
	rootCmd.AddCommand(cli.newWhyCmd())
	rootCmd.AddCommand(cli.newDoctorCmd())
	rootCmd.AddCommand(cli.newVersionCmd())

	return cli
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects report output. Used for testing.
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.stdout = stdout
	c.stderr = stderr
	c.rootCmd.SetOut(stdout)
	c.rootCmd.SetErr(stderr)
}

func (c *CLI) runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		// Display command usage help without returning an error
		_ = cmd.Help()
		return nil
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	res, err := c.app.Run(cmd.Context(), args[0], args[1:], app.RunOptions{
		Options: options(cmd),
		DryRun:  dryRun,
	})
	if err != nil {
		return c.fail(err)
	}

	if res.DryRun {
		c.printer(c.stdout).DryRun(res.Invocation)
		return nil
	}
	if res.ShowTiming {
		c.printer(c.stderr).Timing(res.Elapsed)
	}
	if code := domain.ExitCode(res.ExitCode); !code.IsSuccess() {
		return &ExitError{Code: int(code)}
	}
	return nil
}

// fail reports err with whatever hint fits it and returns the matching exit code.
func (c *CLI) fail(err error) error {
	c.logger.Error(err)

	var notFound *domain.ScriptNotFoundError
	switch {
	case errors.As(err, &notFound):
		_, _ = io.WriteString(c.stdout, "\n")
		c.printer(c.stdout).ScriptNotFound(notFound)
	case errors.Is(err, domain.ErrRunnerNotFound):
		c.printer(c.stderr).RunnerNotFoundHint()
	}
	return &ExitError{Code: int(domain.ExitCodeFor(err)), Err: err}
}

func (c *CLI) printer(w io.Writer) *report.Printer {
	return report.New(w, c.mode.Profile()())
}

// options collects the flags shared by every command.
func options(cmd *cobra.Command) app.Options {
	opts := app.Options{Levels: app.UnsetLevels}
	if cmd.Flags().Changed("levels") {
		opts.Levels, _ = cmd.Flags().GetInt("levels")
	}
	opts.Ignore, _ = cmd.Flags().GetStringSlice("ignore")
	opts.Verbose, _ = cmd.Flags().GetBool("verbose")
	opts.Quiet, _ = cmd.Flags().GetBool("quiet")
	return opts
}
