package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"codebundler/pkg/config"
	"codebundler/pkg/logging"
	"codebundler/pkg/rsp"
	"codebundler/pkg/version"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// App carries process-level state into the commands.
type App struct {
	WorkDir string    // Directory the process was started in.
	In      io.Reader // Answers for interactive prompts.
	Out     io.Writer // User-facing messages.
	Err     io.Writer // Error report written by the entry point.

	// Logger is built by the root command from --debug/--log-level. A
	// non-nil Logger set before Execute is kept as is.
	Logger *zap.Logger

	debug    bool
	logLevel string
	dir      string
}

// NewApp returns an App bound to the standard streams.
func NewApp(workDir string) *App {
	return &App{
		WorkDir: workDir,
		In:      os.Stdin,
		Out:     os.Stdout,
		Err:     os.Stderr,
	}
}

// TargetDir is the directory bundled and written to: --dir resolved
// against WorkDir, or WorkDir itself.
func (a *App) TargetDir() string {
	if a.dir == "" {
		return a.WorkDir
	}
	return a.resolve(a.dir)
}

// resolve makes a relative path absolute against WorkDir.
func (a *App) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(a.WorkDir, path)
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

// NewRootCmd assembles the command tree.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "codebundler",
		Short: "codebundler concatenates source files into a single bundle",
		Long: `codebundler collects the source files of one directory, filtered by language,
and writes them into a single bundle file. Options can be stored in a response
file with create-rsp and replayed with "codebundler bundle @<file>.rsp".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setupLogger(cmd)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().BoolVar(&app.debug, "debug", false, "Enable development logging at debug level")
	root.PersistentFlags().StringVar(&app.logLevel, "log-level", logging.DefaultLevel, "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&app.dir, "dir", "", "Directory to bundle (defaults to the working directory)")

	root.SetIn(app.In)
	root.SetOut(app.Out)
	root.SetErr(app.Err)

	root.AddCommand(newBundleCmd(app), newCreateRspCmd(app), newVersionCmd())
	return root
}

// setupLogger builds app.Logger unless one was injected. Environment
// settings apply only to flags not given on the command line.
func (a *App) setupLogger(cmd *cobra.Command) error {
	if a.Logger != nil {
		return nil
	}

	env := config.LoadEnv(a.WorkDir)
	flags := cmd.Flags()
	if !flags.Changed("debug") && env.Debug {
		a.debug = true
	}
	if !flags.Changed("log-level") && env.LogLevel != "" {
		a.logLevel = env.LogLevel
	}

	logger, err := logging.New(logging.Options{
		Debug:      a.debug,
		Level:      a.logLevel,
		AppName:    "codebundler",
		AppVersion: version.Get().Version,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.Logger = logger
	return nil
}

// Execute expands "@file" response-file arguments and runs the command
// tree. The returned error is meant for ExitCode.
func Execute(app *App, args []string) error {
	root := NewRootCmd(app)

	expanded, err := rsp.Expand(args, valueFlags(root))
	if err != nil {
		return err
	}

	root.SetArgs(expanded)
	return root.Execute()
}

// valueFlags returns a predicate matching "--name" and "-x" tokens of any
// flag in the tree that requires an argument.
func valueFlags(root *cobra.Command) func(string) bool {
	names := map[string]bool{}
	add := func(f *pflag.Flag) {
		if f.NoOptDefVal != "" {
			return
		}
		names["--"+f.Name] = true
		if f.Shorthand != "" {
			names["-"+f.Shorthand] = true
		}
	}

	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		c.Flags().VisitAll(add)
		c.PersistentFlags().VisitAll(add)
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(root)

	return func(flag string) bool { return names[flag] }
}
