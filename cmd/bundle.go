package cmd

import (
	"errors"
	"fmt"

	"codebundler/pkg/bundle"
	"codebundler/pkg/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// User-facing bundle messages.
const (
	MsgBundleCreated    = "File was created successfully."
	MsgInvalidDirectory = "Error: File path is invalid."
)

// bundleOptions holds the flags shared by bundle and create-rsp.
type bundleOptions struct {
	output           string
	languages        []string
	includeSource    bool
	sort             string
	removeEmptyLines bool
}

func (o *bundleOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.output, "output", "", "File path and name of the bundle")
	cmd.Flags().StringSliceVar(&o.languages, "language", nil, "Programming languages to include (or 'all'); repeat or comma-separate")
	cmd.Flags().BoolVar(&o.includeSource, "include-source", false, "Include source file paths as a comment at the top of the bundle")
	cmd.Flags().StringVar(&o.sort, "sort", "", "Sort order for copying code files (alphabetical, type)")
	cmd.Flags().BoolVar(&o.removeEmptyLines, "remove-empty-lines", false, "Remove empty lines from the source code before copying")
}

func newBundleCmd(app *App) *cobra.Command {
	var (
		opts    bundleOptions
		exclude []string
	)

	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Bundle code files to a single file",
		Long: `Bundle the code files found directly in the target directory into a single file.
Files whose path contains "bin" or "debug" are always skipped. Extra positional
arguments are treated as additional --language values.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := app.logger().With(zap.String("command", "bundle"))

			// Command-line languages are checked before anything is read.
			if len(opts.languages) > 0 {
				if _, err := bundle.ResolvePatterns(joinLanguages(opts.languages, args)); err != nil {
					return err
				}
			}

			defaults, err := config.Load(app.TargetDir())
			if err != nil {
				return err
			}
			if err := defaults.Apply(cmd.Flags()); err != nil {
				return err
			}

			if len(opts.languages) == 0 {
				return errors.New(`required flag(s) "language" not set`)
			}
			if opts.output == "" {
				return errors.New(`required flag(s) "output" not set`)
			}

			req := bundle.Request{
				Directory:        app.TargetDir(),
				Output:           app.resolve(opts.output),
				Languages:        joinLanguages(opts.languages, args),
				IncludeSource:    opts.includeSource,
				Sort:             bundle.SortMode(opts.sort),
				RemoveEmptyLines: opts.removeEmptyLines,
				Exclude:          exclude,
			}

			if _, err := bundle.Run(req, logger); err != nil {
				if errors.Is(err, bundle.ErrInvalidDirectory) {
					logger.Debug("Bundle target is invalid", zap.Error(err))
					fmt.Fprintln(cmd.OutOrStdout(), MsgInvalidDirectory)
					return nil
				}
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), MsgBundleCreated)
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringArrayVar(&exclude, "exclude", nil, "Gitignore-style pattern of files to leave out (repeatable)")
	return cmd
}

// joinLanguages returns the --language values followed by positional
// arguments, without aliasing either slice.
func joinLanguages(flagValues, args []string) []string {
	out := make([]string, 0, len(flagValues)+len(args))
	out = append(out, flagValues...)
	return append(out, args...)
}
