package cmd

import (
	"errors"
	"fmt"

	"codebundler/pkg/rsp"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// MsgInvalidInput is printed when the collected answers fail validation.
const MsgInvalidInput = "Invalid input. Please provide valid values."

func newCreateRspCmd(app *App) *cobra.Command {
	var (
		opts   bundleOptions
		author string
	)

	cmd := &cobra.Command{
		Use:   "create-rsp",
		Short: "Create a response file with the specified options",
		Long: `Interactively collect bundle options and save them to <author>.rsp in the
target directory. The bundle flags are accepted for compatibility; the
answers given at the prompts are what gets written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := app.logger().With(zap.String("command", "create-rsp"))
			logger.Debug("Flag values are replaced by prompt answers",
				zap.String("output", opts.output),
				zap.Strings("languages", opts.languages))

			prompter := rsp.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), logger)
			spec, err := prompter.Collect(author)
			if err != nil {
				return err
			}

			path, err := rsp.Write(app.TargetDir(), spec, logger)
			if err != nil {
				if errors.Is(err, rsp.ErrInvalidSpec) {
					fmt.Fprintln(cmd.OutOrStdout(), MsgInvalidInput)
					return nil
				}
				return err
			}

			logger.Info("Response file created", zap.String("path", path))
			fmt.Fprintf(cmd.OutOrStdout(),
				"Response file '%s' created. You can run it using: codebundler bundle @%s\n",
				spec.FileName(), spec.FileName())
			return nil
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "Name of the file author")
	opts.register(cmd)
	_ = cmd.MarkFlagRequired("author")
	_ = cmd.MarkFlagRequired("language")
	return cmd
}
