package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tanema/rematch/src/conf"
	"github.com/tanema/rematch/src/repl"
)

// NewReplCommand creates the interactive command.
func NewReplCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:           "repl",
		Short:         "Enter patterns and subjects interactively",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			matcher, _, err := opts.matcher(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", conf.FullVersion())
			fmt.Fprint(cmd.ErrOrStderr(), "Press ctrl-c to quit or clear the current pattern.\n")
			return repl.Run(context.Background(), matcher, opts.Spans)
		},
	}
}

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), conf.FullVersion())
		},
	}
}
