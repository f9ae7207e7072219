package cli

import (
	"github.com/spf13/cobra"

	"github.com/tanema/rematch/src/input"
	"github.com/tanema/rematch/src/report"
)

func runFile(opts *Options, path string, cmd *cobra.Command) error {
	c, err := input.ReadCase(path)
	if err != nil {
		return err
	}
	matcher, _, err := opts.matcher(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	ctx, cancel := opts.context()
	defer cancel()
	spans, err := matcher.Find(ctx, c.Pattern, c.Text)
	if err != nil {
		return err
	}
	return report.Write(cmd.OutOrStdout(), spans, opts.Spans)
}
