package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tanema/rematch/src/input"
	"github.com/tanema/rematch/src/pattern"
	"github.com/tanema/rematch/src/report"
)

// NewBatchCommand creates the batch command.
func NewBatchCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <cases.yaml>",
		Short: "Run every case of a YAML batch file",
		Long: `Runs every case of a YAML batch file and prints one line per case.

Cases that list the offsets they want are checked; the command fails when
any checked case does not match or any case errors.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(opts, args[0], cmd)
		},
	}
}

func runBatch(opts *Options, path string, cmd *cobra.Command) error {
	cases, err := input.LoadBatch(path)
	if err != nil {
		return err
	}
	matcher, logger, err := opts.matcher(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, c := range cases {
		if logger != nil {
			logger.Label(c.Name)
		}
		if !runCase(opts, matcher, c, out) {
			failed++
		}
	}
	fmt.Fprintf(out, "%v cases, %v failed\n", len(cases), failed)
	if failed > 0 {
		return fmt.Errorf("%v of %v cases failed", failed, len(cases))
	}
	return nil
}

func runCase(opts *Options, matcher *pattern.Matcher, c input.Case, out io.Writer) bool {
	ctx, cancel := opts.context()
	defer cancel()
	spans, err := matcher.Find(ctx, c.Pattern, c.Text)
	if err != nil {
		fmt.Fprintf(out, "ERR  %v: %v\n", c.Name, err)
		return false
	}
	result := report.Format(spans, opts.Spans)
	switch {
	case !c.Checked():
		fmt.Fprintf(out, "RUN  %v: %v\n", c.Name, result)
	case slices.Equal(pattern.Offsets(spans), c.Want):
		fmt.Fprintf(out, "PASS %v: %v\n", c.Name, result)
	default:
		fmt.Fprintf(out, "FAIL %v: %v (want %v)\n", c.Name, result, formatWant(c.Want))
		return false
	}
	return true
}

func formatWant(want []int) string {
	if len(want) == 0 {
		return report.NoMatch
	}
	parts := make([]string, len(want))
	for i, offset := range want {
		parts[i] = fmt.Sprint(offset)
	}
	return "offsets " + strings.Join(parts, ", ")
}
