// Package cli is the command tree of the rematch binary.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/tanema/rematch/src/conf"
	"github.com/tanema/rematch/src/pattern"
	"github.com/tanema/rematch/src/trace"
)

// Options holds the flags shared by every command.
type Options struct {
	Strict     bool
	MaxSteps   int
	Limit      int
	Timeout    time.Duration
	Spans      bool
	Trace      bool
	TimeFormat string
}

// NewRootCommand creates the root command. On its own it reads a case file
// and prints where the pattern on its first line matches the subject on its
// second.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "rematch <case-file>",
		Short: "rematch - a small backtracking regular expression matcher",
		Long: `Reads a pattern from the first line of a file and a subject from the
second line, then prints the offset of every non-overlapping match.

Supported syntax: literals, '.', '\' escapes, [...] classes with ranges and
negation, the quantifiers '*', '+' and '?', and the anchors '^' and '$'.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(opts, args[0], cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVar(&opts.Strict, "strict", false, "reject malformed patterns instead of reading them literally")
	flags.IntVar(&opts.MaxSteps, "max-steps", 0, "abort a search after this many atom tests (0 is unbounded)")
	flags.IntVar(&opts.Limit, "limit", 0, "stop after this many matches (0 finds all)")
	flags.DurationVar(&opts.Timeout, "timeout", 0, "abort a search after this long (0 waits forever)")
	flags.BoolVar(&opts.Spans, "spans", false, "print start-end spans instead of start offsets")
	flags.BoolVar(&opts.Trace, "trace", false, "trace every attempted offset to stderr")
	flags.StringVar(&opts.TimeFormat, "time-format", conf.DEFAULTTIMEFORMAT, "strftime layout of trace timestamps")

	cmd.AddCommand(NewBatchCommand(opts))
	cmd.AddCommand(NewReplCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// matcher builds the matcher the flags describe. The logger is nil unless
// tracing is on.
func (opts *Options) matcher(traceOut io.Writer) (*pattern.Matcher, *trace.Logger, error) {
	cfg := pattern.Config{
		Strict:   opts.Strict,
		MaxSteps: opts.MaxSteps,
		Limit:    opts.Limit,
	}
	var logger *trace.Logger
	if opts.Trace {
		var err error
		if logger, err = trace.New(traceOut, opts.TimeFormat); err != nil {
			return nil, nil, err
		}
		cfg.Observer = logger
	}
	return pattern.New(cfg), logger, nil
}

func (opts *Options) context() (context.Context, context.CancelFunc) {
	if opts.Timeout > 0 {
		return context.WithTimeout(context.Background(), opts.Timeout)
	}
	return context.WithCancel(context.Background())
}
