// Package repl is the interactive mode of rematch. It alternates between
// asking for a pattern and a subject and prints the matches of each pair.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"

	"github.com/tanema/rematch/src/pattern"
	"github.com/tanema/rematch/src/report"
)

const (
	// PatternPrompt asks for a pattern.
	PatternPrompt = "pattern> "
	// TextPrompt asks for the subject to search with the pending pattern.
	TextPrompt = "text> "
)

// Session is the state of the interactive loop without the terminal, a
// pattern waiting for its subject.
type Session struct {
	matcher   *pattern.Matcher
	out       io.Writer
	withSpans bool
	pattern   string
	pending   bool
}

// NewSession creates a session printing results to out.
func NewSession(matcher *pattern.Matcher, out io.Writer, withSpans bool) *Session {
	return &Session{
		matcher:   matcher,
		out:       out,
		withSpans: withSpans,
	}
}

// Prompt is the prompt for the next line.
func (s *Session) Prompt() string {
	if s.pending {
		return TextPrompt
	}
	return PatternPrompt
}

// Feed takes the next line. The first line of a pair is the pattern, the
// second is searched and the results are written out.
func (s *Session) Feed(ctx context.Context, line string) error {
	if !s.pending {
		if _, err := s.matcher.Iter(line, ""); err != nil {
			return err
		}
		s.pattern = line
		s.pending = true
		return nil
	}
	s.pending = false
	spans, err := s.matcher.Find(ctx, s.pattern, line)
	if err != nil {
		return err
	}
	return report.Write(s.out, spans, s.withSpans)
}

// Interrupt drops a pending pattern. It returns true when there was nothing to
// drop, meaning the user wants to quit.
func (s *Session) Interrupt() bool {
	if s.pending {
		s.pending = false
		s.pattern = ""
		return false
	}
	return true
}

// Run starts the interactive loop on the terminal until ctrl-c on an empty
// prompt or EOF.
func Run(ctx context.Context, matcher *pattern.Matcher, withSpans bool) error {
	rl, err := readline.New(PatternPrompt)
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	session := NewSession(matcher, rl.Stdout(), withSpans)
	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if session.Interrupt() {
					break
				}
				rl.SetPrompt(session.Prompt())
				fmt.Fprint(os.Stderr, "Press ctrl-c again to quit.\n")
				continue
			} else if errors.Is(err, io.EOF) {
				break
			}
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if err := session.Feed(ctx, line); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		rl.SetPrompt(session.Prompt())
	}
	return nil
}
