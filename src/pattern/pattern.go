// Package pattern is a small backtracking regular expression matcher. It works
// on bytes and supports the following syntax:
//
//   - c: (any byte that is not special) matches itself.
//   - .: matches any single byte.
//   - \c: matches the byte c literally, so \. only matches a dot.
//   - [set]: matches one byte in the set. A set holds single bytes and
//     ascending ranges like a-z. [^set] matches any byte not in the set. A ']'
//     directly after '[' or '[^' is a member, as is a '-' that cannot form a range.
//   - x*: zero or more repetitions of the atom x, longest first.
//   - x+: one or more repetitions of the atom x, longest first.
//   - x?: zero or one occurrence of the atom x, zero first.
//
// A caret '^' at the beginning of a pattern anchors the match at the start of
// the subject and no other offsets are tried. A '$' at the end of a pattern
// anchors the match at the end of the subject. At other positions '^' and '$'
// have no special meaning and represent themselves.
//
// Quantifiers apply to exactly one atom; a bracket class is one atom. There
// are no groups, alternation, counted repetition or backreferences.
//
// Malformed patterns are matched permissively by default: a quantifier with
// nothing to repeat, an unterminated '[' and a trailing '\' are all literals.
// Config.Strict rejects them instead.
package pattern

import (
	"context"
	"errors"
	"fmt"

	"github.com/tanema/rematch/src/conf"
	"github.com/tanema/rematch/src/rerrors"
)

type (
	// Span is a match of a pattern in a subject, as byte offsets [Start, End).
	Span struct {
		Start int
		End   int
	}
	// Observer is told about each start offset that a search tries and each
	// match it reports.
	Observer interface {
		Attempt(start int)
		Matched(span Span)
	}
	// Config configures a Matcher. The zero value is a permissive matcher with
	// no step budget.
	Config struct {
		// Strict rejects malformed patterns instead of reading them as literals.
		Strict bool
		// MaxSteps bounds the number of atom tests in one search, 0 is unbounded.
		MaxSteps int
		// MaxDepth bounds the recursion depth, which grows by one per quantified
		// atom. 0 means conf.MAXDEPTH and a negative value is unbounded.
		MaxDepth int
		// Limit stops a search after this many matches, 0 or less finds all.
		Limit int
		// DisablePrefilter always scans byte by byte.
		DisablePrefilter bool
		Observer         Observer
	}
	// Matcher finds matches of patterns in subjects. It holds no state between
	// searches and is safe for concurrent use.
	Matcher struct {
		cfg Config
	}
	// Iterator yields the matches of one pattern in one subject in order.
	Iterator struct {
		cfg      Config
		pattern  string
		tokens   []token
		anchored bool
		pf       *prefilter
		vm       *machine
		offset   int
		found    int
		done     bool
	}
)

// New creates a Matcher with the given configuration.
func New(cfg Config) *Matcher {
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = conf.MAXDEPTH
	}
	return &Matcher{cfg: cfg}
}

// Match returns the start offset of every non-overlapping match of pattern in
// text, in increasing order. It is empty when nothing matches.
func Match(pattern, text string) []int {
	// permissive, unbudgeted and never canceled so Find cannot fail
	spans, _ := New(Config{MaxDepth: -1}).Find(context.Background(), pattern, text)
	return Offsets(spans)
}

// MatchHere reports whether pattern matches a prefix of text. A leading '^' is
// not an anchor here but a literal, since the match position is already fixed.
func MatchHere(pattern, text string) bool {
	tokens, _, _ := tokenize(pattern, false, false)
	vm := &machine{src: text}
	_, ok := vm.matchHere(tokens, 0)
	return ok
}

// Offsets returns the start offset of each span.
func Offsets(spans []Span) []int {
	offsets := make([]int, len(spans))
	for i, span := range spans {
		offsets[i] = span.Start
	}
	return offsets
}

// Len is the number of bytes the span covers.
func (s Span) Len() int { return s.End - s.Start }

func (s Span) String() string { return fmt.Sprintf("%v-%v", s.Start, s.End) }

// Find returns every non-overlapping match of pattern in text. A failed match
// is not an error; errors are only returned for malformed patterns in strict
// mode, spent budgets and canceled contexts.
func (mt *Matcher) Find(ctx context.Context, pattern, text string) ([]Span, error) {
	iter, err := mt.Iter(pattern, text)
	if err != nil {
		return nil, err
	}
	spans := []Span{}
	for {
		span, ok, err := iter.Next(ctx)
		if err != nil {
			return nil, err
		} else if !ok {
			return spans, nil
		}
		spans = append(spans, span)
	}
}

// Iter creates a new iterator over the matches of pattern in text.
func (mt *Matcher) Iter(pattern, text string) (*Iterator, error) {
	tokens, anchored, err := tokenize(pattern, true, mt.cfg.Strict)
	if err != nil {
		return nil, err
	}
	iter := &Iterator{
		cfg:      mt.cfg,
		pattern:  pattern,
		tokens:   tokens,
		anchored: anchored,
		vm: &machine{
			src:      text,
			maxSteps: mt.cfg.MaxSteps,
			maxDepth: mt.cfg.MaxDepth,
		},
	}
	if !anchored && !mt.cfg.DisablePrefilter {
		iter.pf = newPrefilter(tokens, text)
	}
	return iter, nil
}

// Next returns the next match. It returns false once there are no more. Every
// call after the first shares the step budget of the iterator.
func (it *Iterator) Next(ctx context.Context) (Span, bool, error) {
	if it.done {
		return Span{}, false, nil
	} else if err := ctx.Err(); err != nil {
		return Span{}, false, it.fail(err, it.offset)
	}
	it.vm.ctx = ctx
	src := it.vm.src
	for it.offset <= len(src) {
		start := it.offset
		if it.pf != nil {
			next, found := it.pf.next(start)
			if !found {
				break
			}
			start = next
		}
		if it.cfg.Observer != nil {
			it.cfg.Observer.Attempt(start)
		}
		end, ok := it.vm.matchHere(it.tokens, start)
		if it.vm.err != nil {
			return Span{}, false, it.fail(it.vm.err, start)
		}
		if it.anchored {
			it.done = true
		}
		if !ok {
			it.offset = start + 1
			if it.done {
				break
			}
			continue
		}
		it.offset = max(end, start+1)
		it.found++
		if it.cfg.Limit > 0 && it.found >= it.cfg.Limit {
			it.done = true
		}
		span := Span{Start: start, End: end}
		if it.cfg.Observer != nil {
			it.cfg.Observer.Matched(span)
		}
		return span, true, nil
	}
	it.done = true
	return Span{}, false, nil
}

func (it *Iterator) fail(err error, offset int) error {
	it.done = true
	kind := rerrors.BudgetErr
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		kind = rerrors.CanceledErr
	}
	return &rerrors.Error{
		Kind:    kind,
		Pattern: it.pattern,
		Offset:  offset,
		Err:     err,
	}
}
