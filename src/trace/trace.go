// Package trace writes a timestamped log of what a search is doing. A Logger
// is a pattern.Observer.
package trace

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/tanema/rematch/src/pattern"
)

// Logger writes one line per attempted start offset and per reported match.
type Logger struct {
	mu    sync.Mutex
	out   io.Writer
	stamp *strftime.Strftime
	now   func() time.Time
	label string
}

var _ pattern.Observer = (*Logger)(nil)

// New creates a logger writing to out with timestamps rendered by the strftime
// layout.
func New(out io.Writer, layout string) (*Logger, error) {
	stamp, err := strftime.New(layout)
	if err != nil {
		return nil, fmt.Errorf("invalid time format '%v': %w", layout, err)
	}
	return &Logger{
		out:   out,
		stamp: stamp,
		now:   time.Now,
	}, nil
}

// Label sets a prefix naming the search currently being traced, like a batch
// case name. An empty label removes it.
func (l *Logger) Label(label string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.label = label
}

// Attempt logs that a match is being tried at start.
func (l *Logger) Attempt(start int) { l.printf("try %v", start) }

// Matched logs a reported match.
func (l *Logger) Matched(span pattern.Span) { l.printf("match %v", span) }

func (l *Logger) printf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	prefix := l.stamp.FormatString(l.now())
	if l.label != "" {
		prefix += " " + l.label
	}
	fmt.Fprintf(l.out, "[%v] %v\n", prefix, fmt.Sprintf(format, args...))
}
