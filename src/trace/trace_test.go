package trace

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanema/rematch/src/pattern"
)

func fixedClock() time.Time {
	return time.Date(2024, time.March, 9, 14, 5, 7, 0, time.UTC)
}

func TestLogger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger, err := New(&buf, "%H:%M:%S")
	require.NoError(t, err)
	logger.now = fixedClock

	spans, err := pattern.New(pattern.Config{Observer: logger}).Find(context.Background(), "b", "abb")
	require.NoError(t, err)
	assert.Len(t, spans, 2)
	assert.Equal(t, `[14:05:07] try 0
[14:05:07] try 1
[14:05:07] match 1-2
[14:05:07] try 2
[14:05:07] match 2-3
[14:05:07] try 3
`, buf.String())
}

func TestLoggerLabel(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger, err := New(&buf, "%Y-%m-%d")
	require.NoError(t, err)
	logger.now = fixedClock
	logger.Label("case 1")
	logger.Attempt(4)
	logger.Label("")
	logger.Matched(pattern.Span{Start: 4, End: 6})
	assert.Equal(t, "[2024-03-09 case 1] try 4\n[2024-03-09] match 4-6\n", buf.String())
}

func TestLoggerBadFormat(t *testing.T) {
	t.Parallel()
	_, err := New(&bytes.Buffer{}, "%")
	assert.Error(t, err)
}
