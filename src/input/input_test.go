package input

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanema/rematch/src/rerrors"
)

func TestParseCase(t *testing.T) {
	t.Parallel()
	tests := []struct {
		src           string
		pattern, text string
		err           error
	}{
		{"abc\nxabc\n", "abc", "xabc", nil},
		{"abc\nxabc", "abc", "xabc", nil},
		{"abc\r\nxabc\r\n", "abc", "xabc", nil},
		{"abc\n\n", "abc", "", nil},
		{"\nxabc\n", "", "xabc", nil},
		{"abc\nxabc\nignored\n", "abc", "xabc", nil},
		{"abc\n", "", "", ErrMissingSubject},
		{"abc", "", "", ErrMissingSubject},
		{"", "", "", ErrMissingPattern},
	}
	for _, test := range tests {
		c, err := ParseCase("<test>", strings.NewReader(test.src))
		if test.err != nil {
			assert.ErrorIs(t, err, test.err, "%q", test.src)
			assert.ErrorIs(t, err, &rerrors.Error{Kind: rerrors.InputErr})
			continue
		}
		require.NoError(t, err, "%q", test.src)
		assert.Equal(t, test.pattern, c.Pattern)
		assert.Equal(t, test.text, c.Text)
		assert.Equal(t, "<test>", c.Name)
	}
}

func TestReadCase(t *testing.T) {
	t.Parallel()
	c, err := ReadCase(filepath.Join("testdata", "case.txt"))
	require.NoError(t, err)
	assert.Equal(t, Case{Name: filepath.Join("testdata", "case.txt"), Pattern: "[a-c]+", Text: "xabcccy"}, c)
	assert.False(t, c.Checked())

	_, err = ReadCase(filepath.Join("testdata", "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	var rerr *rerrors.Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, rerrors.InputErr, rerr.Kind)
}

func TestLoadBatch(t *testing.T) {
	t.Parallel()
	cases, err := LoadBatch(filepath.Join("testdata", "batch.yaml"))
	require.NoError(t, err)
	require.Len(t, cases, 3)

	assert.Equal(t, Case{Name: "class run", Pattern: "[a-c]+", Text: "xabcccy", Want: []int{1}}, cases[0])
	assert.Equal(t, "case 2", cases[1].Name)
	assert.True(t, cases[1].Checked())
	assert.Empty(t, cases[1].Want)
	assert.False(t, cases[2].Checked())
}

func TestDecodeBatchErrors(t *testing.T) {
	t.Parallel()
	_, err := DecodeBatch("<test>", strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyBatch)

	_, err = DecodeBatch("<test>", strings.NewReader("cases: []\n"))
	assert.ErrorIs(t, err, ErrEmptyBatch)

	_, err = DecodeBatch("<test>", strings.NewReader("cases:\n  - pattern: a\n    subject: b\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad batch")
}
