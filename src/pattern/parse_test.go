package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		pat      string
		expected string
		anchored bool
	}{
		{"", "[]", false},
		{"^", "[]", true},
		{"abc", "[a b c]", false},
		{`^a*[b-d]+\.x?$`, `[a* [b-d]+ \. x? $]`, true},
		{"[^]a]*b", "[[^]a]* b]", false},
		{"*a", "[* a]", false},
		{"a**", "[a* *]", false},
		{"[ab", "[[ a b]", false},
		{`a\`, `[a \]`, false},
		{"$a^", "[$ a ^]", false},
		{`\$`, `[\$]`, false},
	}
	for _, test := range tests {
		tokens, anchored, err := tokenize(test.pat, true, false)
		require.NoError(t, err)
		assert.Equal(t, test.anchored, anchored, "%q", test.pat)
		assert.Equal(t, test.expected, formatTokens(tokens), "%q", test.pat)
	}
}

func TestTokenizeKinds(t *testing.T) {
	t.Parallel()
	tokens, _, err := tokenize(`.\.[.]$`, true, false)
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	assert.Equal(t, atomDot, tokens[0].kind)
	assert.Equal(t, atomEscaped, tokens[1].kind)
	assert.Equal(t, atomClass, tokens[2].kind)
	assert.Equal(t, atomEnd, tokens[3].kind)

	assert.True(t, tokens[0].matches('x'))
	assert.False(t, tokens[1].matches('x'))
	assert.True(t, tokens[1].matches('.'))
	assert.True(t, tokens[2].matches('.'))
	assert.False(t, tokens[2].matches('x'))
	assert.False(t, tokens[3].matches('$'))
}

func TestParseClass(t *testing.T) {
	t.Parallel()
	tests := []struct {
		src     string
		next    int
		members string
		others  string
	}{
		{"[abc]", 5, "abc", "dA]["},
		{"[a-c]x", 5, "abc", "-dx"},
		{"[^a-c]", 6, "d-x]", "abc"},
		{"[]]", 3, "]", "a["},
		{"[^]]", 4, "a[", "]"},
		{"[a-]", 4, "a-", "b"},
		{"[-a]", 4, "a-", "b"},
		{"[c-a]", 5, "ca-", "b"},
		{"[a-a]", 5, "a", "b-"},
		{"[0-9A-F]", 8, "09AF5C", "aG"},
		{"[.*]", 4, ".*", "a"},
	}
	for _, test := range tests {
		cls, next, ok := parseClass(test.src, 0)
		require.True(t, ok, test.src)
		assert.Equal(t, test.next, next, test.src)
		for _, ch := range []byte(test.members) {
			assert.True(t, cls.matches(ch), "%q should hold %q", test.src, ch)
		}
		for _, ch := range []byte(test.others) {
			assert.False(t, cls.matches(ch), "%q should not hold %q", test.src, ch)
		}
	}

	for _, src := range []string{"[", "[^", "[]", "[abc", "[a-"} {
		_, next, ok := parseClass(src, 0)
		assert.False(t, ok, src)
		assert.Equal(t, len(src), next, src)
	}
}

func TestLiteralPrefix(t *testing.T) {
	t.Parallel()
	tests := []struct {
		pat      string
		expected string
	}{
		{`ab\.c*d`, "ab."},
		{"abc$", "abc"},
		{"a?bc", ""},
		{".abc", ""},
		{"ab[cd]", "ab"},
		{"", ""},
	}
	for _, test := range tests {
		tokens, _, err := tokenize(test.pat, true, false)
		require.NoError(t, err)
		assert.Equal(t, test.expected, string(literalPrefix(tokens)), test.pat)
	}
}

func TestPrefilterNext(t *testing.T) {
	t.Parallel()
	tokens, _, err := tokenize("ab*", true, false)
	require.NoError(t, err)
	assert.Nil(t, newPrefilter(tokens, "abab"))

	tokens, _, err = tokenize("abc", true, false)
	require.NoError(t, err)
	pf := newPrefilter(tokens, "xxabcabc")
	require.NotNil(t, pf)
	next, ok := pf.next(0)
	assert.True(t, ok)
	assert.Equal(t, 2, next)
	next, ok = pf.next(3)
	assert.True(t, ok)
	assert.Equal(t, 5, next)
	_, ok = pf.next(6)
	assert.False(t, ok)
}
