package harness_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/wordscan/pkg/harness"
	"github.com/agenthands/wordscan/pkg/scan"
)

func opener(input string) func() (io.Reader, error) {
	return func() (io.Reader, error) {
		return strings.NewReader(input), nil
	}
}

func TestRunAllCountsEveryStrategy(t *testing.T) {
	t.Parallel()

	results, err := harness.RunAll(opener("3 42\nhello world\n"))
	require.NoError(t, err)
	require.Len(t, results, len(scan.Kinds()))

	for _, res := range results {
		assert.Equal(t, 4, res.Tokens, "strategy %s", res.Strategy)
	}
}

// Inputs ending in whitespace keep the growable strategies' HasNext
// true past the last token; the harness must treat the empty drain as a
// clean stop on every strategy.
func TestRunAllTrailingWhitespace(t *testing.T) {
	t.Parallel()

	results, err := harness.RunAll(opener("hello world \n"))
	require.NoError(t, err)
	require.Len(t, results, len(scan.Kinds()))

	for _, res := range results {
		assert.Equal(t, 2, res.Tokens, "strategy %s", res.Strategy)
	}

	toks, err := harness.Tokens(scan.KindGrowString, strings.NewReader("hello world \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world"}, toks)

	toks, err = harness.Tokens(scan.KindGrowArray, strings.NewReader("hello world \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world"}, toks)
}

func TestTokens(t *testing.T) {
	t.Parallel()

	toks, err := harness.Tokens(scan.KindLookahead, strings.NewReader("a b\nc"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, toks)
}

func TestAgree(t *testing.T) {
	t.Parallel()

	// Tabs split for every participant; GrowArray is excluded so the
	// check still passes.
	require.NoError(t, harness.Agree(opener("un\tdeux trois\n quatre")))
	require.NoError(t, harness.Agree(opener("")))
}

func TestWriteReport(t *testing.T) {
	t.Parallel()

	results, err := harness.RunAll(opener("one two three"))
	require.NoError(t, err)

	var buf bytes.Buffer
	harness.WriteReport(&buf, results)

	out := buf.String()
	for _, k := range scan.Kinds() {
		assert.Contains(t, out, k.String())
	}
	assert.Contains(t, out, "TOKENS")
}
