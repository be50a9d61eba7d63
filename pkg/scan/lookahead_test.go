package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The advance over empty lines is a loop, so arbitrarily long blank
// runs terminate without touching the call stack.
func TestLookaheadManyBlankLines(t *testing.T) {
	t.Parallel()

	input := strings.Repeat("\n", 5000) + "end"
	s := NewLookahead(NewSource(strings.NewReader(input)))
	defer s.Close()

	require.True(t, s.HasNext())
	tok, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, "end", tok)
	assert.False(t, s.HasNext())
}

func TestLookaheadNextWithoutHasNext(t *testing.T) {
	t.Parallel()

	// Next performs the same lookahead HasNext does.
	s := NewLookahead(NewSource(strings.NewReader("\n\n  \nalone\n")))
	defer s.Close()

	tok, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, "alone", tok)

	_, err = s.Next()
	assert.ErrorIs(t, err, ErrEndOfInput)
}

func TestLineTokenizerCursor(t *testing.T) {
	t.Parallel()

	tk := &lineTokenizer{line: "  un  deux\ttrois  "}

	var toks []string
	for tk.hasMore() {
		toks = append(toks, tk.nextToken())
	}
	assert.Equal(t, []string{"un", "deux", "trois"}, toks)
	assert.False(t, tk.hasMore())
	assert.Equal(t, "", tk.nextToken())
}
