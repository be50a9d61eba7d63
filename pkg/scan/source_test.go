package scan

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceReadLine(t *testing.T) {
	t.Parallel()

	src := NewSource(strings.NewReader("first\r\nsecond\nthird"))

	for _, want := range []string{"first", "second", "third"} {
		line, err := src.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}

	_, err := src.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestSourceReadCharPushback(t *testing.T) {
	t.Parallel()

	src := NewSource(strings.NewReader("héllo"))

	ch, err := src.ReadChar()
	require.NoError(t, err)
	require.Equal(t, 'h', ch)

	ch, err = src.ReadChar()
	require.NoError(t, err)
	require.Equal(t, 'é', ch)

	require.NoError(t, src.UnreadChar())
	ch, err = src.ReadChar()
	require.NoError(t, err)
	assert.Equal(t, 'é', ch)
}

func TestSourceMixedLineAndCharReads(t *testing.T) {
	t.Parallel()

	src := NewSource(strings.NewReader("ab\ncd"))

	ch, err := src.ReadChar()
	require.NoError(t, err)
	require.Equal(t, 'a', ch)

	line, err := src.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "b", line)

	line, err = src.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "cd", line)
}

type closeRecorder struct {
	io.Reader
	closed int
}

func (c *closeRecorder) Close() error {
	c.closed++
	return nil
}

func TestSourceCloseForwards(t *testing.T) {
	t.Parallel()

	rec := &closeRecorder{Reader: strings.NewReader("x")}
	src := NewSource(rec)
	require.NoError(t, src.Close())
	assert.Equal(t, 1, rec.closed)

	// A plain reader has nothing to release.
	assert.NoError(t, NewSource(strings.NewReader("y")).Close())
}
