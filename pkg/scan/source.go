package scan

import (
	"bufio"
	"io"
	"strings"
)

// Source is the sequential input every strategy pulls from: lines and/or
// raw characters, read once, never seekable. It is owned by the scanner
// built on top of it and released by that scanner's Close.
type Source struct {
	r *bufio.Reader
	c io.Closer
}

// NewSource wraps r. If r is also an io.Closer, Close forwards to it.
func NewSource(r io.Reader) *Source {
	src := &Source{r: bufio.NewReader(r)}
	if c, ok := r.(io.Closer); ok {
		src.c = c
	}
	return src
}

// ReadLine returns the next line without its terminator; both "\n" and
// "\r\n" endings are stripped. io.EOF once the source is exhausted. A
// final line without a terminator is returned before io.EOF.
func (s *Source) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// ReadChar returns the next rune, io.EOF at end of input.
func (s *Source) ReadChar() (rune, error) {
	ch, _, err := s.r.ReadRune()
	return ch, err
}

// UnreadChar pushes back the rune last returned by ReadChar. Only one
// rune of pushback is available.
func (s *Source) UnreadChar() error {
	return s.r.UnreadRune()
}

// Close releases the underlying reader. Not idempotent: closing twice is
// up to the wrapped Closer.
func (s *Source) Close() error {
	if s.c != nil {
		return s.c.Close()
	}
	return nil
}
