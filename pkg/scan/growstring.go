package scan

import (
	"bytes"
	"io"
	"unicode"
)

// GrowString reads runes one at a time into a single reusable text
// buffer. The buffer is reset (length, not capacity) before each token,
// so its storage only ever grows, sized by the longest token seen.
// Whitespace here is unicode.IsSpace.
type GrowString struct {
	src *Source
	buf bytes.Buffer
	eof bool
	err error
}

func NewGrowString(src *Source) *GrowString {
	return &GrowString{src: src}
}

// HasNext is true while the character source has not reached end of
// input, even when only whitespace remains. The peeked rune is pushed
// back, so the following Next is unaffected.
func (g *GrowString) HasNext() bool {
	if g.eof || g.err != nil {
		return false
	}
	if _, err := g.src.ReadChar(); err != nil {
		g.note(err)
		return false
	}
	if err := g.src.UnreadChar(); err != nil {
		g.note(err)
		return false
	}
	return true
}

func (g *GrowString) Next() (string, error) {
	g.buf.Reset()
	for {
		ch, err := g.src.ReadChar()
		if err != nil {
			g.note(err)
			if g.err != nil {
				return "", g.err
			}
			break
		}
		if unicode.IsSpace(ch) {
			if g.buf.Len() > 0 {
				break
			}
			// Leading whitespace run; keep consuming.
			continue
		}
		g.buf.WriteRune(ch)
	}
	if g.buf.Len() == 0 {
		return "", ErrEndOfInput
	}
	return g.buf.String(), nil
}

func (g *GrowString) NextInt() (int, error) {
	tok, err := g.Next()
	if err != nil {
		return 0, err
	}
	return parseInt(tok)
}

// NextLine returns the remainder of the current line, resuming token
// reads on the next one.
func (g *GrowString) NextLine() (string, error) {
	if g.eof {
		return "", ErrEndOfInput
	}
	line, err := g.src.ReadLine()
	if err != nil {
		g.note(err)
		return "", lineErr(err)
	}
	return line, nil
}

func (g *GrowString) Close() error { return g.src.Close() }

func (g *GrowString) note(err error) {
	if err == io.EOF {
		g.eof = true
		return
	}
	g.err = err
}
