package scan

import "io"

// initialArrayCap is the starting capacity of GrowArray's backing array.
const initialArrayCap = 16

// GrowArray accumulates runes into an explicit array/fill-level pair.
// On overflow the array is reallocated at double capacity and the prior
// contents copied; between tokens only the fill level resets, never the
// capacity. Unlike GrowString, whitespace is exactly space and newline.
// Tabs and other space-like runes are token characters here.
type GrowArray struct {
	src *Source
	buf []rune
	n   int
	eof bool
	err error
}

func NewGrowArray(src *Source) *GrowArray {
	return &GrowArray{src: src, buf: make([]rune, initialArrayCap)}
}

// HasNext mirrors GrowString: true until the character source ends.
func (g *GrowArray) HasNext() bool {
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

func (g *GrowArray) Next() (string, error) {
	g.n = 0
	for {
		ch, err := g.src.ReadChar()
		if err != nil {
			g.note(err)
			if g.err != nil {
				return "", g.err
			}
			break
		}
		if ch == ' ' || ch == '\n' {
			if g.n > 0 {
				break
			}
			continue
		}
		if g.n == len(g.buf) {
			g.grow()
		}
		g.buf[g.n] = ch
		g.n++
	}
	if g.n == 0 {
		return "", ErrEndOfInput
	}
	return string(g.buf[:g.n]), nil
}

func (g *GrowArray) NextInt() (int, error) {
	tok, err := g.Next()
	if err != nil {
		return 0, err
	}
	return parseInt(tok)
}

func (g *GrowArray) NextLine() (string, error) {
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

func (g *GrowArray) Close() error { return g.src.Close() }

// grow doubles the backing array, preserving the filled prefix.
func (g *GrowArray) grow() {
	next := make([]rune, len(g.buf)*2)
	copy(next, g.buf)
	g.buf = next
}

func (g *GrowArray) note(err error) {
	if err == io.EOF {
		g.eof = true
		return
	}
	g.err = err
}
