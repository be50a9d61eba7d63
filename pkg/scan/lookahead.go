package scan

import (
	"unicode"
	"unicode/utf8"
)

// Lookahead holds one mutable per-line tokenizer and advances it lazily.
// When the tokenizer runs dry, lines are read until one yields a token.
// The advance is an explicit loop, not recursion, so a run of thousands
// of blank lines cannot grow the stack.
type Lookahead struct {
	src *Source
	tk  *lineTokenizer
	err error
}

func NewLookahead(src *Source) *Lookahead {
	return &Lookahead{src: src}
}

func (s *Lookahead) HasNext() bool {
	return s.advance()
}

// advance ensures the held tokenizer has a token, reading lines as
// needed. False once the source is exhausted or failed.
func (s *Lookahead) advance() bool {
	if s.err != nil {
		return false
	}
	for s.tk == nil || !s.tk.hasMore() {
		line, err := s.src.ReadLine()
		if err != nil {
			s.err = err
			s.tk = nil
			return false
		}
		s.tk = &lineTokenizer{line: line}
	}
	return true
}

func (s *Lookahead) Next() (string, error) {
	// Next re-runs the same lookahead HasNext performs, so it is safe
	// to call either one first.
	if !s.advance() {
		return "", endErr(s.err)
	}
	return s.tk.nextToken(), nil
}

func (s *Lookahead) NextInt() (int, error) {
	tok, err := s.Next()
	if err != nil {
		return 0, err
	}
	return parseInt(tok)
}

// NextLine discards the held tokenizer and returns the next raw line.
func (s *Lookahead) NextLine() (string, error) {
	s.tk = nil
	line, err := s.src.ReadLine()
	if err != nil {
		return "", lineErr(err)
	}
	return line, nil
}

func (s *Lookahead) Close() error { return s.src.Close() }

// lineTokenizer walks one line with a byte cursor, yielding maximal runs
// of non-space runes (unicode.IsSpace).
type lineTokenizer struct {
	line string
	pos  int
}

// hasMore skips whitespace in place and reports whether a token starts
// at the cursor.
func (t *lineTokenizer) hasMore() bool {
	for t.pos < len(t.line) {
		r, size := utf8.DecodeRuneInString(t.line[t.pos:])
		if !unicode.IsSpace(r) {
			return true
		}
		t.pos += size
	}
	return false
}

func (t *lineTokenizer) nextToken() string {
	if !t.hasMore() {
		return ""
	}
	start := t.pos
	for t.pos < len(t.line) {
		r, size := utf8.DecodeRuneInString(t.line[t.pos:])
		if unicode.IsSpace(r) {
			break
		}
		t.pos += size
	}
	return t.line[start:t.pos]
}
