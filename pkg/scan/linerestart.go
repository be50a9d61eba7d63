package scan

import "strings"

// LineRestart splits each line into a fresh token slice and walks it
// with an explicit two-level cursor: the outer cursor reads raw lines,
// the inner cursor indexes the current line's tokens. Exhausting the
// slice restarts the split on the next line.
type LineRestart struct {
	src  *Source
	toks []string
	i    int
	err  error
}

func NewLineRestart(src *Source) *LineRestart {
	return &LineRestart{src: src}
}

func (s *LineRestart) HasNext() bool {
	if s.err != nil {
		return false
	}
	for s.i >= len(s.toks) {
		line, err := s.src.ReadLine()
		if err != nil {
			s.err = err
			return false
		}
		s.toks = strings.Fields(line)
		s.i = 0
	}
	return true
}

func (s *LineRestart) Next() (string, error) {
	if !s.HasNext() {
		return "", endErr(s.err)
	}
	tok := s.toks[s.i]
	s.i++
	return tok, nil
}

func (s *LineRestart) NextInt() (int, error) {
	tok, err := s.Next()
	if err != nil {
		return 0, err
	}
	return parseInt(tok)
}

// NextLine discards the current token slice, forcing a restart, and
// returns the next raw line.
func (s *LineRestart) NextLine() (string, error) {
	s.toks, s.i = nil, 0
	line, err := s.src.ReadLine()
	if err != nil {
		return "", lineErr(err)
	}
	return line, nil
}

func (s *LineRestart) Close() error { return s.src.Close() }
