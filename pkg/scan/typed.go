package scan

import (
	"io"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"
)

// Typed wraps text/scanner, a classifier that tells word tokens from
// numeric ones natively. Words are maximal non-space runs that do not
// start with a digit; ints and floats are classified as numbers. The
// classifier owns its own read buffer, so all input, including NextLine,
// flows through it.
type Typed struct {
	src     *Source
	er      errReader
	sc      scanner.Scanner
	tok     rune
	scanned bool // tok holds an unclaimed classification
}

func NewTyped(src *Source) *Typed {
	t := &Typed{src: src}
	t.er.r = src.r
	t.sc.Init(&t.er)
	t.sc.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats
	t.sc.IsIdentRune = func(ch rune, i int) bool {
		if ch == scanner.EOF {
			return false
		}
		if i == 0 {
			return !unicode.IsSpace(ch) && !unicode.IsDigit(ch)
		}
		return !unicode.IsSpace(ch)
	}
	// The default handler prints to stderr; classification problems
	// surface as token boundaries instead.
	t.sc.Error = func(*scanner.Scanner, string) {}
	return t
}

func (t *Typed) HasNext() bool {
	if !t.scanned {
		t.tok = t.sc.Scan()
		t.scanned = true
	}
	return t.tok != scanner.EOF && t.er.err == nil
}

// Next advances the classifier one step and returns the token text,
// whatever its class.
func (t *Typed) Next() (string, error) {
	if !t.HasNext() {
		return "", endErr(t.er.err)
	}
	text := t.sc.TokenText()
	t.scanned = false
	return text, nil
}

// NextInt takes the numeric value straight from the classification:
// ints parse exactly, floats truncate toward zero. Word-classified
// tokens fall back to string parsing, so a leading-sign integer like
// "-7" still converts.
func (t *Typed) NextInt() (int, error) {
	if !t.HasNext() {
		return 0, endErr(t.er.err)
	}
	tok, text := t.tok, t.sc.TokenText()
	t.scanned = false
	switch tok {
	case scanner.Int:
		return parseInt(text)
	case scanner.Float:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, &FormatError{Token: text, Err: err}
		}
		return int(f), nil
	default:
		return parseInt(text)
	}
}

// NextLine drains runes through the classifier up to the newline and
// returns them; any pre-fetched classification is dropped so the next
// token starts on the following line.
func (t *Typed) NextLine() (string, error) {
	t.scanned = false
	var b strings.Builder
	for {
		ch := t.sc.Next()
		if ch == scanner.EOF {
			if t.er.err != nil {
				return "", t.er.err
			}
			if b.Len() == 0 {
				return "", ErrEndOfInput
			}
			break
		}
		if ch == '\n' {
			break
		}
		b.WriteRune(ch)
	}
	return strings.TrimSuffix(b.String(), "\r"), nil
}

func (t *Typed) Close() error { return t.src.Close() }

// errReader sits between the source and the classifier, which has no
// error channel of its own past the suppressed handler: the first
// non-EOF read failure is recorded and the classifier sees a clean end
// of input, so the stored error can surface from the next operation.
type errReader struct {
	r   io.Reader
	err error
}

func (e *errReader) Read(p []byte) (int, error) {
	n, err := e.r.Read(p)
	if err != nil && err != io.EOF {
		e.err = err
		return n, io.EOF
	}
	return n, err
}
