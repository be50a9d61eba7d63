package scan

import "fmt"

// Delegate forwards tokenization entirely to fmt.Fscan, the built-in
// whitespace tokenizer: it decides both token and line boundaries on its
// own, reading straight from the source's buffered reader.
type Delegate struct {
	src     *Source
	pending string
	ok      bool // pending holds a pre-fetched token
	err     error
}

func NewDelegate(src *Source) *Delegate {
	return &Delegate{src: src}
}

func (d *Delegate) HasNext() bool {
	if d.ok {
		return true
	}
	if d.err != nil {
		return false
	}
	var tok string
	if _, err := fmt.Fscan(d.src.r, &tok); err != nil {
		d.err = err
		return false
	}
	d.pending, d.ok = tok, true
	return true
}

func (d *Delegate) Next() (string, error) {
	if !d.HasNext() {
		return "", endErr(d.err)
	}
	d.ok = false
	return d.pending, nil
}

func (d *Delegate) NextInt() (int, error) {
	tok, err := d.Next()
	if err != nil {
		return 0, err
	}
	return parseInt(tok)
}

// NextLine reads two lines from the source: the remainder of the current
// line is dropped, and the following full line is returned. The doubled
// read looks unintentional, but callers count consumed lines around it,
// so it is kept as-is rather than silently corrected.
func (d *Delegate) NextLine() (string, error) {
	d.ok = false
	if _, err := d.src.ReadLine(); err != nil {
		return "", lineErr(err)
	}
	line, err := d.src.ReadLine()
	if err != nil {
		return "", lineErr(err)
	}
	return line, nil
}

func (d *Delegate) Close() error { return d.src.Close() }
