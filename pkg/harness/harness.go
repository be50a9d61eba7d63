// Package harness exercises the scanning strategies from the outside:
// it runs them over an input, times them, cross-checks their token
// sequences and renders a comparison report. The scanners themselves
// know nothing about it.
package harness

import (
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/agenthands/wordscan/pkg/scan"
)

// Result is one strategy's run over one input.
type Result struct {
	Strategy scan.Kind
	Tokens   int
	Elapsed  time.Duration
}

// Tokens drains one strategy over r and returns the full sequence.
func Tokens(k scan.Kind, r io.Reader) ([]string, error) {
	s := scan.New(k, scan.NewSource(r))
	defer s.Close()

	var toks []string
	for s.HasNext() {
		tok, err := s.Next()
		if err != nil {
			// The growable strategies report HasNext while only
			// trailing whitespace remains; the Next that drains it
			// is a clean stop, not a failure.
			if errors.Is(err, scan.ErrEndOfInput) {
				break
			}
			return nil, errors.Wrapf(err, "strategy %s", k)
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

// Run drains one strategy over r, counting tokens and wall time.
func Run(k scan.Kind, r io.Reader) (Result, error) {
	s := scan.New(k, scan.NewSource(r))
	defer s.Close()

	start := time.Now()
	n := 0
	for s.HasNext() {
		if _, err := s.Next(); err != nil {
			if errors.Is(err, scan.ErrEndOfInput) {
				break
			}
			return Result{}, errors.Wrapf(err, "strategy %s", k)
		}
		n++
	}
	return Result{Strategy: k, Tokens: n, Elapsed: time.Since(start)}, nil
}

// RunAll runs every strategy, opening a fresh reader for each one: the
// sources are read-once, so a run can never share a reader with the
// previous strategy.
func RunAll(open func() (io.Reader, error)) ([]Result, error) {
	results := make([]Result, 0, len(scan.Kinds()))
	for _, k := range scan.Kinds() {
		r, err := open()
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		res, err := Run(k, r)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Agree verifies that the strategies sharing the general whitespace
// rule produce identical token sequences. GrowArray is left out; its
// space-and-newline-only rule diverges on purpose.
func Agree(open func() (io.Reader, error)) error {
	var reference []string
	var refKind scan.Kind
	first := true

	for _, k := range scan.Kinds() {
		if k == scan.KindGrowArray {
			continue
		}
		r, err := open()
		if err != nil {
			return errors.Wrap(err, "opening input")
		}
		toks, err := Tokens(k, r)
		if err != nil {
			return err
		}
		if first {
			reference, refKind, first = toks, k, false
			continue
		}
		if len(toks) != len(reference) {
			return errors.Errorf("strategy %s produced %d tokens, %s produced %d",
				k, len(toks), refKind, len(reference))
		}
		for i := range toks {
			if toks[i] != reference[i] {
				return errors.Errorf("strategy %s token %d = %q, %s has %q",
					k, i, toks[i], refKind, reference[i])
			}
		}
	}
	return nil
}
