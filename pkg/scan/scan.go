// Package scan extracts whitespace-delimited tokens from a sequential
// character/line source. Six interchangeable strategies implement the
// same contract; they differ in allocation cost, lookahead behavior and
// buffer reuse, and each keeps its own whitespace definition.
package scan

import (
	"fmt"
	"strconv"
)

// Scanner is the contract shared by every strategy.
//
// HasNext may consume source lines or characters as lookahead, but never
// a token: calling it repeatedly does not change what the following Next
// returns. Next fails with ErrEndOfInput when HasNext is false at call
// time. No Scanner is safe for concurrent use.
type Scanner interface {
	HasNext() bool
	Next() (string, error)
	NextInt() (int, error)
	NextLine() (string, error)
	Close() error
}

// Kind selects a scanning strategy at construction time.
type Kind uint8

const (
	KindDelegate Kind = iota
	KindLineRestart
	KindLookahead
	KindTyped
	KindGrowString
	KindGrowArray
)

var kindNames = [...]string{
	KindDelegate:    "delegate",
	KindLineRestart: "linerestart",
	KindLookahead:   "lookahead",
	KindTyped:       "typed",
	KindGrowString:  "growstring",
	KindGrowArray:   "growarray",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind maps a strategy name to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("scan: unknown strategy %q", name)
}

// Kinds returns every strategy in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, len(kindNames))
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

// New constructs the strategy named by k over src. Panics on an
// out-of-range Kind.
func New(k Kind, src *Source) Scanner {
	switch k {
	case KindDelegate:
		return NewDelegate(src)
	case KindLineRestart:
		return NewLineRestart(src)
	case KindLookahead:
		return NewLookahead(src)
	case KindTyped:
		return NewTyped(src)
	case KindGrowString:
		return NewGrowString(src)
	case KindGrowArray:
		return NewGrowArray(src)
	}
	panic(fmt.Sprintf("scan: unknown strategy %v", k))
}

// parseInt is the shared Next-then-parse path behind NextInt. The Typed
// strategy bypasses it when the classifier already knows the value.
func parseInt(tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &FormatError{Token: tok, Err: err}
	}
	return n, nil
}
