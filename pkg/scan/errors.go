package scan

import (
	"errors"
	"fmt"
	"io"
)

// ErrEndOfInput reports that Next or NextInt was called with no token
// remaining. It is never retried or recovered from.
var ErrEndOfInput = errors.New("scan: end of input")

// FormatError reports that NextInt consumed a token that is not a valid
// integer literal. The token has still been consumed; failure is final.
type FormatError struct {
	Token string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("scan: token %q is not an integer", e.Token)
}

func (e *FormatError) Unwrap() error { return e.Err }

// endErr converts an exhausted or nil source state into ErrEndOfInput;
// real source failures pass through unchanged.
func endErr(err error) error {
	if err != nil && err != io.EOF {
		return err
	}
	return ErrEndOfInput
}

// lineErr is endErr for the line-read paths, where err is never nil.
func lineErr(err error) error {
	if err == io.EOF {
		return ErrEndOfInput
	}
	return err
}
