package gridfile

import (
	"errors"
	"fmt"
)

var (
	// ErrIO reports a file that could not be opened, read or written.
	ErrIO = errors.New("grid file i/o")
	// ErrMalformed reports file contents that do not describe the target grid.
	ErrMalformed = errors.New("malformed grid data")
)

// IOError wraps a filesystem failure. errors.Is matches both ErrIO and the
// underlying error.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() []error { return []error{ErrIO, e.Err} }

// MalformedError describes why decoding stopped. Token is the 1-based index of
// the offending token, or 0 when the problem is the token count.
type MalformedError struct {
	Token  int
	Reason string
}

func (e *MalformedError) Error() string {
	if e.Token > 0 {
		return fmt.Sprintf("malformed grid data at token %d: %s", e.Token, e.Reason)
	}
	return "malformed grid data: " + e.Reason
}

func (e *MalformedError) Unwrap() error { return ErrMalformed }
