package flag

import (
	"errors"
	"fmt"
	"strings"
)

// ErrHelp is the error returned if the -help or -h flag is invoked
// but no such flag is defined.
var ErrHelp = errors.New("flag: help requested")

// ErrParse is wrapped by a converter when the flag text is not a valid
// spelling of the flag's type.
var ErrParse = errors.New("parse error")

// ErrRange is wrapped by a converter when the flag text is well formed but
// out of range for the flag's type.
var ErrRange = errors.New("value out of range")

// Error is a recoverable failure caused by malformed command-line input:
// bad flag syntax, an undefined flag, a missing value or a value that
// does not convert. Parse returns it (or panics with it under
// PanicOnError).
type Error struct {
	Flag string // offending flag name, empty for syntax errors
	Msg  string
	Err  error // converter error, if any
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Err }

// newError is the single construction path for recoverable errors.
func newError(flag string, cause error, format string, a ...any) *Error {
	return &Error{Flag: flag, Msg: fmt.Sprintf(format, a...), Err: cause}
}

// Panic is the value panicked with when the flag package is misused:
// redefining a flag, defining a malformed name, reading a flag before
// Parse, or writing through a reference whose storage has gone away.
// A Panic is never an *Error and is not meant to be recovered in normal
// operation.
type Panic struct {
	Msg string
}

func (p *Panic) Error() string { return p.Msg }

// newPanic is the single construction path for misuse faults.
func newPanic(format string, a ...any) *Panic {
	return &Panic{Msg: fmt.Sprintf(format, a...)}
}

// ConvError reports a failed conversion of flag text by a Converter.
type ConvError struct {
	Text string // the offending text
	Type string // the expected type, as shown in usage
	Err  error  // ErrParse, ErrRange or a converter specific error
}

func (e *ConvError) Error() string {
	return fmt.Sprintf("%v (expected %s)", e.Err, e.Type)
}

func (e *ConvError) Unwrap() error { return e.Err }

func convError(text, typ string, err error) error {
	return &ConvError{Text: text, Type: typ, Err: err}
}

// MultiError aggregates multiple errors deterministically.
type MultiError struct{ errs []error }

// Error implements error.
func (m *MultiError) Error() string {
	if m == nil || len(m.errs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m.errs))
	for _, e := range m.errs {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "; ")
}

// Errors returns a copy of the underlying errors slice.
func (m *MultiError) Errors() []error { return append([]error(nil), m.errs...) }

// Append adds a non-nil error.
func (m *MultiError) Append(err error) {
	if err != nil {
		m.errs = append(m.errs, err)
	}
}

// HasErrors returns true if at least one error recorded.
func (m *MultiError) HasErrors() bool { return m != nil && len(m.errs) > 0 }

// Unwrap lets errors.Is and errors.As walk every recorded error.
func (m *MultiError) Unwrap() []error {
	if m == nil {
		return nil
	}
	return m.errs
}

// ErrOrNil returns m if it holds any error and nil otherwise.
func (m *MultiError) ErrOrNil() error {
	if m.HasErrors() {
		return m
	}
	return nil
}
