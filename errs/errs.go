// Package errs defines the error taxonomy shared across kotoba's packages.
//
// Every fallible operation in the core returns a *Error (or wraps one via
// fmt.Errorf("...: %w", err)) so callers can branch on Kind with errors.As
// instead of parsing messages.
package errs

import "fmt"

// Kind classifies a failure into one of the categories a caller might want
// to handle differently.
type Kind int

const (
	// Load covers dictionary I/O, decompression, format mismatch, or a
	// missing required file.
	Load Kind = iota
	// Parse covers malformed JSON configuration, an unknown enum value, or
	// a required field absent from it.
	Parse
	// Schema covers a user-dictionary CSV whose field count does not match
	// the dictionary's schema.
	Schema
	// Segmentation covers the absence of a Viterbi path to EOS. Should
	// never occur given the DEFAULT unknown-word fallback; treated as a
	// fatal bug signal rather than a recoverable condition.
	Segmentation
	// Filter covers an invalid filter configuration: a regex that fails to
	// compile, a duplicate mapping entry, or an unknown filter kind.
	Filter
	// Content covers malformed UTF-8 encountered at an API boundary.
	Content
)

func (k Kind) String() string {
	switch k {
	case Load:
		return "LoadError"
	case Parse:
		return "ParseError"
	case Schema:
		return "SchemaError"
	case Segmentation:
		return "SegmentationError"
	case Filter:
		return "FilterError"
	case Content:
		return "ContentError"
	default:
		return "UnknownError"
	}
}

// Error is the concrete error type returned by every fallible operation in
// kotoba. It carries a Kind for programmatic dispatch and an optional
// wrapped cause for diagnostics.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New constructs a *Error with no wrapped cause.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap constructs a *Error wrapping cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether err is a *Error of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	for err != nil {
		if ae, ok := err.(*Error); ok {
			e = ae
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return e != nil && e.Kind == kind
}
