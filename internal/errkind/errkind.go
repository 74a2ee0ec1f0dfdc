// Package errkind defines the error-kind sum type shared by every package
// in this module, per the core's error-handling design: error kinds, not
// distinct Go error types, and every user-supplied callback is trapped so
// a panic/throw is converted into the matching kind while the original
// cause is preserved.
package errkind

import "fmt"

// Kind enumerates the error conditions the core can surface.
type Kind string

const (
	NoPositiveFrequencies  Kind = "NoPositiveFrequencies"
	TooManyFilterMisses    Kind = "TooManyFilterMisses"
	TooManyUniqueMisses    Kind = "TooManyUniqueMisses"
	EmptySequence          Kind = "EmptySequence"
	InvariantFailedError   Kind = "InvariantFailedError"
	AssertionFailedError   Kind = "AssertionFailedError"
	ExhaustiveNotAvailable Kind = "ExhaustiveNotAvailable"
	SetSizeUnreachable     Kind = "SetSizeUnreachable"
)

// Error carries a Kind plus a human-readable message and optional cause.
// Configuration-time failures (invalid ranges, negative sizes) and the
// capped local-recovery loops (filter/unique retries) panic with an
// *Error; FilterErr returns one instead of panicking. Trap converts a
// panic from a user callback into an *Error, and action.Sequence reports
// its failures with these kinds.
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

// New builds an *Error of the given kind.
func New(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error of the given kind around a cause, typically a
// recovered panic from a user-supplied predicate, mapper, action, or
// invariant.
func Wrap(k Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Trap runs fn and converts any panic into an *Error of kind k, preserving
// the original value as the Cause (wrapped in a plain error if it was not
// one already). It returns fn's result and a nil error on success.
func Trap[T any](k Kind, fn func() T) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("%v", r)
			}
			err = Wrap(k, cause, "user callback panicked")
		}
	}()
	result = fn()
	return result, nil
}
