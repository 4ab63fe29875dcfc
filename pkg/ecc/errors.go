package ecc

import (
	"errors"
	"fmt"
)

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrMismatchedField is returned when two field elements from different
	// prime fields are combined.
	ErrMismatchedField = ErrorKind("ErrMismatchedField")

	// ErrCurveMismatch is returned when points from different curves are
	// combined.
	ErrCurveMismatch = ErrorKind("ErrCurveMismatch")

	// ErrPointNotOnCurve is returned when a coordinate does not satisfy the
	// curve equation.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")

	// ErrDecode is returned when a SEC encoded point or a serialized
	// signature is too short, too long or has an unknown format byte.
	ErrDecode = ErrorKind("ErrDecode")

	// ErrDivisionByZero is returned when the zero field element is inverted.
	ErrDivisionByZero = ErrorKind("ErrDivisionByZero")

	// ErrInvalidModulus is returned when a field is declared with a modulus
	// that cannot be prime, or an operation needs a modulus of a specific
	// shape.
	ErrInvalidModulus = ErrorKind("ErrInvalidModulus")

	// ErrInvalidScalar is returned for negative scalars and private keys
	// outside [1, N).
	ErrInvalidScalar = ErrorKind("ErrInvalidScalar")

	// ErrIdentityEncoding is returned when the point at infinity is passed to
	// a SEC encoder.
	ErrIdentityEncoding = ErrorKind("ErrIdentityEncoding")

	// ErrNoSignature is returned when the ephemeral nonce produced the point
	// at infinity. Signing is not retried; the caller may sign again.
	ErrNoSignature = ErrorKind("ErrNoSignature")
)

// ErrInvalidParameters is returned when an options struct fails validation.
var ErrInvalidParameters = errors.New("invalid parameters")

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to field, curve or codec operations. It
// has full support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error given a set of arguments.
func NewError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// Errorf is NewError with a formatted description.
func Errorf(kind ErrorKind, format string, args ...interface{}) Error {
	return Error{Err: kind, Description: fmt.Sprintf(format, args...)}
}

// BatchError reports the first failing item of a batch operation.
type BatchError struct {
	Index int
	Err   error
}

func (b *BatchError) Error() string {
	if b.Err != nil {
		return fmt.Sprintf("batch item %d: %v", b.Index, b.Err)
	}
	return fmt.Sprintf("batch item %d failed", b.Index)
}

func (b *BatchError) Unwrap() error {
	return b.Err
}

// NewBatchError creates a new BatchError.
func NewBatchError(index int, err error) *BatchError {
	return &BatchError{
		Index: index,
		Err:   err,
	}
}
