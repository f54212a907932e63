package adt

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyUnwrap is raised when the payload of a unit tag is requested.
	ErrEmptyUnwrap = errors.New("adt: cannot unwrap empty tag")
	// ErrNoMatchFound is raised when a match has no arm for the tag and no else arm.
	ErrNoMatchFound = errors.New("adt: no matcher found")
	// ErrUnitTagPassed is raised when a handler needs a payload but the failure branch is a unit tag.
	ErrUnitTagPassed = errors.New("adt: unit tag passed to handler")
	// ErrPayloadType is raised when a payload does not have the type the caller asked for.
	ErrPayloadType = errors.New("adt: unexpected payload type")
)

// ContractError is the panic value used for caller contract violations.
// It is never turned into data by this library.
type ContractError struct {
	Err    error
	Detail string
}

func (e *ContractError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Detail
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

func contractViolation(err error, format string, args ...any) *ContractError {
	return &ContractError{Err: err, Detail: fmt.Sprintf(format, args...)}
}

// Violation builds the panic value for a contract violation detected
// outside this package.
func Violation(err error, format string, args ...any) *ContractError {
	return contractViolation(err, format, args...)
}

// IsContractViolation reports whether a recovered panic value is a
// contract violation raised by this library.
func IsContractViolation(recovered any) bool {
	err, ok := recovered.(error)
	if !ok {
		return false
	}
	var ce *ContractError
	return errors.As(err, &ce)
}
