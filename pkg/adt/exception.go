package adt

import "fmt"

// UnhandledException wraps a fault raised by caller code that came with no
// error mapper. It is a plain value variant, so it can be matched.
var UnhandledException = DefineValueVariant("UnhandledException", false)

// Raise wraps cause into an UnhandledException tag.
func Raise(cause any) Tag {
	return UnhandledException.New(cause)
}

// IsUnhandledException reports whether tag is an UnhandledException.
func IsUnhandledException(tag Tag) bool {
	return IsOfVariant(tag, UnhandledException)
}

// Capture runs fn and returns the value it panicked with, if any.
// Contract violations are re-panicked.
func Capture(fn func()) (cause any, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			if IsContractViolation(r) {
				panic(r)
			}
			cause, panicked = r, true
		}
	}()
	fn()
	return nil, false
}

// UnhandledError is the error form of an unhandled fault, for rejection
// types that hold errors rather than tags.
type UnhandledError struct {
	Cause any
}

func (e *UnhandledError) Error() string {
	return fmt.Sprintf("unhandled exception: %v", e.Cause)
}

// Unwrap returns the cause when it is itself an error.
func (e *UnhandledError) Unwrap() error {
	err, _ := e.Cause.(error)
	return err
}
