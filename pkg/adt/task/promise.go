package task

import (
	"context"

	"github.com/ib-77/tagged/pkg/adt"
	"github.com/ib-77/tagged/pkg/adt/core"
)

// Promise is an external asynchronous completion: a function that produces
// a value or fails by returning an error or panicking.
type Promise[T any] func() (T, error)

// FromPromise runs promise on the dispatcher carried by ctx and settles the
// returned task with its outcome. Failures are rejected as
// UnhandledException(cause).
func FromPromise[T any](ctx context.Context, promise Promise[T]) *Task[T, adt.Tag] {
	return FromPromiseMapped(ctx, promise, adt.Raise)
}

// FromPromiseMapped is FromPromise with an explicit error mapper: failures
// are rejected with mapper(cause). A panic inside mapper is not captured.
func FromPromiseMapped[T, E any](ctx context.Context, promise Promise[T], mapper func(cause any) E) *Task[T, E] {
	t := New[T, E]()
	core.GetDispatcher(ctx, core.Goroutines).Submit(func() {
		var (
			value T
			err   error
		)
		cause, panicked := adt.Capture(func() {
			value, err = promise()
		})
		switch {
		case panicked:
			t.Reject(mapper(cause))
		case err != nil:
			t.Reject(mapper(err))
		default:
			t.Resolve(value)
		}
	})
	return t
}
