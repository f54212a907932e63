package task

import (
	"context"
	"errors"

	"github.com/ib-77/tagged/pkg/adt"
	"github.com/ib-77/tagged/pkg/adt/core"
)

// ErrClosedWithoutValue is the cause used by FromChan when the channel is
// closed before it delivers a value.
var ErrClosedWithoutValue = errors.New("task: channel closed without a value")

// ToChan returns a channel that receives t's terminal state once and is then
// closed.
func ToChan[T, E any](t *Task[T, E]) <-chan adt.Tag {
	out := make(chan adt.Tag, 1)
	t.Subscribe(func(state adt.Tag) {
		out <- state
		close(out)
	})
	return out
}

// FromChan resolves with the first value received from in. A channel closed
// before delivering rejects with UnhandledException(ErrClosedWithoutValue).
func FromChan[T any](ctx context.Context, in <-chan T) *Task[T, adt.Tag] {
	return FromPromise(ctx, func() (T, error) {
		v, ok := <-in
		if !ok {
			var zero T
			return zero, ErrClosedWithoutValue
		}
		return v, nil
	})
}

// All resolves with the values of tasks, in order, once every task has
// resolved. It rejects with the reason of the first task, in order, that
// rejects.
func All[T, E any](ctx context.Context, tasks ...*Task[T, E]) *Task[[]T, E] {
	out := New[[]T, E]()
	core.GetDispatcher(ctx, core.Goroutines).Submit(func() {
		values := make([]T, 0, len(tasks))
		for _, t := range tasks {
			state := t.Settled()
			if !adt.IsUnwrappable(state) {
				out.Reject(adt.UnsafeUnwrapAs[E](state))
				return
			}
			values = append(values, adt.UnsafeUnwrapAs[T](state))
		}
		out.Resolve(values)
	})
	return out
}
