package task

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tliron/commonlog"

	"github.com/ib-77/tagged/pkg/adt"
	"github.com/ib-77/tagged/pkg/adt/async"
)

// ErrNilTask is the fault recorded when a FlatMap mapper returns a nil task.
var ErrNilTask = errors.New("task: mapper returned a nil task")

// logger is looked up per call so a backend configured after package
// initialisation is picked up.
func logger() commonlog.Logger {
	return commonlog.GetLogger("tagged.task")
}

// Task is a single-assignment settlement cell. It starts Pending and moves
// at most once to Resolved(T) or Rejected(E). Observers registered while it
// is pending are notified once, in registration order, at that transition.
//
// A Task is safe for concurrent use.
type Task[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time

	mu        sync.Mutex
	state     adt.Tag
	observers []func(adt.Tag)
	done      chan struct{} // closed on settlement
}

// New returns a pending task with no observers.
func New[T, E any]() *Task[T, E] {
	return &Task[T, E]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		state:     async.Pending(),
		done:      make(chan struct{}),
	}
}

// Resolved returns a task already resolved with value.
func Resolved[T, E any](value T) *Task[T, E] {
	t := New[T, E]()
	t.Resolve(value)
	return t
}

// Rejected returns a task already rejected with reason.
func Rejected[T, E any](reason E) *Task[T, E] {
	t := New[T, E]()
	t.Reject(reason)
	return t
}

func (t *Task[T, E]) Id() uuid.UUID {
	return t.id
}

func (t *Task[T, E]) CreatedAt() time.Time {
	return t.createdAt
}

// State returns the current async state: Pending, Resolved(T) or Rejected(E).
func (t *Task[T, E]) State() adt.Tag {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Task[T, E]) IsPending() bool {
	return async.IsPending(t.State())
}

func (t *Task[T, E]) IsResolved() bool {
	return async.IsResolved(t.State())
}

func (t *Task[T, E]) IsRejected() bool {
	return async.IsRejected(t.State())
}

// Value returns the resolution value, if the task is resolved.
func (t *Task[T, E]) Value() (T, bool) {
	state := t.State()
	if !async.IsResolved(state) {
		var zero T
		return zero, false
	}
	return adt.UnsafeUnwrapAs[T](state), true
}

// Reason returns the rejection reason, if the task is rejected.
func (t *Task[T, E]) Reason() (E, bool) {
	state := t.State()
	if !async.IsRejected(state) {
		var zero E
		return zero, false
	}
	return adt.UnsafeUnwrapAs[E](state), true
}

// Resolve settles a pending task with value. It is a no-op on a settled task.
func (t *Task[T, E]) Resolve(value T) {
	t.settle(async.Resolved(value))
}

// Reject settles a pending task with reason. It is a no-op on a settled task.
func (t *Task[T, E]) Reject(reason E) {
	t.settle(async.Rejected(reason))
}

func (t *Task[T, E]) settle(state adt.Tag) {
	t.mu.Lock()
	if !async.IsPending(t.state) {
		current := t.state
		t.mu.Unlock()
		logger().Debugf("task %s: dropped %s, already %s", t.id, state, current)
		return
	}
	t.state = state
	observers := t.observers
	t.observers = nil
	close(t.done)
	t.mu.Unlock()

	notify(state, observers)
}

// notify hands state to every observer. A panicking observer does not keep
// the others from running; the first panic is re-raised after the last one.
func notify(state adt.Tag, observers []func(adt.Tag)) {
	var first any
	for _, observer := range observers {
		if cause := runObserver(observer, state); cause != nil && first == nil {
			first = cause
		}
	}
	if first != nil {
		panic(first)
	}
}

func runObserver(observer func(adt.Tag), state adt.Tag) (cause any) {
	defer func() {
		cause = recover()
	}()
	observer(state)
	return nil
}

// Subscribe registers observer for the terminal state. On a settled task the
// observer runs immediately on the caller's goroutine; otherwise it runs on
// the goroutine that settles the task. If an observer panics, the remaining
// observers are still notified and the panic is then re-raised on the
// settling goroutine.
func (t *Task[T, E]) Subscribe(observer func(state adt.Tag)) {
	t.mu.Lock()
	if async.IsPending(t.state) {
		t.observers = append(t.observers, observer)
		t.mu.Unlock()
		return
	}
	state := t.state
	t.mu.Unlock()
	observer(state)
}

// Settled blocks until the task is settled and returns its terminal state.
// It never returns Pending. A task that is never settled blocks forever;
// use Wait to bound the wait.
func (t *Task[T, E]) Settled() adt.Tag {
	<-t.done
	return t.State()
}

// Wait is Settled with an abandonable wait. When ctx is done first it returns
// ctx.Err(); the task itself is left untouched.
func (t *Task[T, E]) Wait(ctx context.Context) (adt.Tag, error) {
	select {
	case <-t.done:
		return t.State(), nil
	case <-ctx.Done():
		return adt.Tag{}, ctx.Err()
	}
}

// Map returns a task that resolves with mapper(value) once t resolves, or
// rejects with t's reason, in which case mapper is never called.
//
// mapper runs on the goroutine that settles t. If it panics, the returned
// task is rejected with the fault converted to E (see FlatMap); t and its
// other observers are unaffected. Contract violations are not captured.
func Map[T, R, E any](t *Task[T, E], mapper func(T) R) *Task[R, E] {
	out := New[R, E]()
	t.Subscribe(func(state adt.Tag) {
		if !async.IsResolved(state) {
			out.Reject(adt.UnsafeUnwrapAs[E](state))
			return
		}
		value := adt.UnsafeUnwrapAs[T](state)
		var mapped R
		if cause, panicked := adt.Capture(func() { mapped = mapper(value) }); panicked {
			rejectUnhandled(out, cause)
			return
		}
		out.Resolve(mapped)
	})
	return out
}

// FlatMap returns a task that adopts the terminal state of mapper(value)
// once t resolves. If t rejects, the rejection propagates and mapper is
// never called.
//
// A panicking mapper, or one returning a nil task, rejects the returned task.
// The fault becomes an UnhandledException tag when E can hold an adt.Tag,
// an *adt.UnhandledError when E can hold that, the raw fault when E can hold
// it, and the zero E otherwise.
func FlatMap[T, R, E any](t *Task[T, E], mapper func(T) *Task[R, E]) *Task[R, E] {
	out := New[R, E]()
	t.Subscribe(func(state adt.Tag) {
		if !async.IsResolved(state) {
			out.Reject(adt.UnsafeUnwrapAs[E](state))
			return
		}
		value := adt.UnsafeUnwrapAs[T](state)
		var inner *Task[R, E]
		if cause, panicked := adt.Capture(func() { inner = mapper(value) }); panicked {
			rejectUnhandled(out, cause)
			return
		}
		if inner == nil {
			rejectUnhandled(out, ErrNilTask)
			return
		}
		inner.Subscribe(out.adopt)
	})
	return out
}

func (t *Task[T, E]) adopt(state adt.Tag) {
	if async.IsResolved(state) {
		t.Resolve(adt.UnsafeUnwrapAs[T](state))
		return
	}
	t.Reject(adt.UnsafeUnwrapAs[E](state))
}

func rejectUnhandled[T, E any](t *Task[T, E], cause any) {
	logger().Debugf("task %s: callback failed: %v", t.id, cause)
	t.Reject(unhandledReason[E](cause))
}

func unhandledReason[E any](cause any) E {
	if reason, ok := any(adt.Raise(cause)).(E); ok {
		return reason
	}
	if reason, ok := any(&adt.UnhandledError{Cause: cause}).(E); ok {
		return reason
	}
	if reason, ok := cause.(E); ok {
		return reason
	}
	var zero E
	return zero
}
