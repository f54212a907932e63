package imp

import (
	"context"

	"github.com/tliron/commonlog"

	"github.com/ib-77/tagged/pkg/adt"
	"github.com/ib-77/tagged/pkg/adt/result"
	"github.com/ib-77/tagged/pkg/adt/task"
)

func logger() commonlog.Logger {
	return commonlog.GetLogger("tagged.imp")
}

// Scope is handed to a sequence run by Do or DoAsync. Its unwrap helpers
// either return a payload or abort the whole sequence.
type Scope struct {
	ctx     context.Context
	unwraps int
}

// abort is the panic value that carries the abort cause to the driver.
type abort struct {
	cause adt.Tag
}

// Context returns the context the sequence was started with.
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Unwrap returns the payload of an unwrappable tag. Any other tag aborts the
// sequence with that tag as the cause; Unwrap does not return in that case.
func (s *Scope) Unwrap(tag adt.Tag) any {
	s.unwraps++
	if !adt.IsUnwrappable(tag) {
		panic(abort{cause: tag})
	}
	return adt.UnsafeUnwrap(tag)
}

// UnwrapAs is Scope.Unwrap with the payload converted to T.
func UnwrapAs[T any](s *Scope, tag adt.Tag) T {
	return adt.As[T](tag, s.Unwrap(tag))
}

// Await blocks until t settles and unwraps its terminal state: a resolved
// task yields its value, a rejected one aborts with the Rejected tag.
func Await[T, E any](s *Scope, t *task.Task[T, E]) T {
	return UnwrapAs[T](s, t.Settled())
}

// Do runs sequence on the caller's goroutine and collapses it into a
// Result: Ok(value) when it returns, Error(cause) when an unwrap aborts.
// A panic that is not a contract violation becomes
// Error(UnhandledException(panic value)).
func Do[R any](sequence func(s *Scope) R) adt.Tag {
	return drive(context.Background(), sequence)
}

// DoAsync returns a pending task immediately and runs sequence on the
// dispatcher carried by ctx. The task resolves with the returned value or
// rejects with the abort cause.
func DoAsync[R any](ctx context.Context, sequence func(s *Scope) R) *task.Task[R, adt.Tag] {
	t := task.New[R, adt.Tag]()
	dispatcherFor(ctx).Submit(func() {
		settleFrom(t, drive(ctx, sequence))
	})
	return t
}

func drive[R any](ctx context.Context, sequence func(s *Scope) R) (res adt.Tag) {
	s := &Scope{ctx: ctx}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if a, ok := r.(abort); ok {
			logger().Debugf("sequence aborted after %d unwraps: %s", s.unwraps, a.cause)
			res = result.Err(a.cause)
			return
		}
		if adt.IsContractViolation(r) {
			panic(r)
		}
		logger().Debugf("sequence panicked after %d unwraps: %v", s.unwraps, r)
		res = result.Err(adt.Raise(r))
	}()
	return result.Ok(sequence(s))
}

func settleFrom[R any](t *task.Task[R, adt.Tag], res adt.Tag) {
	if result.IsOk(res) {
		t.Resolve(adt.UnsafeUnwrapAs[R](res))
		return
	}
	t.Reject(adt.UnsafeUnwrapAs[adt.Tag](res))
}
