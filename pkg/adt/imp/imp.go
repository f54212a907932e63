package imp

import (
	"context"

	"github.com/ib-77/tagged/pkg/adt"
	"github.com/ib-77/tagged/pkg/adt/core"
	"github.com/ib-77/tagged/pkg/adt/task"
)

// Outcome is what a Step produces: either continue with a value or abort
// with a cause.
type Outcome struct {
	value   any
	cause   adt.Tag
	aborted bool
}

// Continue resumes the pipeline with value.
func Continue(value any) Outcome {
	return Outcome{value: value}
}

// Unwrap continues with the payload of an unwrappable tag and aborts with
// the tag itself otherwise.
func Unwrap(tag adt.Tag) Outcome {
	if !adt.IsUnwrappable(tag) {
		return Outcome{cause: tag, aborted: true}
	}
	return Outcome{value: adt.UnsafeUnwrap(tag)}
}

// UnwrapState unwraps the current state of x without waiting. A pending
// task aborts with the Pending tag.
func UnwrapState(x adt.Tagged) Outcome {
	return Unwrap(x.State())
}

// AwaitTask waits for t to settle and unwraps its terminal state.
func AwaitTask[T, E any](t *task.Task[T, E]) Outcome {
	return Unwrap(t.Settled())
}

func (o Outcome) Value() any {
	return o.value
}

func (o Outcome) Aborted() bool {
	return o.aborted
}

// Cause returns the tag that aborted the pipeline. It is the zero Tag for a
// continuing outcome.
func (o Outcome) Cause() adt.Tag {
	return o.cause
}

// Step is one stage of a pipeline. It receives the value the previous step
// continued with (nil for the first step).
type Step func(prev any) Outcome

// Run drives steps in order on the caller's goroutine. It returns Ok with
// the last continued value, or Error with the cause of the first abort;
// steps after an abort never run.
func Run(steps ...Step) adt.Tag {
	return Do(pipeline(steps))
}

// RunAsync is Run on the dispatcher carried by ctx. It returns a pending task
// immediately. Steps run strictly one after another and may block, for
// example on AwaitTask.
func RunAsync(ctx context.Context, steps ...Step) *task.Task[any, adt.Tag] {
	return DoAsync(ctx, pipeline(steps))
}

func pipeline(steps []Step) func(s *Scope) any {
	return func(s *Scope) any {
		var prev any
		for _, step := range steps {
			out := step(prev)
			s.unwraps++
			if out.aborted {
				panic(abort{cause: out.cause})
			}
			prev = out.value
		}
		return prev
	}
}

func dispatcherFor(ctx context.Context) core.Dispatcher {
	return core.GetDispatcher(ctx, core.Goroutines)
}
