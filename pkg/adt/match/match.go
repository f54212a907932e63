package match

import (
	"github.com/ib-77/tagged/pkg/adt"
)

// Handler turns a matched tag into the match result. Build one with Unit,
// Value or Payload.
type Handler[R any] func(tag adt.Tag) R

// Unit adapts a handler that takes no arguments.
func Unit[R any](fn func() R) Handler[R] {
	return func(adt.Tag) R {
		return fn()
	}
}

// Value adapts a handler that takes the unwrapped payload.
func Value[T, R any](fn func(T) R) Handler[R] {
	return func(tag adt.Tag) R {
		return fn(adt.UnsafeUnwrapAs[T](tag))
	}
}

// Payload adapts a handler that takes the matched tag itself.
func Payload[R any](fn func(adt.Tag) R) Handler[R] {
	return Handler[R](fn)
}

type arm[R any] struct {
	factory adt.Factory // nil for else
	handler Handler[R]
}

// Builder accumulates arms for one tag. It is persistent: When and Else
// return a new Builder and never modify the receiver.
type Builder[R any] struct {
	tag  adt.Tag
	arms []arm[R]
}

// On starts a match over tag producing an R.
func On[R any](tag adt.Tag) Builder[R] {
	return Builder[R]{tag: tag}
}

func (b Builder[R]) with(a arm[R]) Builder[R] {
	arms := make([]arm[R], 0, len(b.arms)+1)
	arms = append(arms, b.arms...)
	arms = append(arms, a)
	return Builder[R]{tag: b.tag, arms: arms}
}

// When adds an arm for the variant minted by f.
func (b Builder[R]) When(f adt.Factory, handler Handler[R]) Builder[R] {
	return b.with(arm[R]{factory: f, handler: handler})
}

// Else adds a default arm.
func (b Builder[R]) Else(fn func() R) Builder[R] {
	return b.with(arm[R]{handler: Unit(fn)})
}

// Try evaluates the arms in registration order. The first arm whose
// variant matches wins; an else arm matches anything.
func (b Builder[R]) Try() (R, bool) {
	for _, a := range b.arms {
		if a.factory == nil || adt.IsOfVariant(b.tag, a.factory) {
			return a.handler(b.tag), true
		}
	}
	var zero R
	return zero, false
}

// Assert is Try for exhaustive matches: it panics with ErrNoMatchFound when
// no arm matches.
func (b Builder[R]) Assert() R {
	r, ok := b.Try()
	if !ok {
		panic(adt.Violation(adt.ErrNoMatchFound, "no arm for %s", b.tag))
	}
	return r
}
