package ops

import (
	"github.com/ib-77/tagged/pkg/adt"
	"github.com/ib-77/tagged/pkg/adt/option"
)

// Map applies mapper to the payload of an unwrappable tag and rewraps the
// result in the same variant. Any other tag passes through unchanged.
func Map[T, R any](tag adt.Tag, mapper func(T) R) adt.Tag {
	if adt.IsUnwrappable(tag) {
		return adt.CopyWith(tag, mapper(adt.UnsafeUnwrapAs[T](tag)))
	}
	return tag
}

// FlatMap replaces an unwrappable tag with the tag mapper returns, which may
// belong to another ADT. Any other tag passes through unchanged.
func FlatMap[T any](tag adt.Tag, mapper func(T) adt.Tag) adt.Tag {
	if adt.IsUnwrappable(tag) {
		return mapper(adt.UnsafeUnwrapAs[T](tag))
	}
	return tag
}

// Or returns the payload of an unwrappable tag, or fallback.
func Or[T any](tag adt.Tag, fallback T) T {
	if adt.IsUnwrappable(tag) {
		return adt.UnsafeUnwrapAs[T](tag)
	}
	return fallback
}

// OrFn returns the payload of an unwrappable tag. Otherwise fallback gets the
// tag and its payload as an Option (None for unit tags).
func OrFn[T any](tag adt.Tag, fallback func(tag adt.Tag, payload adt.Tag) T) T {
	if adt.IsUnwrappable(tag) {
		return adt.UnsafeUnwrapAs[T](tag)
	}
	return fallback(tag, UnwrapToOption(tag))
}

// Handle is OrFn for ADTs whose failure branches carry a payload. It panics
// with ErrUnitTagPassed when the tag is a unit tag; use OrFn for those.
func Handle[T, P any](tag adt.Tag, handler func(tag adt.Tag, payload P) T) T {
	if adt.IsUnwrappable(tag) {
		return adt.UnsafeUnwrapAs[T](tag)
	}
	if tag.IsZero() || adt.IsUnit(tag) {
		panic(adt.Violation(adt.ErrUnitTagPassed, "%s has no payload to handle", tag))
	}
	return handler(tag, adt.UnsafeUnwrapAs[P](tag))
}

// UnwrapToOption returns Some(payload) for any payload-bearing tag, whether
// or not it is unwrappable, and None for unit tags.
func UnwrapToOption(tag adt.Tag) adt.Tag {
	if tag.IsZero() || adt.IsUnit(tag) {
		return option.None()
	}
	return option.Some(adt.UnsafeUnwrap(tag))
}

// MapElse leaves an unwrappable tag unchanged and replaces any other tag
// with mapper(tag).
func MapElse(tag adt.Tag, mapper func(adt.Tag) adt.Tag) adt.Tag {
	if adt.IsUnwrappable(tag) {
		return tag
	}
	return mapper(tag)
}

// Fold collapses tag into a single value: onSuccess receives the payload of
// an unwrappable tag, onOther receives every other tag.
func Fold[T, R any](tag adt.Tag, onSuccess func(T) R, onOther func(adt.Tag) R) R {
	if adt.IsUnwrappable(tag) {
		return onSuccess(adt.UnsafeUnwrapAs[T](tag))
	}
	return onOther(tag)
}

// Tee runs sideEffect on the payload of an unwrappable tag and returns the
// tag unchanged.
func Tee[T any](tag adt.Tag, sideEffect func(T)) adt.Tag {
	if adt.IsUnwrappable(tag) {
		sideEffect(adt.UnsafeUnwrapAs[T](tag))
	}
	return tag
}
