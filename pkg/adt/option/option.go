package option

import (
	"github.com/ib-77/tagged/pkg/adt"
)

// SomeVariant is the unwrappable, payload-bearing branch of Option.
var SomeVariant = adt.DefineValueVariant("some", true)

// NoneVariant is the empty branch of Option.
var NoneVariant = adt.DefineUnitVariant("none")

func Some[T any](value T) adt.Tag {
	return SomeVariant.New(value)
}

func None() adt.Tag {
	return NoneVariant.New()
}

func IsSome(option adt.Tag) bool {
	return adt.IsOfVariant(option, SomeVariant)
}

func IsNone(option adt.Tag) bool {
	return adt.IsOfVariant(option, NoneVariant)
}

// GetOrElse returns the payload of a Some, or defaultValue for anything else.
func GetOrElse[T any](option adt.Tag, defaultValue T) T {
	if !IsSome(option) {
		return defaultValue
	}
	return adt.UnsafeUnwrapAs[T](option)
}

// FromNullable returns None for nil values (including typed nil pointers,
// maps, slices, channels and funcs) and Some otherwise.
func FromNullable[T any](value T) adt.Tag {
	if adt.IsNil(value) {
		return None()
	}
	return Some(value)
}

// FromPtr dereferences p into a Some, or returns None for a nil pointer.
func FromPtr[T any](p *T) adt.Tag {
	if p == nil {
		return None()
	}
	return Some(*p)
}

// FromPair converts the comma-ok idiom into an Option.
func FromPair[T any](value T, ok bool) adt.Tag {
	if !ok {
		return None()
	}
	return Some(value)
}

// Get is the comma-ok view of an Option.
func Get[T any](option adt.Tag) (T, bool) {
	if !IsSome(option) {
		var zero T
		return zero, false
	}
	return adt.UnsafeUnwrapAs[T](option), true
}
