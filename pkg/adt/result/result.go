package result

import (
	"errors"
	"reflect"

	"github.com/ib-77/tagged/pkg/adt"
	"github.com/ib-77/tagged/pkg/adt/option"
)

// ErrorVariant is the failure branch of Result. It carries a payload but is
// not unwrappable.
var ErrorVariant = adt.DefineValueVariant("left", false)

// OkVariant is the unwrappable success branch of Result.
var OkVariant = adt.DefineValueVariant("right", true)

func Ok[R any](value R) adt.Tag {
	return OkVariant.New(value)
}

func Err[L any](value L) adt.Tag {
	return ErrorVariant.New(value)
}

func IsOk(result adt.Tag) bool {
	return adt.IsOfVariant(result, OkVariant)
}

func IsError(result adt.Tag) bool {
	return adt.IsOfVariant(result, ErrorVariant)
}

// GetOk returns Some(value) for an Ok and None otherwise.
func GetOk(result adt.Tag) adt.Tag {
	if IsOk(result) {
		return option.Some(adt.UnsafeUnwrap(result))
	}
	return option.None()
}

// GetError returns Some(value) for an Error and None otherwise.
func GetError(result adt.Tag) adt.Tag {
	if IsError(result) {
		return option.Some(adt.UnsafeUnwrap(result))
	}
	return option.None()
}

// Panic re-raises cause when it is not nil. It is meant for error mappers
// that only recognise some causes.
func Panic(cause any) any {
	if !adt.IsNil(cause) {
		panic(cause)
	}
	return nil
}

// Attempt runs fn and turns its outcome into a Result. A returned error or a
// panic becomes the failure cause; with a mapper the Error payload is
// mapper(cause), otherwise it is an UnhandledException wrapping cause.
// A panic inside the mapper is not captured.
func Attempt[T any](fn func() (T, error), mapper ...func(cause any) any) adt.Tag {
	var (
		value T
		err   error
	)
	cause, panicked := adt.Capture(func() {
		value, err = fn()
	})
	if !panicked && err == nil {
		return Ok(value)
	}
	if !panicked {
		cause = err
	}

	if len(mapper) > 0 && mapper[0] != nil {
		return Err(mapper[0](cause))
	}
	return Err(adt.Raise(cause))
}

// Map transforms the value of an Ok and passes an Error through.
func Map[R, U any](result adt.Tag, mapper func(R) U) adt.Tag {
	if IsOk(result) {
		return Ok(mapper(adt.UnsafeUnwrapAs[R](result)))
	}
	return result
}

// FlatMap replaces an Ok with the Result produced by mapper.
func FlatMap[R any](result adt.Tag, mapper func(R) adt.Tag) adt.Tag {
	if IsOk(result) {
		return mapper(adt.UnsafeUnwrapAs[R](result))
	}
	return result
}

// Handle collapses a Result into its Ok value, using handler to recover
// from an Error.
func Handle[L, R any](result adt.Tag, handler func(L) R) R {
	if IsError(result) {
		return handler(adt.UnsafeUnwrapAs[L](result))
	}
	return adt.UnsafeUnwrapAs[R](result)
}

// Rescue extracts the cause of an UnhandledException when it is a T. Error
// causes are also searched with errors.As.
func Rescue[T any](exception adt.Tag) adt.Tag {
	cause := adt.UnsafeUnwrap(exception)
	if v, ok := cause.(T); ok {
		return option.Some(v)
	}
	if err, ok := cause.(error); ok && asTarget[T]() {
		var target T
		if errors.As(err, &target) {
			return option.Some(target)
		}
	}
	return option.None()
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// asTarget reports whether *T is an acceptable errors.As target.
func asTarget[T any]() bool {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	return typ.Kind() == reflect.Interface || typ.Implements(errorType)
}
