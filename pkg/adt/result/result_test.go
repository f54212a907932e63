package result

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/ib-77/tagged/pkg/adt"
	"github.com/ib-77/tagged/pkg/adt/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsError(t *testing.T) {
	t.Parallel()
	assert.True(t, IsError(Err(3)))
	assert.False(t, IsError(Ok(3)))
}

func TestIsOk(t *testing.T) {
	t.Parallel()
	assert.False(t, IsOk(Err(3)))
	assert.True(t, IsOk(Ok(3)))
}

func TestGetOkAndGetError(t *testing.T) {
	t.Parallel()
	assert.Equal(t, option.Some(3), GetOk(Ok(3)))
	assert.True(t, option.IsNone(GetOk(Err(3))))
	assert.Equal(t, option.Some("e"), GetError(Err("e")))
	assert.True(t, option.IsNone(GetError(Ok(1))))
}

func TestPanic(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { Panic(4) })
	assert.NotPanics(t, func() { Panic(nil) })
}

func TestAttempt_NoError(t *testing.T) {
	t.Parallel()
	x := Attempt(func() (int, error) { return 5, nil })
	assert.True(t, IsOk(x))
	assert.Equal(t, 5, adt.UnsafeUnwrap(x))
}

func TestAttempt_UnhandledPanic(t *testing.T) {
	t.Parallel()
	x := Attempt(func() (int, error) { panic(errors.New("boom")) })

	require.True(t, IsError(x))
	exc := adt.UnsafeUnwrapAs[adt.Tag](x)
	assert.True(t, adt.IsUnhandledException(exc))
	assert.EqualError(t, adt.UnsafeUnwrap(exc).(error), "boom")
}

func TestAttempt_ReturnedErrorIsUnhandled(t *testing.T) {
	t.Parallel()
	cause := errors.New("io")
	x := Attempt(func() (string, error) { return "", cause })

	require.True(t, IsError(x))
	assert.Equal(t, adt.Raise(cause), adt.UnsafeUnwrap(x))
}

func TestAttempt_HandledErrors(t *testing.T) {
	t.Parallel()
	x := Attempt(
		func() (int, error) { panic(errors.New("mapped")) },
		func(cause any) any {
			if err, ok := cause.(error); ok {
				return err
			}
			return Panic(cause)
		},
	)
	require.True(t, IsError(x))
	assert.EqualError(t, adt.UnsafeUnwrap(x).(error), "mapped")
}

func TestAttempt_MapperPanicPropagates(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		Attempt(
			func() (int, error) { panic("not an error") },
			func(cause any) any {
				if err, ok := cause.(error); ok {
					return err
				}
				return Panic(cause)
			},
		)
	})
}

func TestMap(t *testing.T) {
	t.Parallel()
	x := Map(Ok(3), strconv.Itoa)
	assert.Equal(t, Ok("3"), x)

	base := Attempt(func() (string, error) { panic(0) }, func(cause any) any { return cause })
	mapped := Map(base, func(v string) []string { return strings.Split(v, "") })
	assert.True(t, IsError(mapped))
	assert.Equal(t, 0, adt.UnsafeUnwrap(mapped))
}

func TestFlatMap(t *testing.T) {
	t.Parallel()
	okToOk := FlatMap(Ok(3), func(v int) adt.Tag {
		return Attempt(func() (string, error) { return strconv.Itoa(v), nil })
	})
	assert.Equal(t, Ok("3"), okToOk)

	okToErr := FlatMap(Ok(3), func(v int) adt.Tag {
		return Attempt(func() (string, error) {
			if v == 0 {
				return strconv.Itoa(v), nil
			}
			panic(errors.New("non-zero"))
		})
	})
	require.True(t, IsError(okToErr))
	exc := adt.UnsafeUnwrapAs[adt.Tag](okToErr)
	assert.True(t, adt.IsUnhandledException(exc))

	called := false
	errStays := FlatMap(Err(1), func(v int) adt.Tag {
		called = true
		return Ok(v)
	})
	assert.False(t, called)
	assert.Equal(t, Err(1), errStays)
}

func TestHandle(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 4, Handle(Ok(4), func(int) int { return 0 }))
	assert.Equal(t, "4", Handle(Err(4), func(e int) string { return strconv.Itoa(e) }))
}

type code int

const (
	success code = iota
	failureWithCorrectType
	failureWithIncorrectType
)

func TestRescue_CorrectGuard(t *testing.T) {
	t.Parallel()
	base := Attempt(func() (code, error) { panic(failureWithCorrectType) })
	extraction := Handle(base, func(e adt.Tag) code {
		return option.GetOrElse(Rescue[code](e), failureWithIncorrectType)
	})
	assert.Equal(t, failureWithCorrectType, extraction)
}

func TestRescue_WrongGuard(t *testing.T) {
	t.Parallel()
	base := Attempt(func() (code, error) { panic("") })
	extraction := Handle(base, func(e adt.Tag) code {
		return option.GetOrElse(Rescue[code](e), failureWithIncorrectType)
	})
	assert.Equal(t, failureWithIncorrectType, extraction)
	assert.NotEqual(t, success, extraction)
}

type notFound struct{ key string }

func (e *notFound) Error() string { return "not found: " + e.key }

func TestRescue_WrappedError(t *testing.T) {
	t.Parallel()
	exc := adt.Raise(errors.Join(errors.New("ctx"), &notFound{key: "a"}))

	got, ok := option.Get[*notFound](Rescue[*notFound](exc))
	require.True(t, ok)
	assert.Equal(t, "a", got.key)
	assert.True(t, option.IsNone(Rescue[int](exc)))
}
