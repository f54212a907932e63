package adt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsOfVariant_IdentityNotName(t *testing.T) {
	t.Parallel()
	first := DefineValueVariant("dup", true)
	second := DefineValueVariant("dup", true)

	tag := first.New(1)
	assert.True(t, IsOfVariant(tag, first))
	assert.False(t, IsOfVariant(tag, second))
	assert.False(t, IsOfVariant(second.New(1), first))
	assert.NotEqual(t, first.Variant().Id(), second.Variant().Id())
	assert.NotEqual(t, tag, second.New(1))
}

func TestIsOfVariant_ZeroTag(t *testing.T) {
	t.Parallel()
	f := DefineUnitVariant("u")
	var zero Tag
	assert.True(t, zero.IsZero())
	assert.False(t, IsOfVariant(zero, f))
	assert.False(t, IsUnit(zero))
	assert.False(t, IsUnwrappable(zero))
}

func TestUnitVariant(t *testing.T) {
	t.Parallel()
	f := DefineUnitVariant("none")
	tag := f.New()

	assert.True(t, IsUnit(tag))
	assert.False(t, IsUnwrappable(tag))
	assert.Equal(t, "none()", tag.String())
	assert.Equal(t, "none", tag.Name())
}

func TestUnsafeUnwrap(t *testing.T) {
	t.Parallel()
	some := DefineValueVariant("some", true)
	none := DefineUnitVariant("none")

	assert.Equal(t, 3, UnsafeUnwrap(some.New(3)))
	assert.Equal(t, 3, UnsafeUnwrapAs[int](some.New(3)))

	defer func() {
		r := recover()
		require.NotNil(t, r)
		assert.True(t, IsContractViolation(r))
		assert.ErrorIs(t, r.(error), ErrEmptyUnwrap)
	}()
	UnsafeUnwrap(none.New())
}

func TestUnsafeUnwrapAs_WrongType(t *testing.T) {
	t.Parallel()
	f := DefineValueVariant("v", false)

	assert.PanicsWithError(t, "adt: unexpected payload type: v(x) holds string, not int", func() {
		UnsafeUnwrapAs[int](f.New("x"))
	})
	assert.Nil(t, UnsafeUnwrapAs[error](f.New(nil)))
}

func TestInstantiate(t *testing.T) {
	t.Parallel()
	val := DefineValueVariant("val", false)
	unit := DefineUnitVariant("unit")

	assert.Equal(t, val.New("x"), Instantiate(val, "x"))
	assert.Equal(t, unit.New(), Instantiate(unit, "ignored"))
	assert.True(t, IsUnit(Instantiate(unit, "ignored")))
}

func TestCopyWith(t *testing.T) {
	t.Parallel()
	ok := DefineValueVariant("ok", true)
	unit := DefineUnitVariant("unit")

	copied := CopyWith(ok.New(1), "one")
	assert.True(t, IsOfVariant(copied, ok))
	assert.True(t, IsUnwrappable(copied))
	assert.Equal(t, "one", UnsafeUnwrap(copied))

	assert.Equal(t, unit.New(), CopyWith(unit.New(), 5))
}

func TestTagString(t *testing.T) {
	t.Parallel()
	f := DefineValueVariant("right", true)
	assert.Equal(t, "right(4)", f.New(4).String())
	assert.Equal(t, "<nil tag>", Tag{}.String())
}

func TestRaise(t *testing.T) {
	t.Parallel()
	cause := errors.New("boom")
	tag := Raise(cause)

	assert.True(t, IsUnhandledException(tag))
	assert.False(t, IsUnwrappable(tag))
	assert.Equal(t, cause, UnsafeUnwrap(tag))
}

func TestCapture(t *testing.T) {
	t.Parallel()
	cause, panicked := Capture(func() { panic("x") })
	assert.True(t, panicked)
	assert.Equal(t, "x", cause)

	_, panicked = Capture(func() {})
	assert.False(t, panicked)

	assert.Panics(t, func() {
		Capture(func() { UnsafeUnwrap(DefineUnitVariant("u").New()) })
	})
}

func TestIsNil(t *testing.T) {
	t.Parallel()
	var p *int
	var m map[string]int
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.True(t, IsNil(m))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
}

func TestUnhandledError(t *testing.T) {
	t.Parallel()
	cause := errors.New("boom")
	err := &UnhandledError{Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "unhandled exception: boom")

	assert.Nil(t, (&UnhandledError{Cause: "x"}).Unwrap())
}
