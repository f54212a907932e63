package adt

import (
	"fmt"

	"github.com/google/uuid"
)

// Variant describes one branch of a closed set of tagged values.
// Variants are compared by pointer: every Define call mints a new one,
// even when the display name is reused.
type Variant struct {
	id          uuid.UUID
	name        string
	unit        bool
	unwrappable bool
}

func newVariant(name string, unit, unwrappable bool) *Variant {
	return &Variant{
		id:          uuid.New(),
		name:        name,
		unit:        unit,
		unwrappable: unwrappable,
	}
}

func (v *Variant) Name() string {
	return v.name
}

func (v *Variant) Id() uuid.UUID {
	return v.id
}

func (v *Variant) IsUnit() bool {
	return v.unit
}

func (v *Variant) IsUnwrappable() bool {
	return v.unwrappable
}

func (v *Variant) String() string {
	return fmt.Sprintf("%s#%s", v.name, v.id.String()[:8])
}

// Tag is an immutable tagged value. The zero Tag belongs to no variant.
type Tag struct {
	variant *Variant
	payload any
}

func (t Tag) Variant() *Variant {
	return t.variant
}

func (t Tag) Name() string {
	if t.variant == nil {
		return ""
	}
	return t.variant.name
}

// IsZero reports whether t was never instantiated from a factory.
func (t Tag) IsZero() bool {
	return t.variant == nil
}

func (t Tag) String() string {
	switch {
	case t.variant == nil:
		return "<nil tag>"
	case t.variant.unit:
		return t.variant.name + "()"
	default:
		return fmt.Sprintf("%s(%v)", t.variant.name, t.payload)
	}
}

// UnitFactory mints instances of a payload-less variant.
type UnitFactory struct {
	variant *Variant
}

// New returns the unit tag of the variant.
func (f UnitFactory) New() Tag {
	return Tag{variant: f.variant}
}

func (f UnitFactory) Variant() *Variant {
	return f.variant
}

// ValueFactory mints instances of a payload-bearing variant.
type ValueFactory struct {
	variant *Variant
}

// New wraps payload into a tag of the variant.
func (f ValueFactory) New(payload any) Tag {
	return Tag{variant: f.variant, payload: payload}
}

func (f ValueFactory) Variant() *Variant {
	return f.variant
}

// DefineUnitVariant mints a new payload-less variant. Unit variants are
// never unwrappable.
func DefineUnitVariant(name string) UnitFactory {
	return UnitFactory{variant: newVariant(name, true, false)}
}

// DefineValueVariant mints a new payload-bearing variant. At most one
// variant of an ADT should be unwrappable: it is the branch the generic
// combinators operate on.
func DefineValueVariant(name string, unwrappable bool) ValueFactory {
	return ValueFactory{variant: newVariant(name, false, unwrappable)}
}

// Instantiate builds a tag of the factory's variant. The payload is
// discarded for unit variants.
func Instantiate(f Factory, payload any) Tag {
	v := f.Variant()
	if v.unit {
		return Tag{variant: v}
	}
	return Tag{variant: v, payload: payload}
}

// IsOfVariant reports whether tag was minted by f.
func IsOfVariant(tag Tag, f Factory) bool {
	if tag.variant == nil || f == nil {
		return false
	}
	return tag.variant == f.Variant()
}

func IsUnit(tag Tag) bool {
	return tag.variant != nil && tag.variant.unit
}

func IsUnwrappable(tag Tag) bool {
	return tag.variant != nil && tag.variant.unwrappable
}

// UnsafeUnwrap returns the payload of tag. It panics with ErrEmptyUnwrap
// when the tag carries no payload.
func UnsafeUnwrap(tag Tag) any {
	if tag.variant == nil || tag.variant.unit {
		panic(contractViolation(ErrEmptyUnwrap, "cannot unwrap %s", tag))
	}
	return tag.payload
}

// UnsafeUnwrapAs is UnsafeUnwrap followed by a checked conversion to T.
func UnsafeUnwrapAs[T any](tag Tag) T {
	return As[T](tag, UnsafeUnwrap(tag))
}

// As converts a payload taken out of tag to T. A nil payload converts to
// the zero T; any other mismatch panics with ErrPayloadType.
func As[T any](tag Tag, payload any) T {
	if payload == nil {
		var zero T
		return zero
	}
	v, ok := payload.(T)
	if !ok {
		var zero T
		panic(contractViolation(ErrPayloadType, "%s holds %T, not %T", tag, payload, zero))
	}
	return v
}

// CopyWith returns a tag of the same variant carrying payload. Unit tags
// are returned unchanged.
func CopyWith(tag Tag, payload any) Tag {
	if tag.variant == nil || tag.variant.unit {
		return tag
	}
	return Tag{variant: tag.variant, payload: payload}
}
