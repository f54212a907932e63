// Package ops contains the generic combinators. They work on any tag whose
// ADT designates one unwrappable branch, so the same Map works for Option,
// Result, the async states or a caller-defined set of variants.
//
// Highlights:
// - Map/FlatMap: transform the unwrappable branch, pass others through
// - Or/OrFn/Handle: collapse a tag into a value with a fallback
// - UnwrapToOption: bridge any payload into an Option
// - MapElse: transform everything but the unwrappable branch
// - Fold/Tee: reduce or observe without changing the tag
//
// None of these fail for the "wrong branch"; only a payload of an unexpected
// type or a Handle on a unit tag panics.
package ops
