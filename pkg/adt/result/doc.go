// Package result defines Result as two value variants of the tagged
// runtime: Ok (unwrappable, "right") and Error (not unwrappable, "left").
//
// Highlights:
// - Ok/Err: construct a Result
// - Attempt: run a fallible function, capturing returned errors and panics
// - Map/FlatMap/Handle: Result-specific helpers; see package ops for the
//   generic combinators
// - Rescue: pull a typed cause back out of an UnhandledException
package result
