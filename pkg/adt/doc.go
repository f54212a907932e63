// Package adt is the tagged-variant runtime: it mints variant identities
// and the immutable tags built from them. Everything else in the module
// (Option, Result, the async settlement states, matching, the runners) is
// a set of variants defined with this package.
//
// Highlights:
// - DefineUnitVariant/DefineValueVariant: mint a variant and its factory
// - Instantiate/IsOfVariant: build tags and test membership by identity
// - UnsafeUnwrap/UnsafeUnwrapAs: read a payload, panicking on unit tags
// - CopyWith: rewrap a new payload keeping the variant
// - Raise: wrap an unexpected fault as UnhandledException
//
// Variants are identified by pointer, never by name: two variants defined
// with the same name are distinct.
package adt
