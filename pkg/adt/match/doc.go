// Package match provides a fluent, persistent pattern match over a tag.
//
//	n := match.On[int](opt).
//		When(option.NoneVariant, match.Unit(func() int { return 0 })).
//		When(option.SomeVariant, match.Value(func(x int) int { return x })).
//		Assert()
//
// Arms are tried in registration order and the first matching variant
// wins; ordering is the caller's responsibility.
package match
