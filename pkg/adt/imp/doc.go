// Package imp runs sequences of fallible steps with early return: the first
// step that fails to unwrap aborts the sequence, and the whole sequence
// collapses into one Result (Run, Do) or one task (RunAsync, DoAsync).
//
// Two forms are provided. The pipeline form chains Steps, each receiving the
// previous value:
//
//	res := imp.Run(
//		func(any) imp.Outcome { return imp.Unwrap(lookup("a")) },
//		func(v any) imp.Outcome { return imp.Unwrap(parse(v.(string))) },
//	)
//
// The scope form keeps every unwrapped value in ordinary variables:
//
//	res := imp.Do(func(s *imp.Scope) int {
//		x := imp.UnwrapAs[int](s, option.FromNullable(4))
//		y := imp.UnwrapAs[int](s, option.FromNullable(2))
//		return imp.UnwrapAs[int](s, div(x, y))
//	})
//
// The abort cause becomes the Error (or Rejected) payload unchanged, so a
// caller can match it back to None, Error, Pending, Rejected or any other
// non-unwrappable variant.
package imp
