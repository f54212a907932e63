// Package option defines Option as two variants of the tagged runtime:
// Some (unwrappable, carries a value) and None (unit).
//
// Option values are plain adt.Tag values, so they compose with the generic
// combinators in package ops, with match and with the imp runners.
package option
