// Package async defines the settlement states of an asynchronous
// computation: Pending (unit), Resolved (unwrappable) and Rejected.
package async

import (
	"github.com/ib-77/tagged/pkg/adt"
)

var (
	PendingVariant  = adt.DefineUnitVariant("pending")
	ResolvedVariant = adt.DefineValueVariant("resolved", true)
	RejectedVariant = adt.DefineValueVariant("rejected", false)
)

func Pending() adt.Tag {
	return PendingVariant.New()
}

func Resolved[T any](value T) adt.Tag {
	return ResolvedVariant.New(value)
}

func Rejected[E any](reason E) adt.Tag {
	return RejectedVariant.New(reason)
}

func IsPending(state adt.Tag) bool {
	return adt.IsOfVariant(state, PendingVariant)
}

func IsResolved(state adt.Tag) bool {
	return adt.IsOfVariant(state, ResolvedVariant)
}

func IsRejected(state adt.Tag) bool {
	return adt.IsOfVariant(state, RejectedVariant)
}

// IsSettled reports whether state is terminal.
func IsSettled(state adt.Tag) bool {
	return IsResolved(state) || IsRejected(state)
}
