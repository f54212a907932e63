package adt

// Factory is implemented by everything that mints tags of one variant.
type Factory interface {
	// Variant returns the identity shared by every tag the factory mints
	Variant() *Variant
}

// Tagged is implemented by values that expose their current tag, such as
// settlement cells.
type Tagged interface {
	// State returns the current tag
	State() Tag
}
