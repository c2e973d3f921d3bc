package domain

import "unique"

// InternedString wraps a unique.Handle[string]. Node names and file paths
// repeat heavily across the graph, so interning keeps them cheap to store
// and compare.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString interns s and returns its handle.
func NewInternedString(s string) InternedString {
	return InternedString{
		h: unique.Make(s),
	}
}

// String returns the underlying string value.
func (is InternedString) String() string {
	var zero unique.Handle[string]
	if is.h == zero {
		return ""
	}
	return is.h.Value()
}
