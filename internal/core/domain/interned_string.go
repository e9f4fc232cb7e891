package domain

import "unique"

// InternedString wraps a unique.Handle[string].
// Importer identities and import uris are compared on every cache probe, so they are
// interned once and compared by handle.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString interns s.
func NewInternedString(s string) InternedString {
	return InternedString{
		h: unique.Make(s),
	}
}

// NewInternedStrings interns every element of strs.
func NewInternedStrings(strs []string) []InternedString {
	res := make([]InternedString, len(strs))
	for i, s := range strs {
		res[i] = NewInternedString(s)
	}
	return res
}

// String returns the underlying string value.
func (is InternedString) String() string {
	var zero unique.Handle[string]
	if is.h == zero {
		return ""
	}
	return is.h.Value()
}

// Value returns the underlying handle.
func (is InternedString) Value() unique.Handle[string] {
	return is.h
}

// IsZero reports whether the string was never set.
func (is InternedString) IsZero() bool {
	var zero unique.Handle[string]
	return is.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (is InternedString) MarshalText() ([]byte, error) {
	return []byte(is.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (is *InternedString) UnmarshalText(text []byte) error {
	is.h = unique.Make(string(text))
	return nil
}
