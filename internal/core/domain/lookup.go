package domain

// LookupState distinguishes "never looked up" from "looked up and not found".
type LookupState uint8

const (
	// LookupUnknown means the pair was never queried.
	LookupUnknown LookupState = iota
	// LookupNegative means a previous probe confirmed there is nothing to resolve.
	LookupNegative
	// LookupResolved means a previous probe resolved to a file.
	LookupResolved
)

// String implements fmt.Stringer.
func (s LookupState) String() string {
	switch s {
	case LookupNegative:
		return "negative"
	case LookupResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Lookup is the result of an importer cache query.
type Lookup struct {
	State LookupState
	// Import is only meaningful when State is LookupResolved.
	Import ResolvedImport
}

// Unknown returns a lookup for a pair that was never queried.
func Unknown() Lookup {
	return Lookup{State: LookupUnknown}
}

// Negative returns a lookup recording a confirmed miss.
func Negative() Lookup {
	return Lookup{State: LookupNegative}
}

// Resolved returns a lookup recording a successful resolution.
func Resolved(r ResolvedImport) Lookup {
	return Lookup{State: LookupResolved, Import: r}
}

// Known reports whether a previous probe left a result, positive or negative.
func (l Lookup) Known() bool {
	return l.State != LookupUnknown
}
