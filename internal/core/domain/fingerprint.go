package domain

// Fingerprint is a content hash of stylesheet source bytes.
// The zero value means "unknown".
type Fingerprint string

// CacheKey scopes a cached tree. Scope is the qualifying importer type plus the normalized
// directory of the file, Name is its basename.
type CacheKey struct {
	Scope string
	Name  string
}

// String returns the key in "scope/name" form.
func (k CacheKey) String() string {
	return k.Scope + "/" + k.Name
}
