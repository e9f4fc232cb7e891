package domain

import (
	"path/filepath"
	"strings"
	"sync"
	"unique"
)

// ImporterCache memoizes import resolutions per importer and absolute uri.
// It is safe for concurrent use; the last writer wins.
type ImporterCache struct {
	mu      sync.RWMutex
	entries map[unique.Handle[string]]map[unique.Handle[string]]Lookup
}

// NewImporterCache creates an empty ImporterCache.
func NewImporterCache() *ImporterCache {
	return &ImporterCache{
		entries: make(map[unique.Handle[string]]map[unique.Handle[string]]Lookup),
	}
}

// Get returns the cached lookup, or an Unknown lookup if the pair was never set.
func (c *ImporterCache) Get(importer InternedString, uri string) Lookup {
	c.mu.RLock()
	defer c.mu.RUnlock()

	inner, ok := c.entries[importer.Value()]
	if !ok {
		return Unknown()
	}
	l, ok := inner[unique.Make(uri)]
	if !ok {
		return Unknown()
	}
	return l
}

// Set records a lookup. Setting an Unknown lookup removes the entry.
func (c *ImporterCache) Set(importer InternedString, uri string, l Lookup) {
	if !l.Known() {
		c.Delete(importer, uri)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	inner, ok := c.entries[importer.Value()]
	if !ok {
		inner = make(map[unique.Handle[string]]Lookup)
		c.entries[importer.Value()] = inner
	}
	inner[unique.Make(uri)] = l
}

// Delete removes a single entry.
func (c *ImporterCache) Delete(importer InternedString, uri string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	inner, ok := c.entries[importer.Value()]
	if !ok {
		return
	}
	delete(inner, unique.Make(uri))
	if len(inner) == 0 {
		delete(c.entries, importer.Value())
	}
}

// Invalidate drops every entry resolved to one of paths, and every entry whose uri is a
// logical name one of paths could satisfy. The latter clears negative entries when a
// previously missing file appears.
func (c *ImporterCache) Invalidate(paths ...string) {
	if len(paths) == 0 {
		return
	}

	stale := make(map[string]struct{}, len(paths)*4)
	for _, p := range paths {
		for _, name := range logicalNames(p) {
			stale[name] = struct{}{}
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for importer, inner := range c.entries {
		for uri, l := range inner {
			_, byURI := stale[uri.Value()]
			_, byPath := stale[l.Import.Path]
			if byURI || (l.State == LookupResolved && byPath) {
				delete(inner, uri)
			}
		}
		if len(inner) == 0 {
			delete(c.entries, importer)
		}
	}
}

// Len returns the number of cached entries across all importers.
func (c *ImporterCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, inner := range c.entries {
		n += len(inner)
	}
	return n
}

// logicalNames lists the uris an import could have used to reach path:
// the path itself, without its extension, and the same two without the partial prefix.
func logicalNames(path string) []string {
	dir, base := filepath.Split(path)
	names := []string{path}

	ext := filepath.Ext(base)
	if _, ok := SyntaxFromExtension(strings.TrimPrefix(ext, ".")); ok {
		names = append(names, dir+strings.TrimSuffix(base, ext))
	}
	if trimmed, ok := strings.CutPrefix(base, "_"); ok {
		names = append(names, dir+trimmed)
		if _, ok := SyntaxFromExtension(strings.TrimPrefix(ext, ".")); ok {
			names = append(names, dir+strings.TrimSuffix(trimmed, ext))
		}
	}
	return names
}
