package domain

import "sync"

// CompileCache is the cache handle shared by every import resolved during one
// compile request, or by every request of a long-running host.
type CompileCache struct {
	// URIs memoizes importer probes.
	URIs *ImporterCache

	mu           sync.RWMutex
	fingerprints map[string]Fingerprint
}

// NewCompileCache creates an empty CompileCache.
func NewCompileCache() *CompileCache {
	return &CompileCache{
		URIs:         NewImporterCache(),
		fingerprints: make(map[string]Fingerprint),
	}
}

// Fingerprint returns the last known content fingerprint for an absolute path.
func (c *CompileCache) Fingerprint(path string) (Fingerprint, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	fp, ok := c.fingerprints[path]
	return fp, ok
}

// RecordFingerprint stores the content fingerprint of an absolute path.
func (c *CompileCache) RecordFingerprint(path string, fp Fingerprint) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fingerprints[path] = fp
}

// Invalidate forgets fingerprints and importer resolutions for the given paths.
func (c *CompileCache) Invalidate(paths ...string) {
	c.mu.Lock()
	for _, p := range paths {
		delete(c.fingerprints, p)
	}
	c.mu.Unlock()

	c.URIs.Invalidate(paths...)
}
