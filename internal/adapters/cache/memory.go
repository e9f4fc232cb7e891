// Package cache implements fingerprinted tree stores.
package cache

import (
	"sync"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/tree"
)

type entry struct {
	fp   domain.Fingerprint
	root *tree.RootNode
}

// Memory implements ports.CacheStore in process memory. Entries are never evicted.
type Memory struct {
	mu      sync.RWMutex
	entries map[domain.CacheKey]entry
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[domain.CacheKey]entry)}
}

// Retrieve returns the tree stored under key if it was stored with fingerprint fp.
func (m *Memory) Retrieve(key domain.CacheKey, fp domain.Fingerprint) (*tree.RootNode, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[key]
	if !ok || e.fp != fp {
		return nil, false, nil
	}
	return e.root, true, nil
}

// Store overwrites the entry under key.
func (m *Memory) Store(key domain.CacheKey, fp domain.Fingerprint, root *tree.RootNode) error {
	m.mu.Lock()
	m.entries[key] = entry{fp: fp, root: root}
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
