package ports

import (
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/tree"
)

// CacheStore is a fingerprinted key to tree store.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// Retrieve returns the tree stored under key only if it was stored with the same fingerprint.
	// A fingerprint mismatch or a missing entry is reported as a miss, not an error.
	Retrieve(key domain.CacheKey, fp domain.Fingerprint) (*tree.RootNode, bool, error)

	// Store overwrites the entry under key.
	Store(key domain.CacheKey, fp domain.Fingerprint, root *tree.RootNode) error
}
