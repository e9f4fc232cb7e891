package ports

import (
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/tree"
)

// TreeLoader materializes parsed trees, reusing cached parses while the content is unchanged.
//
//go:generate mockgen -source=tree_loader.go -destination=mocks/mock_tree_loader.go -package=mocks
type TreeLoader interface {
	// ForFile reads and fingerprints path, then returns the cached tree for that fingerprint
	// or parses the file fresh.
	ForFile(path string, key domain.CacheKey, opts *domain.Options) (*tree.RootNode, domain.Fingerprint, error)

	// ForFingerprint returns the tree cached under key for a previously recorded fingerprint,
	// falling back to ForFile on a miss.
	ForFingerprint(fp domain.Fingerprint, path string, key domain.CacheKey, opts *domain.Options) (*tree.RootNode, error)
}
