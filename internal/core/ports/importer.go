package ports

import (
	"time"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/tree"
)

// Import is a resolved import together with its materialized tree.
type Import struct {
	Resolved domain.ResolvedImport
	Root     *tree.RootNode
	Options  *domain.Options
}

// Importer turns import names into parsed stylesheets.
// A nil Import with a nil error means the name does not resolve through this importer.
//
//go:generate mockgen -source=importer.go -destination=mocks/mock_importer.go -package=mocks
type Importer interface {
	// ID identifies the importer in the importer cache. Importers with equal IDs share entries.
	ID() domain.InternedString

	// String returns a human readable description used in diagnostics.
	String() string

	// ResolveRelative searches for name in the directory containing base.
	ResolveRelative(name, base string, opts *domain.Options) (*Import, error)

	// Resolve searches for name below the importer root.
	Resolve(name string, opts *domain.Options) (*Import, error)

	// LastModified reports the modification time of name, or false if it does not exist.
	LastModified(name string, opts *domain.Options) (time.Time, bool, error)

	// CacheKey returns the key under which the parsed tree for name is stored.
	CacheKey(name string, opts *domain.Options) domain.CacheKey
}

// ImporterFactory creates an importer rooted at root.
type ImporterFactory func(root string) (Importer, error)
