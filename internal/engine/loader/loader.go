// Package loader materializes parsed stylesheet trees through the parse cache.
package loader

import (
	"os"
	"path/filepath"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/quill/internal/core/tree"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Loader implements ports.TreeLoader on top of a parser and a fingerprinted store.
//
// Stored trees are never handed out directly. Every caller receives its own copy, so
// option propagation on one copy cannot race with another request reading the store.
type Loader struct {
	hasher ports.Hasher
	parser ports.Parser
	store  ports.CacheStore
	group  singleflight.Group
}

var _ ports.TreeLoader = (*Loader)(nil)

// New creates a Loader.
func New(hasher ports.Hasher, parser ports.Parser, store ports.CacheStore) *Loader {
	return &Loader{
		hasher: hasher,
		parser: parser,
		store:  store,
	}
}

// ForFile reads and fingerprints path, reusing the stored tree when the content is unchanged.
func (l *Loader) ForFile(
	path string, key domain.CacheKey, opts *domain.Options,
) (*tree.RootNode, domain.Fingerprint, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, "", zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	fp := l.hasher.Fingerprint(src)

	v, err, _ := l.group.Do(flightKey(key, fp), func() (any, error) {
		root, hit, err := l.store.Retrieve(key, fp)
		if err != nil {
			return nil, err
		}
		if hit {
			return root, nil
		}

		root, err = l.parser.Parse(src, syntaxOf(path, opts), path)
		if err != nil {
			return nil, err
		}
		if err := l.store.Store(key, fp, root); err != nil {
			return nil, err
		}
		return root, nil
	})
	if err != nil {
		return nil, "", err
	}

	root, err := tree.Clone(v.(*tree.RootNode))
	if err != nil {
		return nil, "", err
	}
	return root, fp, nil
}

// ForFingerprint returns the tree stored for a previously recorded fingerprint. On a miss
// the file is loaded again and the fresh fingerprint is recorded in the compile cache.
func (l *Loader) ForFingerprint(
	fp domain.Fingerprint, path string, key domain.CacheKey, opts *domain.Options,
) (*tree.RootNode, error) {
	root, hit, err := l.store.Retrieve(key, fp)
	if err != nil {
		return nil, err
	}
	if hit {
		return tree.Clone(root)
	}

	root, fresh, err := l.ForFile(path, key, opts)
	if err != nil {
		return nil, err
	}
	if cache := opts.CompileCache(); cache != nil {
		cache.RecordFingerprint(path, fresh)
	}
	return root, nil
}

func flightKey(key domain.CacheKey, fp domain.Fingerprint) string {
	return key.String() + "\x00" + string(fp)
}

// syntaxOf prefers the syntax carried in opts and falls back to the file extension.
func syntaxOf(path string, opts *domain.Options) domain.Syntax {
	if opts != nil && opts.Syntax.Valid() {
		return opts.Syntax
	}
	if ext := filepath.Ext(path); ext != "" {
		if s, ok := domain.SyntaxFromExtension(ext[1:]); ok {
			return s
		}
	}
	return domain.SyntaxSCSS
}
