// Package fs provides file system adapters for walking, hashing and importing stylesheets.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/zerr"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files below root, skipping VCS metadata, the cache directory
// and anything whose base name matches ignores. Paths include root. A directory that
// cannot be read ends the walk with a single ErrWalkFailed.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				yield("", zerr.With(zerr.Wrap(err, domain.ErrWalkFailed.Error()), "path", path))
				return filepath.SkipAll
			}

			if skip, action := w.skip(d, ignores); skip {
				return action
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

// Stylesheets yields the stylesheets below root that compile on their own:
// files with a supported extension that are not partials.
func (w *Walker) Stylesheets(root string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for path, err := range w.WalkFiles(root, ignores) {
			if err != nil {
				yield("", err)
				return
			}
			name := filepath.Base(path)
			if strings.HasPrefix(name, "_") {
				continue
			}
			if _, ok := domain.SyntaxFromExtension(strings.TrimPrefix(filepath.Ext(name), ".")); !ok {
				continue
			}
			if !yield(path, nil) {
				return
			}
		}
	}
}

// skip reports whether d is excluded. For directories the action skips the subtree.
func (w *Walker) skip(d fs.DirEntry, ignores []string) (bool, error) {
	name := d.Name()

	if d.IsDir() {
		switch name {
		case ".git", ".jj", "node_modules", domain.DefaultCacheDir:
			return true, filepath.SkipDir
		}
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			if d.IsDir() {
				return true, filepath.SkipDir
			}
			return true, nil
		}
	}

	return false, nil
}
