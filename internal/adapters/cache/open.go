package cache

import (
	"path/filepath"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/zerr"
)

// Open returns the store selected by cfg. A relative cache directory is resolved against root.
func Open(cfg domain.CacheConfig, root string) (ports.CacheStore, error) {
	switch cfg.Store {
	case "", domain.StoreMemory:
		return NewMemory(), nil
	case domain.StoreFile:
		dir := cfg.Dir
		if dir == "" {
			dir = domain.DefaultCacheDir
		}
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(root, dir)
		}
		return NewFileStore(dir, cfg.Compress)
	default:
		return nil, zerr.With(domain.ErrUnknownStore, "store", cfg.Store)
	}
}
