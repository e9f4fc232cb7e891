package app

import (
	"io"

	"go.trai.ch/quill/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	// Store is the parse cache shared by every importer of the process.
	Store ports.CacheStore
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger, store ports.CacheStore) *Components {
	return &Components{
		App:    app,
		Logger: logger,
		Store:  store,
	}
}

// Close releases the resources held by the cache store, if it holds any.
func (c *Components) Close() error {
	if closer, ok := c.Store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
