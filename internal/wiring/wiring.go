// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/quill/internal/adapters/cache"
	_ "go.trai.ch/quill/internal/adapters/config"
	_ "go.trai.ch/quill/internal/adapters/fs"
	_ "go.trai.ch/quill/internal/adapters/logger"
	_ "go.trai.ch/quill/internal/adapters/parser"
	// Register app and engine nodes.
	_ "go.trai.ch/quill/internal/app"
	_ "go.trai.ch/quill/internal/engine/loader"
)
