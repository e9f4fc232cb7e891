package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/quill/internal/adapters/cache"  //nolint:depguard // Wired in app layer
	"go.trai.ch/quill/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/quill/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/quill/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/quill/internal/engine/loader"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
	// ImporterFactoryNodeID is the unique identifier for the importer factory Graft node.
	ImporterFactoryNodeID graft.ID = "app.importer_factory"
)

func init() {
	graft.Register(graft.Node[ports.ImporterFactory]{
		ID:        ImporterFactoryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{loader.NodeID},
		Run: func(ctx context.Context) (ports.ImporterFactory, error) {
			treeLoader, err := graft.Dep[ports.TreeLoader](ctx)
			if err != nil {
				return nil, err
			}
			return func(root string) (ports.Importer, error) {
				imp, err := fs.NewImporter(root, treeLoader)
				if err != nil {
					return nil, err
				}
				return imp, nil
			}, nil
		},
	})

	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			fs.WalkerNodeID,
			ImporterFactoryNodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}

			factory, err := graft.Dep[ports.ImporterFactory](ctx)
			if err != nil {
				return nil, err
			}

			return New(configLoader, log, walker, factory), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			cache.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(a, log, store), nil
		},
	})
}
