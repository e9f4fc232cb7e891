package loader

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/quill/internal/adapters/cache"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/quill/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/quill/internal/adapters/parser" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/quill/internal/core/ports"
)

// NodeID is the unique identifier for the tree loader Graft node.
const NodeID graft.ID = "engine.loader"

func init() {
	graft.Register(graft.Node[ports.TreeLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.HasherNodeID,
			parser.NodeID,
			cache.NodeID,
		},
		Run: func(ctx context.Context) (ports.TreeLoader, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			p, err := graft.Dep[ports.Parser](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}

			return New(hasher, p, store), nil
		},
	})
}
