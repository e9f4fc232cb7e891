package cache

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/quill/internal/adapters/config" //nolint:depguard // store selection needs the loaded config
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the cache store Graft node.
const NodeID graft.ID = "adapter.cache_store"

func init() {
	graft.Register(graft.Node[ports.CacheStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.CacheStore, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			cwd, err := os.Getwd()
			if err != nil {
				return nil, zerr.Wrap(err, "failed to get working directory")
			}

			cfg, err := loader.Load(cwd)
			if err != nil {
				return nil, err
			}
			return Open(cfg.Cache, cfg.Root)
		},
	})
}
