// Package imports expands @import statements into the trees they refer to.
package imports

import (
	"context"
	"path/filepath"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/quill/internal/core/tree"
	"go.trai.ch/zerr"
)

// Expander resolves the imports of a tree recursively.
//
// A name is searched relative to the importing file with the importer that loaded it,
// then below each load path in order.
type Expander struct {
	loadPaths []ports.Importer
}

// New creates an Expander searching the given load path importers after the relative lookup.
func New(loadPaths ...ports.Importer) *Expander {
	return &Expander{loadPaths: loadPaths}
}

// Entry loads the stylesheet at the absolute path through importer.
func (e *Expander) Entry(importer ports.Importer, path string, opts *domain.Options) (*ports.Import, error) {
	imp, err := importer.ResolveRelative(filepath.Base(path), path, opts)
	if err != nil {
		return nil, err
	}
	if imp == nil {
		return nil, zerr.With(domain.ErrImportNotFound, "file", path)
	}
	return imp, nil
}

// Expand resolves every import reachable from entry. Resolved nodes get Resolved and
// Imported set. A file imported more than once is expanded once and its tree shared.
func (e *Expander) Expand(ctx context.Context, entry *ports.Import) (*domain.ImportGraph, error) {
	x := &expansion{
		Expander: e,
		ctx:      ctx,
		graph:    domain.NewImportGraph(entry.Resolved.Path),
		active:   make(map[string]bool),
		expanded: make(map[string]*tree.RootNode),
	}
	if err := x.expand(entry); err != nil {
		return nil, err
	}
	return x.graph, nil
}

type expansion struct {
	*Expander
	ctx      context.Context
	graph    *domain.ImportGraph
	active   map[string]bool
	expanded map[string]*tree.RootNode
}

func (x *expansion) expand(imp *ports.Import) error {
	path := imp.Resolved.Path
	x.active[path] = true
	defer delete(x.active, path)

	var nodes []*tree.ImportNode
	tree.Walk(imp.Root, func(n tree.Node) bool {
		if node, ok := n.(*tree.ImportNode); ok {
			nodes = append(nodes, node)
		}
		return true
	})

	for _, node := range nodes {
		if err := x.ctx.Err(); err != nil {
			return err
		}
		if tree.IsCSSImport(node.Name) {
			continue
		}

		target, err := x.resolve(node.Name, imp)
		if err != nil {
			return err
		}
		if target == nil {
			return zerr.With(zerr.With(zerr.With(domain.ErrImportNotFound,
				"import", node.Name),
				"file", path),
				"line", node.Line())
		}

		to := target.Resolved.Path
		if x.active[to] {
			return zerr.With(zerr.With(zerr.With(domain.ErrImportCycle,
				"import", node.Name),
				"file", path),
				"line", node.Line())
		}

		resolved := target.Resolved
		node.Resolved = &resolved
		x.graph.AddImport(path, to)

		if root, ok := x.expanded[to]; ok {
			node.Imported = root
			continue
		}
		node.Imported = target.Root
		if err := x.expand(target); err != nil {
			return err
		}
		x.expanded[to] = target.Root
	}
	return nil
}

// resolve tries the importer of the importing file first, then the load paths.
// A nil Import with a nil error means the name was found nowhere.
func (x *expansion) resolve(name string, from *ports.Import) (*ports.Import, error) {
	if importer, ok := from.Options.Importer.(ports.Importer); ok {
		found, err := importer.ResolveRelative(name, from.Resolved.Path, from.Options)
		if err != nil || found != nil {
			return found, err
		}
	}

	for _, importer := range x.loadPaths {
		found, err := importer.Resolve(name, from.Options)
		if err != nil || found != nil {
			return found, err
		}
	}
	return nil, nil
}
