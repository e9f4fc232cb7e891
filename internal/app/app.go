// Package app implements the application layer for quill.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/sourcegraph/conc/pool"
	"go.trai.ch/quill/internal/adapters/fs" //nolint:depguard // Wired in app layer
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/quill/internal/core/tree"
	"go.trai.ch/quill/internal/engine/imports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	walker       *fs.Walker
	newImporter  ports.ImporterFactory
	concurrency  int
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	walker *fs.Walker,
	newImporter ports.ImporterFactory,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		walker:       walker,
		newImporter:  newImporter,
		concurrency:  runtime.NumCPU(),
	}
}

// WithConcurrency limits how many entries are expanded at once.
func (a *App) WithConcurrency(n int) *App {
	if n > 0 {
		a.concurrency = n
	}
	return a
}

// session holds everything one request shares across its entries.
type session struct {
	cfg      *domain.Config
	root     ports.Importer
	expander *imports.Expander
	opts     *domain.Options
}

func (a *App) newSession() (*session, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to get working directory")
	}

	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	root, err := a.newImporter(cfg.Root)
	if err != nil {
		return nil, err
	}

	loadPaths := make([]ports.Importer, 0, len(cfg.LoadPaths))
	for _, p := range cfg.LoadPaths {
		imp, err := a.newImporter(p)
		if err != nil {
			return nil, err
		}
		loadPaths = append(loadPaths, imp)
	}

	opts := domain.NewOptions(domain.NewCompileCache())
	opts.LoadPaths = cfg.LoadPaths
	opts.Style = cfg.Style

	return &session{
		cfg:      cfg,
		root:     root,
		expander: imports.New(loadPaths...),
		opts:     opts,
	}, nil
}

// load resolves the entry file and expands its imports.
func (s *session) load(ctx context.Context, path string) (*ports.Import, *domain.ImportGraph, error) {
	entry, err := s.expander.Entry(s.root, path, s.opts)
	if err != nil {
		return nil, nil, err
	}

	graph, err := s.expander.Expand(ctx, entry)
	if err != nil {
		return nil, nil, err
	}
	return entry, graph, nil
}

// Deps expands every entry and returns one import graph per entry stylesheet, in
// entry order. Directory entries contribute every non-partial stylesheet below them.
// All entries share one compile cache.
func (a *App) Deps(ctx context.Context, entries []string) ([]*domain.ImportGraph, error) {
	if len(entries) == 0 {
		return nil, domain.ErrNoEntriesSpecified
	}

	s, err := a.newSession()
	if err != nil {
		return nil, err
	}

	files, err := a.entryFiles(entries, s.cfg.Ignore)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		a.logger.Warn("no stylesheets found")
		return nil, nil
	}

	graphs := make([]*domain.ImportGraph, len(files))
	p := pool.New().WithMaxGoroutines(a.concurrency).WithContext(ctx).WithCancelOnError().WithFirstError()
	for i, file := range files {
		p.Go(func(ctx context.Context) error {
			_, graph, err := s.load(ctx, file)
			if err != nil {
				return err
			}
			graphs[i] = graph
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return graphs, nil
}

// Tree expands a single entry and writes its outline to w. With expand set, the
// outline of every imported file follows in discovery order.
func (a *App) Tree(ctx context.Context, entry string, expand bool, w io.Writer) error {
	s, err := a.newSession()
	if err != nil {
		return err
	}

	path, err := filepath.Abs(entry)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve entry"), "entry", entry)
	}

	imp, graph, err := s.load(ctx, path)
	if err != nil {
		return err
	}

	if err := tree.Dump(w, imp.Root); err != nil {
		return err
	}
	if !expand {
		return nil
	}

	roots := importedRoots(imp.Root)
	for _, file := range graph.Files()[1:] {
		root, ok := roots[file]
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n# %s\n", file); err != nil {
			return err
		}
		if err := tree.Dump(w, root); err != nil {
			return err
		}
	}
	return nil
}

// entryFiles turns entry arguments into absolute stylesheet paths, walking directories.
func (a *App) entryFiles(entries, ignores []string) ([]string, error) {
	var files []string
	for _, entry := range entries {
		path, err := filepath.Abs(entry)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to resolve entry"), "entry", entry)
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrStatFailed.Error()), "path", path)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		for file, err := range a.walker.Stylesheets(path, ignores) {
			if err != nil {
				return nil, err
			}
			files = append(files, file)
		}
	}
	return files, nil
}

// importedRoots maps every file reachable through resolved imports to its tree.
func importedRoots(root *tree.RootNode) map[string]*tree.RootNode {
	roots := make(map[string]*tree.RootNode)
	var collect func(*tree.RootNode)
	collect = func(r *tree.RootNode) {
		tree.Walk(r, func(n tree.Node) bool {
			node, ok := n.(*tree.ImportNode)
			if !ok || node.Resolved == nil || node.Imported == nil {
				return true
			}
			if _, seen := roots[node.Resolved.Path]; !seen {
				roots[node.Resolved.Path] = node.Imported
				collect(node.Imported)
			}
			return true
		})
	}
	collect(root)
	return roots
}
