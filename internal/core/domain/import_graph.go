package domain

import "slices"

// ImportGraph records which stylesheets an entry file pulls in.
// Files are kept in discovery order; the entry is always first.
type ImportGraph struct {
	entry   string
	files   []string
	seen    map[string]struct{}
	imports map[string][]string
}

// NewImportGraph creates a graph rooted at the entry file.
func NewImportGraph(entry string) *ImportGraph {
	g := &ImportGraph{
		entry:   entry,
		seen:    make(map[string]struct{}),
		imports: make(map[string][]string),
	}
	g.AddFile(entry)
	return g
}

// Entry returns the entry file.
func (g *ImportGraph) Entry() string {
	return g.entry
}

// AddFile records a file. It reports whether the file was new.
func (g *ImportGraph) AddFile(path string) bool {
	if _, ok := g.seen[path]; ok {
		return false
	}
	g.seen[path] = struct{}{}
	g.files = append(g.files, path)
	return true
}

// AddImport records that from imports to.
func (g *ImportGraph) AddImport(from, to string) {
	g.AddFile(from)
	g.AddFile(to)
	if slices.Contains(g.imports[from], to) {
		return
	}
	g.imports[from] = append(g.imports[from], to)
}

// Files returns every file in discovery order.
func (g *ImportGraph) Files() []string {
	return slices.Clone(g.files)
}

// Imports returns the files imported directly by path, in source order.
func (g *ImportGraph) Imports(path string) []string {
	return slices.Clone(g.imports[path])
}

// Contains reports whether path is part of the graph.
func (g *ImportGraph) Contains(path string) bool {
	_, ok := g.seen[path]
	return ok
}
