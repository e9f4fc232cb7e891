package domain

import (
	"fmt"
	"slices"
)

// ImporterRef identifies the importer that resolved a file, for diagnostics.
type ImporterRef interface {
	fmt.Stringer
	ID() InternedString
}

// Options is the configuration propagated to every node of a parsed tree before evaluation.
// It is treated as immutable: the With* methods return modified copies, so a node's
// options never change underneath it when another tree is configured.
type Options struct {
	// Filename is the absolute path of the stylesheet the tree was parsed from.
	Filename string
	// Syntax is the syntax of Filename.
	Syntax Syntax
	// Importer is the importer that resolved Filename, if any.
	Importer ImporterRef
	// Cache is the compile cache handle shared by the current compile request.
	Cache *CompileCache
	// LoadPaths are the roots searched after the importing file's directory.
	LoadPaths []string
	// Style is the output style requested for later passes.
	Style string
	// Quiet suppresses @warn and @debug output in later passes.
	Quiet bool
}

// NewOptions creates Options carrying the given compile cache.
func NewOptions(cache *CompileCache) *Options {
	return &Options{Cache: cache}
}

func (o *Options) clone() *Options {
	if o == nil {
		return &Options{}
	}
	c := *o
	c.LoadPaths = slices.Clone(o.LoadPaths)
	return &c
}

// WithFilename returns a copy with Filename set.
func (o *Options) WithFilename(filename string) *Options {
	c := o.clone()
	c.Filename = filename
	return c
}

// WithSyntax returns a copy with Syntax set.
func (o *Options) WithSyntax(s Syntax) *Options {
	c := o.clone()
	c.Syntax = s
	return c
}

// WithImporter returns a copy with Importer set.
func (o *Options) WithImporter(imp ImporterRef) *Options {
	c := o.clone()
	c.Importer = imp
	return c
}

// WithResolved returns a copy describing a file resolved by imp.
func (o *Options) WithResolved(r ResolvedImport, imp ImporterRef) *Options {
	c := o.clone()
	c.Filename = r.Path
	c.Syntax = r.Syntax
	c.Importer = imp
	return c
}

// CompileCache returns the cache handle, or nil when caching is disabled.
func (o *Options) CompileCache() *CompileCache {
	if o == nil {
		return nil
	}
	return o.Cache
}
