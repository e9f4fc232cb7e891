package fs

import (
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/quill/internal/core/tree"
	"go.trai.ch/zerr"
)

// importerType qualifies cache keys and importer identities produced by Importer.
const importerType = "fs"

var _ ports.Importer = (*Importer)(nil)

// Candidate is one file an import name may refer to.
type Candidate struct {
	Path   string
	Syntax domain.Syntax
}

// Importer resolves import names to stylesheets on disk, relative to a root directory.
// Two importers with the same root share importer cache entries.
type Importer struct {
	root   string
	id     domain.InternedString
	loader ports.TreeLoader
}

// NewImporter creates an importer rooted at root, which is made absolute.
func NewImporter(root string, loader ports.TreeLoader) (*Importer, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "root", root)
	}
	return &Importer{
		root:   abs,
		id:     domain.NewInternedString(importerType + ":" + abs),
		loader: loader,
	}, nil
}

// ID returns the importer identity used to scope the importer cache.
func (i *Importer) ID() domain.InternedString {
	return i.id
}

// String returns the importer root.
func (i *Importer) String() string {
	return i.root
}

// Root returns the absolute root directory.
func (i *Importer) Root() string {
	return i.root
}

// ResolveRelative searches for name next to base.
func (i *Importer) ResolveRelative(name, base string, opts *domain.Options) (*ports.Import, error) {
	return i.find(filepath.Dir(base), name, opts)
}

// Resolve searches for name below the root.
func (i *Importer) Resolve(name string, opts *domain.Options) (*ports.Import, error) {
	return i.find(i.root, name, opts)
}

// LastModified tries name as given, then joined to the root.
func (i *Importer) LastModified(name string, _ *domain.Options) (time.Time, bool, error) {
	for _, path := range []string{name, filepath.Join(i.root, name)} {
		t, ok, err := modTime(path)
		if err != nil || ok {
			return t, ok, err
		}
	}
	return time.Time{}, false, nil
}

// CacheKey scopes name by its absolute directory.
func (i *Importer) CacheKey(name string, _ *domain.Options) domain.CacheKey {
	abs, err := filepath.Abs(name)
	if err != nil {
		abs = filepath.Clean(name)
	}
	return domain.CacheKey{
		Scope: importerType + ":" + filepath.Dir(abs),
		Name:  filepath.Base(name),
	}
}

// Candidates lists, in probe order, the files name may refer to when searched from dir.
// Paths are cleaned, which also drops redundant "/./" segments.
func (i *Importer) Candidates(dir, name string) []Candidate {
	name = i.stripRoot(name)
	sub, base, syntax := split(name)

	var candidates []Candidate
	add := func(file string, s domain.Syntax) {
		path := filepath.Join(sub, file)
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		candidates = append(candidates, Candidate{Path: path, Syntax: s})
	}

	if syntax.Valid() {
		add(base+"."+syntax.Extension(), syntax)
		add("_"+base+"."+syntax.Extension(), syntax)
		return candidates
	}
	for _, ext := range domain.Extensions() {
		s, _ := domain.SyntaxFromExtension(ext)
		add(base+"."+ext, s)
		add("_"+base+"."+ext, s)
	}
	return candidates
}

// find resolves name from dir, consulting and filling the importer cache when opts
// carries a compile cache, then materializes the tree.
func (i *Importer) find(dir, name string, opts *domain.Options) (*ports.Import, error) {
	resolved, ok, err := i.lookup(dir, name, opts.CompileCache())
	if err != nil || !ok {
		return nil, err
	}
	return i.materialize(resolved, opts)
}

func (i *Importer) lookup(dir, name string, cache *domain.CompileCache) (domain.ResolvedImport, bool, error) {
	if cache == nil {
		return i.probe(dir, name)
	}

	uri := i.uri(dir, name)
	switch l := cache.URIs.Get(i.id, uri); l.State {
	case domain.LookupResolved:
		return l.Import, true, nil
	case domain.LookupNegative:
		return domain.ResolvedImport{}, false, nil
	case domain.LookupUnknown:
	}

	resolved, ok, err := i.probe(dir, name)
	if err != nil {
		return resolved, false, err
	}
	if ok {
		cache.URIs.Set(i.id, uri, domain.Resolved(resolved))
	} else {
		cache.URIs.Set(i.id, uri, domain.Negative())
	}
	return resolved, ok, nil
}

// probe tests each candidate for a regular file and returns the first hit.
func (i *Importer) probe(dir, name string) (domain.ResolvedImport, bool, error) {
	for _, c := range i.Candidates(dir, name) {
		ok, err := isFile(c.Path)
		if err != nil {
			return domain.ResolvedImport{}, false, err
		}
		if ok {
			path, err := filepath.Abs(c.Path)
			if err != nil {
				path = c.Path
			}
			return domain.ResolvedImport{Path: path, Syntax: c.Syntax}, true, nil
		}
	}
	return domain.ResolvedImport{}, false, nil
}

// materialize loads the tree through the two tier cache and propagates options into it.
func (i *Importer) materialize(r domain.ResolvedImport, opts *domain.Options) (*ports.Import, error) {
	opts = opts.WithResolved(r, i)
	key := i.CacheKey(r.Path, opts)
	cache := opts.CompileCache()

	var (
		root *tree.RootNode
		err  error
	)
	if fp, known := fingerprint(cache, r.Path); known {
		root, err = i.loader.ForFingerprint(fp, r.Path, key, opts)
	} else {
		var fresh domain.Fingerprint
		root, fresh, err = i.loader.ForFile(r.Path, key, opts)
		if err == nil && cache != nil {
			cache.RecordFingerprint(r.Path, fresh)
		}
	}
	if err != nil {
		return nil, err
	}

	tree.SetOptions(root, opts)
	return &ports.Import{Resolved: r, Root: root, Options: opts}, nil
}

func fingerprint(cache *domain.CompileCache, path string) (domain.Fingerprint, bool) {
	if cache == nil {
		return "", false
	}
	return cache.Fingerprint(path)
}

// uri is the absolute logical location of name, the importer cache key.
func (i *Importer) uri(dir, name string) string {
	name = i.stripRoot(name)
	if !filepath.IsAbs(name) {
		name = filepath.Join(dir, name)
	}
	if abs, err := filepath.Abs(name); err == nil {
		return abs
	}
	return filepath.Clean(name)
}

// stripRoot turns an absolute name below the root into a root relative one. The
// result is then joined to the search directory, so from a base in a subdirectory
// "<root>/x" is looked up as "<base dir>/x" rather than at the root.
func (i *Importer) stripRoot(name string) string {
	prefix := i.root + "/"
	if strings.HasPrefix(name, prefix) {
		return name[len(prefix):]
	}
	return name
}

// split breaks name into directory, basename and syntax. Only supported extensions
// are recognized; otherwise the basename is the whole last element.
func split(name string) (dir, base string, syntax domain.Syntax) {
	dir, base = filepath.Dir(name), filepath.Base(name)
	if ext := filepath.Ext(base); ext != "" {
		if s, ok := domain.SyntaxFromExtension(ext[1:]); ok {
			return dir, strings.TrimSuffix(base, ext), s
		}
	}
	return dir, base, 0
}
