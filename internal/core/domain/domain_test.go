package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/quill/internal/core/domain"
)

type stubImporter string

func (s stubImporter) String() string { return string(s) }

func (s stubImporter) ID() domain.InternedString { return domain.NewInternedString(string(s)) }

func TestSyntax(t *testing.T) {
	s, ok := domain.SyntaxFromExtension("scss")
	assert.True(t, ok)
	assert.Equal(t, domain.SyntaxSCSS, s)

	s, ok = domain.SyntaxFromExtension("sass")
	assert.True(t, ok)
	assert.Equal(t, domain.SyntaxSass, s)

	_, ok = domain.SyntaxFromExtension("css")
	assert.False(t, ok)

	assert.Equal(t, []string{"sass", "scss"}, domain.Extensions())
	assert.Equal(t, "scss", domain.SyntaxSCSS.String())
	assert.Equal(t, "unknown", domain.Syntax(0).String())
	assert.False(t, domain.Syntax(0).Valid())
}

func TestLookupState_String(t *testing.T) {
	assert.Equal(t, "unknown", domain.Unknown().State.String())
	assert.Equal(t, "negative", domain.Negative().State.String())
	assert.Equal(t, "resolved", domain.Resolved(domain.ResolvedImport{}).State.String())
}

func TestOptions_WithReturnsCopies(t *testing.T) {
	cache := domain.NewCompileCache()
	base := domain.NewOptions(cache)
	base.LoadPaths = []string{"/vendor"}

	resolved := base.WithResolved(
		domain.ResolvedImport{Path: "/project/a.sass", Syntax: domain.SyntaxSass},
		stubImporter("fs:/project"),
	)

	assert.Empty(t, base.Filename)
	assert.Nil(t, base.Importer)
	assert.Equal(t, "/project/a.sass", resolved.Filename)
	assert.Equal(t, domain.SyntaxSass, resolved.Syntax)
	assert.Equal(t, "fs:/project", resolved.Importer.String())
	assert.Same(t, cache, resolved.CompileCache())

	resolved.LoadPaths[0] = "/changed"
	assert.Equal(t, "/vendor", base.LoadPaths[0])

	var nilOpts *domain.Options
	assert.Nil(t, nilOpts.CompileCache())
	assert.Equal(t, "x.scss", nilOpts.WithFilename("x.scss").Filename)
	assert.Equal(t, domain.SyntaxSCSS, base.WithSyntax(domain.SyntaxSCSS).Syntax)
	assert.Equal(t, "fs:/x", base.WithImporter(stubImporter("fs:/x")).Importer.String())
}

func TestImportGraph(t *testing.T) {
	g := domain.NewImportGraph("/p/main.scss")

	g.AddImport("/p/main.scss", "/p/_a.scss")
	g.AddImport("/p/main.scss", "/p/_b.scss")
	g.AddImport("/p/_a.scss", "/p/_b.scss")
	g.AddImport("/p/main.scss", "/p/_a.scss")

	assert.Equal(t, "/p/main.scss", g.Entry())
	assert.Equal(t, []string{"/p/main.scss", "/p/_a.scss", "/p/_b.scss"}, g.Files())
	assert.Equal(t, []string{"/p/_a.scss", "/p/_b.scss"}, g.Imports("/p/main.scss"))
	assert.Equal(t, []string{"/p/_b.scss"}, g.Imports("/p/_a.scss"))
	assert.Empty(t, g.Imports("/p/_b.scss"))
	assert.True(t, g.Contains("/p/_b.scss"))
	assert.False(t, g.Contains("/p/_c.scss"))
}

func TestImportRequest_SearchDir(t *testing.T) {
	assert.Equal(t, "/p/sub", domain.ImportRequest{Name: "a", Base: "/p/sub/main.scss"}.SearchDir())
	assert.Empty(t, domain.ImportRequest{Name: "a"}.SearchDir())
}

func TestCacheKey_String(t *testing.T) {
	key := domain.CacheKey{Scope: "fs:/p/sub", Name: "a.scss"}
	assert.Equal(t, "fs:/p/sub/a.scss", key.String())
}

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig("/p")
	assert.Equal(t, "/p", cfg.Root)
	assert.Equal(t, domain.StoreMemory, cfg.Cache.Store)
}
