package domain_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quill/internal/core/domain"
)

func TestImporterCache_UnknownBeforeSet(t *testing.T) {
	cache := domain.NewImporterCache()
	imp := domain.NewInternedString("fs:/project")

	got := cache.Get(imp, "/project/foo")

	assert.Equal(t, domain.LookupUnknown, got.State)
	assert.False(t, got.Known())
}

func TestImporterCache_NegativeIsDistinctFromUnknown(t *testing.T) {
	cache := domain.NewImporterCache()
	imp := domain.NewInternedString("fs:/project")

	cache.Set(imp, "/project/missing", domain.Negative())

	got := cache.Get(imp, "/project/missing")
	assert.Equal(t, domain.LookupNegative, got.State)
	assert.True(t, got.Known())
	assert.Equal(t, domain.LookupUnknown, cache.Get(imp, "/project/other").State)
}

func TestImporterCache_Resolved(t *testing.T) {
	cache := domain.NewImporterCache()
	imp := domain.NewInternedString("fs:/project")
	resolved := domain.ResolvedImport{Path: "/project/_foo.scss", Syntax: domain.SyntaxSCSS}

	cache.Set(imp, "/project/foo", domain.Resolved(resolved))

	got := cache.Get(imp, "/project/foo")
	require.Equal(t, domain.LookupResolved, got.State)
	assert.Equal(t, resolved, got.Import)
}

func TestImporterCache_ScopedByImporter(t *testing.T) {
	cache := domain.NewImporterCache()
	a := domain.NewInternedString("fs:/a")
	b := domain.NewInternedString("fs:/b")

	cache.Set(a, "/shared/foo", domain.Negative())

	assert.Equal(t, domain.LookupNegative, cache.Get(a, "/shared/foo").State)
	assert.Equal(t, domain.LookupUnknown, cache.Get(b, "/shared/foo").State)

	// Importers with the same identity share entries.
	assert.Equal(t, domain.LookupNegative, cache.Get(domain.NewInternedString("fs:/a"), "/shared/foo").State)
}

func TestImporterCache_Overwrite(t *testing.T) {
	cache := domain.NewImporterCache()
	imp := domain.NewInternedString("fs:/project")
	resolved := domain.ResolvedImport{Path: "/project/foo.sass", Syntax: domain.SyntaxSass}

	cache.Set(imp, "/project/foo", domain.Negative())
	cache.Set(imp, "/project/foo", domain.Resolved(resolved))

	assert.Equal(t, domain.Resolved(resolved), cache.Get(imp, "/project/foo"))
}

func TestImporterCache_Delete(t *testing.T) {
	cache := domain.NewImporterCache()
	imp := domain.NewInternedString("fs:/project")

	cache.Set(imp, "/project/foo", domain.Negative())
	cache.Delete(imp, "/project/foo")
	cache.Delete(imp, "/project/never-set")
	cache.Delete(domain.NewInternedString("fs:/unknown"), "/project/foo")

	assert.Equal(t, domain.LookupUnknown, cache.Get(imp, "/project/foo").State)
	assert.Equal(t, 0, cache.Len())
}

func TestImporterCache_SetUnknownDeletes(t *testing.T) {
	cache := domain.NewImporterCache()
	imp := domain.NewInternedString("fs:/project")

	cache.Set(imp, "/project/foo", domain.Negative())
	cache.Set(imp, "/project/foo", domain.Unknown())

	assert.Equal(t, 0, cache.Len())
}

func TestImporterCache_Invalidate(t *testing.T) {
	cache := domain.NewImporterCache()
	a := domain.NewInternedString("fs:/a")
	b := domain.NewInternedString("fs:/b")
	partial := domain.ResolvedImport{Path: "/project/_foo.scss", Syntax: domain.SyntaxSCSS}

	cache.Set(a, "/project/foo", domain.Resolved(partial))
	cache.Set(b, "/elsewhere/foo", domain.Resolved(partial))
	cache.Set(a, "/project/bar", domain.Negative())
	cache.Set(a, "/project/baz", domain.Negative())

	cache.Invalidate("/project/_foo.scss", "/project/_bar.sass")

	assert.Equal(t, domain.LookupUnknown, cache.Get(a, "/project/foo").State)
	assert.Equal(t, domain.LookupUnknown, cache.Get(b, "/elsewhere/foo").State)
	assert.Equal(t, domain.LookupUnknown, cache.Get(a, "/project/bar").State, "negative entry for a created file")
	assert.Equal(t, domain.LookupNegative, cache.Get(a, "/project/baz").State)
	assert.Equal(t, 1, cache.Len())
}

func TestImporterCache_ConcurrentAccess(t *testing.T) {
	cache := domain.NewImporterCache()
	imp := domain.NewInternedString("fs:/project")

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uri := fmt.Sprintf("/project/file%d", i%4)
			for range 100 {
				cache.Set(imp, uri, domain.Resolved(domain.ResolvedImport{Path: uri + ".scss", Syntax: domain.SyntaxSCSS}))
				got := cache.Get(imp, uri)
				if got.State == domain.LookupResolved {
					assert.Equal(t, uri+".scss", got.Import.Path)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 4, cache.Len())
}
