package app_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quill/internal/adapters/cache"
	"go.trai.ch/quill/internal/adapters/config"
	"go.trai.ch/quill/internal/adapters/fs"
	"go.trai.ch/quill/internal/adapters/parser"
	"go.trai.ch/quill/internal/app"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/quill/internal/core/ports/mocks"
	"go.trai.ch/quill/internal/engine/loader"
	"go.uber.org/mock/gomock"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

// newApp builds an App from real adapters in a fresh project directory, which
// becomes the working directory for the rest of the test.
func newApp(t *testing.T, files map[string]string) (*app.App, *mocks.MockLogger, string) {
	t.Helper()
	root := t.TempDir()
	writeFiles(t, root, files)
	t.Chdir(root)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	treeLoader := loader.New(fs.NewHasher(), parser.New(), cache.NewMemory())
	factory := func(dir string) (ports.Importer, error) {
		return fs.NewImporter(dir, treeLoader)
	}

	a := app.New(config.NewLoader(log), log, fs.NewWalker(), factory).WithConcurrency(2)
	return a, log, root
}

func TestApp_Deps_NoEntries(t *testing.T) {
	a, _, _ := newApp(t, nil)

	_, err := a.Deps(t.Context(), nil)
	require.ErrorIs(t, err, domain.ErrNoEntriesSpecified)
}

func TestApp_Deps_Directory(t *testing.T) {
	a, _, root := newApp(t, map[string]string{
		"a.scss":       "@import \"shared\";\n",
		"b.sass":       "@import shared\n",
		"_shared.scss": "$x: 1;\n",
		"notes.txt":    "",
	})

	graphs, err := a.Deps(t.Context(), []string{"."})
	require.NoError(t, err)
	require.Len(t, graphs, 2)

	assert.Equal(t, filepath.Join(root, "a.scss"), graphs[0].Entry())
	assert.Equal(t, filepath.Join(root, "b.sass"), graphs[1].Entry())
	for _, g := range graphs {
		assert.Equal(t, []string{filepath.Join(root, "_shared.scss")}, g.Imports(g.Entry()))
	}
}

func TestApp_Deps_DirectorySkipsConfiguredIgnores(t *testing.T) {
	a, _, root := newApp(t, map[string]string{
		"quill.yaml":      "ignore: [vendor, \"*.draft.scss\"]\n",
		"a.scss":          "",
		"wip.draft.scss":  "",
		"vendor/lib.scss": "",
		"theme/dark.scss": "",
	})

	graphs, err := a.Deps(t.Context(), []string{"."})
	require.NoError(t, err)

	var got []string
	for _, g := range graphs {
		got = append(got, g.Entry())
	}
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.scss"),
		filepath.Join(root, "theme", "dark.scss"),
	}, got)
}

func TestApp_Deps_UsesConfiguredLoadPaths(t *testing.T) {
	a, _, root := newApp(t, map[string]string{
		"quill.yaml":           "root: src\nload_paths: [vendor]\n",
		"src/main.scss":        "@import \"grid\";\n",
		"vendor/_grid.scss":    "@import \"columns\";\n",
		"vendor/_columns.scss": "",
	})

	graphs, err := a.Deps(t.Context(), []string{"src/main.scss"})
	require.NoError(t, err)
	require.Len(t, graphs, 1)
	assert.Equal(t, []string{
		filepath.Join(root, "src", "main.scss"),
		filepath.Join(root, "vendor", "_grid.scss"),
		filepath.Join(root, "vendor", "_columns.scss"),
	}, graphs[0].Files())
}

func TestApp_Deps_PropagatesImportErrors(t *testing.T) {
	a, _, _ := newApp(t, map[string]string{
		"ok.scss":  "",
		"bad.scss": "@import \"missing\";\n",
	})

	_, err := a.Deps(t.Context(), []string{"ok.scss", "bad.scss"})
	assert.ErrorContains(t, err, domain.ErrImportNotFound.Error())
}

func TestApp_Deps_MissingEntry(t *testing.T) {
	a, _, _ := newApp(t, nil)

	_, err := a.Deps(t.Context(), []string{"nope.scss"})
	assert.ErrorContains(t, err, domain.ErrStatFailed.Error())
}

func TestApp_Deps_EmptyDirectoryWarns(t *testing.T) {
	a, log, _ := newApp(t, map[string]string{"_partial.scss": ""})
	log.EXPECT().Warn("no stylesheets found")

	graphs, err := a.Deps(t.Context(), []string{"."})
	require.NoError(t, err)
	assert.Empty(t, graphs)
}

func TestApp_Deps_InvalidConfig(t *testing.T) {
	a, _, _ := newApp(t, map[string]string{
		"quill.yaml": "cache:\n  store: redis\n",
		"a.scss":     "",
	})

	_, err := a.Deps(t.Context(), []string{"a.scss"})
	assert.ErrorContains(t, err, "failed to load configuration")
	assert.ErrorContains(t, err, domain.ErrUnknownStore.Error())
}

func TestApp_Tree(t *testing.T) {
	files := map[string]string{
		"main.scss":  "@import \"base\";\n.a { color: $c; }\n",
		"_base.scss": "$c: red;\n",
	}

	t.Run("entry only", func(t *testing.T) {
		a, _, root := newApp(t, files)

		var buf bytes.Buffer
		require.NoError(t, a.Tree(t.Context(), "main.scss", false, &buf))
		assert.Equal(t, "root "+filepath.Join(root, "main.scss")+" (scss)\n"+
			"  import \"base\" -> "+filepath.Join(root, "_base.scss")+"\n"+
			"  rule .a\n"+
			"    prop color: $c\n", buf.String())
	})

	t.Run("expanded", func(t *testing.T) {
		pkgDir, err := os.Getwd()
		require.NoError(t, err)
		a, _, root := newApp(t, files)

		var buf bytes.Buffer
		require.NoError(t, a.Tree(t.Context(), "main.scss", true, &buf))

		g := goldie.New(t, goldie.WithFixtureDir(filepath.Join(pkgDir, "testdata")))
		g.Assert(t, "tree_expanded", []byte(strings.ReplaceAll(buf.String(), root, "$ROOT")))
	})
}

func TestNewComponents(t *testing.T) {
	a, log, _ := newApp(t, nil)
	store := cache.NewMemory()

	c := app.NewComponents(a, log, store)
	assert.Same(t, a, c.App)
	assert.Equal(t, log, c.Logger)
	assert.Same(t, store, c.Store)
	assert.NoError(t, c.Close())
}

// closingStore records Close calls on top of an in-memory store.
type closingStore struct {
	*cache.Memory
	closed int
	err    error
}

func (s *closingStore) Close() error {
	s.closed++
	return s.err
}

func TestComponents_CloseReleasesStore(t *testing.T) {
	a, log, _ := newApp(t, nil)

	t.Run("closer", func(t *testing.T) {
		store := &closingStore{Memory: cache.NewMemory()}
		require.NoError(t, app.NewComponents(a, log, store).Close())
		assert.Equal(t, 1, store.closed)
	})

	t.Run("close error", func(t *testing.T) {
		store := &closingStore{Memory: cache.NewMemory(), err: errors.New("busy")}
		assert.EqualError(t, app.NewComponents(a, log, store).Close(), "busy")
	})

	t.Run("file store", func(t *testing.T) {
		store, err := cache.NewFileStore(t.TempDir(), true)
		require.NoError(t, err)
		c := app.NewComponents(a, log, store)
		require.NoError(t, c.Close())
		require.NoError(t, c.Close())
	})

	t.Run("no store", func(t *testing.T) {
		assert.NoError(t, app.NewComponents(a, log, nil).Close())
	})
}
