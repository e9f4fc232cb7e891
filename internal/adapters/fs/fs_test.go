package fs_test

import (
	"iter"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quill/internal/adapters/fs"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/zerr"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func collect(t *testing.T, seq iter.Seq2[string, error]) []string {
	t.Helper()
	var out []string
	for path, err := range seq {
		require.NoError(t, err)
		out = append(out, path)
	}
	return out
}

func TestWalker_WalkFiles(t *testing.T) {
	tmpDir := t.TempDir()

	write(t, filepath.Join(tmpDir, ".git", "config"), "gitconfig")
	write(t, filepath.Join(tmpDir, ".jj", "store"), "jjstore")
	write(t, filepath.Join(tmpDir, ".quill-cache", "entry.tree"), "cached")
	write(t, filepath.Join(tmpDir, "ignored", "file.scss"), "a {}")
	write(t, filepath.Join(tmpDir, "src", "main.scss"), "a {}")
	write(t, filepath.Join(tmpDir, "README.md"), "# Readme")

	walker := fs.NewWalker()
	files := collect(t, walker.WalkFiles(tmpDir, []string{"ignored"}))

	assert.ElementsMatch(t, []string{
		filepath.Join(tmpDir, "src", "main.scss"),
		filepath.Join(tmpDir, "README.md"),
	}, files)
}

func TestWalker_Stylesheets(t *testing.T) {
	tmpDir := t.TempDir()

	write(t, filepath.Join(tmpDir, "main.scss"), "")
	write(t, filepath.Join(tmpDir, "_partial.scss"), "")
	write(t, filepath.Join(tmpDir, "theme", "dark.sass"), "")
	write(t, filepath.Join(tmpDir, "theme", "_vars.sass"), "")
	write(t, filepath.Join(tmpDir, "plain.css"), "")
	write(t, filepath.Join(tmpDir, "node_modules", "lib", "x.scss"), "")

	files := collect(t, fs.NewWalker().Stylesheets(tmpDir, nil))

	assert.ElementsMatch(t, []string{
		filepath.Join(tmpDir, "main.scss"),
		filepath.Join(tmpDir, "theme", "dark.sass"),
	}, files)
}

func TestWalker_StopsEarly(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"a.scss", "b.scss", "c.scss"} {
		write(t, filepath.Join(tmpDir, name), "")
	}

	count := 0
	for range fs.NewWalker().Stylesheets(tmpDir, nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestWalker_StylesheetsHonorsIgnores(t *testing.T) {
	tmpDir := t.TempDir()
	write(t, filepath.Join(tmpDir, "main.scss"), "")
	write(t, filepath.Join(tmpDir, "vendor", "lib.scss"), "")
	write(t, filepath.Join(tmpDir, "draft.scss"), "")

	files := collect(t, fs.NewWalker().Stylesheets(tmpDir, []string{"vendor", "draft.*"}))

	assert.Equal(t, []string{filepath.Join(tmpDir, "main.scss")}, files)
}

func TestWalker_UnreadableDirectoryFails(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	tmpDir := t.TempDir()
	locked := filepath.Join(tmpDir, "locked")
	write(t, filepath.Join(locked, "a.scss"), "")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o750) })

	var errs []error
	for _, err := range fs.NewWalker().Stylesheets(tmpDir, nil) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], domain.ErrWalkFailed.Error())
	var zErr *zerr.Error
	require.ErrorAs(t, errs[0], &zErr)
	assert.Equal(t, locked, zErr.Metadata()["path"])
}

func TestWalker_MissingRootFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	var errs []error
	for _, err := range fs.NewWalker().WalkFiles(missing, nil) {
		errs = append(errs, err)
	}

	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], domain.ErrWalkFailed.Error())
}

func TestHasher_Fingerprint(t *testing.T) {
	hasher := fs.NewHasher()

	a := hasher.Fingerprint([]byte("hello world"))
	assert.Len(t, string(a), 16)
	assert.Equal(t, a, hasher.Fingerprint([]byte("hello world")))
	assert.NotEqual(t, a, hasher.Fingerprint([]byte("hello world!")))
}

func TestHasher_FingerprintFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.scss")
	write(t, path, "hello world")

	hasher := fs.NewHasher()
	fp, err := hasher.FingerprintFile(path)
	require.NoError(t, err)
	assert.Equal(t, hasher.Fingerprint([]byte("hello world")), fp)

	_, err = hasher.FingerprintFile(filepath.Join(t.TempDir(), "missing.scss"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to read stylesheet")
}
