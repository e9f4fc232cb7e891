package tree_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/tree"
)

func TestDump(t *testing.T) {
	root, _ := sampleTree()

	var buf bytes.Buffer
	require.NoError(t, tree.Dump(&buf, root))

	g := goldie.New(t)
	g.Assert(t, "dump", buf.Bytes())
}

func TestDump_RootWithOptions(t *testing.T) {
	root := tree.NewRoot()
	root.AddChild(&tree.ImportNode{
		Name:     "base",
		Resolved: &domain.ResolvedImport{Path: "/p/_base.sass", Syntax: domain.SyntaxSass},
	})
	tree.SetOptions(root, &domain.Options{Filename: "/p/main.scss", Syntax: domain.SyntaxSCSS})

	var buf bytes.Buffer
	require.NoError(t, tree.Dump(&buf, root))

	assert.Equal(t, "root /p/main.scss (scss)\n  import \"base\" -> /p/_base.sass\n", buf.String())
}
