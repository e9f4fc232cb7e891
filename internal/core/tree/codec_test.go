package tree_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/script"
	"go.trai.ch/quill/internal/core/tree"
)

func dumpString(t *testing.T, n tree.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, tree.Dump(&buf, n))
	return buf.String()
}

func TestCodec_RoundTrip(t *testing.T) {
	root, _ := sampleTree()
	root.Children()[0].(*tree.VariableNode).SetLine(3)

	data, err := tree.Marshal(root)
	require.NoError(t, err)

	decoded, err := tree.Unmarshal(data)
	require.NoError(t, err)

	assert.Equal(t, dumpString(t, root), dumpString(t, decoded))
	assert.Equal(t, 3, decoded.Children()[0].Line())

	fn := decoded.Children()[5].(*tree.FunctionNode)
	require.Len(t, fn.Args, 1)
	assert.Equal(t, "n", fn.Args[0].Name.Name)

	fnDef, ok := fn.Args[0].Default.(*script.Raw)
	require.True(t, ok)
	assert.Equal(t, "1", fnDef.Text)
}

func TestCodec_DoesNotPersistOptions(t *testing.T) {
	root, _ := sampleTree()
	tree.SetOptions(root, &domain.Options{Filename: "/p/a.scss"})

	data, err := tree.Marshal(root)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "/p/a.scss")

	decoded, err := tree.Unmarshal(data)
	require.NoError(t, err)
	assert.Nil(t, decoded.Options())
}

func TestCodec_RelinksIfTail(t *testing.T) {
	head := tree.NewIfNode(script.NewRaw("$a"))
	head.AddElse(tree.NewIfNode(script.NewRaw("$b")))
	head.AddElse(tree.NewIfNode(script.NewRaw("$c")))
	root := tree.NewRoot()
	root.AddChild(head)

	data, err := tree.Marshal(root)
	require.NoError(t, err)
	decoded, err := tree.Unmarshal(data)
	require.NoError(t, err)

	restored := decoded.Children()[0].(*tree.IfNode)
	chain := collectChain(restored)
	require.Len(t, chain, 3)
	assert.Same(t, chain[2], restored.Tail())

	final := tree.NewIfNode(nil)
	restored.AddElse(final)

	chain = collectChain(restored)
	require.Len(t, chain, 4)
	assert.Same(t, final, chain[3])
	assert.Equal(t, "$c", chain[2].Expr.String())
}

func TestCodec_UnmarshalErrors(t *testing.T) {
	_, err := tree.Unmarshal([]byte("kind: nonsense\n"))
	require.Error(t, err)

	_, err = tree.Unmarshal([]byte("kind: rule\n"))
	require.Error(t, err)

	_, err = tree.Unmarshal([]byte("kind: root\nchildren:\n  - kind: if\n    else:\n      kind: rule\n"))
	require.Error(t, err)

	_, err = tree.Unmarshal([]byte("kind: [unclosed"))
	require.Error(t, err)
}

func TestCodec_PreservesVariablesAndKeywords(t *testing.T) {
	root := tree.NewRoot()
	root.AddChild(&tree.MixinNode{
		Name:     "m",
		Args:     []script.Expr{script.NewVariable("x"), script.NewRaw("1 + 2")},
		Keywords: []script.Keyword{{Name: "k", Value: script.NewRaw("v")}},
	})

	data, err := tree.Marshal(root)
	require.NoError(t, err)
	decoded, err := tree.Unmarshal(data)
	require.NoError(t, err)

	m := decoded.Children()[0].(*tree.MixinNode)
	require.Len(t, m.Args, 2)
	_, isVar := m.Args[0].(*script.Variable)
	assert.True(t, isVar)
	assert.Equal(t, "1 + 2", m.Args[1].String())
	require.Len(t, m.Keywords, 1)
	assert.Equal(t, "v", m.Keywords[0].Value.String())
}

func TestClone_IsIndependent(t *testing.T) {
	root, _ := sampleTree()
	tree.SetOptions(root, &domain.Options{Filename: "/p/a.scss"})

	clone, err := tree.Clone(root)
	require.NoError(t, err)
	assert.Nil(t, clone.Options())

	opts := &domain.Options{Filename: "/p/b.scss"}
	tree.SetOptions(clone, opts)

	assert.Equal(t, "/p/a.scss", root.Options().Filename)
	origVar := root.Children()[0].(*tree.VariableNode)
	cloneVar := clone.Children()[0].(*tree.VariableNode)
	assert.NotSame(t, origVar, cloneVar)
	assert.Equal(t, "/p/a.scss", origVar.Expr.Options().Filename)
	assert.Same(t, opts, cloneVar.Expr.Options())

	clone.AddChild(&tree.CommentNode{Value: "x"})
	assert.Len(t, root.Children(), 11)
	assert.Len(t, clone.Children(), 12)
}
