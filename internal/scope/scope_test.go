package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/decaf/internal/types"
)

func TestChildForksParentTable(t *testing.T) {
	root := NewRoot(nil)
	root.Table.Put("x", types.Variable{Name: "x", Type: types.Int{}})

	child := root.Child("Subblock", nil)
	v, ok := child.Table.Get("x")
	require.True(t, ok)
	assert.Equal(t, "x", v.AnnotationName())
	assert.Equal(t, root, child.Parent)
	assert.Contains(t, root.Children, child)
}

func TestRootClimbsToTop(t *testing.T) {
	root := NewRoot(nil)
	a := root.Child("A", nil)
	b := a.Child("B", nil)
	assert.Equal(t, root, b.Root())
}

func TestInsideLoopChecksAncestorChain(t *testing.T) {
	root := NewRoot(nil)
	loop := root.Child("Loop body", nil)
	nested := loop.Child("Subblock", nil)
	assert.True(t, nested.InsideLoop())
	assert.False(t, root.InsideLoop())
}

func TestReparentSplicesTableAndChildren(t *testing.T) {
	a := NewRoot(nil)
	a.Table.Put("fromA", types.Variable{Name: "fromA", Type: types.Int{}})
	b := NewRoot(nil)
	b.Table.Put("fromB", types.Variable{Name: "fromB", Type: types.Int{}})

	orphan := NewRoot(nil).Child("C", nil)
	require.Nil(t, orphan.Reparent(a))
	_, ok := orphan.Table.Get("fromA")
	assert.True(t, ok)

	require.Nil(t, orphan.Reparent(b))
	_, ok = orphan.Table.Get("fromA")
	assert.False(t, ok, "reparenting replaces, not merges, the chain")
	_, ok = orphan.Table.Get("fromB")
	assert.True(t, ok)
	assert.Contains(t, b.Children, orphan)
	assert.NotContains(t, a.Children, orphan)
}

func TestReparentOntoSelfIsRefused(t *testing.T) {
	n := NewRoot(nil)
	d := n.Reparent(n)
	require.NotNil(t, d)
}

func TestWalkVisitsEveryDescendant(t *testing.T) {
	root := NewRoot(nil)
	a := root.Child("A", nil)
	a.Child("B", nil)
	root.Child("C", nil)

	var names []string
	Walk(root, func(n *Node) { names = append(names, n.BoundName) })
	assert.ElementsMatch(t, []string{"Program", "A", "B", "C"}, names)
}

func TestPrintRendersBoundNamesAndEntries(t *testing.T) {
	root := NewRoot(nil)
	root.Table.Put("x", types.Variable{Name: "x", Type: types.Int{}})
	child := root.Child("Subblock", nil)
	child.Table.Put("y", types.Variable{Name: "y", Type: types.Bool{}})

	out := Print(root)
	assert.Contains(t, out, "Program:")
	assert.Contains(t, out, "x ==> x")
	assert.Contains(t, out, "Subblock:")
	assert.Contains(t, out, "y ==> y")
}
