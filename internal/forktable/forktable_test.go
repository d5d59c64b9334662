package forktable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutAndGet(t *testing.T) {
	tbl := New[string, int]()
	tbl.Put("x", 1)

	v, ok := tbl.Get("x")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestForkSeesParentEntries(t *testing.T) {
	parent := New[string, int]()
	parent.Put("x", 1)
	child := parent.Fork()

	v, ok := child.Get("x")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.False(t, child.Contains("x"), "Contains must be local-only")
	assert.True(t, child.ChainContains("x"))
}

func TestLocalShadowsParent(t *testing.T) {
	parent := New[string, int]()
	parent.Put("x", 1)
	child := parent.Fork()
	child.Put("x", 2)

	v, _ := child.Get("x")
	assert.Equal(t, 2, v, "local insert must shadow the parent's value")
}

func TestRemoveLocalOnlyForgets(t *testing.T) {
	tbl := New[string, int]()
	tbl.Put("x", 1)
	tbl.Remove("x")

	_, ok := tbl.Get("x")
	assert.False(t, ok)
	assert.Empty(t, tbl.Local())
}

func TestRemoveInheritedWhitesOutWithoutMutatingParent(t *testing.T) {
	parent := New[string, int]()
	parent.Put("x", 1)
	child := parent.Fork()

	child.Remove("x")

	_, ok := child.Get("x")
	assert.False(t, ok, "whited-out key must be reported absent")
	assert.False(t, child.ChainContains("x"))

	pv, pok := parent.Get("x")
	require.True(t, pok, "removing through a child must not mutate the parent")
	assert.Equal(t, 1, pv)
}

func TestWhiteoutThenReinsertUnhides(t *testing.T) {
	parent := New[string, int]()
	parent.Put("x", 1)
	child := parent.Fork()
	child.Remove("x")
	child.Put("x", 9)

	v, ok := child.Get("x")
	require.True(t, ok)
	assert.Equal(t, 9, v)
}

func TestChainContainsRespectsWhiteout(t *testing.T) {
	parent := New[string, int]()
	parent.Put("x", 1)
	child := parent.Fork()
	child.Remove("x")

	assert.False(t, child.ChainContains("x"))
}

func TestReparentSplicesOntoNewParent(t *testing.T) {
	a := New[string, int]()
	a.Put("fromA", 1)
	b := New[string, int]()
	b.Put("fromB", 2)

	child := New[string, int]().Fork() // detached fork, parent currently nil-ish root
	child.Reparent(a)
	_, ok := child.Get("fromA")
	assert.True(t, ok)

	child.Reparent(b)
	_, ok = child.Get("fromA")
	assert.False(t, ok, "reparenting must replace, not merge, the chain")
	v, ok := child.Get("fromB")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestLocalIterationExcludesParentAndWhiteouts(t *testing.T) {
	parent := New[string, int]()
	parent.Put("inherited", 1)
	child := parent.Fork()
	child.Put("own", 2)
	child.Remove("inherited")

	entries := child.Local()
	require.Len(t, entries, 1)
	assert.Equal(t, "own", entries[0].Key)
}

func TestForkThenRemoveLeavesParentUnchanged(t *testing.T) {
	parent := New[string, int]()
	parent.Put("a", 1)
	parent.Put("b", 2)

	child := parent.Fork()
	child.Put("a", 100) // shadow then remove
	child.Remove("a")
	child.Remove("b") // whiteout of an inherited key we never shadowed

	// Removing through the child, whether a local shadow or an entry that
	// only existed via the parent, must not change what the parent reports.
	av, aok := parent.Get("a")
	bv, bok := parent.Get("b")
	require.True(t, aok)
	require.True(t, bok)
	assert.Equal(t, 1, av)
	assert.Equal(t, 2, bv)
}
