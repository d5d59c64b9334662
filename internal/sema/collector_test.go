package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/decaf/internal/diagnostics"
	"github.com/funvibe/decaf/internal/scope"
	"github.com/funvibe/decaf/internal/types"
)

func decorateAndCollect(t *testing.T, src string) (*scope.Node, []*diagnostics.Diagnostic) {
	t.Helper()
	prog := parseClean(t, src)
	root := scope.NewRoot(prog)
	decorate(prog, nil, root)
	var diags []*diagnostics.Diagnostic
	collect(prog, &diags)
	return root, diags
}

func TestCollectInsertsTopLevelFunction(t *testing.T) {
	root, diags := decorateAndCollect(t, `void h() {}`)
	assert.Empty(t, diags)
	_, ok := root.Table.Get("h")
	assert.True(t, ok)
}

func TestCollectConflictingFunctionsEmitOneDiagnostic(t *testing.T) {
	_, diags := decorateAndCollect(t, `
		void h() {}
		void h() {}
	`)
	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.ConflictingDecl, diags[0].Code)
}

func TestCollectClassInsertsThisAndMembers(t *testing.T) {
	root, diags := decorateAndCollect(t, `
		class Animal {
			int legs;
			void speak() {}
		}
	`)
	require.Empty(t, diags)
	entry, ok := root.Table.Get("Animal")
	require.True(t, ok)
	class, ok := entry.(types.Class)
	require.True(t, ok)
	classScope, ok := class.ScopeRef.(*scope.Node)
	require.True(t, ok)

	_, ok = classScope.Table.Get("this")
	assert.True(t, ok)
	_, ok = classScope.Table.Get("legs")
	assert.True(t, ok)
	_, ok = classScope.Table.Get("speak")
	assert.True(t, ok)
}

func TestCollectClassRecordsExtendsAndImplements(t *testing.T) {
	root, diags := decorateAndCollect(t, `
		interface Noisy { void speak(); }
		class Animal implements Noisy {
			void speak() {}
		}
		class Dog extends Animal {
		}
	`)
	require.Empty(t, diags)

	entry, ok := root.Table.Get("Animal")
	require.True(t, ok)
	animal := entry.(types.Class)
	require.Len(t, animal.Implements, 1)
	assert.Equal(t, "Noisy", animal.Implements[0].Name)

	entry, ok = root.Table.Get("Dog")
	require.True(t, ok)
	dog := entry.(types.Class)
	require.NotNil(t, dog.Extends)
	assert.Equal(t, "Animal", dog.Extends.Name)
}

func TestCollectNestedBlockLocalsReachDeepSwitchCases(t *testing.T) {
	root, diags := decorateAndCollect(t, `
		void h() {
			int tag;
			switch (tag) {
				case 1:
					{ int insideCase; }
				default:
					{ int alsoInsideCase; }
			}
		}
	`)
	assert.Empty(t, diags)
	_, ok := root.Table.Get("h")
	assert.True(t, ok)

	var locals []string
	scope.Walk(root, func(n *scope.Node) {
		for _, e := range n.Table.Local() {
			locals = append(locals, e.Key)
		}
	})
	assert.Contains(t, locals, "insideCase")
	assert.Contains(t, locals, "alsoInsideCase")
}

func TestCollectVarConflictInSameBlockReportsPriorLine(t *testing.T) {
	_, diags := decorateAndCollect(t, `
		void h() {
			int x;
			int x;
		}
	`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "conflicts with declaration on line 3")
}
