package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/decaf/internal/ast"
	"github.com/funvibe/decaf/internal/diagnostics"
	"github.com/funvibe/decaf/internal/scope"
)

func decorateCollectLink(t *testing.T, src string) (*scope.Node, *ast.Program, []*diagnostics.Diagnostic) {
	t.Helper()
	prog := parseClean(t, src)
	root := scope.NewRoot(prog)
	decorate(prog, nil, root)
	var diags []*diagnostics.Diagnostic
	collect(prog, &diags)
	link(prog, &diags)
	return root, prog, diags
}

func TestLinkReparentsDerivedClassScopeOntoBase(t *testing.T) {
	root, prog, diags := decorateCollectLink(t, `
		class Animal { int legs; }
		class Dog extends Animal { int tailLength; }
	`)
	require.Empty(t, diags)

	_, ok := root.Table.Get("Dog")
	require.True(t, ok)

	dogDecl := prog.Decls[1].(*ast.ClassDecl)
	dogScope := dogDecl.GetScope().(*scope.Node)

	_, ok = dogScope.Table.Get("legs")
	assert.True(t, ok, "a derived class scope sees the base class's members after linking")
	_, ok = dogScope.Table.Get("tailLength")
	assert.True(t, ok)
}

func TestLinkClassWithoutExtendsIsUntouched(t *testing.T) {
	_, prog, diags := decorateCollectLink(t, `
		class Animal { int legs; }
	`)
	require.Empty(t, diags)

	decl := prog.Decls[0].(*ast.ClassDecl)
	s := decl.GetScope().(*scope.Node)
	assert.Nil(t, s.Parent.Parent, "the root's own scope has no parent to climb to")
}

func TestLinkUnknownBaseClassIsIgnoredHere(t *testing.T) {
	_, prog, diags := decorateCollectLink(t, `
		class Dog extends Ghost { int tailLength; }
	`)
	assert.Empty(t, diags, "an unknown base class is C7's concern, not C6's")

	decl := prog.Decls[0].(*ast.ClassDecl)
	s := decl.GetScope().(*scope.Node)
	_, ok := s.Table.Get("tailLength")
	assert.True(t, ok)
}
