package sema

import (
	"github.com/funvibe/decaf/internal/ast"
	"github.com/funvibe/decaf/internal/diagnostics"
	"github.com/funvibe/decaf/internal/scope"
	"github.com/funvibe/decaf/internal/types"
)

// link is C6: re-parent every extending class's scope onto its base class's
// scope, so that afterward cScope.Table.ChainContains(memberOfBase) is true
// without copying a single entry. Only top-level ClassDecls can extend
// (nested class declarations are out of scope for Decaf), so this pass only
// needs to walk program.Decls, not the full tree C5 walked.
func link(program *ast.Program, diags *[]*diagnostics.Diagnostic) {
	for _, d := range program.Decls {
		if c, ok := d.(*ast.ClassDecl); ok {
			linkClass(c, diags)
		}
	}
}

func linkClass(n *ast.ClassDecl, diags *[]*diagnostics.Diagnostic) {
	if n.Extends == nil {
		return
	}
	cScope := scopeOf(n)
	baseScope, ok := locateClassScope(cScope, n.Extends.Name)
	if !ok {
		// Extending a name that isn't a known class at all is reported by
		// C7's extends well-formedness check, not here.
		return
	}
	// A base whose scope chain already passes through cScope (cScope itself
	// included) closes an inheritance cycle. C7 reports the cycle; splicing
	// it in here would make the table chain loop back on itself.
	for s := baseScope; s != nil; s = s.Parent {
		if s == cScope {
			return
		}
	}
	if d := cScope.Reparent(baseScope); d != nil {
		*diags = append(*diags, d)
	}
}

// locateClassScope is locateAnywhere specialized to ClassAnnotation: from
// any scope node, climb to the tree root, then search every scope's LOCAL
// table for name bound to a Class, returning that class's own scope.
func locateClassScope(start *scope.Node, name string) (*scope.Node, bool) {
	root := start.Root()
	var found *scope.Node
	scope.Walk(root, func(n *scope.Node) {
		if found != nil || !n.Table.Contains(name) {
			return
		}
		v, _ := n.Table.Get(name)
		if c, ok := v.(types.Class); ok {
			found = c.ScopeRef.(*scope.Node)
		}
	})
	return found, found != nil
}

