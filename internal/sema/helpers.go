package sema

import (
	"github.com/funvibe/decaf/internal/ast"
	"github.com/funvibe/decaf/internal/diagnostics"
	"github.com/funvibe/decaf/internal/scope"
)

// scopeOf recovers the *scope.Node a C4-decorated AST node was assigned.
// A missing scope at this point is a fatal invariant violation; we abort
// rather than silently proceeding with a nil table.
func scopeOf(n ast.Node) *scope.Node {
	s, ok := n.GetScope().(*scope.Node)
	if !ok || s == nil {
		diagnostics.Abort("node has no scope assigned — C4 did not run over this subtree")
	}
	return s
}

// findReturnType climbs the AST parent chain from node, used from
// ReturnStmt, until it reaches the FnDecl whose body contains it, and
// returns that FnDecl. A return statement with no enclosing function is a
// parser/invariant impossibility, so failing to find one aborts rather
// than accumulating a diagnostic.
func findReturnType(node ast.Node) *ast.FnDecl {
	for n := node; n != nil; n = n.GetParent() {
		if fn, ok := n.(*ast.FnDecl); ok {
			return fn
		}
	}
	diagnostics.Abort("return statement has no enclosing function declaration")
	return nil
}
