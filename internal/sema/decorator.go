// Package sema implements C4 through C8: the scope decorator, declaration
// collector, inheritance linker, class checker, and type checker that
// together turn a parsed Program into an annotated scope tree plus a list
// of diagnostics (the analyze(program) pipeline).
//
// The five passes are one function per pass, each a full tree walk, sharing
// a small amount of state threaded through explicit parameters rather than
// a stateful "walker" struct — each pass here is a dedicated top-level
// function with no per-pass mode flags.
package sema

import (
	"github.com/funvibe/decaf/internal/ast"
	"github.com/funvibe/decaf/internal/diagnostics"
	"github.com/funvibe/decaf/internal/scope"
)

// decorate is C4: attach a scope.Node to every AST node, creating a child
// scope only at class/function/block/loop/if-arm boundaries. It also sets each node's
// AST parent back-reference (used later by findReturnType), since that
// information is naturally available at exactly this point in the walk.
func decorate(node ast.Node, parent ast.Node, current *scope.Node) {
	if node == nil {
		return
	}
	node.SetParent(parent)
	node.SetScope(current)

	switch n := node.(type) {
	case *ast.Program:
		for _, d := range n.Decls {
			decorate(d, n, current)
		}

	case *ast.ClassDecl:
		// The ClassDecl's own scope reference is its freshly forked class
		// scope, not the scope it was declared in — C5 inserts "this" and
		// every member straight into n.scope.table, and C7 needs
		// n.scope.Parent to find where the ClassAnnotation itself lives.
		cs := current.Child("Class Declaration of "+n.Name.Name, n)
		node.SetScope(cs)
		decorateIdent(n.Name, n, cs)
		if n.Extends != nil {
			decorateType(n.Extends, n, cs)
		}
		for _, i := range n.Implements {
			decorateType(i, n, cs)
		}
		for _, m := range n.Members {
			decorate(m, n, cs)
		}

	case *ast.InterfaceDecl:
		is := current.Child("Interface Declaration of "+n.Name.Name, n)
		node.SetScope(is)
		decorateIdent(n.Name, n, is)
		for _, m := range n.Members {
			decorate(m, n, is)
		}

	case *ast.FnDecl:
		// Likewise, an FnDecl's own scope is its formals scope: C5 inserts
		// the MethodAnnotation into formals.Parent (the enclosing scope),
		// explicitly not into the formals scope itself.
		formals := current.Child("FnDecl (formals) "+n.Name.Name, n)
		node.SetScope(formals)
		decorateIdent(n.Name, n, formals)
		decorateType(n.ReturnType, n, formals)
		for _, f := range n.Formals {
			decorate(f, n, formals)
		}
		if n.Body != nil {
			body := formals.Child("FnDecl (body) "+n.Name.Name, n.Body)
			decorateBlockContents(n.Body, n, body)
		}

	case *ast.VarDecl:
		node.SetScope(current)
		decorateIdent(n.Name, n, current)
		decorateType(n.DeclType, n, current)

	case *ast.StmtBlock:
		// A StmtBlock reached directly (not via FnDecl/If/For/While, which
		// already forked a scope for it) is a nested "Subblock".
		sub := current.Child("Subblock", n)
		decorateBlockContents(n, parent, sub)

	case *ast.IfStmt:
		decorate(n.Test, n, current) // condition: enclosing scope, not the body's
		thenScope := current.Child("Test body", n.Then)
		decorateStmtInScope(n.Then, n, thenScope)
		if n.Else != nil {
			if blk, ok := n.Else.(*ast.StmtBlock); ok {
				elseScope := current.Child("Subblock", blk)
				decorateBlockContents(blk, n, elseScope)
			} else {
				decorate(n.Else, n, current)
			}
		}

	case *ast.ForStmt:
		if n.Init != nil {
			decorate(n.Init, n, current)
		}
		decorate(n.Test, n, current)
		if n.Step != nil {
			decorate(n.Step, n, current)
		}
		loopScope := current.Child("Loop body", n.Body)
		decorateStmtInScope(n.Body, n, loopScope)

	case *ast.WhileStmt:
		decorate(n.Test, n, current)
		loopScope := current.Child("Loop body", n.Body)
		decorateStmtInScope(n.Body, n, loopScope)

	case *ast.ReturnStmt:
		if n.Value != nil {
			decorate(n.Value, n, current)
		}

	case *ast.BreakStmt:
		// leaf

	case *ast.PrintStmt:
		for _, a := range n.Args {
			decorate(a, n, current)
		}

	case *ast.SwitchStmt:
		decorate(n.Tag, n, current)
		for _, c := range n.Cases {
			decorate(c, n, current)
		}

	case *ast.CaseStmt:
		if n.Value != nil {
			decorate(n.Value, n, current)
		}
		for _, s := range n.Body {
			decorate(s, n, current)
		}

	case *ast.ExprStmt:
		decorate(n.X, n, current)

	// Expressions: all inherit the enclosing scope; only their children
	// need recursing into.
	case *ast.IdentExpr:
		decorateIdent(n.Name, n, current)
	case *ast.IntLit:
	case *ast.DoubleLit:
	case *ast.BoolLit:
	case *ast.StringLit:
	case *ast.NullLit:
	case *ast.ThisExpr:
	case *ast.ReadIntegerExpr:
	case *ast.ReadLineExpr:

	case *ast.FieldAccessExpr:
		if n.Base != nil {
			decorate(n.Base, n, current)
		}
		decorateIdent(n.Field, n, current)

	case *ast.ArrayAccessExpr:
		decorate(n.Base, n, current)
		decorate(n.Index, n, current)

	case *ast.CallExpr:
		if n.Base != nil {
			decorate(n.Base, n, current)
		}
		decorateIdent(n.Method, n, current)
		for _, a := range n.Args {
			decorate(a, n, current)
		}

	case *ast.NewExpr:
		decorateType(n.ClassType, n, current)

	case *ast.NewArrayExpr:
		decorate(n.Size, n, current)
		decorateType(n.Elem, n, current)

	case *ast.AssignExpr:
		decorate(n.LHS, n, current)
		decorate(n.RHS, n, current)

	case *ast.CompoundExpr:
		// CompoundExpr's optional left operand: the unary form has a nil Left.
		if n.Left != nil {
			decorate(n.Left, n, current)
		}
		decorate(n.Right, n, current)

	default:
		diagnostics.Abort("decorate: unhandled AST node type")
	}
}

// decorateBlockContents decorates a StmtBlock's own decls/stmts using an
// already-created scope for the block, without forking another one for the
// block itself (the caller already did that).
func decorateBlockContents(blk *ast.StmtBlock, parent ast.Node, blkScope *scope.Node) {
	blk.SetParent(parent)
	blk.SetScope(blkScope)
	for _, d := range blk.Decls {
		decorate(d, blk, blkScope)
	}
	for _, s := range blk.Stmts {
		decorate(s, blk, blkScope)
	}
}

// decorateStmtInScope decorates a statement that may or may not itself be a
// StmtBlock, given a scope that was already forked for it (an if-then arm
// or a loop body): if it is a block, use decorateBlockContents so we don't
// fork twice; otherwise decorate it normally in the given scope.
func decorateStmtInScope(stmt ast.Stmt, parent ast.Node, s *scope.Node) {
	if blk, ok := stmt.(*ast.StmtBlock); ok {
		decorateBlockContents(blk, parent, s)
		return
	}
	decorate(stmt, parent, s)
}

func decorateIdent(id *ast.Identifier, parent ast.Node, current *scope.Node) {
	if id == nil {
		return
	}
	id.SetParent(parent)
	id.SetScope(current)
}

func decorateType(t ast.Type, parent ast.Node, current *scope.Node) {
	if t == nil {
		return
	}
	t.SetParent(parent)
	t.SetScope(current)
	if arr, ok := t.(*ast.ArrayType); ok {
		decorateType(arr.Elem, parent, current)
	}
}
