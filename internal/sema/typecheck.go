package sema

import (
	"fmt"

	"github.com/funvibe/decaf/internal/ast"
	"github.com/funvibe/decaf/internal/diagnostics"
	"github.com/funvibe/decaf/internal/scope"
	"github.com/funvibe/decaf/internal/token"
	"github.com/funvibe/decaf/internal/types"
)

// typecheck is C8: a single tree walk computing and checking types, the
// last of the five passes. It reuses collect's declaration-shaped recursion
// (walking every VarDecl/FnDecl/ClassDecl/InterfaceDecl, not just top-level
// ones) since the same nesting applies to what needs type-checking.
func typecheck(program *ast.Program, diags *[]*diagnostics.Diagnostic) {
	for _, d := range program.Decls {
		typecheckDecl(d, diags)
	}
}

func typecheckDecl(d ast.Decl, diags *[]*diagnostics.Diagnostic) {
	switch n := d.(type) {
	case *ast.VarDecl:
		checkTypeExists(scopeOf(n), n.DeclType.Pos(), n.DeclType, "variable", diags)

	case *ast.FnDecl:
		typecheckFnDecl(n, diags)

	case *ast.ClassDecl:
		for _, m := range n.Members {
			typecheckDecl(m, diags)
		}

	case *ast.InterfaceDecl:
		for _, m := range n.Members {
			typecheckDecl(m, diags)
		}

	default:
		diagnostics.Abort("typecheck: unhandled declaration kind")
	}
}

func typecheckFnDecl(n *ast.FnDecl, diags *[]*diagnostics.Diagnostic) {
	formalsScope := scopeOf(n)
	checkTypeExists(formalsScope, n.ReturnType.Pos(), n.ReturnType, "function", diags)
	for _, f := range n.Formals {
		checkTypeExists(scopeOf(f), f.DeclType.Pos(), f.DeclType, "variable", diags)
	}
	if n.Body != nil {
		typecheckBlock(n.Body, diags)
	}
}

func typecheckBlock(blk *ast.StmtBlock, diags *[]*diagnostics.Diagnostic) {
	for _, d := range blk.Decls {
		checkTypeExists(scopeOf(d), d.DeclType.Pos(), d.DeclType, "variable", diags)
	}
	for _, s := range blk.Stmts {
		typecheckStmt(s, diags)
	}
}

func typecheckStmt(s ast.Stmt, diags *[]*diagnostics.Diagnostic) {
	switch n := s.(type) {
	case *ast.StmtBlock:
		typecheckBlock(n, diags)

	case *ast.IfStmt:
		checkBoolTest(n.Test, scopeOf(n.Test), diags)
		typecheckStmt(n.Then, diags)
		if n.Else != nil {
			typecheckStmt(n.Else, diags)
		}

	case *ast.ForStmt:
		checkBoolTest(n.Test, scopeOf(n.Test), diags)
		typecheckStmt(n.Body, diags)

	case *ast.WhileStmt:
		checkBoolTest(n.Test, scopeOf(n.Test), diags)
		typecheckStmt(n.Body, diags)

	case *ast.ReturnStmt:
		typecheckReturn(n, diags)

	case *ast.BreakStmt:
		if !scopeOf(n).InsideLoop() {
			*diags = append(*diags, diagnostics.NewBreakOutsideLoop(n.Pos()))
		}

	case *ast.PrintStmt:
		for i, a := range n.Args {
			t := exprType(a, scopeOf(a))
			if e, ok := t.(types.Error); ok {
				*diags = append(*diags, e.Diagnostics...)
				continue
			}
			if !isPrintable(t) {
				*diags = append(*diags, diagnostics.NewIncompatibleArgument(n.Pos(), i+1, t.String()))
			}
		}

	case *ast.SwitchStmt:
		unpackError(exprType(n.Tag, scopeOf(n.Tag)), diags)
		for _, c := range n.Cases {
			for _, cs := range c.Body {
				typecheckStmt(cs, diags)
			}
		}

	case *ast.ExprStmt:
		unpackError(exprType(n.X, scopeOf(n.X)), diags)

	default:
		diagnostics.Abort("typecheck: unhandled statement kind")
	}
}

func isPrintable(t types.Type) bool {
	switch t.(type) {
	case types.Int, types.Bool, types.String:
		return true
	default:
		return false
	}
}

func checkBoolTest(test ast.Expr, sc *scope.Node, diags *[]*diagnostics.Diagnostic) {
	t := exprType(test, sc)
	if e, ok := t.(types.Error); ok {
		*diags = append(*diags, e.Diagnostics...)
		return
	}
	if _, ok := t.(types.Bool); !ok {
		*diags = append(*diags, diagnostics.NewInvalidTest(test.Pos()))
	}
}

// typecheckReturn implements findReturnType plus the return-type
// compatibility rule. A return statement with no enclosing FnDecl is the
// fatal invariant findReturnType itself already guards against.
func typecheckReturn(n *ast.ReturnStmt, diags *[]*diagnostics.Diagnostic) {
	fn := findReturnType(n)
	expected := astTypeToSemType(fn.ReturnType)

	if n.Value == nil {
		if _, ok := expected.(types.Void); !ok {
			*diags = append(*diags, diagnostics.NewIncompatibleReturn(n.Pos(), "void", expected.String()))
		}
		return
	}

	got := exprType(n.Value, scopeOf(n.Value))
	if e, ok := got.(types.Error); ok {
		*diags = append(*diags, e.Diagnostics...)
		return
	}
	if !types.Matches(got, expected) {
		*diags = append(*diags, diagnostics.NewIncompatibleReturn(n.Pos(), got.String(), expected.String()))
	}
}

// checkTypeExists implements the named-type existence check: a
// NamedType must resolve in scope to a ClassAnnotation or InterfaceAnnotation;
// an ArrayType recurses on its element; primitives and null are always fine.
// kind only affects message wording (the "<kind>" placeholder).
func checkTypeExists(sc *scope.Node, pos token.Position, t ast.Type, kind string, diags *[]*diagnostics.Diagnostic) {
	switch n := t.(type) {
	case *ast.VoidType, *ast.IntType, *ast.DoubleType, *ast.BoolType, *ast.StringType, *ast.NullType:
		return

	case *ast.NamedType:
		v, ok := sc.Table.Get(n.Name)
		if !ok {
			*diags = append(*diags, diagnostics.NewUndeclaredType(pos, n.Name, kind))
			return
		}
		switch v.(type) {
		case types.Class, types.Interface:
			return
		default:
			*diags = append(*diags, diagnostics.NewUndeclaredType(pos, n.Name, kind))
		}

	case *ast.ArrayType:
		checkTypeExists(sc, pos, n.Elem, kind, diags)

	default:
		diagnostics.Abort(fmt.Sprintf("checkTypeExists: unexpected type %T", t))
	}
}
