package sema

import (
	"github.com/funvibe/decaf/internal/ast"
	"github.com/funvibe/decaf/internal/diagnostics"
	"github.com/funvibe/decaf/internal/types"
)

// collect is C5: walk every declaration reachable from program (not just
// its top-level Decls — nested var decls inside method bodies, class
// members, interface methods, and block-local declarations all go through
// the same processDecl-style logic) and insert each
// one into the table of the scope C4 already assigned it.
func collect(program *ast.Program, diags *[]*diagnostics.Diagnostic) {
	for _, d := range program.Decls {
		collectDecl(d, diags)
	}
}

func collectDecl(d ast.Decl, diags *[]*diagnostics.Diagnostic) {
	switch n := d.(type) {
	case *ast.VarDecl:
		collectVarDecl(n, diags)

	case *ast.FnDecl:
		collectFnDecl(n, diags)

	case *ast.ClassDecl:
		collectClassDecl(n, diags)

	case *ast.InterfaceDecl:
		collectInterfaceDecl(n, diags)

	default:
		diagnostics.Abort("collect: unhandled declaration kind")
	}
}

// collectVarDecl inserts name -> Variable into the scope the VarDecl itself
// was decorated with (its own declaring scope, whether that is a function's
// formals scope, a block, or a class scope).
func collectVarDecl(n *ast.VarDecl, diags *[]*diagnostics.Diagnostic) {
	s := scopeOf(n)
	name := n.Name.Name
	if s.Table.Contains(name) {
		prior, _ := s.Table.Get(name)
		*diags = append(*diags, diagnostics.NewConflictingDecl(n.Pos(), name, prior.Where().Line))
		return
	}
	s.Table.Put(name, types.Variable{
		Name: name,
		Type: astTypeToSemType(n.DeclType),
		At:   n.Pos(),
	})
}

// collectFnDecl inserts name -> Method into the *enclosing* scope — n's own
// scope reference is its formals scope (see decorator.go), so the enclosing
// scope is n.scope.Parent, never the formals scope itself. On a name
// conflict the body is left uncollected entirely.
func collectFnDecl(n *ast.FnDecl, diags *[]*diagnostics.Diagnostic) {
	formals := scopeOf(n)
	enclosing := formals.Parent
	name := n.Name.Name

	if enclosing.Table.Contains(name) {
		prior, _ := enclosing.Table.Get(name)
		*diags = append(*diags, diagnostics.NewConflictingDecl(n.Pos(), name, prior.Where().Line))
		return
	}

	formalTypes := make([]types.Type, len(n.Formals))
	for i, f := range n.Formals {
		formalTypes[i] = astTypeToSemType(f.DeclType)
	}
	enclosing.Table.Put(name, types.Method{
		Name:        name,
		ReturnType:  astTypeToSemType(n.ReturnType),
		FormalTypes: formalTypes,
		At:          n.Pos(),
	})

	for _, f := range n.Formals {
		collectVarDecl(f, diags)
	}
	if n.Body != nil {
		collectBlock(n.Body, diags)
	}
}

// collectClassDecl inserts the reserved "this" into the class's own scope,
// collects every member into that same scope, then inserts name -> Class
// into the parent scope (n.scope.Parent).
func collectClassDecl(n *ast.ClassDecl, diags *[]*diagnostics.Diagnostic) {
	cs := scopeOf(n)
	name := n.Name.Name

	if cs.Table.Contains("this") {
		diagnostics.Abort("class scope already contains \"this\" before collection — scope was not freshly forked")
	}
	cs.Table.Put("this", types.Variable{
		Name: "this",
		Type: types.Named{Name: name},
		At:   n.Pos(),
	})

	for _, m := range n.Members {
		collectDecl(m, diags)
	}

	var extends *types.Named
	if n.Extends != nil {
		extends = &types.Named{Name: n.Extends.Name}
	}
	implements := make([]types.Named, len(n.Implements))
	for i, it := range n.Implements {
		implements[i] = types.Named{Name: it.Name}
	}

	parent := cs.Parent
	if parent.Table.Contains(name) {
		prior, _ := parent.Table.Get(name)
		*diags = append(*diags, diagnostics.NewConflictingDecl(n.Pos(), name, prior.Where().Line))
		return
	}
	parent.Table.Put(name, types.Class{
		Self:       types.Named{Name: name},
		Extends:    extends,
		Implements: implements,
		ScopeRef:   cs,
		At:         n.Pos(),
	})
}

// collectInterfaceDecl collects every abstract method into the interface's
// own scope, then inserts name -> Interface into the parent scope.
func collectInterfaceDecl(n *ast.InterfaceDecl, diags *[]*diagnostics.Diagnostic) {
	is := scopeOf(n)
	name := n.Name.Name

	for _, m := range n.Members {
		collectFnDecl(m, diags)
	}

	parent := is.Parent
	if parent.Table.Contains(name) {
		prior, _ := parent.Table.Get(name)
		*diags = append(*diags, diagnostics.NewConflictingDecl(n.Pos(), name, prior.Where().Line))
		return
	}
	parent.Table.Put(name, types.Interface{
		Self:     types.Named{Name: name},
		ScopeRef: is,
		At:       n.Pos(),
	})
}

// collectBlock walks a StmtBlock's own local VarDecls, then recurses into
// its statements to find further nested declarations (in sub-blocks, loop
// bodies, if-arms, and switch cases).
func collectBlock(blk *ast.StmtBlock, diags *[]*diagnostics.Diagnostic) {
	for _, d := range blk.Decls {
		collectVarDecl(d, diags)
	}
	for _, s := range blk.Stmts {
		collectStmt(s, diags)
	}
}

// collectStmt recurses into every statement kind that can contain a nested
// block (and therefore nested declarations). Expressions never declare
// anything, so ReturnStmt/PrintStmt/ExprStmt need no recursion here.
func collectStmt(s ast.Stmt, diags *[]*diagnostics.Diagnostic) {
	switch n := s.(type) {
	case *ast.StmtBlock:
		collectBlock(n, diags)

	case *ast.IfStmt:
		collectStmt(n.Then, diags)
		if n.Else != nil {
			collectStmt(n.Else, diags)
		}

	case *ast.ForStmt:
		collectStmt(n.Body, diags)

	case *ast.WhileStmt:
		collectStmt(n.Body, diags)

	case *ast.SwitchStmt:
		for _, c := range n.Cases {
			for _, cs := range c.Body {
				collectStmt(cs, diags)
			}
		}

	case *ast.ReturnStmt, *ast.BreakStmt, *ast.PrintStmt, *ast.ExprStmt:
		// no declarations possible

	default:
		diagnostics.Abort("collect: unhandled statement kind")
	}
}
