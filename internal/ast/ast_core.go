// Package ast defines the Decaf abstract syntax tree. This is the contract
// the parser (an external collaborator) hands to the semantic analysis
// core: every node carries a Position and a mutable back-reference to the
// scope that governs it.
//
// The AST intentionally knows nothing about scope.Node or types.Type: both
// live in higher packages (internal/scope, internal/types, internal/sema)
// so that this package stays a leaf with no dependency on the analysis it
// is being analyzed by. The scope back-reference is stored as `any` and
// type-asserted back to *scope.Node by the sema package — a
// "mutable reference to its enclosing ScopeNode" without
// forcing an import cycle.
package ast

import "github.com/funvibe/decaf/internal/token"

// Node is the base interface every AST node satisfies. Every node carries a
// parent back-reference, not only expressions (see Base's doc comment) —
// findReturnType climbs through statements and blocks, not just expressions,
// to reach the enclosing FnDecl.
type Node interface {
	Pos() token.Position
	SetScope(s any)
	GetScope() any
	SetParent(p Node)
	GetParent() Node
}

// Decl is a top-level or member declaration.
type Decl interface {
	Node
	declNode()
}

// Stmt is a statement inside a function/method body.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression.
type Expr interface {
	Node
	exprNode()
}

// Base is embedded by every concrete node to provide Position, the scope
// back-reference, and a parent back-reference. The parent link is set on
// every node kind (not only expressions) during C4's decoration pass so
// that findReturnType can climb from a return expression up through its
// enclosing statements and blocks to the FnDecl that encloses them, the way
// the rest of the package describes.
type Base struct {
	Position token.Position
	scope    any
	parent   Node
}

func (b *Base) Pos() token.Position { return b.Position }
func (b *Base) SetScope(s any)      { b.scope = s }
func (b *Base) GetScope() any       { return b.scope }
func (b *Base) SetParent(p Node)    { b.parent = p }
func (b *Base) GetParent() Node     { return b.parent }

// ExprBase is the marker embed for expression nodes; Base already supplies
// the parent/scope plumbing Expr requires.
type ExprBase struct {
	Base
}

func (*ExprBase) exprNode() {}

// Identifier names a declaration or a use-site reference. It is not itself
// an Expr (it has no independent type), but many Expr/Decl nodes embed one.
type Identifier struct {
	Base
	Name string
}

// Program is the root of every parsed source file.
type Program struct {
	Base
	Decls []Decl
}
