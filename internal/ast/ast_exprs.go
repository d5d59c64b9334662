package ast

// IntLit is an integer literal (decimal or 0x/0X hex, per the lexer).
type IntLit struct {
	ExprBase
	Value int64
}

// DoubleLit is a floating point literal.
type DoubleLit struct {
	ExprBase
	Value float64
}

// BoolLit is `true` or `false`.
type BoolLit struct {
	ExprBase
	Value bool
}

// StringLit is a quoted string literal.
type StringLit struct {
	ExprBase
	Value string
}

// NullLit is the `null` literal.
type NullLit struct {
	ExprBase
}

// ThisExpr is the `this` keyword, valid only inside a class's methods.
type ThisExpr struct {
	ExprBase
}

// IdentExpr is a bare name used as an expression (a variable read).
type IdentExpr struct {
	ExprBase
	Name *Identifier
}

// FieldAccessExpr is `base.field` (or a bare `field`/implicit `this.field`
// when Base is nil).
type FieldAccessExpr struct {
	ExprBase
	Base  Expr // nil for an unqualified reference
	Field *Identifier
}

// ArrayAccessExpr is `base[index]`.
type ArrayAccessExpr struct {
	ExprBase
	Base  Expr
	Index Expr
}

// CallExpr is `[base.]method(args)`. Base is nil for an unqualified call
// (a local function or an implicit `this.method(...)`).
type CallExpr struct {
	ExprBase
	Base   Expr
	Method *Identifier
	Args   []Expr
}

// NewExpr is `new ClassName`.
type NewExpr struct {
	ExprBase
	ClassType *NamedType
}

// NewArrayExpr is `NewArray(size, ElemType)`.
type NewArrayExpr struct {
	ExprBase
	Size Expr
	Elem Type
}

// ReadIntegerExpr is the `ReadInteger()` builtin call.
type ReadIntegerExpr struct {
	ExprBase
}

// ReadLineExpr is the `ReadLine()` builtin call.
type ReadLineExpr struct {
	ExprBase
}

// AssignExpr is `lhs = rhs`.
type AssignExpr struct {
	ExprBase
	LHS Expr
	RHS Expr
}

// CompoundExpr is the general arithmetic/relational/logical operator node.
// Left is nil for the unary forms (`-x`, `!x`).
type CompoundExpr struct {
	ExprBase
	Left  Expr // nil for unary operators
	Op    string
	Right Expr
}

// exprNode() is promoted from the embedded ExprBase on every type above.
