// Package scope implements C2, the scope tree: a tree of Node values, each
// wrapping one forktable.Table (the node's symbol table) and a reference to
// the AST node whose lexical scope it represents.
package scope

import (
	"github.com/google/uuid"

	"github.com/funvibe/decaf/internal/ast"
	"github.com/funvibe/decaf/internal/diagnostics"
	"github.com/funvibe/decaf/internal/forktable"
	"github.com/funvibe/decaf/internal/token"
	"github.com/funvibe/decaf/internal/types"
)

// Table is the symbol table every Node owns: name -> what that name means.
type Table = forktable.Table[string, types.Annotation]

// Node is one scope in the tree. Its ID is an identity independent of
// BoundName, so two scopes that share a BoundName (e.g. two "Subblock"
// scopes) are still distinct values; Print does not include it.
type Node struct {
	ID        uuid.UUID
	Table     *Table
	BoundName string
	Parent    *Node
	Statement ast.Node
	Children  []*Node
}

// NewRoot creates the program's root scope: no parent, an empty table.
func NewRoot(stmt ast.Node) *Node {
	return &Node{
		ID:        uuid.New(),
		Table:     forktable.New[string, types.Annotation](),
		BoundName: "Program",
		Statement: stmt,
	}
}

// Child forks n's table into a new scope bound to stmt, appends it to n's
// children, and returns it.
func (n *Node) Child(boundName string, stmt ast.Node) *Node {
	c := &Node{
		ID:        uuid.New(),
		Table:     n.Table.Fork(),
		BoundName: boundName,
		Parent:    n,
		Statement: stmt,
	}
	n.Children = append(n.Children, c)
	return c
}

// Reparent detaches n from its current parent's children and re-attaches
// it under newParent, splicing n's table onto newParent's table in the
// same move. Attempting to reparent a node
// onto itself is refused and reported as a diagnostic rather than applied.
func (n *Node) Reparent(newParent *Node) *diagnostics.Diagnostic {
	if newParent == n {
		return diagnostics.NewInvalidReparent(position(n), n.BoundName)
	}
	if n.Parent != nil {
		n.Parent.removeChild(n)
	}
	n.Parent = newParent
	newParent.Children = append(newParent.Children, n)
	n.Table.Reparent(newParent.Table)
	return nil
}

func (n *Node) removeChild(target *Node) {
	for i, c := range n.Children {
		if c == target {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			return
		}
	}
}

// Root climbs to the top of the tree.
func (n *Node) Root() *Node {
	r := n
	for r.Parent != nil {
		r = r.Parent
	}
	return r
}

// InsideLoop reports whether n or any ancestor is a loop body.
func (n *Node) InsideLoop() bool {
	for s := n; s != nil; s = s.Parent {
		if s.BoundName == "Loop body" {
			return true
		}
	}
	return false
}

// Walk visits n and every descendant, pre-order.
func Walk(n *Node, visit func(*Node)) {
	visit(n)
	for _, c := range n.Children {
		Walk(c, visit)
	}
}

// position extracts a best-effort token.Position for a scope node, used
// only for the self-reparent diagnostic (scope.Node itself has no
// position; its Statement does).
func position(n *Node) token.Position {
	if n.Statement != nil {
		return n.Statement.Pos()
	}
	return token.Position{}
}
