package ast

// VarDecl declares a single variable: `int x;` or a formal parameter.
type VarDecl struct {
	Base
	Name     *Identifier
	DeclType Type
}

// FnDecl declares a method or top-level function. A nil Body means the
// declaration is abstract (an interface method, or a class method written
// with `;` in place of a body, which the parser also accepts).
type FnDecl struct {
	Base
	Name       *Identifier
	ReturnType Type
	Formals    []*VarDecl
	Body       *StmtBlock
}

// ClassDecl declares a class, optionally extending one base class and
// implementing any number of interfaces.
type ClassDecl struct {
	Base
	Name       *Identifier
	Extends    *NamedType
	Implements []*NamedType
	Members    []Decl // VarDecl | FnDecl
}

// InterfaceDecl declares an interface: a set of abstract method signatures.
type InterfaceDecl struct {
	Base
	Name    *Identifier
	Members []*FnDecl
}

func (*VarDecl) declNode()       {}
func (*FnDecl) declNode()        {}
func (*ClassDecl) declNode()     {}
func (*InterfaceDecl) declNode() {}
