package ast

// Type is the tagged union of type expressions that can appear in source
// (as opposed to types.Type, the semantic model C3 computes from these).
// Keeping the syntactic and semantic type representations separate mirrors
// how the parser only knows what was written, while C3/C8 decide what it
// means.
type Type interface {
	Node
	typeNode()
	String() string
}

type VoidType struct{ Base }
type IntType struct{ Base }
type DoubleType struct{ Base }
type BoolType struct{ Base }
type StringType struct{ Base }
type NullType struct{ Base }

// NamedType refers to a class or interface by name, e.g. `Animal` or `Foo`.
type NamedType struct {
	Base
	Name string
}

// ArrayType is `Elem[]`.
type ArrayType struct {
	Base
	Elem Type
}

func (*VoidType) typeNode()   {}
func (*IntType) typeNode()    {}
func (*DoubleType) typeNode() {}
func (*BoolType) typeNode()   {}
func (*StringType) typeNode() {}
func (*NullType) typeNode()   {}
func (*NamedType) typeNode()  {}
func (*ArrayType) typeNode()  {}

func (*VoidType) String() string   { return "void" }
func (*IntType) String() string    { return "int" }
func (*DoubleType) String() string { return "double" }
func (*BoolType) String() string   { return "bool" }
func (*StringType) String() string { return "string" }
func (*NullType) String() string   { return "null" }
func (n *NamedType) String() string { return n.Name }
func (a *ArrayType) String() string {
	if a.Elem == nil {
		return "[]"
	}
	return a.Elem.String() + "[]"
}
