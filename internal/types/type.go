// Package types implements C3, the semantic type model: the tagged union
// of types a checked expression or declaration can have, and the implicit
// int→double widening rule.
//
// types deliberately does not import internal/scope even though
// ClassAnnotation/InterfaceAnnotation conceptually point at a class's or
// interface's ScopeNode: storing that back-reference as `any` here (callers
// type-assert it back to *scope.Node) keeps this package a
// leaf, the same way internal/ast avoids depending on internal/scope.
package types

import (
	"github.com/funvibe/decaf/internal/diagnostics"
	"github.com/funvibe/decaf/internal/token"
)

// Type is the semantic type of a checked expression, declaration, or
// return position.
type Type interface {
	String() string
	typeTag()
}

type (
	Void   struct{}
	Int    struct{}
	Double struct{}
	Bool   struct{}
	String struct{}
	Null   struct{}
)

// Named is a class or interface type, referred to by name.
type Named struct {
	Name string
}

// Array is `Elem[]`.
type Array struct {
	Elem Type
}

// Undeclared stands in for a missing syntactic type (astTypeToSemType's
// fallback for a nil ast.Type). It carries no
// diagnostics of its own — ErrorType does that.
type Undeclared struct{}

// Error wraps one or more diagnostics produced while computing a type, so
// they can propagate through expression composition without being lost
// ("an error type carries its accumulated diagnostics") and be unpacked exactly
// once by whichever consumer first observes the ErrorType.
type Error struct {
	Diagnostics []*diagnostics.Diagnostic
}

func (Void) typeTag()       {}
func (Int) typeTag()        {}
func (Double) typeTag()     {}
func (Bool) typeTag()       {}
func (String) typeTag()     {}
func (Null) typeTag()       {}
func (Named) typeTag()      {}
func (Array) typeTag()      {}
func (Undeclared) typeTag() {}
func (Error) typeTag()      {}

func (Void) String() string       { return "void" }
func (Int) String() string        { return "int" }
func (Double) String() string     { return "double" }
func (Bool) String() string       { return "bool" }
func (String) String() string     { return "string" }
func (Null) String() string       { return "null" }
func (n Named) String() string    { return n.Name }
func (a Array) String() string    { return a.Elem.String() + "[]" }
func (Undeclared) String() string { return "undeclared" }
func (e Error) String() string    { return "error" }

// NewError builds an Error type from one diagnostic, the common case.
func NewError(d *diagnostics.Diagnostic) Error {
	return Error{Diagnostics: []*diagnostics.Diagnostic{d}}
}

// Equal is raw structural equality, with no widening. Use Matches for the
// assignability/comparison rule that allows int where double is expected.
func Equal(a, b Type) bool {
	switch at := a.(type) {
	case Void:
		_, ok := b.(Void)
		return ok
	case Int:
		_, ok := b.(Int)
		return ok
	case Double:
		_, ok := b.(Double)
		return ok
	case Bool:
		_, ok := b.(Bool)
		return ok
	case String:
		_, ok := b.(String)
		return ok
	case Null:
		_, ok := b.(Null)
		return ok
	case Named:
		bt, ok := b.(Named)
		return ok && at.Name == bt.Name
	case Array:
		bt, ok := b.(Array)
		return ok && Equal(at.Elem, bt.Elem)
	case Undeclared:
		_, ok := b.(Undeclared)
		return ok
	default:
		return false
	}
}

// isReference reports whether t is a type `null` may stand in for: any
// class/interface name or array type, but not a primitive.
func isReference(t Type) bool {
	switch t.(type) {
	case Named, Array:
		return true
	default:
		return false
	}
}

// Matches is the single allowed implicit conversion in Decaf:
// int widens to double. It also allows `null` wherever a reference type
// (a class, interface, or array type) is expected, since that is how
// return statements, assignments and argument matching treat null.
func Matches(have, want Type) bool {
	if Equal(have, want) {
		return true
	}
	if _, haveInt := have.(Int); haveInt {
		if _, wantDouble := want.(Double); wantDouble {
			return true
		}
	}
	if _, haveNull := have.(Null); haveNull && isReference(want) {
		return true
	}
	return false
}

// Annotation is the tagged union of symbol-table values: what a declared
// name means.
type Annotation interface {
	AnnotationName() string
	Where() token.Position
	annotationTag()
}

// Variable is what a VarDecl (including `this`) contributes to a scope.
type Variable struct {
	Name string
	Type Type
	At   token.Position
}

// Method is what an FnDecl contributes to its *enclosing* scope (not the
// formals scope).
type Method struct {
	Name        string
	ReturnType  Type
	FormalTypes []Type
	At          token.Position
}

// Class is what a ClassDecl contributes to its parent scope.
// ScopeRef is the class's own ScopeNode, stored untyped to avoid an import
// cycle with package scope (see the package doc comment).
type Class struct {
	Self       Named
	Extends    *Named
	Implements []Named
	ScopeRef   any
	At         token.Position
}

// Interface is what an InterfaceDecl contributes to its parent scope.
type Interface struct {
	Self     Named
	ScopeRef any
	At       token.Position
}

func (Variable) annotationTag()  {}
func (Method) annotationTag()    {}
func (Class) annotationTag()     {}
func (Interface) annotationTag() {}

func (v Variable) AnnotationName() string  { return v.Name }
func (m Method) AnnotationName() string    { return m.Name }
func (c Class) AnnotationName() string     { return c.Self.Name }
func (i Interface) AnnotationName() string { return i.Self.Name }

func (v Variable) Where() token.Position  { return v.At }
func (m Method) Where() token.Position    { return m.At }
func (c Class) Where() token.Position     { return c.At }
func (i Interface) Where() token.Position { return i.At }

// AnnotationsMatch implements the structural annotation-compatibility
// override and interface-conformance checks need: variables
// match iff types are compatible (with widening), methods match iff return
// types and formal types are pairwise equal (no widening either direction),
// classes/interfaces match iff the named type is equal.
func AnnotationsMatch(a, b Annotation) bool {
	switch at := a.(type) {
	case Variable:
		bt, ok := b.(Variable)
		return ok && Matches(at.Type, bt.Type)
	case Method:
		bt, ok := b.(Method)
		if !ok || len(at.FormalTypes) != len(bt.FormalTypes) {
			return false
		}
		if !Equal(at.ReturnType, bt.ReturnType) {
			return false
		}
		for i := range at.FormalTypes {
			if !Equal(at.FormalTypes[i], bt.FormalTypes[i]) {
				return false
			}
		}
		return true
	case Class:
		bt, ok := b.(Class)
		return ok && at.Self.Name == bt.Self.Name
	case Interface:
		bt, ok := b.(Interface)
		return ok && at.Self.Name == bt.Self.Name
	default:
		return false
	}
}
