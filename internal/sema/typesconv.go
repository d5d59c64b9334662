package sema

import (
	"github.com/funvibe/decaf/internal/ast"
	"github.com/funvibe/decaf/internal/diagnostics"
	"github.com/funvibe/decaf/internal/types"
)

// astTypeToSemType maps a syntactic ast.Type onto its semantic types.Type
// counterpart with no validation — whether a Named/Array type actually
// resolves to something declared is C8's checkTypeExists's job, not this
// pass's. A nil ast.Type (the parser leaves FnDecl.ReturnType nil only in
// malformed programs it already reported) falls back to Undeclared rather
// than panicking.
func astTypeToSemType(t ast.Type) types.Type {
	switch n := t.(type) {
	case nil:
		return types.Undeclared{}
	case *ast.VoidType:
		return types.Void{}
	case *ast.IntType:
		return types.Int{}
	case *ast.DoubleType:
		return types.Double{}
	case *ast.BoolType:
		return types.Bool{}
	case *ast.StringType:
		return types.String{}
	case *ast.NullType:
		return types.Null{}
	case *ast.NamedType:
		return types.Named{Name: n.Name}
	case *ast.ArrayType:
		return types.Array{Elem: astTypeToSemType(n.Elem)}
	default:
		diagnostics.Abort("astTypeToSemType: unhandled ast.Type")
		return nil
	}
}
