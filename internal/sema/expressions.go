package sema

import (
	"fmt"

	"github.com/funvibe/decaf/internal/ast"
	"github.com/funvibe/decaf/internal/diagnostics"
	"github.com/funvibe/decaf/internal/scope"
	"github.com/funvibe/decaf/internal/token"
	"github.com/funvibe/decaf/internal/types"
)

// exprType is the Expr.typeof(scope) -> Type computation the scope tree
// leaves unspecified beyond its contract ("pure and idempotent"). A
// malformed subexpression produces a types.Error carrying one or more
// diagnostics; composing expressions propagate that Error upward rather
// than re-diagnosing, so only the statement-level consumer that finally
// calls unpackError emits anything — exactly once.
func exprType(e ast.Expr, sc *scope.Node) types.Type {
	switch n := e.(type) {
	case *ast.IntLit:
		return types.Int{}
	case *ast.DoubleLit:
		return types.Double{}
	case *ast.BoolLit:
		return types.Bool{}
	case *ast.StringLit:
		return types.String{}
	case *ast.NullLit:
		return types.Null{}
	case *ast.ReadIntegerExpr:
		return types.Int{}
	case *ast.ReadLineExpr:
		return types.String{}

	case *ast.ThisExpr:
		v, ok := sc.Table.Get("this")
		if !ok {
			return types.NewError(diagnostics.New(diagnostics.TypeError, n.Pos(),
				"*** 'this' is not valid outside a class method"))
		}
		return v.(types.Variable).Type

	case *ast.IdentExpr:
		return identType(n.Name.Name, n.Pos(), sc)

	case *ast.FieldAccessExpr:
		return fieldAccessType(n, sc)

	case *ast.ArrayAccessExpr:
		return arrayAccessType(n, sc)

	case *ast.CallExpr:
		return callType(n, sc)

	case *ast.NewExpr:
		return newType(n, sc)

	case *ast.NewArrayExpr:
		return newArrayType(n, sc)

	case *ast.AssignExpr:
		return assignType(n, sc)

	case *ast.CompoundExpr:
		return compoundType(n, sc)

	default:
		diagnostics.Abort("exprType: unhandled expression kind")
		return nil
	}
}

func identType(name string, pos token.Position, sc *scope.Node) types.Type {
	v, ok := sc.Table.Get(name)
	if !ok {
		return types.NewError(diagnostics.New(diagnostics.TypeError, pos,
			fmt.Sprintf("*** No declaration found for variable '%s'", name)))
	}
	va, ok := v.(types.Variable)
	if !ok {
		return types.NewError(diagnostics.New(diagnostics.TypeError, pos,
			fmt.Sprintf("*** '%s' is not a variable", name)))
	}
	return va.Type
}

func fieldAccessType(n *ast.FieldAccessExpr, sc *scope.Node) types.Type {
	if n.Base == nil {
		return identType(n.Field.Name, n.Pos(), sc)
	}
	baseType := exprType(n.Base, sc)
	if errT, ok := baseType.(types.Error); ok {
		return errT
	}
	named, ok := baseType.(types.Named)
	if !ok {
		return types.NewError(diagnostics.New(diagnostics.TypeError, n.Pos(),
			fmt.Sprintf("*** '%s' is not a class type", baseType.String())))
	}
	classScope, ok := locateClassScope(sc, named.Name)
	if !ok {
		return types.NewError(diagnostics.New(diagnostics.TypeError, n.Pos(),
			fmt.Sprintf("*** No declaration found for class '%s'", named.Name)))
	}
	v, ok := classScope.Table.Get(n.Field.Name)
	if !ok {
		return types.NewError(diagnostics.New(diagnostics.TypeError, n.Pos(),
			fmt.Sprintf("*** No declaration found for field '%s' in class '%s'", n.Field.Name, named.Name)))
	}
	va, ok := v.(types.Variable)
	if !ok {
		return types.NewError(diagnostics.New(diagnostics.TypeError, n.Pos(),
			fmt.Sprintf("*** '%s' is not a field", n.Field.Name)))
	}
	return va.Type
}

func arrayAccessType(n *ast.ArrayAccessExpr, sc *scope.Node) types.Type {
	baseType := exprType(n.Base, sc)
	indexType := exprType(n.Index, sc)
	if errT, ok := mergedError(baseType, indexType); ok {
		return errT
	}
	arr, ok := baseType.(types.Array)
	if !ok {
		return types.NewError(diagnostics.New(diagnostics.TypeError, n.Pos(),
			fmt.Sprintf("*** [] can only be applied to arrays, not '%s'", baseType.String())))
	}
	if _, isInt := indexType.(types.Int); !isInt {
		return types.NewError(diagnostics.New(diagnostics.TypeError, n.Pos(),
			"*** Array subscript must be an integer"))
	}
	return arr.Elem
}

func callType(n *ast.CallExpr, sc *scope.Node) types.Type {
	var method types.Method
	if n.Base == nil {
		v, ok := sc.Table.Get(n.Method.Name)
		if !ok {
			return types.NewError(diagnostics.New(diagnostics.TypeError, n.Pos(),
				fmt.Sprintf("*** No declaration found for function '%s'", n.Method.Name)))
		}
		m, ok := v.(types.Method)
		if !ok {
			return types.NewError(diagnostics.New(diagnostics.TypeError, n.Pos(),
				fmt.Sprintf("*** '%s' is not callable", n.Method.Name)))
		}
		method = m
	} else {
		baseType := exprType(n.Base, sc)
		if errT, ok := baseType.(types.Error); ok {
			return errT
		}
		named, ok := baseType.(types.Named)
		if !ok {
			return types.NewError(diagnostics.New(diagnostics.TypeError, n.Pos(),
				fmt.Sprintf("*** '%s' is not a class type", baseType.String())))
		}
		classScope, ok := locateClassScope(sc, named.Name)
		if !ok {
			return types.NewError(diagnostics.New(diagnostics.TypeError, n.Pos(),
				fmt.Sprintf("*** No declaration found for class '%s'", named.Name)))
		}
		v, ok := classScope.Table.Get(n.Method.Name)
		if !ok {
			return types.NewError(diagnostics.New(diagnostics.TypeError, n.Pos(),
				fmt.Sprintf("*** No declaration found for method '%s' in class '%s'", n.Method.Name, named.Name)))
		}
		m, ok := v.(types.Method)
		if !ok {
			return types.NewError(diagnostics.New(diagnostics.TypeError, n.Pos(),
				fmt.Sprintf("*** '%s' is not a method", n.Method.Name)))
		}
		method = m
	}

	argTypes := make([]types.Type, len(n.Args))
	var firstErr *types.Error
	for i, a := range n.Args {
		t := exprType(a, sc)
		if e, ok := t.(types.Error); ok && firstErr == nil {
			firstErr = &e
		}
		argTypes[i] = t
	}
	if firstErr != nil {
		return *firstErr
	}
	if len(argTypes) != len(method.FormalTypes) {
		return types.NewError(diagnostics.New(diagnostics.TypeError, n.Pos(),
			fmt.Sprintf("*** Function '%s' expects %d argument(s) but %d given", n.Method.Name, len(method.FormalTypes), len(argTypes))))
	}
	for i, at := range argTypes {
		if !types.Matches(at, method.FormalTypes[i]) {
			return types.NewError(diagnostics.New(diagnostics.TypeError, n.Pos(),
				fmt.Sprintf("*** Argument %d of '%s': %s given, %s expected", i+1, n.Method.Name, at.String(), method.FormalTypes[i].String())))
		}
	}
	return method.ReturnType
}

func newType(n *ast.NewExpr, sc *scope.Node) types.Type {
	name := n.ClassType.Name
	v, ok := sc.Table.Get(name)
	if !ok {
		return types.NewError(diagnostics.New(diagnostics.TypeError, n.Pos(),
			fmt.Sprintf("*** No declaration found for class '%s'", name)))
	}
	if _, ok := v.(types.Class); !ok {
		return types.NewError(diagnostics.New(diagnostics.TypeError, n.Pos(),
			fmt.Sprintf("*** '%s' is not a class", name)))
	}
	return types.Named{Name: name}
}

func newArrayType(n *ast.NewArrayExpr, sc *scope.Node) types.Type {
	sizeType := exprType(n.Size, sc)
	if errT, ok := sizeType.(types.Error); ok {
		return errT
	}
	if _, isInt := sizeType.(types.Int); !isInt {
		return types.NewError(diagnostics.New(diagnostics.TypeError, n.Pos(),
			"*** Size for NewArray must be an integer"))
	}
	return types.Array{Elem: astTypeToSemType(n.Elem)}
}

func assignType(n *ast.AssignExpr, sc *scope.Node) types.Type {
	lhsType := exprType(n.LHS, sc)
	rhsType := exprType(n.RHS, sc)
	if errT, ok := mergedError(lhsType, rhsType); ok {
		return errT
	}
	if !types.Matches(rhsType, lhsType) {
		return types.NewError(diagnostics.New(diagnostics.TypeError, n.Pos(),
			fmt.Sprintf("*** Incompatible operands: %s = %s", lhsType.String(), rhsType.String())))
	}
	return lhsType
}

func compoundType(n *ast.CompoundExpr, sc *scope.Node) types.Type {
	var leftType types.Type
	if n.Left != nil {
		leftType = exprType(n.Left, sc)
	}
	rightType := exprType(n.Right, sc)
	if n.Left != nil {
		if errT, ok := mergedError(leftType, rightType); ok {
			return errT
		}
	} else if errT, ok := rightType.(types.Error); ok {
		return errT
	}

	switch n.Op {
	case "+", "-", "*", "/", "%":
		if n.Left == nil {
			// unary minus
			if !isNumeric(rightType) {
				return opError(n.Pos(), n.Op, rightType)
			}
			return rightType
		}
		if !isNumeric(leftType) || !isNumeric(rightType) {
			return binOpError(n.Pos(), n.Op, leftType, rightType)
		}
		if _, d := leftType.(types.Double); d {
			return types.Double{}
		}
		if _, d := rightType.(types.Double); d {
			return types.Double{}
		}
		return types.Int{}

	case "<", "<=", ">", ">=":
		if !isNumeric(leftType) || !isNumeric(rightType) {
			return binOpError(n.Pos(), n.Op, leftType, rightType)
		}
		return types.Bool{}

	case "==", "!=":
		if !types.Matches(leftType, rightType) && !types.Matches(rightType, leftType) {
			return binOpError(n.Pos(), n.Op, leftType, rightType)
		}
		return types.Bool{}

	case "&&", "||":
		if _, lb := leftType.(types.Bool); !lb {
			return binOpError(n.Pos(), n.Op, leftType, rightType)
		}
		if _, rb := rightType.(types.Bool); !rb {
			return binOpError(n.Pos(), n.Op, leftType, rightType)
		}
		return types.Bool{}

	case "!":
		if _, rb := rightType.(types.Bool); !rb {
			return opError(n.Pos(), n.Op, rightType)
		}
		return types.Bool{}

	default:
		diagnostics.Abort("compoundType: unhandled operator " + n.Op)
		return nil
	}
}

func isNumeric(t types.Type) bool {
	switch t.(type) {
	case types.Int, types.Double:
		return true
	default:
		return false
	}
}

func opError(pos token.Position, op string, t types.Type) types.Type {
	return types.NewError(diagnostics.New(diagnostics.TypeError, pos,
		fmt.Sprintf("*** Incompatible operand: %s%s", op, t.String())))
}

func binOpError(pos token.Position, op string, l, r types.Type) types.Type {
	return types.NewError(diagnostics.New(diagnostics.TypeError, pos,
		fmt.Sprintf("*** Incompatible operands: %s %s %s", l.String(), op, r.String())))
}

// mergedError reports whether either operand is a types.Error, returning a
// single combined Error (concatenating both operands' diagnostics when both
// are erroneous) so a caller can propagate without re-diagnosing.
func mergedError(a, b types.Type) (types.Error, bool) {
	ae, aok := a.(types.Error)
	be, bok := b.(types.Error)
	switch {
	case aok && bok:
		return types.Error{Diagnostics: append(append([]*diagnostics.Diagnostic{}, ae.Diagnostics...), be.Diagnostics...)}, true
	case aok:
		return ae, true
	case bok:
		return be, true
	default:
		return types.Error{}, false
	}
}

// unpackError is the single point where a consumer that owns a statement
// (not a composing sub-expression) turns an ErrorType's carried diagnostics
// into top-level diagnostics, exactly once.
func unpackError(t types.Type, diags *[]*diagnostics.Diagnostic) {
	if e, ok := t.(types.Error); ok {
		*diags = append(*diags, e.Diagnostics...)
	}
}
