package sema

import (
	"github.com/funvibe/decaf/internal/ast"
	"github.com/funvibe/decaf/internal/diagnostics"
	"github.com/funvibe/decaf/internal/scope"
)

// Analyze runs the full C4-C8 pipeline over program and returns the
// resulting annotated scope tree plus every diagnostic accumulated along
// the way (analyze(program) -> (rootScope, diagnostics)). Passes
// never depend on later ones, and an internal invariant violation anywhere
// in the pipeline is converted into a single fatal diagnostic rather than
// propagating a panic to the driver.
func Analyze(program *ast.Program) (root *scope.Node, diags []*diagnostics.Diagnostic) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*diagnostics.InternalError); ok {
				diags = append(diags, diagnostics.New(diagnostics.TypeError, program.Pos(), "*** "+ie.Error()))
				return
			}
			panic(r)
		}
	}()

	root = scope.NewRoot(program)

	decorate(program, nil, root)
	collect(program, &diags)
	link(program, &diags)
	classcheck(program, &diags)
	typecheck(program, &diags)

	return root, diags
}
