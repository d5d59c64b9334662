package sema

import (
	"github.com/funvibe/decaf/internal/ast"
	"github.com/funvibe/decaf/internal/diagnostics"
	"github.com/funvibe/decaf/internal/scope"
	"github.com/funvibe/decaf/internal/token"
	"github.com/funvibe/decaf/internal/types"
)

// classcheck is C7: cyclic-inheritance detection, extends/implements
// well-formedness, and override signature checking. It runs after C6 has
// already re-parented every class scope onto its base class's scope.
func classcheck(program *ast.Program, diags *[]*diagnostics.Diagnostic) {
	checkCycles(program, diags)

	for _, d := range program.Decls {
		c, ok := d.(*ast.ClassDecl)
		if !ok {
			continue
		}
		checkExtendsExists(c, diags)
		checkImplements(c, diags)
		checkOverrides(c, diags)
	}
}

// classColor is the classic three-color DFS marker: white (unvisited),
// gray (on the current walk's stack), black (fully resolved, never
// re-diagnosed again even if another class's chain passes through it).
type classColor int

const (
	white classColor = iota
	gray
	black
)

// checkCycles walks every class's extends chain once using a shared
// color map, so a cycle already reported while resolving one class is never
// reported again just because a different class's chain also passes
// through it: e.g. if P extends Q extends P and R also extends Q, the cycle
// is reported once (naming P, where the walk entered it) and R adds nothing.
func checkCycles(program *ast.Program, diags *[]*diagnostics.Diagnostic) {
	byName := map[string]*ast.ClassDecl{}
	for _, d := range program.Decls {
		if c, ok := d.(*ast.ClassDecl); ok {
			byName[c.Name.Name] = c
		}
	}

	color := map[string]classColor{}
	seenAt := map[string]token.Position{}

	var visit func(name string)
	visit = func(name string) {
		if color[name] == black {
			return
		}
		c, ok := byName[name]
		if !ok {
			return // not a known class at all; C8's checkTypeExists reports this
		}
		color[name] = gray
		seenAt[name] = c.Pos()

		if c.Extends != nil {
			base := c.Extends.Name
			if color[base] == gray {
				*diags = append(*diags, diagnostics.NewIllegalClassInheritanceCycle(seenAt[base], base))
			} else {
				visit(base)
			}
		}
		color[name] = black
	}

	for _, d := range program.Decls {
		if c, ok := d.(*ast.ClassDecl); ok {
			visit(c.Name.Name)
		}
	}
}

func checkExtendsExists(n *ast.ClassDecl, diags *[]*diagnostics.Diagnostic) {
	if n.Extends == nil {
		return
	}
	checkTypeExists(scopeOf(n), n.Extends.Pos(), n.Extends, "class", diags)
}

// checkImplements verifies structural conformance to each implemented
// interface. An interface name that doesn't resolve to an InterfaceAnnotation
// at all is left for C8's type-existence pass; a method the class never
// declared (inherited or not) is silently skipped per the documented open
// question preserving that behavior.
func checkImplements(n *ast.ClassDecl, diags *[]*diagnostics.Diagnostic) {
	cScope := scopeOf(n)
	for _, it := range n.Implements {
		v, ok := cScope.Table.Get(it.Name)
		if !ok {
			continue
		}
		iface, ok := v.(types.Interface)
		if !ok {
			continue
		}
		ifaceScope, ok := iface.ScopeRef.(*scope.Node)
		if !ok {
			continue
		}

		flagged := false
		for _, e := range ifaceScope.Table.Local() {
			found, ok := cScope.Table.Get(e.Key)
			if !ok {
				continue
			}
			if !types.AnnotationsMatch(e.Value, found) {
				*diags = append(*diags, diagnostics.NewTypeSignature(found.Where(), e.Key))
				flagged = true
			}
		}
		if flagged {
			*diags = append(*diags, diagnostics.NewUnimplementedInterface(n.Pos(), n.Name.Name, it.Name))
		}
	}
}

// checkOverrides flags any locally declared member whose inherited
// counterpart (visible only through the table's parent chain, i.e. through
// C6's reparenting) does not structurally match it. A class with no
// `extends` never went through C6's reparenting, so its table's parent is
// still the scope it was forked from at declaration time (typically the
// Program root) — there is no "inherited" member to compare against, only
// coincidental same-named top-level declarations, so skip entirely.
func checkOverrides(n *ast.ClassDecl, diags *[]*diagnostics.Diagnostic) {
	if n.Extends == nil {
		return
	}
	cScope := scopeOf(n)
	parent := cScope.Table.Parent()
	if parent == nil {
		return
	}
	for _, e := range cScope.Table.Local() {
		if e.Key == "this" {
			continue
		}
		if !parent.ChainContains(e.Key) {
			continue
		}
		inh, _ := parent.Get(e.Key)
		if !types.AnnotationsMatch(e.Value, inh) {
			*diags = append(*diags, diagnostics.NewTypeSignature(e.Value.Where(), e.Key))
		}
	}
}
