package diagnostics

import (
	"fmt"

	"github.com/funvibe/decaf/internal/token"
)

// The constructors below are the only place message text for each kind is
// assembled; every message already carries its taxonomy prefix
// as literal text, since the diagnostic header line ("*** Error line N.")
// is a separate, fixed line Format prints before it.

func NewConflictingDecl(pos token.Position, name string, conflictsWithLine int) *Diagnostic {
	return New(ConflictingDecl, pos, fmt.Sprintf(
		"*** Declaration of '%s' here conflicts with declaration on line %d", name, conflictsWithLine))
}

func NewUndeclaredType(pos token.Position, name, kind string) *Diagnostic {
	return New(UndeclaredType, pos, fmt.Sprintf(
		"*** No declaration found for %s '%s'", kind, name))
}

func NewIllegalClassInheritanceCycle(pos token.Position, name string) *Diagnostic {
	return New(IllegalClassInheritanceCycle, pos, fmt.Sprintf(
		"*** Illegal cyclic class inheritance involving %s on line %d", name, pos.Line))
}

func NewTypeSignature(pos token.Position, name string) *Diagnostic {
	return New(TypeSignature, pos, fmt.Sprintf(
		"** Method '%s' must match inherited type signature", name))
}

func NewUnimplementedInterface(pos token.Position, class, iface string) *Diagnostic {
	return New(UnimplementedInterface, pos, fmt.Sprintf(
		"*** Class '%s' does not implement entire interface '%s'", class, iface))
}

func NewInvalidTest(pos token.Position) *Diagnostic {
	return New(InvalidTest, pos, "*** Test expression must have boolean type")
}

func NewIncompatibleReturn(pos token.Position, got, expected string) *Diagnostic {
	return New(IncompatibleReturn, pos, fmt.Sprintf(
		"*** Incompatible return : %s given, %s expected", got, expected))
}

func NewIncompatibleArgument(pos token.Position, index int, got string) *Diagnostic {
	return New(IncompatibleArgument, pos, fmt.Sprintf(
		"*** Incompatible argument %d: %s given, int/bool/string expected", index, got))
}

func NewBreakOutsideLoop(pos token.Position) *Diagnostic {
	return New(BreakOutsideLoop, pos, "*** break is only allowed inside a loop")
}

func NewInvalidReparent(pos token.Position, name string) *Diagnostic {
	return New(InvalidReparent, pos, fmt.Sprintf(
		"*** '%s' cannot be reparented onto itself", name))
}
