// Package diagnostics defines the semantic-error taxonomy and the
// Diagnostic value every pass accumulates instead of throwing. It is a leaf
// package: no other internal package imports anything of this module's
// that diagnostics itself would need to depend back on.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/funvibe/decaf/internal/token"
)

// Code identifies a diagnostic kind. The numeric values are stable and may
// be relied on by golden tests.
type Code int

const (
	ConflictingDecl Code = iota
	UndeclaredType
	IllegalClassInheritanceCycle
	TypeSignature
	UnimplementedInterface
	InvalidTest
	IncompatibleReturn
	IncompatibleArgument
	BreakOutsideLoop
	TypeError
	InvalidReparent
)

func (c Code) String() string {
	switch c {
	case ConflictingDecl:
		return "ConflictingDecl"
	case UndeclaredType:
		return "UndeclaredType"
	case IllegalClassInheritanceCycle:
		return "IllegalClassInheritanceCycle"
	case TypeSignature:
		return "TypeSignature"
	case UnimplementedInterface:
		return "UnimplementedInterface"
	case InvalidTest:
		return "InvalidTest"
	case IncompatibleReturn:
		return "IncompatibleReturn"
	case IncompatibleArgument:
		return "IncompatibleArgument"
	case BreakOutsideLoop:
		return "BreakOutsideLoop"
	case TypeError:
		return "TypeError"
	case InvalidReparent:
		return "InvalidReparent"
	default:
		return "Unknown"
	}
}

// Diagnostic is one accumulated semantic error.
type Diagnostic struct {
	Code     Code
	Message  string
	Position token.Position
}

// New builds a Diagnostic at the given position.
func New(code Code, pos token.Position, message string) *Diagnostic {
	return &Diagnostic{Code: code, Message: message, Position: pos}
}

// Error implements error so Diagnostic can be handed to callers that
// expect one (e.g. test helpers using require.Error-style assertions).
func (d *Diagnostic) Error() string {
	return d.Format()
}

// Format renders the diagnostic in its bit-exact shape:
//
//	*** Error line <N>.
//	<longString, consecutive blank lines collapsed>
//	<message>
func (d *Diagnostic) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "*** Error line %d.\n", d.Position.Line)
	if ls := collapseBlankLines(d.Position.LongString); ls != "" {
		b.WriteString(ls)
		b.WriteString("\n")
	}
	b.WriteString(d.Message)
	return b.String()
}

// collapseBlankLines collapses runs of consecutive blank lines in a
// longString excerpt down to one.
func collapseBlankLines(s string) string {
	if s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	prevBlank := false
	for _, l := range lines {
		blank := strings.TrimSpace(l) == ""
		if blank && prevBlank {
			continue
		}
		out = append(out, l)
		prevBlank = blank
	}
	return strings.Join(out, "\n")
}

// InternalError is the distinct panic type for invariant violations
// (missing scope, no enclosing function for a return, the "extremely bad"
// case of a freshly forked class scope already holding "this") that
// must abort rather than accumulate. analyze() recovers exactly one of
// these at its top level and hands the driver a fatal diagnostic.
type InternalError struct {
	Reason string
}

func (e *InternalError) Error() string {
	return "internal error: " + e.Reason
}

// Abort panics with an InternalError, the single choke point every
// invariant check in the core should go through.
func Abort(reason string) {
	panic(&InternalError{Reason: reason})
}
