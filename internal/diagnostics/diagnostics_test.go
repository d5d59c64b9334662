package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/funvibe/decaf/internal/token"
)

func TestFormatWithoutLongString(t *testing.T) {
	d := New(BreakOutsideLoop, token.Position{Line: 3}, "*** break is only allowed inside a loop")
	assert.Equal(t, "*** Error line 3.\n*** break is only allowed inside a loop", d.Format())
}

func TestFormatWithLongString(t *testing.T) {
	pos := token.Position{Line: 5, LongString: "    break;\n    ^"}
	d := New(BreakOutsideLoop, pos, "*** break is only allowed inside a loop")
	assert.Equal(t, "*** Error line 5.\n    break;\n    ^\n*** break is only allowed inside a loop", d.Format())
}

func TestFormatCollapsesConsecutiveBlankLines(t *testing.T) {
	pos := token.Position{Line: 1, LongString: "a\n\n\n\nb"}
	d := New(TypeError, pos, "x")
	assert.Equal(t, "*** Error line 1.\na\n\nb\nx", d.Format())
}

func TestErrorSatisfiesErrorInterface(t *testing.T) {
	var err error = New(TypeError, token.Position{Line: 1}, "*** bad")
	assert.Equal(t, "*** Error line 1.\n*** bad", err.Error())
}

func TestCodeStringForEveryCode(t *testing.T) {
	cases := map[Code]string{
		ConflictingDecl:              "ConflictingDecl",
		UndeclaredType:               "UndeclaredType",
		IllegalClassInheritanceCycle: "IllegalClassInheritanceCycle",
		TypeSignature:                "TypeSignature",
		UnimplementedInterface:       "UnimplementedInterface",
		InvalidTest:                  "InvalidTest",
		IncompatibleReturn:           "IncompatibleReturn",
		IncompatibleArgument:         "IncompatibleArgument",
		BreakOutsideLoop:             "BreakOutsideLoop",
		TypeError:                    "TypeError",
		InvalidReparent:              "InvalidReparent",
	}
	for code, want := range cases {
		assert.Equal(t, want, code.String())
	}
}

func TestNewConflictingDeclMessage(t *testing.T) {
	d := NewConflictingDecl(token.Position{Line: 10}, "x", 4)
	assert.Equal(t, "*** Declaration of 'x' here conflicts with declaration on line 4", d.Message)
	assert.Equal(t, ConflictingDecl, d.Code)
}

func TestNewUndeclaredTypeMessage(t *testing.T) {
	d := NewUndeclaredType(token.Position{Line: 1}, "Giraffe", "type")
	assert.Equal(t, "*** No declaration found for type 'Giraffe'", d.Message)
}

func TestNewIllegalClassInheritanceCycleMessage(t *testing.T) {
	d := NewIllegalClassInheritanceCycle(token.Position{Line: 7}, "A")
	assert.Equal(t, "*** Illegal cyclic class inheritance involving A on line 7", d.Message)
}

func TestNewTypeSignatureMessage(t *testing.T) {
	d := NewTypeSignature(token.Position{Line: 2}, "speak")
	assert.Equal(t, "** Method 'speak' must match inherited type signature", d.Message)
}

func TestNewUnimplementedInterfaceMessage(t *testing.T) {
	d := NewUnimplementedInterface(token.Position{Line: 2}, "Zoo", "Noisy")
	assert.Equal(t, "*** Class 'Zoo' does not implement entire interface 'Noisy'", d.Message)
}

func TestNewInvalidTestMessage(t *testing.T) {
	d := NewInvalidTest(token.Position{Line: 1})
	assert.Equal(t, "*** Test expression must have boolean type", d.Message)
}

func TestNewIncompatibleReturnMessage(t *testing.T) {
	d := NewIncompatibleReturn(token.Position{Line: 1}, "bool", "int")
	assert.Equal(t, "*** Incompatible return : bool given, int expected", d.Message)
}

func TestNewIncompatibleArgumentMessage(t *testing.T) {
	d := NewIncompatibleArgument(token.Position{Line: 1}, 2, "Shape")
	assert.Equal(t, "*** Incompatible argument 2: Shape given, int/bool/string expected", d.Message)
}

func TestNewBreakOutsideLoopMessage(t *testing.T) {
	d := NewBreakOutsideLoop(token.Position{Line: 1})
	assert.Equal(t, "*** break is only allowed inside a loop", d.Message)
}

func TestNewInvalidReparentMessage(t *testing.T) {
	d := NewInvalidReparent(token.Position{Line: 1}, "Foo")
	assert.Equal(t, "*** 'Foo' cannot be reparented onto itself", d.Message)
}
