package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/decaf/internal/diagnostics"
)

func TestExprUndeclaredVariableIsReportedOnce(t *testing.T) {
	diags := analyzePasses(t, `
		void h() {
			x = 1;
		}
	`, "typecheck")
	require.Len(t, diags, 1, "a malformed subexpression diagnoses once at the statement that consumes it")
}

func TestExprFieldAccessOnNonClassIsRejected(t *testing.T) {
	diags := analyzePasses(t, `
		void h() {
			int x;
			x.y = 1;
		}
	`, "typecheck")
	require.Len(t, diags, 1)
}

func TestExprArraySubscriptMustBeInt(t *testing.T) {
	diags := analyzePasses(t, `
		void h() {
			int[] a;
			a = NewArray(3, int);
			bool b;
			int x;
			x = a[b];
		}
	`, "typecheck")
	require.Len(t, diags, 1)
}

func TestExprArrayAccessHappyPath(t *testing.T) {
	diags := analyzePasses(t, `
		void h() {
			int[] a;
			a = NewArray(3, int);
			int x;
			x = a[0];
		}
	`, "typecheck")
	assert.Empty(t, diags)
}

func TestExprCallWrongArgumentCount(t *testing.T) {
	diags := analyzePasses(t, `
		void f(int x) {}
		void h() {
			f();
		}
	`, "typecheck")
	require.Len(t, diags, 1)
}

func TestExprCallArgumentTypeMismatch(t *testing.T) {
	diags := analyzePasses(t, `
		void f(int x) {}
		void h() {
			f(true);
		}
	`, "typecheck")
	require.Len(t, diags, 1)
}

func TestExprCallArgumentWideningIsAccepted(t *testing.T) {
	diags := analyzePasses(t, `
		void f(double x) {}
		void h() {
			f(1);
		}
	`, "typecheck")
	assert.Empty(t, diags)
}

func TestExprNewOnUndeclaredClassIsRejected(t *testing.T) {
	diags := analyzePasses(t, `
		void h() {
			Zoo z;
			z = new Zoo;
		}
	`, "typecheck")
	// One diagnostic for the variable's undeclared type, one for the `new`.
	require.Len(t, diags, 2)
	assert.Equal(t, diagnostics.UndeclaredType, diags[0].Code)
	assert.Contains(t, diags[1].Message, "No declaration found for class 'Zoo'")
}

func TestExprNewOnDeclaredClassIsAccepted(t *testing.T) {
	diags := analyzePasses(t, `
		class Zoo {}
		void h() {
			Zoo z;
			z = new Zoo;
		}
	`, "typecheck")
	assert.Empty(t, diags)
}

func TestExprAssignRejectsIncompatibleOperands(t *testing.T) {
	diags := analyzePasses(t, `
		void h() {
			int x;
			bool b;
			x = b;
		}
	`, "typecheck")
	require.Len(t, diags, 1)
}

func TestExprBinaryArithmeticRequiresNumeric(t *testing.T) {
	diags := analyzePasses(t, `
		void h() {
			bool b;
			int x;
			x = b + 1;
		}
	`, "typecheck")
	require.Len(t, diags, 1)
}

func TestExprArithmeticWidensToDouble(t *testing.T) {
	diags := analyzePasses(t, `
		void h() {
			double d;
			int x;
			d = x + 1.0;
		}
	`, "typecheck")
	assert.Empty(t, diags)
}

func TestExprEqualityAcceptsWideningEitherDirection(t *testing.T) {
	diags := analyzePasses(t, `
		void h() {
			int x;
			double d;
			bool b;
			b = x == d;
		}
	`, "typecheck")
	assert.Empty(t, diags)
}

func TestExprLogicalOperatorsRequireBool(t *testing.T) {
	diags := analyzePasses(t, `
		void h() {
			int x;
			bool b;
			b = x && true;
		}
	`, "typecheck")
	require.Len(t, diags, 1)
}

func TestExprUnaryNotRequiresBool(t *testing.T) {
	diags := analyzePasses(t, `
		void h() {
			int x;
			bool b;
			b = !x;
		}
	`, "typecheck")
	require.Len(t, diags, 1)
}

func TestExprUnaryMinusAcceptsNumeric(t *testing.T) {
	diags := analyzePasses(t, `
		void h() {
			int x;
			x = -x;
		}
	`, "typecheck")
	assert.Empty(t, diags)
}

func TestExprThisOutsideClassIsRejected(t *testing.T) {
	diags := analyzePasses(t, `
		void h() {
			this;
		}
	`, "typecheck")
	require.Len(t, diags, 1)
}

func TestExprThisInsideMethodResolvesToOwnClass(t *testing.T) {
	diags := analyzePasses(t, `
		class Zoo {
			Zoo self() { return this; }
		}
	`, "typecheck")
	assert.Empty(t, diags)
}
