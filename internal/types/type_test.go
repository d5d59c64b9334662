package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualRejectsWidening(t *testing.T) {
	assert.True(t, Equal(Int{}, Int{}))
	assert.False(t, Equal(Int{}, Double{}), "Equal must not widen int to double")
}

func TestMatchesAllowsIntToDoubleWidening(t *testing.T) {
	assert.True(t, Matches(Int{}, Double{}))
	assert.False(t, Matches(Double{}, Int{}), "widening is one-directional")
}

func TestMatchesAllowsNullForReferenceTypesOnly(t *testing.T) {
	assert.True(t, Matches(Null{}, Named{Name: "Shape"}))
	assert.True(t, Matches(Null{}, Array{Elem: Int{}}))
	assert.False(t, Matches(Null{}, Int{}), "null must not match a primitive")
}

func TestEqualOnArrayIsStructural(t *testing.T) {
	assert.True(t, Equal(Array{Elem: Int{}}, Array{Elem: Int{}}))
	assert.False(t, Equal(Array{Elem: Int{}}, Array{Elem: Double{}}))
}

func TestEqualOnNamedComparesByName(t *testing.T) {
	assert.True(t, Equal(Named{Name: "Foo"}, Named{Name: "Foo"}))
	assert.False(t, Equal(Named{Name: "Foo"}, Named{Name: "Bar"}))
}

func TestAnnotationsMatchVariableWidens(t *testing.T) {
	a := Variable{Name: "x", Type: Int{}}
	b := Variable{Name: "x", Type: Double{}}
	assert.True(t, AnnotationsMatch(a, b))
}

func TestAnnotationsMatchMethodRequiresSameArity(t *testing.T) {
	a := Method{Name: "f", ReturnType: Int{}, FormalTypes: []Type{Int{}}}
	b := Method{Name: "f", ReturnType: Int{}, FormalTypes: []Type{Int{}, Int{}}}
	assert.False(t, AnnotationsMatch(a, b))
}

func TestAnnotationsMatchMethodChecksFormalsExactly(t *testing.T) {
	a := Method{Name: "f", ReturnType: Int{}, FormalTypes: []Type{Int{}}}
	b := Method{Name: "f", ReturnType: Int{}, FormalTypes: []Type{Double{}}}
	assert.False(t, AnnotationsMatch(a, b), "formal types do not widen")
}

func TestAnnotationsMatchMethodRequiresExactReturnType(t *testing.T) {
	a := Method{Name: "f", ReturnType: Int{}, FormalTypes: []Type{}}
	b := Method{Name: "f", ReturnType: Double{}, FormalTypes: []Type{}}
	assert.False(t, AnnotationsMatch(a, b), "return types do not widen")
}

func TestAnnotationsMatchRejectsDifferentKinds(t *testing.T) {
	v := Variable{Name: "x", Type: Int{}}
	m := Method{Name: "x", ReturnType: Int{}}
	assert.False(t, AnnotationsMatch(v, m))
}
