package firescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterFunctionAndIsKnownType(t *testing.T) {
	r := NewRegistries()
	r.RegisterFunction("add", FunctionSignature{ReturnType: "int32", ParamTypes: []string{"int32", "int32"}})

	assert.Equal(t, "int32", r.UserFunctions["add"])
	assert.True(t, r.IsKnownType("int32"))
	assert.False(t, r.IsKnownType("Box"))
}

func TestRegisterClassSeedsMethodTableAndCopyable(t *testing.T) {
	r := NewRegistries()
	r.RegisterClass(&ClassInfo{Name: "Point", IsCopyable: true, FieldOrder: []string{"x", "y"}, FieldTypes: map[string]string{"x": "int32", "y": "int32"}})

	assert.True(t, r.UserTypes["Point"])
	assert.True(t, r.CopyableClasses["Point"])
	assert.NotNil(t, r.UserClasses["Point"])
	assert.NotNil(t, r.UserMethods["Point"])
	assert.True(t, r.IsKnownType("Point"))
}

func TestExpandConstraintFlattensAliases(t *testing.T) {
	r := NewRegistries()
	r.ConstraintAliases["Numeric"] = "int32 | float64"
	r.ConstraintAliases["Ordered"] = "Numeric | string"

	expanded := r.ExpandConstraint("Ordered | bool")
	assert.ElementsMatch(t, []string{"int32", "float64", "string", "bool"}, expanded)
}

func TestExpandConstraintNoAliases(t *testing.T) {
	r := NewRegistries()
	assert.ElementsMatch(t, []string{"int32", "float64"}, r.ExpandConstraint("int32 | float64"))
}
