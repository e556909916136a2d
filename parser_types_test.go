package firescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTypeBuiltinScalar(t *testing.T) {
	p := NewParser(`int32 x`)
	name, isArray := p.parseType()
	assert.Equal(t, "int32", name)
	assert.False(t, isArray)
}

func TestParseTypeArraySuffix(t *testing.T) {
	p := NewParser(`int32[] xs = [1];`)
	root := p.Parse()
	require.False(t, p.Diagnostics.HasErrors())
	decl := root.Statements[0].(*VariableDeclarationNode)
	assert.Equal(t, "int32", decl.VarType)
	assert.True(t, decl.IsArray)
}

func TestParseTypeUserClassName(t *testing.T) {
	p := NewParser(`
class Point { int32 x; }
Point p = new Point(1);
`)
	root := p.Parse()
	require.False(t, p.Diagnostics.HasErrors())
	decl := root.Statements[1].(*VariableDeclarationNode)
	assert.Equal(t, "Point", decl.VarType)
}

func TestParseTypeGenericParamNameInFunctionBody(t *testing.T) {
	p := NewParser(`
T identity<T: int32 | string>(T a) {
    T b = a;
    return b;
}
`)
	p.Parse()
	assert.False(t, p.Diagnostics.HasErrors())
}

func TestParseTypeUnknownIdentifierIsAnError(t *testing.T) {
	p := NewParser(`Ghost g`)
	p.parseType()
	assert.True(t, p.Diagnostics.HasMessageContaining(`expected a type but found "Ghost"`))
}
