package firescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpressionPrecedenceClimbing(t *testing.T) {
	p := NewParser(`int32 r = 1 + 2 * 3 - 4 / 2;`)
	root := p.Parse()
	require.False(t, p.Diagnostics.HasErrors())

	decl := root.Statements[0].(*VariableDeclarationNode)
	// top of the tree should be the last additive operator (left-associative `-`)
	bin, ok := decl.Value.(*BinaryExpressionNode)
	require.True(t, ok)
	assert.Equal(t, "-", bin.Operator)
}

func TestCastBindsTighterThanBinaryOperators(t *testing.T) {
	p := NewParser(`float64 r = 1 as float64 + 2 as float64;`)
	root := p.Parse()
	require.False(t, p.Diagnostics.HasErrors())

	decl := root.Statements[0].(*VariableDeclarationNode)
	bin, ok := decl.Value.(*BinaryExpressionNode)
	require.True(t, ok)
	_, leftIsCast := bin.Left.(*CastExpressionNode)
	_, rightIsCast := bin.Right.(*CastExpressionNode)
	assert.True(t, leftIsCast)
	assert.True(t, rightIsCast)
}

func TestChainedCastsAreLeftAssociative(t *testing.T) {
	p := NewParser(`float64 r = 1 as int32 as float64;`)
	root := p.Parse()
	require.False(t, p.Diagnostics.HasErrors())

	decl := root.Statements[0].(*VariableDeclarationNode)
	outer, ok := decl.Value.(*CastExpressionNode)
	require.True(t, ok)
	assert.Equal(t, "float64", outer.TargetType)
	inner, ok := outer.Expr.(*CastExpressionNode)
	require.True(t, ok)
	assert.Equal(t, "int32", inner.TargetType)
}

func TestPostfixChainArrayFieldAndMethod(t *testing.T) {
	p := NewParser(`
class Box {
    int32 value;
    int32 get() { return this.value; }
}
Box[] boxes = [new Box(1)];
int32 r = boxes[0].get();
`)
	p.Parse()
	assert.False(t, p.Diagnostics.HasErrors())
}

func TestSuperCallOutsideConstructorIsAnError(t *testing.T) {
	p := NewParser(`
class Animal {
    int32 speak() { return 1; }
}
class Dog from Animal {
    int32 speak() {
        this.super();
        return 2;
    }
}
`)
	p.Parse()
	assert.True(t, p.Diagnostics.HasMessageContaining("super() may only be called from within a constructor"))
}

func TestUnexpectedTokenInExpressionIsAnError(t *testing.T) {
	p := NewParser(`int32 r = ;`)
	p.Parse()
	assert.True(t, p.Diagnostics.HasErrors())
}

func TestTypeConstructorCallRequiresParens(t *testing.T) {
	p := NewParser(`int32 r = int32;`)
	p.Parse()
	assert.True(t, p.Diagnostics.HasMessageContaining(`expected constructor call after type "int32"`))
}

func TestArrayLiteralAndIndexing(t *testing.T) {
	p := NewParser(`
int32[] xs = [1, 2, 3];
int32 first = xs[0];
`)
	p.Parse()
	assert.False(t, p.Diagnostics.HasErrors())
}
