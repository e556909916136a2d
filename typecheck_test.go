package firescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeCheckAcceptsMatchingDeclaration(t *testing.T) {
	p := NewParser("int32 x = 1;\n")
	p.Parse()
	assert.False(t, p.Diagnostics.HasErrors())
}

func TestTypeCheckRejectsMismatchedDeclaration(t *testing.T) {
	p := NewParser(`string s = 1;` + "\n")
	p.Parse()
	assert.True(t, p.Diagnostics.HasErrors())
}

func TestTypeCheckPlusAllowsStringConcatenation(t *testing.T) {
	p := NewParser(`string s = "a" + "b";` + "\n")
	p.Parse()
	assert.False(t, p.Diagnostics.HasErrors())
}

func TestTypeCheckModuloRequiresIntegerOperands(t *testing.T) {
	p := NewParser(`float64 x = 1.0 % 2.0;` + "\n")
	p.Parse()
	assert.True(t, p.Diagnostics.HasErrors())
}

func TestTypeCheckEqualityAllowsNullComparison(t *testing.T) {
	p := NewParser(`
class Box { int32 value; }
bool isNil(Box b) { return b == null; }
`)
	p.Parse()
	assert.False(t, p.Diagnostics.HasErrors())
}

func TestTypeCheckRelationalRequiresMatchingTypes(t *testing.T) {
	p := NewParser(`bool b = 1 < "x";` + "\n")
	p.Parse()
	assert.True(t, p.Diagnostics.HasErrors())
}

func TestTypeCheckCastArrayTargetRejected(t *testing.T) {
	p := NewParser(`int32[] xs = 1 as int32[];` + "\n")
	p.Parse()
	assert.True(t, p.Diagnostics.HasErrors())
}

func TestTypeCheckCastArrayToStringAllowed(t *testing.T) {
	p := NewParser(`
int32[] xs = [1, 2, 3];
string s = xs as string;
`)
	p.Parse()
	assert.False(t, p.Diagnostics.HasErrors())
}

func TestTypeCheckArrayLiteralHomogeneity(t *testing.T) {
	p := NewParser(`int32[] xs = [1, "two"];` + "\n")
	p.Parse()
	assert.True(t, p.Diagnostics.HasErrors())
}

func TestTypeCheckArrayIndexMustBeInteger(t *testing.T) {
	p := NewParser(`
int32[] xs = [1, 2];
int32 y = xs["zero"];
`)
	p.Parse()
	assert.True(t, p.Diagnostics.HasErrors())
}

func TestTypeCheckFunctionCallArity(t *testing.T) {
	p := NewParser(`
int32 add(int32 a, int32 b) { return a + b; }
int32 r = add(1);
`)
	p.Parse()
	assert.True(t, p.Diagnostics.HasErrors())
}

func TestTypeCheckBreakOutsideWhileIsError(t *testing.T) {
	p := NewParser(`
int32 f() {
    break;
    return 0;
}
`)
	p.Parse()
	assert.True(t, p.Diagnostics.HasErrors())
}

func TestTypeCheckBreakInsideWhileIsFine(t *testing.T) {
	p := NewParser(`
int32 f() {
    while (true) {
        break;
    }
    return 0;
}
`)
	p.Parse()
	assert.False(t, p.Diagnostics.HasErrors())
}

func TestLiteralTypeSuffixes(t *testing.T) {
	assert.Equal(t, "int32", literalType(LiteralInt, "1"))
	assert.Equal(t, "int64", literalType(LiteralInt, "1i64"))
	assert.Equal(t, "uint8", literalType(LiteralInt, "1u8"))
	assert.Equal(t, "float64", literalType(LiteralFloat, "1.5"))
	assert.Equal(t, "float32", literalType(LiteralFloat, "1.5f32"))
	assert.Equal(t, "string", literalType(LiteralString, `"x"`))
	assert.Equal(t, "bool", literalType(LiteralBool, "true"))
	assert.Equal(t, "char", literalType(LiteralChar, "'a'"))
	assert.Equal(t, "null", literalType(LiteralNull, "null"))
}
