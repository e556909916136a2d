package firescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportStatementAtTopLevelIsAllowed(t *testing.T) {
	p := NewParser(`import shapes.Circle;`)
	root := p.Parse()
	require.Len(t, root.Statements, 1)
	_, ok := root.Statements[0].(*ImportStatementNode)
	assert.True(t, ok)
}

func TestImportStatementInsideScopeIsAnError(t *testing.T) {
	p := NewParser(`
int32 f() {
    import shapes.Circle;
    return 1;
}
`)
	p.Parse()
	assert.True(t, p.Diagnostics.HasMessageContaining("import statements are only allowed at the top level"))
}

func TestClassDefinitionInsideScopeIsAnError(t *testing.T) {
	p := NewParser(`
int32 f() {
    class Nested { int32 x; }
    return 1;
}
`)
	p.Parse()
	assert.True(t, p.Diagnostics.HasMessageContaining("class definitions are only allowed at the top level"))
}

func TestIncrementDecrementDesugarToCompoundAssignment(t *testing.T) {
	p := NewParser(`
int32 f() {
    int32 x = 0;
    x++;
    x--;
    return x;
}
`)
	root := p.Parse()
	require.False(t, p.Diagnostics.HasErrors())

	fn := root.Statements[0].(*FunctionDefinitionNode)
	inc, ok := fn.Body.Statements[1].(*CompoundAssignmentNode)
	require.True(t, ok)
	assert.Equal(t, "+=", inc.Operator)
	dec, ok := fn.Body.Statements[2].(*CompoundAssignmentNode)
	require.True(t, ok)
	assert.Equal(t, "-=", dec.Operator)
}

func TestCompoundAssignmentOperators(t *testing.T) {
	p := NewParser(`
int32 f() {
    int32 x = 1;
    x += 2;
    x *= 3;
    return x;
}
`)
	p.Parse()
	assert.False(t, p.Diagnostics.HasErrors())
}

func TestBareExpressionStatementRequiresCallForm(t *testing.T) {
	p := NewParser(`
int32 f() {
    1 + 2;
    return 1;
}
`)
	p.Parse()
	assert.True(t, p.Diagnostics.HasMessageContaining("unexpected expression used as a statement"))
}

func TestBareFunctionCallStatementIsAllowed(t *testing.T) {
	p := NewParser(`
int32 noop() { return 0; }
int32 f() {
    noop();
    return 1;
}
`)
	p.Parse()
	assert.False(t, p.Diagnostics.HasErrors())
}

func TestIfElseIfElseChain(t *testing.T) {
	p := NewParser(`
int32 f(int32 x) {
    if (x > 0) {
        return 1;
    } else if (x < 0) {
        return -1;
    } else {
        return 0;
    }
}
`)
	root := p.Parse()
	require.False(t, p.Diagnostics.HasErrors())

	fn := root.Statements[0].(*FunctionDefinitionNode)
	outer := fn.Body.Statements[0].(*IfStatementNode)
	_, elseIsIf := outer.Else.(*IfStatementNode)
	assert.True(t, elseIsIf)
}

func TestWhileLoopWithBreakAndContinue(t *testing.T) {
	p := NewParser(`
int32 f() {
    int32 i = 0;
    while (i < 10) {
        if (i == 5) {
            break;
        }
        i += 1;
        continue;
    }
    return i;
}
`)
	p.Parse()
	assert.False(t, p.Diagnostics.HasErrors())
}

func TestImportWildcardForm(t *testing.T) {
	p := NewParser(`import shapes.*;`)
	root := p.Parse()
	require.False(t, p.Diagnostics.HasErrors())
	imp := root.Statements[0].(*ImportStatementNode)
	assert.Equal(t, ImportWildcard, imp.ImportKind)
	assert.Equal(t, "shapes", imp.ModulePath)
}

func TestImportSymbolListFormWithAlias(t *testing.T) {
	p := NewParser(`import shapes.{Circle, Square as Sq};`)
	root := p.Parse()
	require.False(t, p.Diagnostics.HasErrors())
	imp := root.Statements[0].(*ImportStatementNode)
	assert.Equal(t, ImportSymbols, imp.ImportKind)
	assert.ElementsMatch(t, []string{"Circle", "Square as Sq"}, imp.Symbols)
}

func TestImportMultiSegmentWithAliasTreatsLastSegmentAsSymbol(t *testing.T) {
	p := NewParser(`import shapes.geometry.Circle as C;`)
	root := p.Parse()
	require.False(t, p.Diagnostics.HasErrors())
	imp := root.Statements[0].(*ImportStatementNode)
	assert.Equal(t, ImportSymbols, imp.ImportKind)
	assert.Equal(t, "shapes.geometry", imp.ModulePath)
	assert.Equal(t, []string{"Circle"}, imp.Symbols)
	assert.Equal(t, "C", imp.Alias)
}

func TestImportSingleSegmentWithAliasIsWholeModuleImport(t *testing.T) {
	p := NewParser(`import shapes as S;`)
	root := p.Parse()
	require.False(t, p.Diagnostics.HasErrors())
	imp := root.Statements[0].(*ImportStatementNode)
	assert.Equal(t, ImportModule, imp.ImportKind)
	assert.Equal(t, "shapes", imp.ModulePath)
	assert.Equal(t, "S", imp.Alias)
}

func TestImportStdlibFirescriptPathRewrite(t *testing.T) {
	p := NewParser(`import @firescript/collections/list;`)
	root := p.Parse()
	require.False(t, p.Diagnostics.HasErrors())
	imp := root.Statements[0].(*ImportStatementNode)
	assert.Equal(t, "firescript.collections.list", imp.ModulePath)
}

func TestImportExternalPackageIsUnsupported(t *testing.T) {
	p := NewParser(`import @npm/left-pad;`)
	p.Parse()
	assert.True(t, p.Diagnostics.HasMessageContaining("is not supported"))
}

func TestDirectiveStatementUnknownNameIsAnError(t *testing.T) {
	p := NewParser(`directive made_up_directive;`)
	p.Parse()
	assert.True(t, p.Diagnostics.HasMessageContaining(`unknown directive "made_up_directive"`))
}

func TestDirectiveStatementKnownNameIsAccepted(t *testing.T) {
	p := NewParser(`directive enable_drops;`)
	p.Parse()
	assert.False(t, p.Diagnostics.HasErrors())
}

func TestBorrowedParameterParsesAmpersand(t *testing.T) {
	p := NewParser(`
int32 len(&int32[] xs) { return 0; }
`)
	root := p.Parse()
	require.False(t, p.Diagnostics.HasErrors())
	fn := root.Statements[0].(*FunctionDefinitionNode)
	require.Len(t, fn.Parameters, 1)
	assert.True(t, fn.Parameters[0].IsBorrowed)
	assert.True(t, fn.Parameters[0].IsArray)
}
