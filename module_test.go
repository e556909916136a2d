package firescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDottedToRelativePath(t *testing.T) {
	assert.Equal(t, "a/b/c.fire", dottedToRelativePath("a.b.c"))
	assert.Equal(t, "single.fire", dottedToRelativePath("single"))
}

func TestCollectExports(t *testing.T) {
	src := `
int32 counter = 1;
class Box { int32 value; }
int32 add(int32 a, int32 b) { return a + b; }
`
	root := NewParser(src).Parse()
	mod := &Module{Root: root, Exports: map[string]MergedSymbol{}}
	collectExports(mod)

	assert.Equal(t, MergedSymbol{Type: "int32", IsArray: false}, mod.Exports["counter"])
	assert.Equal(t, MergedSymbol{Type: "Box", IsArray: false}, mod.Exports["Box"])
	assert.Equal(t, MergedSymbol{Type: "int32", IsArray: false}, mod.Exports["add"])
}

func TestIsExportableTopLevelAndExportedName(t *testing.T) {
	fn := NewFunctionDefinitionNode("f", nil, "int32", false, NewScopeNode(nil, NewRange(0, 0)), NewRange(0, 0))
	assert.True(t, isExportableTopLevel(fn))
	assert.Equal(t, "f", exportedName(fn))

	ret := NewReturnStatementNode(nil, NewRange(0, 0))
	assert.False(t, isExportableTopLevel(ret))
	assert.Equal(t, "", exportedName(ret))
}
