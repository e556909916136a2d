package firescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveIdentifiersShadowingIsAnError(t *testing.T) {
	p := NewParser(`
int32 a = 1;
{
    int32 a = 2;
}
`)
	p.Parse()
	assert.True(t, p.Diagnostics.HasMessageContaining("shadows an existing binding"))
}

func TestResolveIdentifiersUndefinedNameIsAnError(t *testing.T) {
	p := NewParser(`int32 x = y;` + "\n")
	p.Parse()
	assert.True(t, p.Diagnostics.HasMessageContaining(`undefined identifier "y"`))
}

func TestResolveIdentifiersParamsVisibleInBody(t *testing.T) {
	p := NewParser(`
int32 add(int32 x, int32 y) { return x + y; }
`)
	p.Parse()
	assert.False(t, p.Diagnostics.HasErrors())
}

func TestResolveIdentifiersDeferredUndefinedResolvesAfterModuleMerge(t *testing.T) {
	loader := NewInMemorySourceLoader()
	loader.Add("a.fire", "int32 TEN = 10;\n")

	entryParser := NewParser("import a.*\nint32 twice = TEN + TEN;\n")
	entryRoot := entryParser.Parse()

	resolver := NewResolver("", loader)
	_, err := resolver.Resolve(entryParser, entryRoot)
	assert.NoError(t, err)
	assert.False(t, entryParser.Diagnostics.HasErrors())
}

func TestResolveIdentifiersSameNameInSiblingScopesIsFine(t *testing.T) {
	p := NewParser(`
int32 f() {
    { int32 a = 1; }
    { int32 a = 2; }
    return 0;
}
`)
	p.Parse()
	assert.False(t, p.Diagnostics.HasErrors())
}
