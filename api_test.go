package firescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileSourceNoImportsHappyPath(t *testing.T) {
	result, err := CompileSource(`
int32 add(int32 a, int32 b) { return a + b; }
int32 r = add(1, 2);
`, "", nil)
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.False(t, result.Diagnostics.HasErrors())
}

func TestCompileSourceInsertsOwnershipDrops(t *testing.T) {
	result, err := CompileSource(`
int32[] xs = [1, 2, 3];
`, "", nil)
	require.NoError(t, err)
	require.True(t, result.OK)

	directive, ok := result.Root.Statements[0].(*DirectiveNode)
	require.True(t, ok)
	assert.Equal(t, "enable_drops", directive.Name)
}

func TestCompileSourceDisablingDropsSkipsRewrite(t *testing.T) {
	cfg := NewConfig()
	cfg.SetBool("ownership.enable_drops", false)

	result, err := CompileSource(`int32[] xs = [1, 2, 3];`+"\n", "", cfg)
	require.NoError(t, err)
	_, ok := result.Root.Statements[0].(*DirectiveNode)
	assert.False(t, ok, "ownership rewrite should not run when disabled")
}

func TestCompileSourceSurfacesTypeErrors(t *testing.T) {
	result, err := CompileSource(`string s = 1;`+"\n", "", nil)
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.True(t, result.Diagnostics.HasErrors())
}

func TestCompileSourceMissingImportIsModuleError(t *testing.T) {
	// CompileSource reads imports from disk relative to importRoot, so
	// a module genuinely missing there surfaces as a ModuleError
	// rather than silently compiling.
	_, err := CompileSource("import a.*\nprint(1);\n", "/nonexistent/path", nil)
	require.Error(t, err)
	_, ok := err.(*ModuleError)
	assert.True(t, ok)
}

func TestCompileFileMissingFile(t *testing.T) {
	_, err := CompileFile("/nonexistent/path/to/file.fire", nil)
	require.Error(t, err)
	modErr, ok := err.(*ModuleError)
	require.True(t, ok)
	assert.Equal(t, "module not found", modErr.Message)
}
