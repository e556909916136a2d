package firescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func analyzeSource(t *testing.T, src string) *DiagnosticList {
	t.Helper()
	p := NewParser(src)
	root := p.Parse()
	merged := ApplyOwnership(root, p.Registries)
	AnalyzeOwnership(merged, p.Registries, p.Diagnostics)
	return p.Diagnostics
}

func TestSemanticUseAfterMoveIsAnError(t *testing.T) {
	diags := analyzeSource(t, `
int32[] xs = [1, 2, 3];
int32[] ys = xs;
int32 n = xs.length();
`)
	assert.True(t, diags.HasMessageContaining(`variable "xs" was moved, cannot use it here`))
}

func TestSemanticMoveThenDeclareIsFine(t *testing.T) {
	diags := analyzeSource(t, `
int32[] xs = [1, 2, 3];
int32[] ys = xs;
`)
	assert.False(t, diags.HasErrors())
}

func TestSemanticBorrowOfCopyableIsAnError(t *testing.T) {
	diags := analyzeSource(t, `
int32 useIt(&int32 n) { return n; }
`)
	assert.True(t, diags.HasMessageContaining("Cannot borrow Copyable type 'int32'"))
}

func TestSemanticBorrowOfOwnedArrayIsFine(t *testing.T) {
	diags := analyzeSource(t, `
int32 useIt(&int32[] xs) { return xs.length(); }
`)
	assert.False(t, diags.HasErrors())
}

func TestSemanticDropCallSkipsArgumentRecursion(t *testing.T) {
	diags := analyzeSource(t, `
int32[] xs = [1, 2, 3];
drop(xs);
drop(xs);
`)
	assert.False(t, diags.HasErrors())
}

func TestSemanticCallMovesOwnedArgument(t *testing.T) {
	diags := analyzeSource(t, `
int32 consume(int32[] xs) { return xs.length(); }
int32[] a = [1, 2];
int32 r = consume(a);
int32 s = consume(a);
`)
	assert.True(t, diags.HasMessageContaining(`variable "a" was moved, cannot use it here`))
}
