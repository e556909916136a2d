package firescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastStatement(stmts []Node) Node {
	if len(stmts) == 0 {
		return nil
	}
	return stmts[len(stmts)-1]
}

func isDropCallOf(n Node, name string) bool {
	call, ok := n.(*FunctionCallNode)
	if !ok || call.Callee != "drop" || len(call.Arguments) != 1 {
		return false
	}
	id, ok := call.Arguments[0].(*IdentifierNode)
	return ok && id.Name == name
}

func TestApplyOwnershipInsertsTopLevelDirective(t *testing.T) {
	parser := NewParser("int32 x = 1;\n")
	root := parser.Parse()

	rewritten := ApplyOwnership(root, parser.Registries)

	directive, ok := rewritten.Statements[0].(*DirectiveNode)
	require.True(t, ok)
	assert.Equal(t, "enable_drops", directive.Name)
}

func TestApplyOwnershipDropsOwnedLocalAtScopeExit(t *testing.T) {
	src := `
int32 add(int32 a, int32 b) {
    int32[] xs = [1, 2, 3];
    return a + b;
}
`
	parser := NewParser(src)
	root := parser.Parse()
	rewritten := ApplyOwnership(root, parser.Registries)

	fn, ok := rewritten.Statements[1].(*FunctionDefinitionNode)
	require.True(t, ok)

	// return is wrapped in a synthetic scope carrying the drop(xs) call
	// ahead of the return itself (spec.md §4.4).
	wrapped, ok := fn.Body.Statements[1].(*ScopeNode)
	require.True(t, ok)
	assert.True(t, isDropCallOf(wrapped.Statements[0], "xs"))
	_, isReturn := wrapped.Statements[len(wrapped.Statements)-1].(*ReturnStatementNode)
	assert.True(t, isReturn)
}

func TestApplyOwnershipIsIdempotent(t *testing.T) {
	src := "int32[] xs = [1, 2];\n"
	parser := NewParser(src)
	root := parser.Parse()

	once := ApplyOwnership(root, parser.Registries)
	twice := ApplyOwnership(once, parser.Registries)

	assert.Same(t, once, twice)
}

func TestApplyOwnershipWrapsAssignmentWithDrop(t *testing.T) {
	src := `
int32 run() {
    int32[] xs = [1];
    xs = [2];
    return 0;
}
`
	parser := NewParser(src)
	root := parser.Parse()
	rewritten := ApplyOwnership(root, parser.Registries)

	fn := rewritten.Statements[1].(*FunctionDefinitionNode)
	wrapped, ok := fn.Body.Statements[1].(*ScopeNode)
	require.True(t, ok)
	assert.True(t, isDropCallOf(wrapped.Statements[0], "xs"))
	_, isAssign := wrapped.Statements[1].(*VariableAssignmentNode)
	assert.True(t, isAssign)
}
