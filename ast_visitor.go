package firescript

// NodeVisitor dispatches on concrete node kind.
type NodeVisitor interface {
	VisitRoot(*RootNode) error
	VisitScope(*ScopeNode) error
	VisitVariableDeclaration(*VariableDeclarationNode) error
	VisitVariableAssignment(*VariableAssignmentNode) error
	VisitAssignment(*AssignmentNode) error
	VisitCompoundAssignment(*CompoundAssignmentNode) error
	VisitBinaryExpression(*BinaryExpressionNode) error
	VisitUnaryExpression(*UnaryExpressionNode) error
	VisitEqualityExpression(*EqualityExpressionNode) error
	VisitRelationalExpression(*RelationalExpressionNode) error
	VisitCastExpression(*CastExpressionNode) error
	VisitLiteral(*LiteralNode) error
	VisitIdentifier(*IdentifierNode) error
	VisitFunctionDefinition(*FunctionDefinitionNode) error
	VisitFunctionCall(*FunctionCallNode) error
	VisitParameter(*ParameterNode) error
	VisitReturnStatement(*ReturnStatementNode) error
	VisitIfStatement(*IfStatementNode) error
	VisitWhileStatement(*WhileStatementNode) error
	VisitBreakStatement(*BreakStatementNode) error
	VisitContinueStatement(*ContinueStatementNode) error
	VisitArrayLiteral(*ArrayLiteralNode) error
	VisitArrayAccess(*ArrayAccessNode) error
	VisitMethodCall(*MethodCallNode) error
	VisitTypeMethodCall(*TypeMethodCallNode) error
	VisitConstructorCall(*ConstructorCallNode) error
	VisitSuperCall(*SuperCallNode) error
	VisitFieldAccess(*FieldAccessNode) error
	VisitClassDefinition(*ClassDefinitionNode) error
	VisitClassField(*ClassFieldNode) error
	VisitClassMethodDefinition(*ClassMethodDefinitionNode) error
	VisitImportStatement(*ImportStatementNode) error
	VisitDirective(*DirectiveNode) error
}

// Inspect traverses the tree in depth-first, source order, calling f
// for every node. If f returns false, Inspect skips that node's
// children. Identifier resolution, the ownership preprocessor, and the
// semantic analyzer do not use it: each recurses with its own per-kind
// type switch.
func Inspect(n Node, f func(Node) bool) {
	if n == nil {
		return
	}
	if !f(n) {
		return
	}
	for _, child := range n.Children() {
		Inspect(child, f)
	}
}
