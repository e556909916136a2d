package firescript

// Semantic analyzer: a two-pass ownership/borrow checker over the
// merged, drop-annotated tree. Pass 1 collects function and method
// signatures without descending into bodies; pass 2 is a
// flow-sensitive walk tracking each binding's Valid/Moved state.

// BindingState is the move-tracking state of a binding.
type BindingState int

const (
	BindingValid BindingState = iota
	BindingMoved
	BindingBorrowed
)

// Binding records one name's ownership state within a scope.
type Binding struct {
	Name        string
	VarType     string
	IsArray     bool
	State       BindingState
	DeclNode    Node
	MoveNode    Node
	LastUseNode Node
}

type semanticScope struct {
	bindings map[string]*Binding
}

type analyzer struct {
	diags            *DiagnosticList
	registries       *Registries
	signatures       map[string]FunctionSignature // plain function name -> signature
	methodSignatures map[string]FunctionSignature // "Class.method" -> signature
	scopes           []*semanticScope
}

// AnalyzeOwnership runs both passes over root and returns false if any
// ownership diagnostic was recorded.
func AnalyzeOwnership(root *RootNode, registries *Registries, diags *DiagnosticList) bool {
	a := &analyzer{
		diags:            diags,
		registries:       registries,
		signatures:       map[string]FunctionSignature{},
		methodSignatures: map[string]FunctionSignature{},
	}
	a.collectSignatures(root)

	a.pushScope()
	for _, stmt := range root.Statements {
		a.checkStatement(stmt)
	}
	a.popScope()

	return !diags.HasErrors()
}

// collectSignatures is pass 1: it records every function's and
// method's signature without looking inside any body.
func (a *analyzer) collectSignatures(root *RootNode) {
	for _, stmt := range root.Statements {
		switch s := stmt.(type) {
		case *FunctionDefinitionNode:
			a.signatures[s.Name] = signatureFromParams(s.ReturnTypeName, s.ReturnIsArray, s.Parameters)
		case *ClassDefinitionNode:
			for _, m := range s.Methods {
				a.methodSignatures[s.Name+"."+m.Name] = signatureFromParams(m.ReturnTypeName, m.ReturnIsArray, m.Parameters)
			}
		}
	}
}

func (a *analyzer) pushScope() { a.scopes = append(a.scopes, &semanticScope{bindings: map[string]*Binding{}}) }
func (a *analyzer) popScope()  { a.scopes = a.scopes[:len(a.scopes)-1] }

func (a *analyzer) lookup(name string) *Binding {
	for i := len(a.scopes) - 1; i >= 0; i-- {
		if b, ok := a.scopes[i].bindings[name]; ok {
			return b
		}
	}
	return nil
}

func (a *analyzer) declare(name, varType string, isArray bool, declNode Node) {
	a.scopes[len(a.scopes)-1].bindings[name] = &Binding{Name: name, VarType: varType, IsArray: isArray, State: BindingValid, DeclNode: declNode}
}

func (a *analyzer) isOwned(varType string, isArray bool) bool {
	return classifyValueCategory(varType, isArray, a.registries.CopyableClasses) == CategoryOwned
}

// checkStatement walks one statement, updating binding state as it
// goes.
func (a *analyzer) checkStatement(n Node) {
	switch node := n.(type) {
	case *ScopeNode:
		a.pushScope()
		for _, s := range node.Statements {
			a.checkStatement(s)
		}
		a.popScope()

	case *VariableDeclarationNode:
		a.checkMoveRHS(node.Value)
		a.declare(node.Name, node.VarType, node.IsArray, node)

	case *VariableAssignmentNode:
		if b := a.lookup(node.Name); b != nil && b.State == BindingMoved {
			a.diags.Add(DiagnosticOwnership, node.Rg.Start, "variable %q was moved, cannot use it here", node.Name)
		}
		a.checkMoveRHS(node.Value)

	case *AssignmentNode:
		a.checkExprUse(node.Target)
		a.checkMoveRHS(node.Value)

	case *CompoundAssignmentNode:
		a.checkExprUse(node.Target)
		a.checkExprUse(node.Value)

	case *ReturnStatementNode:
		if node.Value != nil {
			a.checkMoveRHS(node.Value)
		}

	case *IfStatementNode:
		a.checkExprUse(node.Condition)
		a.checkStatement(node.Then)
		if node.Else != nil {
			a.checkStatement(node.Else)
		}

	case *WhileStatementNode:
		a.checkExprUse(node.Condition)
		a.checkStatement(node.Body)

	case *BreakStatementNode, *ContinueStatementNode:
		// no bindings to check

	case *FunctionDefinitionNode:
		a.pushScope()
		for _, prm := range node.Parameters {
			a.checkBorrow(prm)
			a.declare(prm.Name, prm.TypeName, prm.IsArray, prm)
		}
		a.checkStatement(node.Body)
		a.popScope()

	case *ClassDefinitionNode:
		for _, m := range node.Methods {
			a.checkStatement(m)
		}

	case *ClassMethodDefinitionNode:
		a.pushScope()
		for _, prm := range node.Parameters {
			a.checkBorrow(prm)
			a.declare(prm.Name, prm.TypeName, prm.IsArray, prm)
		}
		a.checkStatement(node.Body)
		a.popScope()

	case *FunctionCallNode, *MethodCallNode, *ConstructorCallNode, *SuperCallNode, *TypeMethodCallNode:
		a.checkExprUse(node)

	case *ImportStatementNode, *DirectiveNode, *ClassFieldNode:
		// nothing to check
	}
}

// checkBorrow validates a `&`-declared parameter: it must have either
// an Owned type or a generic parameter type, since borrowing a
// Copyable value is meaningless.
func (a *analyzer) checkBorrow(prm *ParameterNode) {
	if !prm.IsBorrowed {
		return
	}
	if classifyValueCategory(prm.TypeName, prm.IsArray, a.registries.CopyableClasses) != CategoryOwned {
		a.diags.Add(DiagnosticOwnership, prm.Rg.Start, "Cannot borrow Copyable type '%s'", prm.TypeName)
	}
}

// checkMoveRHS analyses an initialiser/assignment/return/argument
// value expression: a bare identifier naming an Owned binding is a
// move; anything else recurses as an ordinary use.
func (a *analyzer) checkMoveRHS(n Node) {
	if id, ok := n.(*IdentifierNode); ok {
		b := a.lookup(id.Name)
		if b == nil {
			return
		}
		if b.State == BindingMoved {
			a.diags.Add(DiagnosticOwnership, id.Rg.Start, "variable %q was moved, cannot use it here", id.Name)
			return
		}
		b.LastUseNode = id
		if a.isOwned(b.VarType, b.IsArray) {
			b.State = BindingMoved
			b.MoveNode = id
		}
		return
	}
	a.checkExprUse(n)
}

// checkExprUse recurses through an expression outside of move context,
// flagging any use of a Moved binding.
func (a *analyzer) checkExprUse(n Node) {
	switch node := n.(type) {
	case *IdentifierNode:
		b := a.lookup(node.Name)
		if b == nil {
			return
		}
		if b.State == BindingMoved {
			a.diags.Add(DiagnosticOwnership, node.Rg.Start, "variable %q was moved, cannot use it here", node.Name)
			return
		}
		b.LastUseNode = node

	case *BinaryExpressionNode:
		a.checkExprUse(node.Left)
		a.checkExprUse(node.Right)
	case *EqualityExpressionNode:
		a.checkExprUse(node.Left)
		a.checkExprUse(node.Right)
	case *RelationalExpressionNode:
		a.checkExprUse(node.Left)
		a.checkExprUse(node.Right)
	case *UnaryExpressionNode:
		a.checkExprUse(node.Operand)
	case *CastExpressionNode:
		a.checkExprUse(node.Expr)
	case *ArrayLiteralNode:
		for _, e := range node.Elements {
			a.checkExprUse(e)
		}
	case *ArrayAccessNode:
		a.checkExprUse(node.Array)
		a.checkExprUse(node.Index)
	case *FieldAccessNode:
		a.checkExprUse(node.Receiver)

	case *FunctionCallNode:
		sig, hasSig := a.signatures[node.Callee]
		a.checkCallArguments(node.Callee, node.Arguments, sig, hasSig)

	case *MethodCallNode:
		a.checkExprUse(node.Receiver)
		recvType, _ := exprType(node.Receiver)
		sig, hasSig := a.methodSignatures[recvType+"."+node.Method]
		a.checkCallArguments(node.Method, node.Arguments, sig, hasSig)

	case *TypeMethodCallNode:
		for _, arg := range node.Arguments {
			a.checkExprUse(arg)
		}
	case *ConstructorCallNode:
		for _, arg := range node.Arguments {
			a.checkExprUse(arg)
		}
	case *SuperCallNode:
		for _, arg := range node.Arguments {
			a.checkExprUse(arg)
		}

	case *LiteralNode:
		// nothing to check
	}
}

// checkCallArguments applies the call-argument ownership rules:
// `drop(x)` is special-cased to skip recursion entirely; otherwise an
// argument bound to a non-borrowed parameter of Owned type is moved.
func (a *analyzer) checkCallArguments(callee string, args []Node, sig FunctionSignature, hasSig bool) {
	if callee == "drop" {
		return
	}
	for i, arg := range args {
		if hasSig && i < len(sig.ParamBorrowed) && !sig.ParamBorrowed[i] {
			if id, ok := arg.(*IdentifierNode); ok {
				if b := a.lookup(id.Name); b != nil {
					if b.State == BindingMoved {
						a.diags.Add(DiagnosticOwnership, id.Rg.Start, "variable %q was moved, cannot use it here", id.Name)
						continue
					}
					if a.isOwned(b.VarType, b.IsArray) {
						b.State = BindingMoved
						b.MoveNode = id
						b.LastUseNode = id
						continue
					}
				}
			}
		}
		a.checkExprUse(arg)
	}
}

// exprType returns an already-type-checked expression node's static
// (type name, is_array) pair by reading the fields checkExpr populated
// in typecheck.go. The Node interface has no accessor for these, so
// this dispatches over the expression-producing kinds directly.
func exprType(n Node) (string, bool) {
	switch node := n.(type) {
	case *IdentifierNode:
		return node.VarType, node.IsArray
	case *LiteralNode:
		return node.VarType, false
	case *BinaryExpressionNode:
		return node.ReturnType, false
	case *UnaryExpressionNode:
		return node.ReturnType, false
	case *EqualityExpressionNode:
		return node.ReturnType, false
	case *RelationalExpressionNode:
		return node.ReturnType, false
	case *CastExpressionNode:
		return node.ReturnType, false
	case *ArrayLiteralNode:
		return node.ReturnType, true
	case *ArrayAccessNode:
		return node.ReturnType, false
	case *FieldAccessNode:
		return node.ReturnType, false
	case *FunctionCallNode:
		return node.ReturnType, false
	case *MethodCallNode:
		return node.ReturnType, false
	case *TypeMethodCallNode:
		return node.ReturnType, false
	case *ConstructorCallNode:
		return node.ReturnType, false
	}
	return "", false
}
