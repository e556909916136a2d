package firescript

// Identifier resolution: a single pass over the freshly built tree
// with a lexical scope chain. A scope is pushed for each Scope,
// FunctionDefinition, and ClassMethodDefinition. Declaration happens on
// encounter, in source order, so a name is visible to code that
// follows it within the same or a nested scope but not to code that
// precedes it — the deferred-undefined mechanism is what lets
// cross-file forward references work instead.

type bindingInfo struct {
	varType string
	isArray bool
}

type scopeFrame map[string]*bindingInfo

type resolver struct {
	p      *Parser
	scopes []scopeFrame
}

// resolveIdentifiers walks root, annotating every resolvable
// Identifier's var_type/is_array and recording unresolvable ones on
// the parser's deferred list (if the file has imports) or as an
// immediate diagnostic otherwise.
func resolveIdentifiers(p *Parser, root *RootNode) {
	r := &resolver{p: p}
	r.pushScope()
	for _, stmt := range root.Statements {
		r.walk(stmt)
	}
	r.popScope()
}

func (r *resolver) pushScope() { r.scopes = append(r.scopes, scopeFrame{}) }
func (r *resolver) popScope()  { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *resolver) lookup(name string) *bindingInfo {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if b, ok := r.scopes[i][name]; ok {
			return b
		}
	}
	return nil
}

// declare registers name in the innermost scope. Shadowing any binding
// already visible in an enclosing (or the same) scope is an error.
func (r *resolver) declare(name, varType string, isArray bool, offset int) {
	for _, scope := range r.scopes {
		if _, found := scope[name]; found {
			r.p.Diagnostics.Add(DiagnosticIdentifier, offset, "declaration of %q shadows an existing binding", name)
			break
		}
	}
	r.scopes[len(r.scopes)-1][name] = &bindingInfo{varType: varType, isArray: isArray}
}

func (r *resolver) resolveName(name string, offset int) *bindingInfo {
	if b := r.lookup(name); b != nil {
		return b
	}
	if r.p.deferUndefinedIdentifiers {
		return nil
	}
	r.p.Diagnostics.Add(DiagnosticIdentifier, offset, "undefined identifier %q", name)
	return nil
}

func (r *resolver) walk(n Node) {
	switch node := n.(type) {
	case *RootNode:
		for _, s := range node.Statements {
			r.walk(s)
		}

	case *ScopeNode:
		r.pushScope()
		for _, s := range node.Statements {
			r.walk(s)
		}
		r.popScope()

	case *VariableDeclarationNode:
		r.walk(node.Value)
		r.declare(node.Name, node.VarType, node.IsArray, node.Rg.Start)

	case *VariableAssignmentNode:
		r.walk(node.Value)
		if b := r.resolveName(node.Name, node.Rg.Start); b != nil {
			node.VarType = b.varType
			node.IsArray = b.isArray
		} else if r.p.deferUndefinedIdentifiers && r.lookup(node.Name) == nil {
			r.p.deferredUndefined = append(r.p.deferredUndefined, NewIdentifierNode(node.Name, node.Rg))
		}

	case *AssignmentNode:
		r.walk(node.Target)
		r.walk(node.Value)

	case *CompoundAssignmentNode:
		r.walk(node.Target)
		r.walk(node.Value)

	case *BinaryExpressionNode:
		r.walk(node.Left)
		r.walk(node.Right)

	case *UnaryExpressionNode:
		r.walk(node.Operand)

	case *EqualityExpressionNode:
		r.walk(node.Left)
		r.walk(node.Right)

	case *RelationalExpressionNode:
		r.walk(node.Left)
		r.walk(node.Right)

	case *CastExpressionNode:
		r.walk(node.Expr)

	case *LiteralNode:
		// nothing to resolve

	case *IdentifierNode:
		if b := r.resolveName(node.Name, node.Rg.Start); b != nil {
			node.VarType = b.varType
			node.IsArray = b.isArray
		} else if r.p.deferUndefinedIdentifiers {
			r.p.deferredUndefined = append(r.p.deferredUndefined, node)
		}

	case *FunctionDefinitionNode:
		r.pushScope()
		for _, prm := range node.Parameters {
			r.declare(prm.Name, prm.TypeName, prm.IsArray, prm.Rg.Start)
		}
		r.walk(node.Body)
		r.popScope()

	case *FunctionCallNode:
		for _, a := range node.Arguments {
			r.walk(a)
		}

	case *ReturnStatementNode:
		if node.Value != nil {
			r.walk(node.Value)
		}

	case *IfStatementNode:
		r.walk(node.Condition)
		r.walk(node.Then)
		if node.Else != nil {
			r.walk(node.Else)
		}

	case *WhileStatementNode:
		r.walk(node.Condition)
		r.walk(node.Body)

	case *BreakStatementNode, *ContinueStatementNode:
		// nothing to resolve

	case *ArrayLiteralNode:
		for _, e := range node.Elements {
			r.walk(e)
		}

	case *ArrayAccessNode:
		r.walk(node.Array)
		r.walk(node.Index)

	case *MethodCallNode:
		r.walk(node.Receiver)
		for _, a := range node.Arguments {
			r.walk(a)
		}

	case *TypeMethodCallNode:
		for _, a := range node.Arguments {
			r.walk(a)
		}

	case *ConstructorCallNode:
		for _, a := range node.Arguments {
			r.walk(a)
		}

	case *SuperCallNode:
		for _, a := range node.Arguments {
			r.walk(a)
		}

	case *FieldAccessNode:
		r.walk(node.Receiver)

	case *ClassDefinitionNode:
		for _, m := range node.Methods {
			r.walk(m)
		}

	case *ClassFieldNode:
		// nothing to resolve

	case *ClassMethodDefinitionNode:
		r.pushScope()
		for _, prm := range node.Parameters {
			r.declare(prm.Name, prm.TypeName, prm.IsArray, prm.Rg.Start)
		}
		r.walk(node.Body)
		r.popScope()

	case *ImportStatementNode, *DirectiveNode:
		// nothing to resolve
	}
}
