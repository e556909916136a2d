package firescript

// Ownership preprocessor: a tree-to-tree rewrite over the merged
// program that inserts deterministic `drop(x)` destructor calls for
// Owned locals at every scope exit, return, break, and continue, and
// marks the rewrite with a leading `enable_drops` directive so a
// second run is a no-op.
//
// ApplyOwnership takes the merged root and returns a new root, since
// the rewrite changes the shape (Scope, ReturnStatement, Break,
// Continue nodes are replaced wholesale). Function, method, if and
// while nodes are updated in place and re-parented under the new root.

type ownerBinding struct {
	varType string
	isArray bool
	owned   bool
	isParam bool
}

type ownerFrame struct {
	order    []string // Owned locals declared directly in this frame, in declaration order
	bindings map[string]*ownerBinding
}

type ownershipPass struct {
	registries *Registries
	frames     []*ownerFrame
}

// ApplyOwnership returns root unchanged if it already carries an
// enable_drops directive (idempotence); otherwise it returns a new
// root with the drop-insertion rules applied.
func ApplyOwnership(root *RootNode, registries *Registries) *RootNode {
	if hasEnableDropsDirective(root) {
		return root
	}

	op := &ownershipPass{registries: registries}
	newRoot := NewRootNode(root.Rg)
	newRoot.Append(NewDirectiveNode("enable_drops", nil, root.Rg))

	op.pushFrame()
	for _, stmt := range root.Statements {
		newRoot.Append(op.transformStatement(stmt))
	}
	for _, name := range op.currentFrame().order {
		newRoot.Append(dropCall(name, root.Rg))
	}
	op.popFrame()

	return newRoot
}

func (op *ownershipPass) pushFrame() {
	op.frames = append(op.frames, &ownerFrame{bindings: map[string]*ownerBinding{}})
}

func (op *ownershipPass) popFrame() {
	op.frames = op.frames[:len(op.frames)-1]
}

func (op *ownershipPass) currentFrame() *ownerFrame {
	return op.frames[len(op.frames)-1]
}

func (op *ownershipPass) lookup(name string) *ownerBinding {
	for i := len(op.frames) - 1; i >= 0; i-- {
		if b, ok := op.frames[i].bindings[name]; ok {
			return b
		}
	}
	return nil
}

func (op *ownershipPass) declareParam(prm *ParameterNode) {
	owned := classifyValueCategory(prm.TypeName, prm.IsArray, op.registries.CopyableClasses) == CategoryOwned
	op.currentFrame().bindings[prm.Name] = &ownerBinding{varType: prm.TypeName, isArray: prm.IsArray, owned: owned, isParam: true}
}

func (op *ownershipPass) declareLocal(decl *VariableDeclarationNode) {
	owned := decl.ValueCategory == CategoryOwned
	op.currentFrame().bindings[decl.Name] = &ownerBinding{varType: decl.VarType, isArray: decl.IsArray, owned: owned}
	if owned {
		op.currentFrame().order = append(op.currentFrame().order, decl.Name)
	}
}

func dropCall(name string, rg Range) Node {
	return NewFunctionCallNode("drop", []Node{NewIdentifierNode(name, rg)}, rg)
}

// transformStatement rewrites n; nodes with no scope-shaped children
// recurse structurally by being returned unchanged (their subtrees
// contain no Scope to rewrite).
func (op *ownershipPass) transformStatement(n Node) Node {
	switch node := n.(type) {
	case *ScopeNode:
		return op.transformScope(node)

	case *VariableDeclarationNode:
		op.declareLocal(node)
		return node

	case *VariableAssignmentNode:
		if b := op.lookup(node.Name); b != nil && b.owned && !b.isParam {
			dropStmt := dropCall(node.Name, node.Rg)
			return NewScopeNode([]Node{dropStmt, node}, node.Rg)
		}
		return node

	case *ReturnStatementNode:
		var drops []Node
		for i := 0; i < len(op.frames); i++ {
			for _, name := range op.frames[i].order {
				drops = append(drops, dropCall(name, node.Rg))
			}
		}
		return NewScopeNode(append(drops, node), node.Rg)

	case *BreakStatementNode:
		return op.wrapLoopExit(node, node.Rg)

	case *ContinueStatementNode:
		return op.wrapLoopExit(node, node.Rg)

	case *IfStatementNode:
		node.Then = op.transformScope(node.Then)
		if node.Else != nil {
			node.Else = op.transformStatement(node.Else)
		}
		return node

	case *WhileStatementNode:
		node.Body = op.transformScope(node.Body)
		return node

	case *FunctionDefinitionNode:
		op.pushFrame()
		for _, prm := range node.Parameters {
			op.declareParam(prm)
		}
		node.Body = op.transformScope(node.Body)
		op.popFrame()
		return node

	case *ClassDefinitionNode:
		for i, m := range node.Methods {
			node.Methods[i] = op.transformMethod(m)
		}
		return node

	case *ClassMethodDefinitionNode:
		return op.transformMethod(node)

	default:
		return node
	}
}

// wrapLoopExit wraps a break/continue with drops for only the
// innermost open frame.
func (op *ownershipPass) wrapLoopExit(n Node, rg Range) Node {
	var drops []Node
	for _, name := range op.currentFrame().order {
		drops = append(drops, dropCall(name, rg))
	}
	if len(drops) == 0 {
		return n
	}
	return NewScopeNode(append(drops, n), rg)
}

func (op *ownershipPass) transformScope(s *ScopeNode) *ScopeNode {
	op.pushFrame()
	var stmts []Node
	for _, stmt := range s.Statements {
		stmts = append(stmts, op.transformStatement(stmt))
	}
	for _, name := range op.currentFrame().order {
		stmts = append(stmts, dropCall(name, s.Rg))
	}
	op.popFrame()
	return NewScopeNode(stmts, s.Rg)
}

func (op *ownershipPass) transformMethod(m *ClassMethodDefinitionNode) *ClassMethodDefinitionNode {
	op.pushFrame()
	for _, prm := range m.Parameters {
		op.declareParam(prm)
	}
	m.Body = op.transformScope(m.Body)
	op.popFrame()
	return m
}
