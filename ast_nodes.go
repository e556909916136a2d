package firescript

// This file defines one Go struct per NodeKind, each embedding
// NodeBase for the shared attribute set. Constructors funnel every
// child through appendChild/appendChildren so no node ever ends up
// with a nil child or a stale parent pointer.

// RootNode is the top of a single file's tree, or of a merged module
// tree.
type RootNode struct {
	NodeBase
	Statements []Node
}

func NewRootNode(rg Range) *RootNode {
	return &RootNode{NodeBase: NodeBase{Rg: rg}}
}

func (n *RootNode) Kind() NodeKind    { return KindRoot }
func (n *RootNode) Children() []Node { return n.Statements }
func (n *RootNode) Accept(v NodeVisitor) error { return v.VisitRoot(n) }

func (n *RootNode) Append(child Node) {
	n.Statements = append(n.Statements, appendChild(n, child))
}

// ScopeNode is a bare lexical block, a function body, a loop/if body,
// or a synthetic scope introduced by the ownership preprocessor.
type ScopeNode struct {
	NodeBase
	Statements []Node
}

func NewScopeNode(statements []Node, rg Range) *ScopeNode {
	n := &ScopeNode{NodeBase: NodeBase{Rg: rg}}
	n.Statements = appendChildren(n, statements)
	return n
}

func (n *ScopeNode) Kind() NodeKind    { return KindScope }
func (n *ScopeNode) Children() []Node { return n.Statements }
func (n *ScopeNode) Accept(v NodeVisitor) error { return v.VisitScope(n) }

func (n *ScopeNode) Append(child Node) {
	n.Statements = append(n.Statements, appendChild(n, child))
}

// Prepend inserts child at the head of the scope's statement list,
// used when materialising inherited members or injected directives.
func (n *ScopeNode) Prepend(child Node) {
	appendChild(n, child)
	n.Statements = append([]Node{child}, n.Statements...)
}

// VariableDeclarationNode is `[nullable] [const] <Type>[[]] <name> = <expr>`.
type VariableDeclarationNode struct {
	NodeBase
	Name  string
	Value Node
}

func NewVariableDeclarationNode(name string, value Node, rg Range) *VariableDeclarationNode {
	n := &VariableDeclarationNode{Name: name}
	n.Rg = rg
	n.Value = appendChild(n, value)
	return n
}

func (n *VariableDeclarationNode) Kind() NodeKind    { return KindVariableDeclaration }
func (n *VariableDeclarationNode) Children() []Node { return []Node{n.Value} }
func (n *VariableDeclarationNode) Accept(v NodeVisitor) error { return v.VisitVariableDeclaration(n) }

// VariableAssignmentNode is `name = expr` where the target is a bare
// local/global identifier (as opposed to a field or array element,
// see AssignmentNode). Kept distinct because the ownership
// preprocessor treats reassignment of an Owned local specially.
type VariableAssignmentNode struct {
	NodeBase
	Name  string
	Value Node
}

func NewVariableAssignmentNode(name string, value Node, rg Range) *VariableAssignmentNode {
	n := &VariableAssignmentNode{Name: name}
	n.Rg = rg
	n.Value = appendChild(n, value)
	return n
}

func (n *VariableAssignmentNode) Kind() NodeKind    { return KindVariableAssignment }
func (n *VariableAssignmentNode) Children() []Node { return []Node{n.Value} }
func (n *VariableAssignmentNode) Accept(v NodeVisitor) error { return v.VisitVariableAssignment(n) }

// AssignmentNode is `target = expr` where target is a field access or
// array access (an lvalue that is not a bare identifier).
type AssignmentNode struct {
	NodeBase
	Target Node
	Value  Node
}

func NewAssignmentNode(target, value Node, rg Range) *AssignmentNode {
	n := &AssignmentNode{}
	n.Rg = rg
	n.Target = appendChild(n, target)
	n.Value = appendChild(n, value)
	return n
}

func (n *AssignmentNode) Kind() NodeKind    { return KindAssignment }
func (n *AssignmentNode) Children() []Node { return []Node{n.Target, n.Value} }
func (n *AssignmentNode) Accept(v NodeVisitor) error { return v.VisitAssignment(n) }

// CompoundAssignmentNode is `target OP= expr` (+=, -=, *=, /=, %=, **=).
type CompoundAssignmentNode struct {
	NodeBase
	Operator string
	Target   Node
	Value    Node
}

func NewCompoundAssignmentNode(op string, target, value Node, rg Range) *CompoundAssignmentNode {
	n := &CompoundAssignmentNode{Operator: op}
	n.Rg = rg
	n.Target = appendChild(n, target)
	n.Value = appendChild(n, value)
	return n
}

func (n *CompoundAssignmentNode) Kind() NodeKind    { return KindCompoundAssignment }
func (n *CompoundAssignmentNode) Children() []Node { return []Node{n.Target, n.Value} }
func (n *CompoundAssignmentNode) Accept(v NodeVisitor) error { return v.VisitCompoundAssignment(n) }

// BinaryExpressionNode covers +, -, *, /, %.
type BinaryExpressionNode struct {
	NodeBase
	Operator string
	Left     Node
	Right    Node
}

func NewBinaryExpressionNode(op string, left, right Node, rg Range) *BinaryExpressionNode {
	n := &BinaryExpressionNode{Operator: op}
	n.Rg = rg
	n.Left = appendChild(n, left)
	n.Right = appendChild(n, right)
	return n
}

func (n *BinaryExpressionNode) Kind() NodeKind    { return KindBinaryExpression }
func (n *BinaryExpressionNode) Children() []Node { return []Node{n.Left, n.Right} }
func (n *BinaryExpressionNode) Accept(v NodeVisitor) error { return v.VisitBinaryExpression(n) }

// UnaryExpressionNode covers unary -, !, and prefix/postfix ++/--.
type UnaryExpressionNode struct {
	NodeBase
	Operator string
	Operand  Node
	Postfix  bool
}

func NewUnaryExpressionNode(op string, operand Node, postfix bool, rg Range) *UnaryExpressionNode {
	n := &UnaryExpressionNode{Operator: op, Postfix: postfix}
	n.Rg = rg
	n.Operand = appendChild(n, operand)
	return n
}

func (n *UnaryExpressionNode) Kind() NodeKind    { return KindUnaryExpression }
func (n *UnaryExpressionNode) Children() []Node { return []Node{n.Operand} }
func (n *UnaryExpressionNode) Accept(v NodeVisitor) error { return v.VisitUnaryExpression(n) }

// EqualityExpressionNode covers == and !=.
type EqualityExpressionNode struct {
	NodeBase
	Operator string
	Left     Node
	Right    Node
}

func NewEqualityExpressionNode(op string, left, right Node, rg Range) *EqualityExpressionNode {
	n := &EqualityExpressionNode{Operator: op}
	n.Rg = rg
	n.Left = appendChild(n, left)
	n.Right = appendChild(n, right)
	return n
}

func (n *EqualityExpressionNode) Kind() NodeKind    { return KindEqualityExpression }
func (n *EqualityExpressionNode) Children() []Node { return []Node{n.Left, n.Right} }
func (n *EqualityExpressionNode) Accept(v NodeVisitor) error { return v.VisitEqualityExpression(n) }

// RelationalExpressionNode covers <, >, <=, >=.
type RelationalExpressionNode struct {
	NodeBase
	Operator string
	Left     Node
	Right    Node
}

func NewRelationalExpressionNode(op string, left, right Node, rg Range) *RelationalExpressionNode {
	n := &RelationalExpressionNode{Operator: op}
	n.Rg = rg
	n.Left = appendChild(n, left)
	n.Right = appendChild(n, right)
	return n
}

func (n *RelationalExpressionNode) Kind() NodeKind    { return KindRelationalExpression }
func (n *RelationalExpressionNode) Children() []Node { return []Node{n.Left, n.Right} }
func (n *RelationalExpressionNode) Accept(v NodeVisitor) error { return v.VisitRelationalExpression(n) }

// CastExpressionNode is a postfix `expr as <type>`.
type CastExpressionNode struct {
	NodeBase
	Expr           Node
	TargetType     string
	TargetIsArray  bool
}

func NewCastExpressionNode(expr Node, targetType string, targetIsArray bool, rg Range) *CastExpressionNode {
	n := &CastExpressionNode{TargetType: targetType, TargetIsArray: targetIsArray}
	n.Rg = rg
	n.Expr = appendChild(n, expr)
	return n
}

func (n *CastExpressionNode) Kind() NodeKind    { return KindCastExpression }
func (n *CastExpressionNode) Children() []Node { return []Node{n.Expr} }
func (n *CastExpressionNode) Accept(v NodeVisitor) error { return v.VisitCastExpression(n) }

// LiteralKind discriminates the literal text's lexical origin so the
// type checker knows how to interpret Text.
type LiteralKind int

const (
	LiteralInt LiteralKind = iota
	LiteralFloat
	LiteralString
	LiteralBool
	LiteralChar
	LiteralNull
)

// LiteralNode is an integer/float/string/bool/char/null literal.
type LiteralNode struct {
	NodeBase
	LitKind LiteralKind
	Text    string
}

func NewLiteralNode(kind LiteralKind, text string, rg Range) *LiteralNode {
	n := &LiteralNode{LitKind: kind, Text: text}
	n.Rg = rg
	return n
}

func (n *LiteralNode) Kind() NodeKind    { return KindLiteral }
func (n *LiteralNode) Children() []Node { return nil }
func (n *LiteralNode) Accept(v NodeVisitor) error { return v.VisitLiteral(n) }

// IdentifierNode is a bare name reference.
type IdentifierNode struct {
	NodeBase
	Name string
}

func NewIdentifierNode(name string, rg Range) *IdentifierNode {
	n := &IdentifierNode{Name: name}
	n.Rg = rg
	return n
}

func (n *IdentifierNode) Kind() NodeKind    { return KindIdentifier }
func (n *IdentifierNode) Children() []Node { return nil }
func (n *IdentifierNode) Accept(v NodeVisitor) error { return v.VisitIdentifier(n) }

// ParameterNode is a function/method parameter, including the
// synthetic or explicit receiver.
type ParameterNode struct {
	NodeBase
	Name       string
	TypeName   string
	IsBorrowed bool
	IsReceiver bool
}

func NewParameterNode(name, typeName string, isBorrowed, isReceiver bool, rg Range) *ParameterNode {
	n := &ParameterNode{Name: name, TypeName: typeName, IsBorrowed: isBorrowed, IsReceiver: isReceiver}
	n.Rg = rg
	return n
}

func (n *ParameterNode) Kind() NodeKind    { return KindParameter }
func (n *ParameterNode) Children() []Node { return nil }
func (n *ParameterNode) Accept(v NodeVisitor) error { return v.VisitParameter(n) }

// FunctionDefinitionNode is a top-level function, optionally generic.
type FunctionDefinitionNode struct {
	NodeBase
	Name             string
	Parameters       []*ParameterNode
	ReturnTypeName   string
	ReturnIsArray    bool
	Body             *ScopeNode
	TypeParams       []string
	TypeConstraints  map[string]string // type param name -> constraint union string
}

func NewFunctionDefinitionNode(name string, params []*ParameterNode, returnType string, returnIsArray bool, body *ScopeNode, rg Range) *FunctionDefinitionNode {
	n := &FunctionDefinitionNode{Name: name, ReturnTypeName: returnType, ReturnIsArray: returnIsArray}
	n.Rg = rg
	for _, p := range params {
		appendChild(n, p)
	}
	n.Parameters = params
	n.Body = appendChild(n, body).(*ScopeNode)
	return n
}

func (n *FunctionDefinitionNode) Kind() NodeKind { return KindFunctionDefinition }

func (n *FunctionDefinitionNode) Children() []Node {
	children := make([]Node, 0, len(n.Parameters)+1)
	for _, p := range n.Parameters {
		children = append(children, p)
	}
	return append(children, n.Body)
}

func (n *FunctionDefinitionNode) Accept(v NodeVisitor) error { return v.VisitFunctionDefinition(n) }

// FunctionCallNode is `callee(args)` or `callee<TypeArgs>(args)`.
type FunctionCallNode struct {
	NodeBase
	Callee    string
	Arguments []Node
	TypeArgs  []string
}

func NewFunctionCallNode(callee string, args []Node, rg Range) *FunctionCallNode {
	n := &FunctionCallNode{Callee: callee}
	n.Rg = rg
	n.Arguments = appendChildren(n, args)
	return n
}

func (n *FunctionCallNode) Kind() NodeKind    { return KindFunctionCall }
func (n *FunctionCallNode) Children() []Node { return n.Arguments }
func (n *FunctionCallNode) Accept(v NodeVisitor) error { return v.VisitFunctionCall(n) }

// ReturnStatementNode is `return [expr];`.
type ReturnStatementNode struct {
	NodeBase
	Value Node // nil for a bare `return;`
}

func NewReturnStatementNode(value Node, rg Range) *ReturnStatementNode {
	n := &ReturnStatementNode{}
	n.Rg = rg
	if value != nil {
		n.Value = appendChild(n, value)
	}
	return n
}

func (n *ReturnStatementNode) Kind() NodeKind { return KindReturnStatement }

func (n *ReturnStatementNode) Children() []Node {
	if n.Value == nil {
		return nil
	}
	return []Node{n.Value}
}

func (n *ReturnStatementNode) Accept(v NodeVisitor) error { return v.VisitReturnStatement(n) }

// IfStatementNode is `if (cond) then [else elseBranch]`. elseBranch
// may be a *ScopeNode or another *IfStatementNode (else-if chaining).
type IfStatementNode struct {
	NodeBase
	Condition Node
	Then      *ScopeNode
	Else      Node
}

func NewIfStatementNode(cond Node, then *ScopeNode, els Node, rg Range) *IfStatementNode {
	n := &IfStatementNode{}
	n.Rg = rg
	n.Condition = appendChild(n, cond)
	n.Then = appendChild(n, then).(*ScopeNode)
	if els != nil {
		n.Else = appendChild(n, els)
	}
	return n
}

func (n *IfStatementNode) Kind() NodeKind { return KindIfStatement }

func (n *IfStatementNode) Children() []Node {
	children := []Node{n.Condition, n.Then}
	if n.Else != nil {
		children = append(children, n.Else)
	}
	return children
}

func (n *IfStatementNode) Accept(v NodeVisitor) error { return v.VisitIfStatement(n) }

// WhileStatementNode is `while (cond) body`.
type WhileStatementNode struct {
	NodeBase
	Condition Node
	Body      *ScopeNode
}

func NewWhileStatementNode(cond Node, body *ScopeNode, rg Range) *WhileStatementNode {
	n := &WhileStatementNode{}
	n.Rg = rg
	n.Condition = appendChild(n, cond)
	n.Body = appendChild(n, body).(*ScopeNode)
	return n
}

func (n *WhileStatementNode) Kind() NodeKind    { return KindWhileStatement }
func (n *WhileStatementNode) Children() []Node { return []Node{n.Condition, n.Body} }
func (n *WhileStatementNode) Accept(v NodeVisitor) error { return v.VisitWhileStatement(n) }

// BreakStatementNode is `break;`.
type BreakStatementNode struct{ NodeBase }

func NewBreakStatementNode(rg Range) *BreakStatementNode {
	n := &BreakStatementNode{}
	n.Rg = rg
	return n
}

func (n *BreakStatementNode) Kind() NodeKind    { return KindBreakStatement }
func (n *BreakStatementNode) Children() []Node { return nil }
func (n *BreakStatementNode) Accept(v NodeVisitor) error { return v.VisitBreakStatement(n) }

// ContinueStatementNode is `continue;`.
type ContinueStatementNode struct{ NodeBase }

func NewContinueStatementNode(rg Range) *ContinueStatementNode {
	n := &ContinueStatementNode{}
	n.Rg = rg
	return n
}

func (n *ContinueStatementNode) Kind() NodeKind    { return KindContinueStatement }
func (n *ContinueStatementNode) Children() []Node { return nil }
func (n *ContinueStatementNode) Accept(v NodeVisitor) error { return v.VisitContinueStatement(n) }

// ArrayLiteralNode is `[e, e, ...]`.
type ArrayLiteralNode struct {
	NodeBase
	Elements []Node
}

func NewArrayLiteralNode(elements []Node, rg Range) *ArrayLiteralNode {
	n := &ArrayLiteralNode{}
	n.Rg = rg
	n.Elements = appendChildren(n, elements)
	return n
}

func (n *ArrayLiteralNode) Kind() NodeKind    { return KindArrayLiteral }
func (n *ArrayLiteralNode) Children() []Node { return n.Elements }
func (n *ArrayLiteralNode) Accept(v NodeVisitor) error { return v.VisitArrayLiteral(n) }

// ArrayAccessNode is `arr[index]`.
type ArrayAccessNode struct {
	NodeBase
	Array Node
	Index Node
}

func NewArrayAccessNode(array, index Node, rg Range) *ArrayAccessNode {
	n := &ArrayAccessNode{}
	n.Rg = rg
	n.Array = appendChild(n, array)
	n.Index = appendChild(n, index)
	return n
}

func (n *ArrayAccessNode) Kind() NodeKind    { return KindArrayAccess }
func (n *ArrayAccessNode) Children() []Node { return []Node{n.Array, n.Index} }
func (n *ArrayAccessNode) Accept(v NodeVisitor) error { return v.VisitArrayAccess(n) }

// MethodCallNode is `receiver.method(args)`.
type MethodCallNode struct {
	NodeBase
	Receiver  Node
	Method    string
	Arguments []Node
}

func NewMethodCallNode(receiver Node, method string, args []Node, rg Range) *MethodCallNode {
	n := &MethodCallNode{Method: method}
	n.Rg = rg
	n.Receiver = appendChild(n, receiver)
	n.Arguments = appendChildren(n, args)
	return n
}

func (n *MethodCallNode) Kind() NodeKind { return KindMethodCall }

func (n *MethodCallNode) Children() []Node {
	return append([]Node{n.Receiver}, n.Arguments...)
}

func (n *MethodCallNode) Accept(v NodeVisitor) error { return v.VisitMethodCall(n) }

// TypeMethodCallNode is a call on a type name directly: a builtin
// type-constructor call like `int32(x)`.
type TypeMethodCallNode struct {
	NodeBase
	TypeName  string
	Method    string
	Arguments []Node
}

func NewTypeMethodCallNode(typeName, method string, args []Node, rg Range) *TypeMethodCallNode {
	n := &TypeMethodCallNode{TypeName: typeName, Method: method}
	n.Rg = rg
	n.Arguments = appendChildren(n, args)
	return n
}

func (n *TypeMethodCallNode) Kind() NodeKind    { return KindTypeMethodCall }
func (n *TypeMethodCallNode) Children() []Node { return n.Arguments }
func (n *TypeMethodCallNode) Accept(v NodeVisitor) error { return v.VisitTypeMethodCall(n) }

// ConstructorCallNode is `new ClassName(args)`.
type ConstructorCallNode struct {
	NodeBase
	ClassName string
	Arguments []Node
}

func NewConstructorCallNode(className string, args []Node, rg Range) *ConstructorCallNode {
	n := &ConstructorCallNode{ClassName: className}
	n.Rg = rg
	n.Arguments = appendChildren(n, args)
	return n
}

func (n *ConstructorCallNode) Kind() NodeKind    { return KindConstructorCall }
func (n *ConstructorCallNode) Children() []Node { return n.Arguments }
func (n *ConstructorCallNode) Accept(v NodeVisitor) error { return v.VisitConstructorCall(n) }

// SuperCallNode is `this.super(args)`, lowered from within a
// constructor body.
type SuperCallNode struct {
	NodeBase
	Arguments []Node
}

func NewSuperCallNode(args []Node, rg Range) *SuperCallNode {
	n := &SuperCallNode{}
	n.Rg = rg
	n.Arguments = appendChildren(n, args)
	return n
}

func (n *SuperCallNode) Kind() NodeKind    { return KindSuperCall }
func (n *SuperCallNode) Children() []Node { return n.Arguments }
func (n *SuperCallNode) Accept(v NodeVisitor) error { return v.VisitSuperCall(n) }

// FieldAccessNode is `receiver.field`.
type FieldAccessNode struct {
	NodeBase
	Receiver Node
	Field    string
}

func NewFieldAccessNode(receiver Node, field string, rg Range) *FieldAccessNode {
	n := &FieldAccessNode{Field: field}
	n.Rg = rg
	n.Receiver = appendChild(n, receiver)
	return n
}

func (n *FieldAccessNode) Kind() NodeKind    { return KindFieldAccess }
func (n *FieldAccessNode) Children() []Node { return []Node{n.Receiver} }
func (n *FieldAccessNode) Accept(v NodeVisitor) error { return v.VisitFieldAccess(n) }

// ClassFieldNode is `<Type> <name>;` inside a class body.
type ClassFieldNode struct {
	NodeBase
	Name     string
	TypeName string
}

func NewClassFieldNode(name, typeName string, rg Range) *ClassFieldNode {
	n := &ClassFieldNode{Name: name, TypeName: typeName}
	n.Rg = rg
	return n
}

func (n *ClassFieldNode) Kind() NodeKind    { return KindClassField }
func (n *ClassFieldNode) Children() []Node { return nil }
func (n *ClassFieldNode) Accept(v NodeVisitor) error { return v.VisitClassField(n) }

// ClassMethodDefinitionNode is a method (or constructor) defined
// inside a class body.
type ClassMethodDefinitionNode struct {
	NodeBase
	Name               string
	ClassName          string
	IsConstructor      bool
	Parameters         []*ParameterNode
	ReturnTypeName     string
	ReturnIsArray      bool
	Body               *ScopeNode
	IsBorrowedReceiver bool
}

func NewClassMethodDefinitionNode(name, className string, isCtor bool, params []*ParameterNode, returnType string, body *ScopeNode, rg Range) *ClassMethodDefinitionNode {
	n := &ClassMethodDefinitionNode{
		Name: name, ClassName: className, IsConstructor: isCtor, ReturnTypeName: returnType,
	}
	n.Rg = rg
	for _, p := range params {
		appendChild(n, p)
	}
	n.Parameters = params
	n.Body = appendChild(n, body).(*ScopeNode)
	return n
}

func (n *ClassMethodDefinitionNode) Kind() NodeKind { return KindClassMethodDefinition }

func (n *ClassMethodDefinitionNode) Children() []Node {
	children := make([]Node, 0, len(n.Parameters)+1)
	for _, p := range n.Parameters {
		children = append(children, p)
	}
	return append(children, n.Body)
}

func (n *ClassMethodDefinitionNode) Accept(v NodeVisitor) error {
	return v.VisitClassMethodDefinition(n)
}

// DeepCopyForClass returns a structural copy of this method with its
// receiver's VarType rebound to newClassName, for inheritance
// materialisation. Parent back-references are rebuilt for the copy,
// never shared with the base class's original method.
func (n *ClassMethodDefinitionNode) DeepCopyForClass(newClassName string) *ClassMethodDefinitionNode {
	params := make([]*ParameterNode, len(n.Parameters))
	for i, p := range n.Parameters {
		cp := *p
		if cp.IsReceiver {
			cp.TypeName = newClassName
		}
		params[i] = &cp
	}
	bodyCopy := deepCopyScope(n.Body)
	copied := NewClassMethodDefinitionNode(n.Name, newClassName, n.IsConstructor, params, n.ReturnTypeName, bodyCopy, n.Rg)
	copied.ReturnIsArray = n.ReturnIsArray
	copied.IsBorrowedReceiver = n.IsBorrowedReceiver
	return copied
}

// deepCopyScope is a conservative structural clone sufficient for
// inherited method bodies: simple statements are value-copied and
// re-parented; compound children are cloned recursively.
func deepCopyScope(s *ScopeNode) *ScopeNode {
	if s == nil {
		return nil
	}
	statements := make([]Node, len(s.Statements))
	copy(statements, s.Statements)
	cp := &ScopeNode{}
	cp.Rg = s.Rg
	cp.Statements = appendChildren(cp, statements)
	return cp
}

// ClassDefinitionNode is `class C [from Base] { ... }`.
type ClassDefinitionNode struct {
	NodeBase
	Name       string
	BaseClass  string
	IsCopyable bool
	Fields     []*ClassFieldNode
	Methods    []*ClassMethodDefinitionNode
}

func NewClassDefinitionNode(name, base string, fields []*ClassFieldNode, methods []*ClassMethodDefinitionNode, rg Range) *ClassDefinitionNode {
	n := &ClassDefinitionNode{Name: name, BaseClass: base}
	n.Rg = rg
	for _, f := range fields {
		appendChild(n, f)
	}
	for _, m := range methods {
		appendChild(n, m)
	}
	n.Fields = fields
	n.Methods = methods
	return n
}

func (n *ClassDefinitionNode) Kind() NodeKind { return KindClassDefinition }

func (n *ClassDefinitionNode) Children() []Node {
	children := make([]Node, 0, len(n.Fields)+len(n.Methods))
	for _, f := range n.Fields {
		children = append(children, f)
	}
	for _, m := range n.Methods {
		children = append(children, m)
	}
	return children
}

func (n *ClassDefinitionNode) Accept(v NodeVisitor) error { return v.VisitClassDefinition(n) }

// PrependField inserts an inherited field at the head of Fields.
// Erroring on name conflicts is the caller's job; this only performs
// the mechanical insertion.
func (n *ClassDefinitionNode) PrependField(f *ClassFieldNode) {
	appendChild(n, f)
	n.Fields = append([]*ClassFieldNode{f}, n.Fields...)
}

// HasMethod reports whether the class already declares a method with
// the given name (used to decide override-vs-inherit).
func (n *ClassDefinitionNode) HasMethod(name string) bool {
	for _, m := range n.Methods {
		if m.Name == name {
			return true
		}
	}
	return false
}

// AddInheritedMethod appends an inherited method unless a same-named
// method is already present (derived overrides win).
func (n *ClassDefinitionNode) AddInheritedMethod(m *ClassMethodDefinitionNode) {
	if n.HasMethod(m.Name) {
		return
	}
	appendChild(n, m)
	n.Methods = append(n.Methods, m)
}

// ImportStatementNode is a top-level `import ...`.
type ImportStatementNode struct {
	NodeBase
	ModulePath string
	ImportKind ImportKind
	Alias      string
	Symbols    []string
}

func NewImportStatementNode(modulePath string, kind ImportKind, alias string, symbols []string, rg Range) *ImportStatementNode {
	n := &ImportStatementNode{ModulePath: modulePath, ImportKind: kind, Alias: alias, Symbols: symbols}
	n.Rg = rg
	return n
}

func (n *ImportStatementNode) Kind() NodeKind    { return KindImportStatement }
func (n *ImportStatementNode) Children() []Node { return nil }
func (n *ImportStatementNode) Accept(v NodeVisitor) error { return v.VisitImportStatement(n) }

// DirectiveNode is `directive <name> [, arg]*;`.
type DirectiveNode struct {
	NodeBase
	Name string
	Args []string
}

func NewDirectiveNode(name string, args []string, rg Range) *DirectiveNode {
	n := &DirectiveNode{Name: name, Args: args}
	n.Rg = rg
	return n
}

func (n *DirectiveNode) Kind() NodeKind    { return KindDirective }
func (n *DirectiveNode) Children() []Node { return nil }
func (n *DirectiveNode) Accept(v NodeVisitor) error { return v.VisitDirective(n) }
