package firescript

// NodeKind is the closed enumeration of syntax tree node kinds. Each
// kind has its own Go struct (see ast_nodes.go); Kind exists for quick
// dispatch in printers and tests without a type switch.
type NodeKind int

const (
	KindRoot NodeKind = iota
	KindScope
	KindVariableDeclaration
	KindVariableAssignment
	KindCompoundAssignment
	KindAssignment
	KindBinaryExpression
	KindUnaryExpression
	KindEqualityExpression
	KindRelationalExpression
	KindCastExpression
	KindLiteral
	KindIdentifier
	KindFunctionDefinition
	KindFunctionCall
	KindParameter
	KindReturnStatement
	KindIfStatement
	KindWhileStatement
	KindBreakStatement
	KindContinueStatement
	KindArrayLiteral
	KindArrayAccess
	KindMethodCall
	KindTypeMethodCall
	KindConstructorCall
	KindSuperCall
	KindFieldAccess
	KindClassDefinition
	KindClassField
	KindClassMethodDefinition
	KindImportStatement
	KindDirective
)

var nodeKindNames = [...]string{
	"Root", "Scope", "VariableDeclaration", "VariableAssignment",
	"CompoundAssignment", "Assignment", "BinaryExpression",
	"UnaryExpression", "EqualityExpression", "RelationalExpression",
	"CastExpression", "Literal", "Identifier", "FunctionDefinition",
	"FunctionCall", "Parameter", "ReturnStatement", "IfStatement",
	"WhileStatement", "BreakStatement", "ContinueStatement",
	"ArrayLiteral", "ArrayAccess", "MethodCall", "TypeMethodCall",
	"ConstructorCall", "SuperCall", "FieldAccess", "ClassDefinition",
	"ClassField", "ClassMethodDefinition", "ImportStatement", "Directive",
}

func (k NodeKind) String() string {
	if int(k) >= 0 && int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "Unknown"
}

// ValueCategory is the ownership category of a value.
type ValueCategory int

const (
	// CategoryNone marks nodes for which ownership doesn't apply
	// (statements, types that haven't been checked yet, etc).
	CategoryNone ValueCategory = iota
	CategoryCopyable
	CategoryOwned
)

func (c ValueCategory) String() string {
	switch c {
	case CategoryCopyable:
		return "Copyable"
	case CategoryOwned:
		return "Owned"
	default:
		return "-"
	}
}

// ImportKind discriminates the shape of an import statement.
type ImportKind int

const (
	ImportModule ImportKind = iota
	ImportSymbols
	ImportWildcard
	ImportExternal
)

// Node is the common interface implemented by every syntax tree node.
// Concrete kinds are distinct Go structs embedding NodeBase (see
// ast_nodes.go).
type Node interface {
	Kind() NodeKind
	Range() Range
	Parent() Node
	SetParent(Node)
	Children() []Node
	Accept(NodeVisitor) error
}

// NodeBase carries the attributes common to most node kinds: origin
// token, source range, the type/ownership annotations later passes
// populate in place, and the parent back-reference set at append time.
type NodeBase struct {
	Tok    Token
	Rg     Range
	parent Node

	VarType       string
	IsArray       bool
	IsNullable    bool
	IsConst       bool
	ReturnType    string
	IsRefCounted  bool
	ValueCategory ValueCategory
}

func (b *NodeBase) Range() Range     { return b.Rg }
func (b *NodeBase) Parent() Node     { return b.parent }
func (b *NodeBase) SetParent(p Node) { b.parent = p }

// appendChild sets the child's parent pointer to owner. Every
// constructor that takes children must route them through this so no
// node ever ends up with a nil child or a stale parent pointer.
func appendChild(owner Node, child Node) Node {
	if child == nil {
		panic("firescript: Node constructor rejects nil children")
	}
	child.SetParent(owner)
	return child
}

func appendChildren(owner Node, children []Node) []Node {
	for _, c := range children {
		if c == nil {
			panic("firescript: Node constructor rejects nil children")
		}
		c.SetParent(owner)
	}
	return children
}
