package firescript

// Parser is a recursive-descent / precedence-climbing parser over a
// token stream. It builds an annotated syntax tree and, in the same
// traversal, populates the module-wide Registries, then runs
// identifier resolution and type checking in place.
//
// Function and method definitions push their name onto productionStack
// while their body is parsed; no diagnostic reads it.
type Parser struct {
	tokens []Token
	pos    int

	source string
	lines  *LineIndex

	Diagnostics *DiagnosticList
	Registries  *Registries

	// deferUndefinedIdentifiers postpones "undefined identifier"
	// diagnostics when the file being parsed has imports, since the
	// module resolver may bring the name in later.
	deferUndefinedIdentifiers bool
	hasImports                bool
	deferredUndefined         []*IdentifierNode

	// classStack tracks (class, inCtor, base) while parsing a method
	// body, so `this.super(...)` can be recognised and so a bare
	// `this` parameter can be synthesised.
	classStack []classContext

	// classMethodNodes retains each class's own (non-inherited-yet)
	// method AST nodes, keyed by class name, so a later derived class
	// can deep-copy them for inheritance materialisation. Once a
	// class's inheritance is materialised, its full method list
	// (including its own inherited copies) replaces the entry, so
	// multi-level inheritance chains correctly.
	classMethodNodes map[string][]*ClassMethodDefinitionNode

	// currentTypeParams is pushed while parsing a generic function's
	// parameter list and body so its type parameter names are accepted
	// as type tokens.
	currentTypeParams []map[string]bool

	productionStack []string
}

type classContext struct {
	class  string
	inCtor bool
	base   string
}

// NewParser creates a Parser over source, pre-lexed into tokens.
// Comments are filtered out here since the parser never consults them.
func NewParser(source string) *Parser {
	lines := NewLineIndex([]byte(source))
	all := NewLexer(source).Tokenize()

	var kept []Token
	for _, t := range all {
		switch t.Kind {
		case TokenSingleLineComment, TokenMultiLineCommentStart, TokenMultiLineCommentEnd:
			continue
		}
		kept = append(kept, t)
	}

	return &Parser{
		tokens:      kept,
		source:      source,
		lines:       lines,
		Diagnostics:      NewDiagnosticList(lines),
		Registries:       NewRegistries(),
		classMethodNodes: map[string][]*ClassMethodDefinitionNode{},
	}
}

func (p *Parser) pushProduction(name string) { p.productionStack = append(p.productionStack, name) }
func (p *Parser) popProduction()             { p.productionStack = p.productionStack[:len(p.productionStack)-1] }

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF sentinel
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) match(kind TokenKind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

// expect consumes a token of the given kind, or records a syntax
// diagnostic and returns the current token unconsumed.
func (p *Parser) expect(kind TokenKind, context string) (Token, bool) {
	if p.check(kind) {
		return p.advance(), true
	}
	tok := p.peek()
	p.errorf(tok.SourceIndex, "expected %s in %s but found %q", kind, context, tok.Lexeme)
	return tok, false
}

func (p *Parser) errorf(offset int, format string, args ...any) {
	p.Diagnostics.Add(DiagnosticSyntax, offset, format, args...)
}

// synchronize skips tokens until a semicolon (consumed) or a brace
// boundary is reached.
func (p *Parser) synchronize() {
	depth := 0
	for !p.check(TokenEOF) {
		switch p.peek().Kind {
		case TokenSemicolon:
			p.advance()
			return
		case TokenLBrace:
			depth++
		case TokenRBrace:
			if depth == 0 {
				return
			}
			depth--
		}
		p.advance()
	}
}

// Parse parses a single file's token stream into a Root node,
// registering top-level declarations as it goes, then runs identifier
// resolution and type checking over the resulting tree.
func (p *Parser) Parse() *RootNode {
	root := NewRootNode(Range{Start: 0})

	p.hasImports = p.fileHasImports()
	p.deferUndefinedIdentifiers = p.hasImports

	for !p.check(TokenEOF) {
		stmt := p.parseTopLevelStatement()
		if stmt != nil {
			root.Append(stmt)
		}
	}
	root.Rg = NewRange(0, p.peek().SourceIndex)

	resolveIdentifiers(p, root)
	if !p.deferUndefinedIdentifiers {
		typeCheck(p, root)
	}
	return root
}

// fileHasImports peeks the raw token stream for an import keyword
// without consuming anything.
func (p *Parser) fileHasImports() bool {
	for _, t := range p.tokens {
		if t.Kind == TokenImport {
			return true
		}
	}
	return false
}

// MergedSymbol is the (type, is_array) pair the module resolver
// publishes for each merged top-level name.
type MergedSymbol struct {
	Type    string
	IsArray bool
}

// DischargeDeferred re-validates identifiers that were deferred because
// the file had imports. merged maps a name to its resolved (type,
// isArray); called by the module resolver after merge.
func (p *Parser) DischargeDeferred(root *RootNode, merged map[string]MergedSymbol) {
	for _, id := range p.deferredUndefined {
		sym, ok := merged[id.Name]
		if !ok {
			p.errorf(id.Rg.Start, "undefined identifier %q", id.Name)
			continue
		}
		id.VarType = sym.Type
		id.IsArray = sym.IsArray
	}
	p.deferredUndefined = nil
	typeCheck(p, root)
}
