package firescript

import "strings"

// parseTopLevelStatement parses a single top-level construct: imports,
// class definitions, and generic constraint alias declarations are
// legal only here; everything else, directives included, falls through
// to the shared statement grammar.
func (p *Parser) parseTopLevelStatement() Node {
	switch p.peek().Kind {
	case TokenImport:
		return p.parseImportStatement()
	case TokenClass:
		return p.parseClassDefinition()
	case TokenConstraintKw:
		p.parseConstraintAliasDeclaration()
		return nil
	default:
		return p.parseStatement()
	}
}

// parseStatement parses the statement grammar shared between top level
// and scope bodies.
func (p *Parser) parseStatement() Node {
	tok := p.peek()
	switch tok.Kind {
	case TokenImport:
		p.errorf(tok.SourceIndex, "import statements are only allowed at the top level")
		p.synchronize()
		return nil
	case TokenClass:
		p.errorf(tok.SourceIndex, "class definitions are only allowed at the top level")
		p.synchronize()
		return nil
	case TokenDirective:
		return p.parseDirectiveStatement()
	case TokenLBrace:
		return p.parseScope()
	case TokenIf:
		return p.parseIfStatement()
	case TokenWhile:
		return p.parseWhileStatement()
	case TokenBreak:
		p.advance()
		p.expect(TokenSemicolon, "break statement")
		return NewBreakStatementNode(NewRange(tok.SourceIndex, p.peek().SourceIndex))
	case TokenContinue:
		p.advance()
		p.expect(TokenSemicolon, "continue statement")
		return NewContinueStatementNode(NewRange(tok.SourceIndex, p.peek().SourceIndex))
	case TokenReturn:
		return p.parseReturnStatement()
	}

	// A generic function whose return type is one of its own type
	// parameters (`T max<T: ...>(T a, T b)`) starts with a name that is
	// not a type token yet.
	if tok.Kind == TokenIdentifier && !p.isTypeToken() && p.peekAt(1).Kind == TokenIdentifier && p.peekAt(2).Kind == TokenLess {
		p.advance()
		nameTok := p.advance()
		typeParams, constraints := p.parseGenericParams()
		return p.finishFunctionDefinition(tok, nameTok, tok.Lexeme, false, typeParams, constraints)
	}
	if p.startsTypedDeclaration() {
		return p.parseTypedStatement()
	}
	return p.parseExpressionOrAssignmentStatement()
}

func (p *Parser) startsTypedDeclaration() bool {
	if p.check(TokenNullable) || p.check(TokenConst) {
		return true
	}
	return p.isTypeToken()
}

// parseScope parses a brace-delimited block, used for bare scopes,
// function/method bodies, and if/while bodies.
func (p *Parser) parseScope() *ScopeNode {
	startTok, _ := p.expect(TokenLBrace, "scope")
	var statements []Node
	for !p.check(TokenRBrace) && !p.check(TokenEOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	p.expect(TokenRBrace, "scope")
	return NewScopeNode(statements, NewRange(startTok.SourceIndex, p.peek().SourceIndex))
}

func (p *Parser) parseIfStatement() Node {
	ifTok := p.advance()
	p.expect(TokenLParen, "if condition")
	cond := p.parseExpression()
	p.expect(TokenRParen, "if condition")
	then := p.parseScope()

	var els Node
	if p.match(TokenElse) {
		if p.check(TokenIf) {
			els = p.parseIfStatement()
		} else {
			els = p.parseScope()
		}
	}
	return NewIfStatementNode(cond, then, els, NewRange(ifTok.SourceIndex, p.peek().SourceIndex))
}

func (p *Parser) parseWhileStatement() Node {
	whileTok := p.advance()
	p.expect(TokenLParen, "while condition")
	cond := p.parseExpression()
	p.expect(TokenRParen, "while condition")
	body := p.parseScope()
	return NewWhileStatementNode(cond, body, NewRange(whileTok.SourceIndex, p.peek().SourceIndex))
}

func (p *Parser) parseReturnStatement() Node {
	retTok := p.advance()
	var value Node
	if !p.check(TokenSemicolon) {
		value = p.parseExpression()
	}
	p.expect(TokenSemicolon, "return statement")
	return NewReturnStatementNode(value, NewRange(retTok.SourceIndex, p.peek().SourceIndex))
}

func (p *Parser) parseDirectiveStatement() Node {
	dirTok := p.advance()
	nameTok, _ := p.expect(TokenIdentifier, "directive name")

	var args []string
	for p.match(TokenComma) {
		argTok, _ := p.expect(TokenIdentifier, "directive argument")
		args = append(args, argTok.Lexeme)
	}
	p.expect(TokenSemicolon, "directive")

	if !IsKnownDirective(nameTok.Lexeme) {
		p.errorf(nameTok.SourceIndex, "unknown directive %q", nameTok.Lexeme)
	}
	return NewDirectiveNode(nameTok.Lexeme, args, NewRange(dirTok.SourceIndex, p.peek().SourceIndex))
}

// parseConstraintAliasDeclaration parses `constraint Name = Type ["|"
// Type]* ;`, registering the already alias-expanded union under Name.
// This production has no tree representation: it only feeds the
// registry consulted while parsing later generic constraints.
func (p *Parser) parseConstraintAliasDeclaration() {
	p.advance() // 'constraint'
	nameTok, _ := p.expect(TokenIdentifier, "constraint alias name")
	p.expect(TokenAssign, "constraint alias declaration")
	union := p.parseConstraintUnion()
	p.expect(TokenSemicolon, "constraint alias declaration")
	p.Registries.ConstraintAliases[nameTok.Lexeme] = union
}

// parseTypedStatement parses `[nullable] [const] <Type>[[]] <name>`
// and then disambiguates a variable declaration from a (possibly
// generic) function definition by what follows the name.
func (p *Parser) parseTypedStatement() Node {
	startTok := p.peek()
	nullable := p.match(TokenNullable)
	isConst := p.match(TokenConst)
	typeName, isArray := p.parseType()
	nameTok, _ := p.expect(TokenIdentifier, "declaration")

	if p.check(TokenLess) {
		typeParams, constraints := p.parseGenericParams()
		return p.finishFunctionDefinition(startTok, nameTok, typeName, isArray, typeParams, constraints)
	}
	if p.check(TokenLParen) {
		return p.finishFunctionDefinition(startTok, nameTok, typeName, isArray, nil, nil)
	}

	p.expect(TokenAssign, "variable declaration")
	value := p.parseExpression()
	p.expect(TokenSemicolon, "variable declaration")

	decl := NewVariableDeclarationNode(nameTok.Lexeme, value, NewRange(startTok.SourceIndex, p.peek().SourceIndex))
	decl.VarType = typeName
	decl.IsArray = isArray
	decl.IsNullable = nullable
	decl.IsConst = isConst
	return decl
}

func (p *Parser) finishFunctionDefinition(startTok, nameTok Token, returnType string, returnIsArray bool, typeParams []string, constraints map[string]string) Node {
	if len(typeParams) > 0 {
		p.pushTypeParams(typeParams)
	}
	p.expect(TokenLParen, "function parameter list")
	params := p.parseParameterList()
	p.expect(TokenRParen, "function parameter list")

	p.pushProduction(nameTok.Lexeme)
	body := p.parseScope()
	p.popProduction()
	if len(typeParams) > 0 {
		p.popTypeParams()
	}

	fn := NewFunctionDefinitionNode(nameTok.Lexeme, params, returnType, returnIsArray, body, NewRange(startTok.SourceIndex, p.peek().SourceIndex))
	fn.TypeParams = typeParams
	fn.TypeConstraints = constraints

	sig := signatureFromParams(returnType, returnIsArray, params)
	if len(typeParams) > 0 {
		p.Registries.RegisterGenericFunction(nameTok.Lexeme, typeParams, constraints, sig)
	} else {
		p.Registries.RegisterFunction(nameTok.Lexeme, sig)
	}
	return fn
}

func (p *Parser) parseParameterList() []*ParameterNode {
	var params []*ParameterNode
	if p.check(TokenRParen) {
		return params
	}
	params = append(params, p.parseParameter())
	for p.match(TokenComma) {
		params = append(params, p.parseParameter())
	}
	return params
}

func (p *Parser) parseParameter() *ParameterNode {
	startTok := p.peek()
	borrowed := p.match(TokenAmpersand)
	typeName, isArray := p.parseType()
	nameTok, _ := p.expect(TokenIdentifier, "parameter")
	param := NewParameterNode(nameTok.Lexeme, typeName, borrowed, false, NewRange(startTok.SourceIndex, p.peek().SourceIndex))
	param.IsArray = isArray
	return param
}

func signatureFromParams(returnType string, returnIsArray bool, params []*ParameterNode) FunctionSignature {
	sig := FunctionSignature{ReturnType: returnType, ReturnIsArray: returnIsArray}
	for _, prm := range params {
		sig.ParamNames = append(sig.ParamNames, prm.Name)
		sig.ParamTypes = append(sig.ParamTypes, prm.TypeName)
		sig.ParamIsArray = append(sig.ParamIsArray, prm.IsArray)
		sig.ParamBorrowed = append(sig.ParamBorrowed, prm.IsBorrowed)
	}
	return sig
}

// parseExpressionOrAssignmentStatement parses the remaining statement
// forms that begin with an expression: assignment, compound
// assignment, increment/decrement, and bare call statements.
func (p *Parser) parseExpressionOrAssignmentStatement() Node {
	startTok := p.peek()
	expr := p.parsePostfix()

	switch {
	case p.check(TokenAssign):
		p.advance()
		value := p.parseExpression()
		p.expect(TokenSemicolon, "assignment")
		if id, ok := expr.(*IdentifierNode); ok {
			return NewVariableAssignmentNode(id.Name, value, NewRange(id.Rg.Start, p.peek().SourceIndex))
		}
		return NewAssignmentNode(expr, value, NewRange(expr.Range().Start, p.peek().SourceIndex))

	case isCompoundAssignToken(p.peek().Kind):
		opTok := p.advance()
		value := p.parseExpression()
		p.expect(TokenSemicolon, "compound assignment")
		return NewCompoundAssignmentNode(compoundOpSymbol(opTok.Kind), expr, value, NewRange(expr.Range().Start, p.peek().SourceIndex))

	case p.check(TokenIncrement) || p.check(TokenDecrement):
		opTok := p.advance()
		p.expect(TokenSemicolon, "increment/decrement statement")
		sym := "+="
		if opTok.Kind == TokenDecrement {
			sym = "-="
		}
		one := NewLiteralNode(LiteralInt, "1", NewRange(opTok.SourceIndex, opTok.SourceIndex+1))
		return NewCompoundAssignmentNode(sym, expr, one, NewRange(expr.Range().Start, p.peek().SourceIndex))

	default:
		switch expr.(type) {
		case *FunctionCallNode, *MethodCallNode, *ConstructorCallNode, *SuperCallNode, *TypeMethodCallNode:
		default:
			p.errorf(startTok.SourceIndex, "unexpected expression used as a statement")
		}
		p.expect(TokenSemicolon, "expression statement")
		return expr
	}
}

func isCompoundAssignToken(k TokenKind) bool {
	switch k {
	case TokenPlusAssign, TokenMinusAssign, TokenStarAssign, TokenSlashAssign, TokenPercentAssign, TokenPowerAssign:
		return true
	}
	return false
}

func compoundOpSymbol(k TokenKind) string {
	switch k {
	case TokenPlusAssign:
		return "+="
	case TokenMinusAssign:
		return "-="
	case TokenStarAssign:
		return "*="
	case TokenSlashAssign:
		return "/="
	case TokenPercentAssign:
		return "%="
	case TokenPowerAssign:
		return "**="
	}
	return "="
}

// parseImportStatement parses the six wire-level import forms:
// whole-module, aliased-module, single-symbol, symbol-list, wildcard,
// and external-package (always an error), plus the `@firescript/...`
// first-party stdlib rewrite.
//
// When a trailing `as Alias` follows a multi-segment dotted path with
// no `.*`/`.{...}` marker, the last segment is treated as the imported
// symbol name and the preceding segments as the module path; a
// single-segment path with `as` is a whole-module alias instead. This
// resolves the form's inherent ambiguity between "aliased module" and
// "aliased symbol".
//
// The trailing semicolon of these forms is optional.
func (p *Parser) parseImportStatement() Node {
	importTok := p.advance()

	if p.check(TokenAt) {
		return p.parseExternalOrStdlibImport(importTok)
	}

	var segments []string
	firstTok, _ := p.expect(TokenIdentifier, "import path")
	segments = append(segments, firstTok.Lexeme)
	for p.check(TokenDot) && p.peekAt(1).Kind == TokenIdentifier {
		p.advance()
		seg := p.advance()
		segments = append(segments, seg.Lexeme)
	}
	dotted := strings.Join(segments, ".")

	switch {
	case p.check(TokenDot) && p.peekAt(1).Kind == TokenStar:
		p.advance()
		p.advance()
		p.match(TokenSemicolon)
		return NewImportStatementNode(dotted, ImportWildcard, "", nil, NewRange(importTok.SourceIndex, p.peek().SourceIndex))

	case p.check(TokenDot) && p.peekAt(1).Kind == TokenLBrace:
		p.advance()
		p.advance()
		symbols := p.parseImportSymbolList()
		p.expect(TokenRBrace, "import symbol list")
		p.match(TokenSemicolon)
		return NewImportStatementNode(dotted, ImportSymbols, "", symbols, NewRange(importTok.SourceIndex, p.peek().SourceIndex))

	case p.match(TokenAs):
		aliasTok, _ := p.expect(TokenIdentifier, "import alias")
		p.match(TokenSemicolon)
		if len(segments) > 1 {
			modulePath := strings.Join(segments[:len(segments)-1], ".")
			symbol := segments[len(segments)-1]
			return NewImportStatementNode(modulePath, ImportSymbols, aliasTok.Lexeme, []string{symbol}, NewRange(importTok.SourceIndex, p.peek().SourceIndex))
		}
		return NewImportStatementNode(dotted, ImportModule, aliasTok.Lexeme, nil, NewRange(importTok.SourceIndex, p.peek().SourceIndex))

	default:
		p.match(TokenSemicolon)
		return NewImportStatementNode(dotted, ImportModule, "", nil, NewRange(importTok.SourceIndex, p.peek().SourceIndex))
	}
}

func (p *Parser) parseImportSymbolList() []string {
	var symbols []string
	for {
		nameTok, _ := p.expect(TokenIdentifier, "imported symbol name")
		entry := nameTok.Lexeme
		if p.match(TokenAs) {
			aliasTok, _ := p.expect(TokenIdentifier, "import alias")
			entry += " as " + aliasTok.Lexeme
		}
		symbols = append(symbols, entry)
		if p.match(TokenComma) {
			continue
		}
		break
	}
	return symbols
}

func (p *Parser) parseExternalOrStdlibImport(importTok Token) Node {
	atTok := p.advance()
	identTok, _ := p.expect(TokenIdentifier, "import path")

	if identTok.Lexeme == "firescript" && p.check(TokenSlash) {
		segments := []string{"firescript"}
		for p.match(TokenSlash) {
			seg, _ := p.expect(TokenIdentifier, "import path")
			segments = append(segments, seg.Lexeme)
		}
		dotted := strings.Join(segments, ".")
		p.expect(TokenSemicolon, "import statement")
		return NewImportStatementNode(dotted, ImportModule, "", nil, NewRange(atTok.SourceIndex, p.peek().SourceIndex))
	}

	var sb strings.Builder
	sb.WriteString("@" + identTok.Lexeme)
	for !p.check(TokenSemicolon) && !p.check(TokenEOF) {
		sb.WriteString(p.advance().Lexeme)
	}
	p.match(TokenSemicolon)
	p.errorf(importTok.SourceIndex, "external package import %q is not supported", sb.String())
	return nil
}
