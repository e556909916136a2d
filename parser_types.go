package firescript

// isTypeToken reports whether the current token can start a type: a
// built-in type keyword, a registered class name, or a name currently
// listed as a generic type parameter.
func (p *Parser) isTypeToken() bool {
	tok := p.peek()
	if tok.IsType() {
		return true
	}
	if tok.Kind != TokenIdentifier {
		return false
	}
	if p.Registries.UserTypes[tok.Lexeme] {
		return true
	}
	return p.isCurrentTypeParam(tok.Lexeme)
}

func (p *Parser) isCurrentTypeParam(name string) bool {
	for i := len(p.currentTypeParams) - 1; i >= 0; i-- {
		if p.currentTypeParams[i][name] {
			return true
		}
	}
	return false
}

func (p *Parser) pushTypeParams(names []string) {
	set := map[string]bool{}
	for _, n := range names {
		set[n] = true
	}
	p.currentTypeParams = append(p.currentTypeParams, set)
}

func (p *Parser) popTypeParams() {
	p.currentTypeParams = p.currentTypeParams[:len(p.currentTypeParams)-1]
}

// parseType consumes a type token and an optional `[]` suffix,
// returning the type name and whether it is an array type. The array
// suffix binds to the preceding type keyword exactly once.
func (p *Parser) parseType() (string, bool) {
	tok := p.peek()
	var name string
	if tok.IsType() {
		name = typeKeywords[tok.Kind]
		p.advance()
	} else if tok.Kind == TokenIdentifier && (p.Registries.UserTypes[tok.Lexeme] || p.isCurrentTypeParam(tok.Lexeme)) {
		name = tok.Lexeme
		p.advance()
	} else {
		p.errorf(tok.SourceIndex, "expected a type but found %q", tok.Lexeme)
		p.advance()
		return tok.Lexeme, false
	}

	isArray := false
	if p.check(TokenLBracket) && p.peekAt(1).Kind == TokenRBracket {
		p.advance()
		p.advance()
		isArray = true
	}
	return name, isArray
}
