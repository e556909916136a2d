package firescript

// Expression grammar, tightest binding last:
//
//	equality -> relational -> additive -> multiplicative -> unary -> cast -> postfix -> primary
//
// A postfix `as <type>` binds tighter than any binary operator, so it
// is parsed as part of the unary/cast layer, immediately around the
// postfix chain.

func (p *Parser) parseExpression() Node {
	return p.parseEquality()
}

func (p *Parser) parseEquality() Node {
	left := p.parseRelational()
	for p.check(TokenEqual) || p.check(TokenNotEqual) {
		op := p.advance()
		right := p.parseRelational()
		left = NewEqualityExpressionNode(op.Lexeme, left, right, spanNodes(left, right))
	}
	return left
}

func (p *Parser) parseRelational() Node {
	left := p.parseAdditive()
	for p.check(TokenLess) || p.check(TokenGreater) || p.check(TokenLessEqual) || p.check(TokenGreaterEqual) {
		op := p.advance()
		right := p.parseAdditive()
		left = NewRelationalExpressionNode(op.Lexeme, left, right, spanNodes(left, right))
	}
	return left
}

func (p *Parser) parseAdditive() Node {
	left := p.parseMultiplicative()
	for p.check(TokenPlus) || p.check(TokenMinus) {
		op := p.advance()
		right := p.parseMultiplicative()
		left = NewBinaryExpressionNode(op.Lexeme, left, right, spanNodes(left, right))
	}
	return left
}

func (p *Parser) parseMultiplicative() Node {
	left := p.parseUnary()
	for p.check(TokenStar) || p.check(TokenSlash) || p.check(TokenPercent) || p.check(TokenPower) {
		op := p.advance()
		right := p.parseUnary()
		left = NewBinaryExpressionNode(op.Lexeme, left, right, spanNodes(left, right))
	}
	return left
}

func (p *Parser) parseUnary() Node {
	if p.check(TokenMinus) || p.check(TokenNot) {
		op := p.advance()
		operand := p.parseUnary()
		return NewUnaryExpressionNode(op.Lexeme, operand, false, NewRange(op.SourceIndex, operand.Range().End))
	}
	return p.parseCast()
}

// parseCast wraps the postfix chain with zero or more `as <type>` casts
// (left-associative: `x as int32 as float64` casts twice).
func (p *Parser) parseCast() Node {
	expr := p.parsePostfix()
	for p.check(TokenAs) {
		asTok := p.advance()
		targetType, isArray := p.parseType()
		expr = NewCastExpressionNode(expr, targetType, isArray, NewRange(expr.Range().Start, asTok.SourceIndex))
	}
	return expr
}

// parsePostfix handles `[index]`, `.field`, `.method(args)`, `(args)`
// chains off a primary expression.
func (p *Parser) parsePostfix() Node {
	expr := p.parsePrimary()
	for {
		switch {
		case p.check(TokenLBracket):
			lb := p.advance()
			idx := p.parseExpression()
			p.expect(TokenRBracket, "array access")
			expr = NewArrayAccessNode(expr, idx, NewRange(expr.Range().Start, lb.SourceIndex))

		case p.check(TokenDot):
			p.advance()
			if p.check(TokenSuper) {
				superTok := p.advance()
				p.expect(TokenLParen, "super call")
				args := p.parseArgList()
				p.expect(TokenRParen, "super call")
				if len(p.classStack) == 0 || !p.classStack[len(p.classStack)-1].inCtor {
					p.errorf(superTok.SourceIndex, "super() may only be called from within a constructor")
				}
				expr = NewSuperCallNode(args, NewRange(expr.Range().Start, superTok.SourceIndex))
				continue
			}
			nameTok, _ := p.expect(TokenIdentifier, "field or method access")
			if p.check(TokenLParen) {
				p.advance()
				args := p.parseArgList()
				p.expect(TokenRParen, "method call")
				expr = NewMethodCallNode(expr, nameTok.Lexeme, args, NewRange(expr.Range().Start, nameTok.SourceIndex))
			} else {
				expr = NewFieldAccessNode(expr, nameTok.Lexeme, NewRange(expr.Range().Start, nameTok.SourceIndex))
			}

		case p.check(TokenLParen):
			if id, ok := expr.(*IdentifierNode); ok {
				p.advance()
				args := p.parseArgList()
				p.expect(TokenRParen, "function call")
				expr = NewFunctionCallNode(id.Name, args, NewRange(id.Rg.Start, id.Rg.End))
			} else {
				return expr
			}

		default:
			return expr
		}
	}
}

func (p *Parser) parseArgList() []Node {
	var args []Node
	if p.check(TokenRParen) {
		return args
	}
	args = append(args, p.parseExpression())
	for p.match(TokenComma) {
		args = append(args, p.parseExpression())
	}
	return args
}

func (p *Parser) parsePrimary() Node {
	tok := p.peek()

	switch tok.Kind {
	case TokenIntegerLiteral:
		p.advance()
		return NewLiteralNode(LiteralInt, tok.Lexeme, NewRange(tok.SourceIndex, tok.SourceIndex+len(tok.Lexeme)))
	case TokenFloatLiteral:
		p.advance()
		return NewLiteralNode(LiteralFloat, tok.Lexeme, NewRange(tok.SourceIndex, tok.SourceIndex+len(tok.Lexeme)))
	case TokenStringLiteral:
		p.advance()
		return NewLiteralNode(LiteralString, tok.Lexeme, NewRange(tok.SourceIndex, tok.SourceIndex+len(tok.Lexeme)))
	case TokenBoolLiteral:
		p.advance()
		return NewLiteralNode(LiteralBool, tok.Lexeme, NewRange(tok.SourceIndex, tok.SourceIndex+len(tok.Lexeme)))
	case TokenCharLiteral:
		p.advance()
		return NewLiteralNode(LiteralChar, tok.Lexeme, NewRange(tok.SourceIndex, tok.SourceIndex+len(tok.Lexeme)))
	case TokenNullLiteral:
		p.advance()
		return NewLiteralNode(LiteralNull, tok.Lexeme, NewRange(tok.SourceIndex, tok.SourceIndex+len(tok.Lexeme)))

	case TokenLParen:
		p.advance()
		e := p.parseExpression()
		p.expect(TokenRParen, "parenthesised expression")
		return e

	case TokenLBracket:
		return p.parseArrayLiteral()

	case TokenNew:
		return p.parseConstructorCall()

	case TokenThis:
		p.advance()
		return NewIdentifierNode("this", NewRange(tok.SourceIndex, tok.SourceIndex+4))

	case TokenIdentifier:
		if p.Registries.GenericFunctions[tok.Lexeme] != nil && p.peekAt(1).Kind == TokenLess {
			if node, ok := p.tryParseGenericCall(); ok {
				return node
			}
		}
		p.advance()
		return NewIdentifierNode(tok.Lexeme, NewRange(tok.SourceIndex, tok.SourceIndex+len(tok.Lexeme)))

	default:
		if tok.IsType() {
			return p.parseTypeConstructorOrValue()
		}
		p.errorf(tok.SourceIndex, "unexpected token %q in expression", tok.Lexeme)
		p.advance()
		return NewLiteralNode(LiteralNull, "null", NewRange(tok.SourceIndex, tok.SourceIndex))
	}
}

// parseTypeConstructorOrValue handles `int32(x)`-style numeric
// constructor calls.
func (p *Parser) parseTypeConstructorOrValue() Node {
	tok := p.advance()
	name := typeKeywords[tok.Kind]
	if !p.check(TokenLParen) {
		p.errorf(tok.SourceIndex, "expected constructor call after type %q", name)
		return NewLiteralNode(LiteralNull, "null", NewRange(tok.SourceIndex, tok.SourceIndex))
	}
	p.advance()
	args := p.parseArgList()
	p.expect(TokenRParen, "type constructor call")
	return NewTypeMethodCallNode(name, "new", args, NewRange(tok.SourceIndex, tok.SourceIndex+len(name)))
}

func (p *Parser) parseArrayLiteral() Node {
	start := p.advance() // '['
	var elements []Node
	if !p.check(TokenRBracket) {
		elements = append(elements, p.parseExpression())
		for p.match(TokenComma) {
			elements = append(elements, p.parseExpression())
		}
	}
	p.expect(TokenRBracket, "array literal")
	return NewArrayLiteralNode(elements, NewRange(start.SourceIndex, p.peek().SourceIndex))
}

func (p *Parser) parseConstructorCall() Node {
	start := p.advance() // 'new'
	nameTok, _ := p.expect(TokenIdentifier, "constructor call")
	p.expect(TokenLParen, "constructor call")
	args := p.parseArgList()
	p.expect(TokenRParen, "constructor call")
	return NewConstructorCallNode(nameTok.Lexeme, args, NewRange(start.SourceIndex, p.peek().SourceIndex))
}

func spanNodes(a, b Node) Range {
	return NewRange(a.Range().Start, b.Range().End)
}
