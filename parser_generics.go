package firescript

// Generic functions and generic calls.
//
// `f<T1,T2>(args)` is only recognised as a generic call when `f` is
// already a known generic function; otherwise `<` at that position is
// the less-than operator, so recognition happens speculatively with a
// token-position rollback on failure.

// parseGenericParams parses `<T [: constraint], ...>` following a
// function name, returning the ordered parameter names and their
// (already alias-expanded) constraint unions.
func (p *Parser) parseGenericParams() ([]string, map[string]string) {
	p.expect(TokenLess, "generic type parameter list")

	var names []string
	constraints := map[string]string{}

	for {
		nameTok, _ := p.expect(TokenIdentifier, "generic type parameter")
		names = append(names, nameTok.Lexeme)
		if p.match(TokenColon) {
			constraints[nameTok.Lexeme] = p.parseConstraintUnion()
		}
		if p.match(TokenComma) {
			continue
		}
		break
	}
	p.expect(TokenGreater, "generic type parameter list")
	return names, constraints
}

// parseConstraintUnion parses a `|`-separated list of built-in types,
// class names, or constraint alias names, expanding aliases
// recursively and inline.
func (p *Parser) parseConstraintUnion() string {
	var atoms []string
	atoms = append(atoms, p.parseConstraintAtom())
	for p.match(TokenPipe) {
		atoms = append(atoms, p.parseConstraintAtom())
	}

	expanded := map[string]bool{}
	var out []string
	for _, atom := range atoms {
		for _, t := range p.Registries.ExpandConstraint(atom) {
			if !expanded[t] {
				expanded[t] = true
				out = append(out, t)
			}
		}
	}
	joined := out[0]
	for _, t := range out[1:] {
		joined += "|" + t
	}
	return joined
}

func (p *Parser) parseConstraintAtom() string {
	tok := p.peek()
	if tok.IsType() {
		p.advance()
		return typeKeywords[tok.Kind]
	}
	if tok.Kind == TokenIdentifier {
		p.advance()
		return tok.Lexeme
	}
	p.errorf(tok.SourceIndex, "expected a type, interface, or constraint alias name but found %q", tok.Lexeme)
	p.advance()
	return tok.Lexeme
}

// tryParseGenericCall speculatively parses `<T1,T2>(args)` after an
// identifier already known to name a generic function, rolling back to
// `start` if the shape doesn't match (so `<` falls back to being
// treated as a comparison by the caller).
func (p *Parser) tryParseGenericCall() (Node, bool) {
	start := p.pos
	nameTok := p.advance() // identifier
	p.advance()            // '<'

	var typeArgs []string
	for {
		if !p.isTypeToken() {
			p.pos = start
			return nil, false
		}
		t, isArray := p.parseType()
		if isArray {
			t += "[]"
		}
		typeArgs = append(typeArgs, t)
		if p.match(TokenComma) {
			continue
		}
		break
	}

	if !p.check(TokenGreater) {
		p.pos = start
		return nil, false
	}
	p.advance()
	if !p.check(TokenLParen) {
		p.pos = start
		return nil, false
	}
	p.advance()
	args := p.parseArgList()
	p.expect(TokenRParen, "generic call")

	call := NewFunctionCallNode(nameTok.Lexeme, args, NewRange(nameTok.SourceIndex, p.peek().SourceIndex))
	call.TypeArgs = typeArgs
	return call, true
}

// inferGenericTypeArgs unifies a generic function's declared parameter
// types (each occurrence of a type parameter name treated as a
// variable) against the concrete argument types, returning the
// resolved binding per type parameter. A conflicting or missing
// binding is reported at callSite and returns ok=false.
func inferGenericTypeArgs(p *Parser, funcName string, typeParams []string, sig FunctionSignature, argTypes []string, callSite int) (map[string]string, bool) {
	bound := map[string]string{}
	isParam := map[string]bool{}
	for _, t := range typeParams {
		isParam[t] = true
	}

	ok := true
	for i, paramType := range sig.ParamTypes {
		if i >= len(argTypes) {
			break
		}
		if !isParam[paramType] {
			continue
		}
		argType := argTypes[i]
		if existing, seen := bound[paramType]; seen {
			if existing != argType {
				p.errorf(callSite, "conflicting inference for type parameter %q in call to %q: %q vs %q", paramType, funcName, existing, argType)
				ok = false
			}
			continue
		}
		bound[paramType] = argType
	}

	for _, t := range typeParams {
		if _, found := bound[t]; !found {
			p.errorf(callSite, "cannot infer type parameter %q in call to %q", t, funcName)
			ok = false
		}
	}
	return bound, ok
}
