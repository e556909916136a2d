package firescript

// Class definitions and inheritance materialisation.

func (p *Parser) parseClassDefinition() Node {
	startTok := p.advance() // 'class'
	nameTok, _ := p.expect(TokenIdentifier, "class name")

	base := ""
	if p.match(TokenFrom) {
		baseTok, _ := p.expect(TokenIdentifier, "base class name")
		base = baseTok.Lexeme
		if !p.Registries.UserTypes[base] {
			p.errorf(baseTok.SourceIndex, "unknown base class %q", base)
		}
	}

	p.expect(TokenLBrace, "class body")
	var fields []*ClassFieldNode
	var methods []*ClassMethodDefinitionNode
	for !p.check(TokenRBrace) && !p.check(TokenEOF) {
		switch m := p.parseClassMember(nameTok.Lexeme).(type) {
		case *ClassFieldNode:
			fields = append(fields, m)
		case *ClassMethodDefinitionNode:
			methods = append(methods, m)
		}
	}
	p.expect(TokenRBrace, "class body")

	classDef := NewClassDefinitionNode(nameTok.Lexeme, base, fields, methods, NewRange(startTok.SourceIndex, p.peek().SourceIndex))

	info := &ClassInfo{
		Name:       nameTok.Lexeme,
		BaseClass:  base,
		FieldTypes: map[string]string{},
		Methods:    map[string]FunctionSignature{},
	}
	for _, f := range fields {
		info.FieldOrder = append(info.FieldOrder, f.Name)
		info.FieldTypes[f.Name] = f.TypeName
	}
	// A method's registered signature lists its call-site parameters
	// only: the receiver at Parameters[0] is not passed as an argument.
	for _, m := range methods {
		info.Methods[m.Name] = signatureFromParams(m.ReturnTypeName, m.ReturnIsArray, m.Parameters[1:])
	}
	p.Registries.RegisterClass(info)

	if base != "" {
		p.materializeInheritance(classDef, base)
	}
	p.classMethodNodes[nameTok.Lexeme] = classDef.Methods

	return classDef
}

// parseClassMember parses one field or method inside a class body. A
// method whose name equals the class name, with no return type token
// preceding it, is the constructor.
func (p *Parser) parseClassMember(className string) Node {
	startTok := p.peek()

	if p.check(TokenIdentifier) && p.peek().Lexeme == className && p.peekAt(1).Kind == TokenLParen {
		nameTok := p.advance()
		return p.parseClassMethodBody(className, nameTok, "", false, true, startTok)
	}

	typeName, isArray := p.parseType()
	nameTok, _ := p.expect(TokenIdentifier, "class member name")

	if p.check(TokenLParen) {
		return p.parseClassMethodBody(className, nameTok, typeName, isArray, false, startTok)
	}

	p.expect(TokenSemicolon, "class field")
	field := NewClassFieldNode(nameTok.Lexeme, typeName, NewRange(startTok.SourceIndex, p.peek().SourceIndex))
	field.IsArray = isArray
	return field
}

// parseClassMethodBody parses a method's parameter list and body. The
// first parameter may be `&this` for a borrowed receiver; otherwise a
// synthetic `this` parameter of the class type is injected at the
// head of the parameter list.
func (p *Parser) parseClassMethodBody(className string, nameTok Token, returnType string, returnIsArray, isCtor bool, startTok Token) *ClassMethodDefinitionNode {
	p.expect(TokenLParen, "method parameter list")

	borrowedReceiver := false
	var params []*ParameterNode
	if p.check(TokenAmpersand) && p.peekAt(1).Kind == TokenThis {
		p.advance() // '&'
		p.advance() // 'this'
		borrowedReceiver = true
		params = append(params, NewParameterNode("this", className, true, true, NewRange(startTok.SourceIndex, startTok.SourceIndex)))
		if p.match(TokenComma) {
			params = append(params, p.parseParameterList()...)
		}
	} else {
		params = append(params, NewParameterNode("this", className, false, true, NewRange(startTok.SourceIndex, startTok.SourceIndex)))
		if !p.check(TokenRParen) {
			params = append(params, p.parseParameterList()...)
		}
	}
	p.expect(TokenRParen, "method parameter list")

	base := ""
	if len(p.classStack) > 0 {
		base = p.classStack[len(p.classStack)-1].base
	} else if info, ok := p.Registries.UserClasses[className]; ok {
		base = info.BaseClass
	}
	p.classStack = append(p.classStack, classContext{class: className, inCtor: isCtor, base: base})
	p.pushProduction(className + "." + nameTok.Lexeme)
	body := p.parseScope()
	p.popProduction()
	p.classStack = p.classStack[:len(p.classStack)-1]

	retType := returnType
	if isCtor {
		retType = className
	}
	method := NewClassMethodDefinitionNode(nameTok.Lexeme, className, isCtor, params, retType, body, NewRange(startTok.SourceIndex, p.peek().SourceIndex))
	method.ReturnIsArray = returnIsArray
	method.IsBorrowedReceiver = borrowedReceiver
	return method
}

// materializeInheritance prepends base's fields (erroring on a name
// conflict with a locally-declared field) and deep-copies base's
// non-constructor methods into classDef, rebinding each copy's
// receiver to classDef's own type. A method already declared in
// classDef overrides the inherited one.
func (p *Parser) materializeInheritance(classDef *ClassDefinitionNode, base string) {
	baseInfo, ok := p.Registries.UserClasses[base]
	if !ok {
		return
	}

	info := p.Registries.UserClasses[classDef.Name]
	existingFields := map[string]bool{}
	for _, f := range classDef.Fields {
		existingFields[f.Name] = true
	}
	for i := len(baseInfo.FieldOrder) - 1; i >= 0; i-- {
		name := baseInfo.FieldOrder[i]
		if existingFields[name] {
			p.errorf(classDef.Rg.Start, "field %q in class %q conflicts with a field inherited from %q", name, classDef.Name, base)
			continue
		}
		classDef.PrependField(NewClassFieldNode(name, baseInfo.FieldTypes[name], classDef.Rg))
		if info != nil {
			info.FieldOrder = append([]string{name}, info.FieldOrder...)
			info.FieldTypes[name] = baseInfo.FieldTypes[name]
		}
		existingFields[name] = true
	}

	for _, baseMethod := range p.classMethodNodes[base] {
		if baseMethod.IsConstructor {
			continue
		}
		if classDef.HasMethod(baseMethod.Name) {
			continue
		}
		classDef.AddInheritedMethod(baseMethod.DeepCopyForClass(classDef.Name))
		if info != nil {
			if _, overridden := info.Methods[baseMethod.Name]; !overridden {
				info.Methods[baseMethod.Name] = signatureFromParams(baseMethod.ReturnTypeName, baseMethod.ReturnIsArray, baseMethod.Parameters[1:])
			}
		}
	}
}
