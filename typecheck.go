package firescript

import "strings"

// Type checking: an in-place pass run immediately after identifier
// resolution (or deferred alongside it until module merge, for a file
// with imports). Every expression node's return_type and
// value_category are annotated as the tree is walked bottom-up.

func typeCheck(p *Parser, root *RootNode) {
	tc := &typeChecker{p: p}
	for _, stmt := range root.Statements {
		tc.checkStatement(stmt)
	}
}

type typeChecker struct {
	p *Parser
}

func describeType(t string, isArray bool) string {
	if isArray {
		return t + "[]"
	}
	return t
}

func (tc *typeChecker) category(typeName string, isArray bool) ValueCategory {
	return classifyValueCategory(typeName, isArray, tc.p.Registries.CopyableClasses)
}

func (tc *typeChecker) checkStatement(n Node) {
	switch node := n.(type) {
	case *ScopeNode:
		for _, s := range node.Statements {
			tc.checkStatement(s)
		}

	case *VariableDeclarationNode:
		valType, valArray := tc.checkExpr(node.Value)
		if valType != "" && valType != "null" && (valType != node.VarType || valArray != node.IsArray) {
			tc.p.Diagnostics.Add(DiagnosticType, node.Rg.Start,
				"cannot initialise variable %q of type %s with a value of type %s",
				node.Name, describeType(node.VarType, node.IsArray), describeType(valType, valArray))
		}
		node.ValueCategory = tc.category(node.VarType, node.IsArray)

	case *VariableAssignmentNode:
		valType, valArray := tc.checkExpr(node.Value)
		if node.VarType != "" && valType != "" && valType != "null" && (valType != node.VarType || valArray != node.IsArray) {
			tc.p.Diagnostics.Add(DiagnosticType, node.Rg.Start,
				"cannot assign a value of type %s to %q of type %s",
				describeType(valType, valArray), node.Name, describeType(node.VarType, node.IsArray))
		}

	case *AssignmentNode:
		targetType, targetArray := tc.checkExpr(node.Target)
		valType, valArray := tc.checkExpr(node.Value)
		if targetType != "" && valType != "" && valType != "null" && (valType != targetType || valArray != targetArray) {
			tc.p.Diagnostics.Add(DiagnosticType, node.Rg.Start,
				"cannot assign a value of type %s to a target of type %s",
				describeType(valType, valArray), describeType(targetType, targetArray))
		}

	case *CompoundAssignmentNode:
		targetType, _ := tc.checkExpr(node.Target)
		valType, _ := tc.checkExpr(node.Value)
		if targetType != "" && valType != "" {
			stringOk := node.Operator == "+=" && (targetType == "string" || valType == "string")
			if targetType != valType && !stringOk {
				tc.p.Diagnostics.Add(DiagnosticType, node.Rg.Start,
					"operator %q requires matching operand types, got %s and %s", node.Operator, targetType, valType)
			}
		}

	case *FunctionCallNode:
		tc.checkExpr(node)
	case *MethodCallNode:
		tc.checkExpr(node)
	case *ConstructorCallNode:
		tc.checkExpr(node)
	case *SuperCallNode:
		tc.checkExpr(node)
	case *TypeMethodCallNode:
		tc.checkExpr(node)

	case *ReturnStatementNode:
		if node.Value != nil {
			tc.checkExpr(node.Value)
		}

	case *IfStatementNode:
		condType, _ := tc.checkExpr(node.Condition)
		if condType != "" && condType != "bool" {
			tc.p.Diagnostics.Add(DiagnosticType, node.Condition.Range().Start, "if condition must be bool, got %s", condType)
		}
		tc.checkStatement(node.Then)
		if node.Else != nil {
			tc.checkStatement(node.Else)
		}

	case *WhileStatementNode:
		condType, _ := tc.checkExpr(node.Condition)
		if condType != "" && condType != "bool" {
			tc.p.Diagnostics.Add(DiagnosticType, node.Condition.Range().Start, "while condition must be bool, got %s", condType)
		}
		tc.checkStatement(node.Body)

	case *BreakStatementNode:
		if !hasEnclosingWhile(node) {
			tc.p.Diagnostics.Add(DiagnosticType, node.Rg.Start, "break used outside of an enclosing while loop")
		}

	case *ContinueStatementNode:
		if !hasEnclosingWhile(node) {
			tc.p.Diagnostics.Add(DiagnosticType, node.Rg.Start, "continue used outside of an enclosing while loop")
		}

	case *FunctionDefinitionNode:
		tc.checkStatement(node.Body)

	case *ClassDefinitionNode:
		for _, m := range node.Methods {
			tc.checkStatement(m)
		}

	case *ClassMethodDefinitionNode:
		tc.checkStatement(node.Body)

	case *ImportStatementNode, *DirectiveNode:
		// nothing to check
	}
}

// hasEnclosingWhile walks n's ancestors, stopping at a function or
// method boundary, to find an enclosing while loop. break/continue
// outside of any loop is an error.
func hasEnclosingWhile(n Node) bool {
	for cur := n.Parent(); cur != nil; cur = cur.Parent() {
		switch cur.(type) {
		case *WhileStatementNode:
			return true
		case *FunctionDefinitionNode, *ClassMethodDefinitionNode:
			return false
		}
	}
	return false
}

// checkExpr type-checks n and returns its (type name, is_array) pair,
// annotating return_type and value_category on n along the way.
func (tc *typeChecker) checkExpr(n Node) (string, bool) {
	p := tc.p
	switch node := n.(type) {
	case *LiteralNode:
		t := literalType(node.LitKind, node.Text)
		node.ReturnType = t
		node.VarType = t
		return t, false

	case *IdentifierNode:
		node.ReturnType = node.VarType
		node.ValueCategory = tc.category(node.VarType, node.IsArray)
		return node.VarType, node.IsArray

	case *BinaryExpressionNode:
		lt, la := tc.checkExpr(node.Left)
		rt, ra := tc.checkExpr(node.Right)
		result := ""
		switch {
		case node.Operator == "+" && (lt == "string" || rt == "string"):
			result = "string"
		case lt != "" && lt == rt && la == ra:
			result = lt
		case lt != "" && rt != "":
			p.Diagnostics.Add(DiagnosticType, node.Rg.Start,
				"operator %q requires matching operand types, got %s and %s", node.Operator, describeType(lt, la), describeType(rt, ra))
			result = lt
		}
		if node.Operator == "%" && lt != "" && !IsIntegerType(lt) {
			p.Diagnostics.Add(DiagnosticType, node.Rg.Start, "%% requires integer operands, got %s", lt)
		}
		node.ReturnType = result
		return result, false

	case *UnaryExpressionNode:
		t, isArr := tc.checkExpr(node.Operand)
		if node.Operator == "!" && t != "" && t != "bool" {
			p.Diagnostics.Add(DiagnosticType, node.Rg.Start, "! requires a bool operand, got %s", t)
		}
		if node.Operator == "-" && t != "" && !IsNumericType(t) {
			p.Diagnostics.Add(DiagnosticType, node.Rg.Start, "unary - requires a numeric operand, got %s", t)
		}
		node.ReturnType = t
		return t, isArr

	case *EqualityExpressionNode:
		lt, la := tc.checkExpr(node.Left)
		rt, ra := tc.checkExpr(node.Right)
		comparable := lt == "null" || rt == "null" ||
			(lt == rt && la == ra && (IsNumericType(lt) || lt == "string" || lt == "bool" || lt == "char" || tc.p.Registries.UserTypes[lt]))
		if !comparable && lt != "" && rt != "" {
			p.Diagnostics.Add(DiagnosticType, node.Rg.Start, "cannot compare %s and %s for equality", describeType(lt, la), describeType(rt, ra))
		}
		node.ReturnType = "bool"
		return "bool", false

	case *RelationalExpressionNode:
		lt, _ := tc.checkExpr(node.Left)
		rt, _ := tc.checkExpr(node.Right)
		if lt != "" && rt != "" && lt != rt {
			p.Diagnostics.Add(DiagnosticType, node.Rg.Start, "cannot compare %s and %s", lt, rt)
		}
		node.ReturnType = "bool"
		return "bool", false

	case *CastExpressionNode:
		srcType, srcArray := tc.checkExpr(node.Expr)
		if node.TargetIsArray {
			p.Diagnostics.Add(DiagnosticType, node.Rg.Start, "cannot cast to an array type")
		} else if srcType != "" {
			ok := (IsNumericType(srcType) && IsNumericType(node.TargetType)) ||
				node.TargetType == "string" ||
				(srcType == "char" && IsIntegerType(node.TargetType)) ||
				(IsIntegerType(srcType) && node.TargetType == "char")
			if !ok {
				p.Diagnostics.Add(DiagnosticType, node.Rg.Start, "cannot cast %s to %s", describeType(srcType, srcArray), node.TargetType)
			}
		}
		node.ReturnType = node.TargetType
		return node.TargetType, false

	case *ArrayLiteralNode:
		elemType := ""
		for i, e := range node.Elements {
			t, _ := tc.checkExpr(e)
			if i == 0 {
				elemType = t
			} else if t != "" && elemType != "" && t != elemType {
				p.Diagnostics.Add(DiagnosticType, e.Range().Start, "array element type mismatch: expected %s, got %s", elemType, t)
			}
		}
		node.ReturnType = elemType
		node.ValueCategory = CategoryOwned
		return elemType, true

	case *ArrayAccessNode:
		arrType, _ := tc.checkExpr(node.Array)
		idxType, _ := tc.checkExpr(node.Index)
		if idxType != "" && !IsIntegerType(idxType) {
			p.Diagnostics.Add(DiagnosticType, node.Index.Range().Start, "array index must be an integer, got %s", idxType)
		}
		node.ReturnType = arrType
		node.ValueCategory = tc.category(arrType, false)
		return arrType, false

	case *FieldAccessNode:
		recvType, _ := tc.checkExpr(node.Receiver)
		fieldType := ""
		if info, ok := p.Registries.UserClasses[recvType]; ok {
			var known bool
			fieldType, known = info.FieldTypes[node.Field]
			if !known {
				p.Diagnostics.Add(DiagnosticType, node.Rg.Start, "class %q has no field %q", recvType, node.Field)
			}
		}
		node.ReturnType = fieldType
		node.VarType = fieldType
		node.ValueCategory = tc.category(fieldType, false)
		return fieldType, false

	case *FunctionCallNode:
		argTypes := make([]string, len(node.Arguments))
		argArrays := make([]bool, len(node.Arguments))
		for i, a := range node.Arguments {
			argTypes[i], argArrays[i] = tc.checkExpr(a)
		}

		if typeParams, isGeneric := p.Registries.GenericFunctions[node.Callee]; isGeneric {
			sig := p.Registries.Functions[node.Callee]
			var bound map[string]string
			if len(node.TypeArgs) > 0 {
				bound = map[string]string{}
				for i, tp := range typeParams {
					if i < len(node.TypeArgs) {
						bound[tp] = node.TypeArgs[i]
					}
				}
			} else {
				bound, _ = inferGenericTypeArgs(p, node.Callee, typeParams, sig, argTypes, node.Rg.Start)
				for _, tp := range typeParams {
					if v, ok := bound[tp]; ok {
						node.TypeArgs = append(node.TypeArgs, v)
					}
				}
			}
			constraints := p.Registries.GenericConstraints[node.Callee]
			for _, tp := range typeParams {
				concrete, ok := bound[tp]
				if !ok {
					continue
				}
				if union, hasCons := constraints[tp]; hasCons && !typeInUnion(concrete, union) {
					p.Diagnostics.Add(DiagnosticType, node.Rg.Start,
						"type argument %s does not satisfy constraint %s for %s", concrete, union, tp)
				}
			}
			checkCallArity(p, node.Callee, sig, node.Arguments, argTypes, node.Rg.Start, bound)
			retType := sig.ReturnType
			if sub, ok := bound[retType]; ok {
				retType = sub
			}
			node.ReturnType = retType
			return retType, sig.ReturnIsArray
		}

		if sig, ok := p.Registries.Functions[node.Callee]; ok {
			checkCallArity(p, node.Callee, sig, node.Arguments, argTypes, node.Rg.Start, nil)
			node.ReturnType = sig.ReturnType
			return sig.ReturnType, sig.ReturnIsArray
		}

		// Unknown/builtin call (e.g. print): arguments are still
		// checked above, but arity/type matching is skipped.
		return "", false

	case *MethodCallNode:
		recvType, recvArray := tc.checkExpr(node.Receiver)
		argTypes := make([]string, len(node.Arguments))
		for i, a := range node.Arguments {
			argTypes[i], _ = tc.checkExpr(a)
		}

		if recvArray {
			switch node.Method {
			case "length", "size":
				node.ReturnType = "int32"
				return "int32", false
			case "append", "insert", "pop", "clear":
				p.Diagnostics.Add(DiagnosticType, node.Rg.Start, "mutating array method %q is not supported on fixed-size arrays", node.Method)
				return "", false
			}
		}

		if info, ok := p.Registries.UserClasses[recvType]; ok {
			if sig, ok := info.Methods[node.Method]; ok {
				checkCallArity(p, recvType+"."+node.Method, sig, node.Arguments, argTypes, node.Rg.Start, nil)
				node.ReturnType = sig.ReturnType
				return sig.ReturnType, sig.ReturnIsArray
			}
			p.Diagnostics.Add(DiagnosticType, node.Rg.Start, "class %q has no method %q", recvType, node.Method)
		}
		return "", false

	case *TypeMethodCallNode:
		argType := ""
		for _, a := range node.Arguments {
			argType, _ = tc.checkExpr(a)
		}
		if len(node.Arguments) != 1 {
			p.Diagnostics.Add(DiagnosticType, node.Rg.Start, "constructor %q expects exactly 1 argument", node.TypeName)
		} else if argType != "" && !((IsNumericType(argType) && IsNumericType(node.TypeName)) ||
			node.TypeName == "string" ||
			(argType == "char" && IsIntegerType(node.TypeName)) ||
			(IsIntegerType(argType) && node.TypeName == "char")) {
			p.Diagnostics.Add(DiagnosticType, node.Rg.Start, "cannot convert %s to %s", argType, node.TypeName)
		}
		node.ReturnType = node.TypeName
		return node.TypeName, false

	case *ConstructorCallNode:
		argTypes := make([]string, len(node.Arguments))
		for i, a := range node.Arguments {
			argTypes[i], _ = tc.checkExpr(a)
		}
		info, ok := p.Registries.UserClasses[node.ClassName]
		if !ok {
			p.Diagnostics.Add(DiagnosticType, node.Rg.Start, "unknown class %q", node.ClassName)
		} else if ctor, hasCtor := info.Methods[node.ClassName]; hasCtor {
			checkCallArity(p, node.ClassName, ctor, node.Arguments, argTypes, node.Rg.Start, nil)
		} else if len(node.Arguments) != len(info.FieldOrder) {
			p.Diagnostics.Add(DiagnosticType, node.Rg.Start,
				"constructor for %q expects %d arguments, got %d", node.ClassName, len(info.FieldOrder), len(node.Arguments))
		}
		node.ReturnType = node.ClassName
		node.ValueCategory = tc.category(node.ClassName, false)
		return node.ClassName, false

	case *SuperCallNode:
		for _, a := range node.Arguments {
			tc.checkExpr(a)
		}
		return "", false

	default:
		return "", false
	}
}

// checkCallArity reports an arity mismatch, or a per-argument type
// mismatch against sig's declared parameter types (substituting bound
// type-parameter names when a generic binding is supplied).
func checkCallArity(p *Parser, name string, sig FunctionSignature, argNodes []Node, argTypes []string, offset int, bound map[string]string) {
	if len(argNodes) != len(sig.ParamTypes) {
		p.Diagnostics.Add(DiagnosticType, offset, "call to %q expects %d argument(s), got %d", name, len(sig.ParamTypes), len(argNodes))
		return
	}
	for i, declared := range sig.ParamTypes {
		expected := declared
		if bound != nil {
			if sub, ok := bound[declared]; ok {
				expected = sub
			}
		}
		if argTypes[i] != "" && expected != "" && argTypes[i] != expected {
			p.Diagnostics.Add(DiagnosticType, offset, "argument %d to %q: expected %s, got %s", i+1, name, expected, argTypes[i])
		}
	}
}

func typeInUnion(t, union string) bool {
	for _, part := range strings.Split(union, "|") {
		if part == t {
			return true
		}
	}
	return false
}

// literalType tags a literal with its concrete type, honouring numeric
// suffixes and defaulting to int32/float64 otherwise.
func literalType(kind LiteralKind, text string) string {
	switch kind {
	case LiteralInt:
		for _, suffix := range []string{"i8", "i16", "i32", "i64", "u8", "u16", "u32", "u64"} {
			if strings.HasSuffix(text, suffix) {
				return integerSuffixType(suffix)
			}
		}
		return "int32"
	case LiteralFloat:
		switch {
		case strings.HasSuffix(text, "f128"):
			return "float128"
		case strings.HasSuffix(text, "f64"):
			return "float64"
		case strings.HasSuffix(text, "f32"):
			return "float32"
		default:
			return "float64"
		}
	case LiteralString:
		return "string"
	case LiteralBool:
		return "bool"
	case LiteralChar:
		return "char"
	case LiteralNull:
		return "null"
	default:
		return ""
	}
}

func integerSuffixType(suffix string) string {
	switch suffix {
	case "i8":
		return "int8"
	case "i16":
		return "int16"
	case "i32":
		return "int32"
	case "i64":
		return "int64"
	case "u8":
		return "uint8"
	case "u16":
		return "uint16"
	case "u32":
		return "uint32"
	case "u64":
		return "uint64"
	default:
		return "int32"
	}
}
