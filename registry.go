package firescript

import "strings"

// FunctionSignature records a registered function/method's parameter
// shape, used for arity/type checking at call sites.
type FunctionSignature struct {
	ReturnType     string
	ReturnIsArray  bool
	ParamNames     []string
	ParamTypes     []string
	ParamIsArray   []bool
	ParamBorrowed  []bool
}

// ClassInfo is the materialised shape of a user class: ordered fields
// (insertion order matters for positional constructor calls) and its
// method table, including inherited methods once inheritance has been
// materialised.
type ClassInfo struct {
	Name          string
	BaseClass     string // "" if none
	IsCopyable    bool
	FieldOrder    []string
	FieldTypes    map[string]string
	Methods       map[string]FunctionSignature
}

// Registries bundles the module-wide tables built during parsing. They
// are mutated only while parsing.
type Registries struct {
	UserFunctions       map[string]string // name -> return type
	GenericFunctions    map[string][]string // name -> ordered type param names
	GenericConstraints  map[string]map[string]string // name -> (type param -> constraint union string)
	UserTypes           map[string]bool // set of class names
	UserClasses         map[string]*ClassInfo
	UserClassBases      map[string]string // class -> base class, "" if none
	UserMethods         map[string]map[string]FunctionSignature // class -> method -> signature
	ConstraintAliases    map[string]string // alias -> type-union string
	CopyableClasses     map[string]bool
	Functions           map[string]FunctionSignature // name -> full signature, for call-site checking
}

// NewRegistries builds an empty Registries with all maps initialised.
func NewRegistries() *Registries {
	return &Registries{
		UserFunctions:      map[string]string{},
		GenericFunctions:   map[string][]string{},
		GenericConstraints: map[string]map[string]string{},
		UserTypes:          map[string]bool{},
		UserClasses:        map[string]*ClassInfo{},
		UserClassBases:     map[string]string{},
		UserMethods:        map[string]map[string]FunctionSignature{},
		ConstraintAliases:  map[string]string{},
		CopyableClasses:    map[string]bool{},
		Functions:          map[string]FunctionSignature{},
	}
}

// RegisterFunction records a plain (non-generic) function's signature.
func (r *Registries) RegisterFunction(name string, sig FunctionSignature) {
	r.UserFunctions[name] = sig.ReturnType
	r.Functions[name] = sig
}

// RegisterGenericFunction records a generic function's type parameters,
// constraints, and signature.
func (r *Registries) RegisterGenericFunction(name string, typeParams []string, constraints map[string]string, sig FunctionSignature) {
	r.GenericFunctions[name] = typeParams
	r.GenericConstraints[name] = constraints
	r.UserFunctions[name] = sig.ReturnType
	r.Functions[name] = sig
}

// RegisterClass records a class's shape and seeds its method table.
func (r *Registries) RegisterClass(info *ClassInfo) {
	r.UserTypes[info.Name] = true
	r.UserClasses[info.Name] = info
	r.UserClassBases[info.Name] = info.BaseClass
	if info.IsCopyable {
		r.CopyableClasses[info.Name] = true
	}
	if info.Methods == nil {
		info.Methods = map[string]FunctionSignature{}
	}
	r.UserMethods[info.Name] = info.Methods
}

// IsKnownType reports whether name is a built-in type keyword or a
// registered user class.
func (r *Registries) IsKnownType(name string) bool {
	return IsBuiltinType(name) || r.UserTypes[name]
}

// ExpandConstraint recursively expands constraint alias references
// within a "|"-separated constraint union string into the flat set of
// allowed type names.
func (r *Registries) ExpandConstraint(constraint string) []string {
	seen := map[string]bool{}
	var out []string
	var expand func(string)
	expand = func(part string) {
		if seen[part] {
			return
		}
		if alias, ok := r.ConstraintAliases[part]; ok {
			seen[part] = true
			for _, sub := range splitUnion(alias) {
				expand(sub)
			}
			return
		}
		seen[part] = true
		out = append(out, part)
	}
	for _, part := range splitUnion(constraint) {
		expand(part)
	}
	return out
}

func splitUnion(s string) []string {
	parts := strings.Split(s, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
