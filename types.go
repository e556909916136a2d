package firescript

// This file models the closed families of built-in type names, and the
// helpers that classify a type string into a ValueCategory.

var integerTypes = map[string]bool{
	"int8": true, "int16": true, "int32": true, "int64": true,
	"uint8": true, "uint16": true, "uint32": true, "uint64": true,
}

var floatTypes = map[string]bool{
	"float32": true, "float64": true, "float128": true,
}

var scalarTypes = map[string]bool{
	"bool": true, "char": true, "string": true,
}

// IsNumericType reports whether t names one of the integer or float
// families.
func IsNumericType(t string) bool {
	return integerTypes[t] || floatTypes[t]
}

// IsIntegerType reports whether t names one of the integer families.
func IsIntegerType(t string) bool {
	return integerTypes[t]
}

// IsFloatType reports whether t names one of the float families.
func IsFloatType(t string) bool {
	return floatTypes[t]
}

// IsBuiltinScalar reports whether t is bool/char/string.
func IsBuiltinScalar(t string) bool {
	return scalarTypes[t]
}

// IsBuiltinType reports whether t names any built-in, non-class type.
func IsBuiltinType(t string) bool {
	return IsNumericType(t) || IsBuiltinScalar(t)
}

// IsGenericParamName reports whether name looks like a single
// uppercase-letter type parameter.
func IsGenericParamName(name string) bool {
	return len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z'
}

// classifyValueCategory determines the ValueCategory for a type.
// copyableClasses is the set of user classes explicitly registered as
// copyable.
func classifyValueCategory(typeName string, isArray bool, copyableClasses map[string]bool) ValueCategory {
	if isArray {
		return CategoryOwned
	}
	if IsBuiltinType(typeName) {
		return CategoryCopyable
	}
	if IsGenericParamName(typeName) {
		// "maybe-Owned" for borrow-validation purposes: treated as
		// Owned so borrowing is permitted.
		return CategoryOwned
	}
	if copyableClasses[typeName] {
		return CategoryCopyable
	}
	// Any other named type is a user class, Owned by default.
	return CategoryOwned
}
