package firescript

// knownDirectives is the closed vocabulary of directive names
// recognised at parse time. "enable_drops" is the marker mechanically
// inserted by the ownership preprocessor; the others are accepted by
// the parser and not read by any later pass.
var knownDirectives = map[string]bool{
	"enable_drops":  true,
	"strict_join":   true,
	"no_implicit_copy": true,
}

// IsKnownDirective reports whether name is in the closed directive
// vocabulary. An unknown directive is reported but does not abort
// parsing.
func IsKnownDirective(name string) bool {
	return knownDirectives[name]
}

// hasEnableDropsDirective reports whether any of root's top-level
// statements is an enable_drops directive, used by the ownership preprocessor to make
// its rewrite idempotent.
func hasEnableDropsDirective(root *RootNode) bool {
	for _, stmt := range root.Statements {
		if d, ok := stmt.(*DirectiveNode); ok && d.Name == "enable_drops" {
			return true
		}
	}
	return false
}
