package firescript

import (
	"path/filepath"
	"strings"
)

// Module is one parsed, cached unit of the import graph, keyed by
// dotted name and carrying its parse tree plus its import and export
// bookkeeping.
type Module struct {
	DottedName string
	Path       string
	Root       *RootNode
	Parser     *Parser
	Imports    []*ImportStatementNode
	Exports    map[string]MergedSymbol
}

// dottedToRelativePath maps a dotted module name `a.b.c` to the
// relative filesystem path `a/b/c.fire`.
func dottedToRelativePath(dotted string) string {
	return strings.ReplaceAll(dotted, ".", string(filepath.Separator)) + ".fire"
}

// collectExports records every top-level function, class, and
// variable declaration of mod as an export. The entry module never
// calls this; its top-level names are merged separately, with
// priority over imported exports.
func collectExports(mod *Module) {
	for _, stmt := range mod.Root.Statements {
		switch s := stmt.(type) {
		case *FunctionDefinitionNode:
			mod.Exports[s.Name] = MergedSymbol{Type: s.ReturnTypeName, IsArray: s.ReturnIsArray}
		case *ClassDefinitionNode:
			mod.Exports[s.Name] = MergedSymbol{Type: s.Name, IsArray: false}
		case *VariableDeclarationNode:
			mod.Exports[s.Name] = MergedSymbol{Type: s.VarType, IsArray: s.IsArray}
		}
	}
}

// isExportableTopLevel reports whether stmt is one of the three kinds
// that contribute a name to a module's export table / the merged root.
func isExportableTopLevel(stmt Node) bool {
	switch stmt.(type) {
	case *FunctionDefinitionNode, *ClassDefinitionNode, *VariableDeclarationNode:
		return true
	}
	return false
}

// exportedName returns the declared name of an exportable top-level
// statement, or "" if stmt is not one.
func exportedName(stmt Node) string {
	switch s := stmt.(type) {
	case *FunctionDefinitionNode:
		return s.Name
	case *ClassDefinitionNode:
		return s.Name
	case *VariableDeclarationNode:
		return s.Name
	}
	return ""
}
