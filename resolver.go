package firescript

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SourceLoader abstracts reading a module's source bytes given the
// resolved filesystem path, so the resolver is testable without
// touching a real filesystem.
type SourceLoader interface {
	ReadModule(path string) ([]byte, error)
}

// FileSourceLoader reads modules from disk.
type FileSourceLoader struct{}

func NewFileSourceLoader() *FileSourceLoader { return &FileSourceLoader{} }

func (l *FileSourceLoader) ReadModule(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// InMemorySourceLoader serves module content from a map, used in
// tests to exercise the resolver's cycle detection and merge logic
// without a real import_root directory.
type InMemorySourceLoader struct {
	files map[string][]byte
}

func NewInMemorySourceLoader() *InMemorySourceLoader {
	return &InMemorySourceLoader{files: map[string][]byte{}}
}

func (l *InMemorySourceLoader) Add(path, content string) {
	l.files[path] = []byte(content)
}

func (l *InMemorySourceLoader) ReadModule(path string) ([]byte, error) {
	b, ok := l.files[path]
	if !ok {
		return nil, fmt.Errorf("module not found: %s", path)
	}
	return b, nil
}

// Resolver loads and merges a multi-file import graph.
type Resolver struct {
	ImportRoot string
	Loader     SourceLoader

	cache map[string]*Module
	order []string // dependency-first (DFS post-order) dotted names
}

func NewResolver(importRoot string, loader SourceLoader) *Resolver {
	return &Resolver{ImportRoot: importRoot, Loader: loader, cache: map[string]*Module{}}
}

// load reads, lexes, parses, and caches dottedName, then recurses into
// its own imports. stack holds the dotted names of modules currently
// being loaded, for cycle detection.
func (r *Resolver) load(dottedName string, stack []string) (*Module, error) {
	for _, s := range stack {
		if s == dottedName {
			path := append(append([]string{}, stack...), dottedName)
			return nil, &ModuleError{Message: fmt.Sprintf("cyclic import detected: %s", strings.Join(path, " -> "))}
		}
	}
	if mod, ok := r.cache[dottedName]; ok {
		return mod, nil
	}

	relPath := dottedToRelativePath(dottedName)
	fullPath := filepath.Join(r.ImportRoot, relPath)
	content, err := r.Loader.ReadModule(fullPath)
	if err != nil {
		return nil, &ModuleError{Message: "module not found", Module: dottedName, Wrapped: err}
	}

	parser := NewParser(string(content))
	root := parser.Parse()
	mod := &Module{DottedName: dottedName, Path: fullPath, Root: root, Parser: parser, Exports: map[string]MergedSymbol{}}
	r.cache[dottedName] = mod

	childStack := append(append([]string{}, stack...), dottedName)
	for _, stmt := range root.Statements {
		imp, ok := stmt.(*ImportStatementNode)
		if !ok {
			continue
		}
		mod.Imports = append(mod.Imports, imp)
		if _, err := r.load(imp.ModulePath, childStack); err != nil {
			return nil, err
		}
	}

	collectExports(mod)
	r.order = append(r.order, dottedName)
	return mod, nil
}

// Resolve loads every module entryRoot imports, merges their exports
// with entryRoot's own top-level statements (entry always wins on a
// name clash), discharges every module's deferred-undefined
// identifiers against the merged symbol table, and returns the merged
// tree.
func (r *Resolver) Resolve(entryParser *Parser, entryRoot *RootNode) (*RootNode, error) {
	for _, stmt := range entryRoot.Statements {
		imp, ok := stmt.(*ImportStatementNode)
		if !ok {
			continue
		}
		if _, err := r.load(imp.ModulePath, nil); err != nil {
			return nil, err
		}
	}

	merged := NewRootNode(entryRoot.Rg)
	mergedSymbols := map[string]MergedSymbol{}
	positions := map[string]int{}

	for _, dottedName := range r.order {
		mod := r.cache[dottedName]
		for name, sym := range mod.Exports {
			if _, exists := mergedSymbols[name]; exists {
				return nil, &ModuleError{Message: fmt.Sprintf("symbol %q is exported by more than one imported module", name), Module: dottedName}
			}
			mergedSymbols[name] = sym
		}
		for _, stmt := range mod.Root.Statements {
			if !isExportableTopLevel(stmt) {
				continue
			}
			positions[exportedName(stmt)] = len(merged.Statements)
			merged.Append(stmt)
		}
	}

	for _, stmt := range entryRoot.Statements {
		if _, ok := stmt.(*ImportStatementNode); ok {
			continue
		}
		name := exportedName(stmt)
		if name == "" {
			merged.Append(stmt)
			continue
		}
		mergedSymbols[name] = entrySymbol(stmt)
		if idx, replacing := positions[name]; replacing {
			merged.Statements[idx] = stmt
			stmt.SetParent(merged)
		} else {
			positions[name] = len(merged.Statements)
			merged.Append(stmt)
		}
	}

	for _, dottedName := range r.order {
		mod := r.cache[dottedName]
		mod.Parser.DischargeDeferred(mod.Root, mergedSymbols)
	}
	entryParser.DischargeDeferred(entryRoot, mergedSymbols)

	return merged, nil
}

func entrySymbol(stmt Node) MergedSymbol {
	switch s := stmt.(type) {
	case *FunctionDefinitionNode:
		return MergedSymbol{Type: s.ReturnTypeName, IsArray: s.ReturnIsArray}
	case *ClassDefinitionNode:
		return MergedSymbol{Type: s.Name, IsArray: false}
	case *VariableDeclarationNode:
		return MergedSymbol{Type: s.VarType, IsArray: s.IsArray}
	}
	return MergedSymbol{}
}
