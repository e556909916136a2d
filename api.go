package firescript

import "path/filepath"

// CompileResult is the outcome of running the full pipeline over one
// entry file: the merged, ownership-rewritten tree plus every
// diagnostic collected along the way.
type CompileResult struct {
	Root        *RootNode
	Diagnostics *DiagnosticList
	OK          bool
}

// CompileSource runs lexing, parsing (with inline identifier
// resolution and type checking), module resolution, ownership
// rewriting, and semantic (move/borrow) analysis over a single source
// string. Any imports the source declares are read from disk relative
// to importRoot (an empty importRoot means the current working
// directory); a module that cannot be read produces a module-not-found
// ModuleError.
//
// Parsing produces the raw tree; module resolution runs next, and the
// ownership pass and semantic analysis run only when the
// ownership.enable_drops setting is true.
func CompileSource(source string, importRoot string, cfg *Config) (*CompileResult, error) {
	parser := NewParser(source)
	root := parser.Parse()

	merged := root
	if parser.hasImports {
		loader := SourceLoader(NewFileSourceLoader())
		resolver := NewResolver(importRoot, loader)
		m, err := resolver.Resolve(parser, root)
		if err != nil {
			return nil, err
		}
		merged = m
	}

	if cfg == nil {
		cfg = NewConfig()
	}
	if cfg.GetBool("ownership.enable_drops") {
		merged = ApplyOwnership(merged, parser.Registries)
		AnalyzeOwnership(merged, parser.Registries, parser.Diagnostics)
	}

	return &CompileResult{
		Root:        merged,
		Diagnostics: parser.Diagnostics,
		OK:          !parser.Diagnostics.HasErrors(),
	}, nil
}

// CompileFile reads path from disk and compiles it, resolving any
// imports relative to path's containing directory.
func CompileFile(path string, cfg *Config) (*CompileResult, error) {
	content, err := NewFileSourceLoader().ReadModule(path)
	if err != nil {
		return nil, &ModuleError{Message: "module not found", Module: path, Wrapped: err}
	}
	return CompileSource(string(content), filepath.Dir(path), cfg)
}
