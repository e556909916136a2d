package firescript

import (
	"fmt"
	"strings"
)

// DiagnosticKind discriminates a Diagnostic by the pipeline stage and
// failure mode that produced it.
type DiagnosticKind int

const (
	DiagnosticLex DiagnosticKind = iota
	DiagnosticSyntax
	DiagnosticIdentifier
	DiagnosticType
	DiagnosticOwnership
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagnosticLex:
		return "lex"
	case DiagnosticSyntax:
		return "syntax"
	case DiagnosticIdentifier:
		return "identifier"
	case DiagnosticType:
		return "type"
	case DiagnosticOwnership:
		return "ownership"
	default:
		return "unknown"
	}
}

// Diagnostic is an accumulated, continuable problem surfaced by the
// lexer, parser, identifier resolution, type checking, or the semantic
// analyzer. Its wire-level contract is the triple (message, line,
// column); Kind is additional bookkeeping used only within this module
// and by tests.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
	Line    int
	Column  int
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s @ %d:%d", d.Message, d.Line, d.Column)
}

// DiagnosticList accumulates Diagnostics in traversal order, letting
// the parser and the semantic analyzer continue past an error instead
// of aborting on the first one.
type DiagnosticList struct {
	lines      *LineIndex
	diagnostics []Diagnostic
}

// NewDiagnosticList creates an accumulator that converts byte offsets
// to line/column using lines.
func NewDiagnosticList(lines *LineIndex) *DiagnosticList {
	return &DiagnosticList{lines: lines}
}

// Add records a diagnostic at the given byte offset.
func (dl *DiagnosticList) Add(kind DiagnosticKind, offset int, format string, args ...any) {
	line, column := 1, 1
	if dl.lines != nil {
		line, column = dl.lines.LineColumn(offset)
	}
	dl.diagnostics = append(dl.diagnostics, Diagnostic{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Line:    line,
		Column:  column,
	})
}

// All returns every accumulated diagnostic, in the order recorded.
func (dl *DiagnosticList) All() []Diagnostic {
	return dl.diagnostics
}

// HasErrors reports whether any diagnostic was recorded.
func (dl *DiagnosticList) HasErrors() bool {
	return len(dl.diagnostics) > 0
}

// HasMessageContaining reports whether any diagnostic's message
// contains substr; convenient for tests asserting on specific
// end-to-end scenarios.
func (dl *DiagnosticList) HasMessageContaining(substr string) bool {
	for _, d := range dl.diagnostics {
		if strings.Contains(d.Message, substr) {
			return true
		}
	}
	return false
}

// ModuleError is an aborting error raised by the module resolver: file
// not found, cyclic import, external package reference, or a
// conflicting merged export. Unlike Diagnostic, a ModuleError stops
// the resolver immediately.
type ModuleError struct {
	Message string
	Module  string
	Wrapped error
}

func (e *ModuleError) Error() string {
	if e.Module != "" {
		return fmt.Sprintf("%s: %s", e.Module, e.Message)
	}
	return e.Message
}

func (e *ModuleError) Unwrap() error { return e.Wrapped }
