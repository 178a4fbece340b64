package simplelang

import "fmt"

// DiagnosticKind tags which compilation phase detected a diagnostic.
type DiagnosticKind int

const (
	// LexicalError is reported by the scanner (illegal character, malformed
	// number, unterminated string).
	LexicalError DiagnosticKind = iota
	// SyntaxError is reported by the parser on a grammar violation.
	SyntaxError
	// SemanticError is reported by the parser on a name-resolution failure.
	// Semantic diagnostics share the parser's error list with syntax
	// diagnostics since both are detected during the same pass.
	SemanticError
	// GenerationError is reported when the code generator fails internally.
	GenerationError
)

var diagnosticKinds = [...]string{
	LexicalError:    "Lexical",
	SyntaxError:     "Syntax",
	SemanticError:   "Semantic",
	GenerationError: "Generation",
}

// String returns the name of the diagnostic kind.
func (k DiagnosticKind) String() string {
	if k >= 0 && k < DiagnosticKind(len(diagnosticKinds)) {
		return diagnosticKinds[k]
	}
	return ""
}

// Diagnostic represents a single error detected during compilation.
// Diagnostics are accumulated in order of detection and never removed;
// none of them is fatal to the compilation process.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
	Pos     Position
}

// Error returns the string representation of the diagnostic.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s error at line %d, column %d: %s", d.Kind, d.Pos.Line, d.Pos.Column, d.Message)
}
