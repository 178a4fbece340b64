package simplelang

import (
	"fmt"
	"strings"
)

// CompileResult aggregates the output of every compilation phase. A result
// is produced fresh per Compile call and holds no cross-invocation state.
type CompileResult struct {
	// Tokens is the full token sequence, COMMENT tokens included.
	Tokens []Token
	// LexicalErrors holds the scanner's diagnostics.
	LexicalErrors []Diagnostic
	// ParseErrors holds syntax and semantic diagnostics, tagged by Kind,
	// in order of detection.
	ParseErrors []Diagnostic
	// GenerationErrors is non-empty when the generator truncated its
	// output on an internal failure.
	GenerationErrors []Diagnostic
	// Symbols is the flattened symbol listing, outer-scope-first.
	Symbols []Symbol
	// Instructions is the three-address code, in emission order.
	Instructions []Instruction
}

// Compile runs the full front-end pipeline over a source text. Phases are
// gated: parsing runs only when there are no lexical errors, and code
// generation runs only when there are no syntax or semantic errors. The
// source may be empty; an empty input tokenizes to a lone EOF token and the
// parser then reports the missing program keyword through normal parsing.
func Compile(source string) *CompileResult {
	result := &CompileResult{}

	result.Tokens, result.LexicalErrors = Tokenize(source)
	if len(result.LexicalErrors) > 0 {
		return result
	}

	program, parseErrors, symbols := Parse(result.Tokens)
	result.ParseErrors = parseErrors
	result.Symbols = symbols.Symbols()
	if len(parseErrors) > 0 {
		return result
	}

	result.Instructions, result.GenerationErrors = Generate(program)
	return result
}

// FormatInstructions renders an instruction list with 1-based sequence
// numbers, one instruction per line.
func FormatInstructions(instructions []Instruction) string {
	var sb strings.Builder
	for i, instruction := range instructions {
		fmt.Fprintf(&sb, "%3d. %s\n", i+1, instruction)
	}

	return sb.String()
}

// FormatSymbols renders the symbol listing as aligned
// (name, type, scope, line) rows, one symbol per line.
func FormatSymbols(symbols []Symbol) string {
	var sb strings.Builder
	for _, symbol := range symbols {
		fmt.Fprintf(&sb, "%-15s %-8s %5d %5d\n", symbol.Name, symbol.Type, symbol.Scope, symbol.Line)
	}

	return sb.String()
}
