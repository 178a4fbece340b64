package main

import (
	"fmt"
	"os"
	"path"

	"github.com/MAwais-dev5/Compiler-Construction-Project/simplelang"
)

func main() {
	fmt.Fprintln(os.Stderr, "SimpleLang front-end compiler.")

	// Check args
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "USAGE: ./simplelang <input-file>")
		os.Exit(1)
	}

	// Make sure the input file ends with .sl
	if path.Ext(os.Args[1]) != ".sl" {
		fmt.Fprintln(os.Stderr, "Input file extension must be .sl")
		os.Exit(1)
	}

	// Read code file
	code, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Cannot open input SimpleLang file.")
		os.Exit(1)
	}

	result := simplelang.Compile(string(code))

	// Phase 1: lexical analysis. Errors here block every later phase.
	if len(result.LexicalErrors) > 0 {
		for _, err := range result.LexicalErrors {
			fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		}
		os.Exit(1)
	}
	fmt.Printf("Lexical analysis: %d tokens\n", len(result.Tokens)-1)

	// Phase 2: parsing. Syntax and semantic errors block code generation,
	// but the symbol information gathered so far is still shown.
	if len(result.ParseErrors) > 0 {
		for _, err := range result.ParseErrors {
			fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		}
		os.Exit(1)
	}

	fmt.Println("\nSymbol table (name, type, scope, line):")
	fmt.Print(simplelang.FormatSymbols(result.Symbols))

	// Phase 3: code generation.
	if len(result.GenerationErrors) > 0 {
		for _, err := range result.GenerationErrors {
			fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		}
	}

	fmt.Println("\nThree-address code:")
	fmt.Print(simplelang.FormatInstructions(result.Instructions))
}
