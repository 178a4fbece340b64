package simplelang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileMinimalProgram(t *testing.T) {
	result := Compile(`program P
begin
  int x;
  x := 1;
end`)

	assert.Empty(t, result.LexicalErrors)
	assert.Empty(t, result.ParseErrors)
	assert.Empty(t, result.GenerationErrors)

	require.Len(t, result.Symbols, 1)
	assert.Equal(t, Symbol{Name: "x", Type: Integer, Line: 3, Scope: 0}, result.Symbols[0])

	assert.Equal(t, []string{"x = 1"}, render(result.Instructions))
}

func TestCompileSampleProgram(t *testing.T) {
	result := Compile(`program TestProgram
begin
    int x;
    int y;
    float result;

    read(x);
    read(y);

    result := x + y * 2;

    if (x > y) then
        write(x);
    else
        write(y);
    end

    int counter;
    counter := 0;

    while (counter < 5) do
        write(counter);
        counter := counter + 1;
    end

    write(result);
end`)

	assert.Empty(t, result.LexicalErrors)
	assert.Empty(t, result.ParseErrors)
	assert.Empty(t, result.GenerationErrors)
	assert.NotEmpty(t, result.Instructions)

	require.Len(t, result.Symbols, 4)
	assert.Equal(t, "x", result.Symbols[0].Name)
	assert.Equal(t, "y", result.Symbols[1].Name)
	assert.Equal(t, "result", result.Symbols[2].Name)
	assert.Equal(t, "counter", result.Symbols[3].Name)

	assert.Equal(t, []string{
		"read x",
		"read y",
		"t1 = y * 2",
		"t2 = x + t1",
		"result = t2",
		"t3 = x > y",
		"ifFalse t3 goto L1",
		"write x",
		"goto L2",
		"L1:",
		"write y",
		"L2:",
		"counter = 0",
		"L3:",
		"t4 = counter < 5",
		"ifFalse t4 goto L4",
		"write counter",
		"t5 = counter + 1",
		"counter = t5",
		"goto L3",
		"L4:",
		"write result",
	}, render(result.Instructions))
}

func TestCompileIsDeterministic(t *testing.T) {
	source := `program P
begin
    int x;
    x := 2 + 3 * 4;
    while (x > 0) do
        x := x - 1;
    end
end`

	first := Compile(source)
	second := Compile(source)

	// Temporaries and labels restart at 1 on every call.
	assert.Equal(t, first.Tokens, second.Tokens)
	assert.Equal(t, render(first.Instructions), render(second.Instructions))
}

func TestCompileLexicalErrorsBlockParsing(t *testing.T) {
	result := Compile(`program P
begin
    int x @;
end`)

	require.Len(t, result.LexicalErrors, 1)
	assert.Empty(t, result.ParseErrors)
	assert.Empty(t, result.Symbols)
	assert.Empty(t, result.Instructions)
}

func TestCompileParseErrorsBlockGeneration(t *testing.T) {
	result := Compile(`program P
begin
    x := 1;
end`)

	assert.Empty(t, result.LexicalErrors)
	require.Len(t, result.ParseErrors, 1)
	assert.Equal(t, SemanticError, result.ParseErrors[0].Kind)
	assert.Empty(t, result.Instructions)
}

func TestCompileEmptySource(t *testing.T) {
	result := Compile("")

	assert.Empty(t, result.LexicalErrors)
	require.Len(t, result.Tokens, 1)
	assert.Equal(t, EOF, result.Tokens[0].TokenType)

	require.NotEmpty(t, result.ParseErrors)
	assert.Contains(t, result.ParseErrors[0].Message, "Expected program")
	assert.Empty(t, result.Instructions)
}

func TestCompileConcurrentInvocations(t *testing.T) {
	source := `program P
begin
    int x;
    x := 1 + 2;
end`

	expected := render(Compile(source).Instructions)

	done := make(chan []string)
	for i := 0; i < 8; i++ {
		go func() {
			done <- render(Compile(source).Instructions)
		}()
	}

	for i := 0; i < 8; i++ {
		assert.Equal(t, expected, <-done)
	}
}

func TestFormatInstructions(t *testing.T) {
	formatted := FormatInstructions([]Instruction{
		{Op: OpAssign, Dest: "x", Left: "1"},
		{Op: OpWrite, Left: "x"},
	})

	assert.Equal(t, "  1. x = 1\n  2. write x\n", formatted)
}

func TestFormatSymbols(t *testing.T) {
	formatted := FormatSymbols([]Symbol{
		{Name: "x", Type: Integer, Scope: 0, Line: 3},
	})

	assert.Contains(t, formatted, "x")
	assert.Contains(t, formatted, "int")
}

func TestDiagnosticError(t *testing.T) {
	diagnostic := Diagnostic{
		Kind:    SemanticError,
		Message: "Undeclared variable 'x'",
		Pos:     Position{Line: 4, Column: 5},
	}

	assert.Equal(t, "Semantic error at line 4, column 5: Undeclared variable 'x'", diagnostic.Error())
}
