package simplelang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolTableDeclareAndLookup(t *testing.T) {
	table := NewSymbolTable()

	symbol, err := table.Declare("x", Integer, 3)
	require.NoError(t, err)
	assert.Equal(t, "x", symbol.Name)
	assert.Equal(t, Integer, symbol.Type)
	assert.Equal(t, 3, symbol.Line)
	assert.Equal(t, 0, symbol.Scope)

	found, ok := table.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, symbol, found)

	_, ok = table.Lookup("y")
	assert.False(t, ok)
}

func TestSymbolTableDuplicateDeclaration(t *testing.T) {
	table := NewSymbolTable()

	_, err := table.Declare("x", Integer, 1)
	require.NoError(t, err)

	_, err = table.Declare("x", Float, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'x' already declared")
}

func TestSymbolTableShadowing(t *testing.T) {
	table := NewSymbolTable()

	outer, err := table.Declare("x", Integer, 1)
	require.NoError(t, err)

	table.EnterScope()

	// Redeclaring the same name in a nested scope is legal shadowing.
	inner, err := table.Declare("x", Float, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.Scope)

	found, ok := table.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, inner, found)

	table.ExitScope()

	found, ok = table.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, outer, found)
}

func TestSymbolTableLookupWalksOutward(t *testing.T) {
	table := NewSymbolTable()

	symbol, err := table.Declare("x", Integer, 1)
	require.NoError(t, err)

	table.EnterScope()
	table.EnterScope()

	found, ok := table.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, symbol, found)
}

func TestSymbolTableFlattenedListing(t *testing.T) {
	table := NewSymbolTable()

	_, err := table.Declare("a", Integer, 1)
	require.NoError(t, err)

	table.EnterScope()
	_, err = table.Declare("b", Float, 2)
	require.NoError(t, err)
	table.ExitScope()

	_, err = table.Declare("c", String, 3)
	require.NoError(t, err)

	// Outer scope first, declaration order within a scope level. Symbols
	// from exited scopes are never deleted.
	symbols := table.Symbols()
	require.Len(t, symbols, 3)
	assert.Equal(t, "a", symbols[0].Name)
	assert.Equal(t, "c", symbols[1].Name)
	assert.Equal(t, "b", symbols[2].Name)
	assert.Equal(t, 0, symbols[0].Scope)
	assert.Equal(t, 0, symbols[1].Scope)
	assert.Equal(t, 1, symbols[2].Scope)
}

func TestSymbolTableOutermostScopeNeverPopped(t *testing.T) {
	table := NewSymbolTable()

	_, err := table.Declare("x", Integer, 1)
	require.NoError(t, err)

	table.ExitScope()

	_, ok := table.Lookup("x")
	assert.True(t, ok)
}

func TestDataTypeString(t *testing.T) {
	assert.Equal(t, "int", Integer.String())
	assert.Equal(t, "float", Float.String())
	assert.Equal(t, "string", String.String())
	assert.Equal(t, "unknown", Unknown.String())
}
