package simplelang

import (
	"fmt"
	"sort"
)

// DataType represents the primitive data types available in SimpleLang.
type DataType int

const (
	// Unknown primitive data type.
	Unknown DataType = iota
	// Integer means the data type is an int.
	Integer
	// Float means the data type is a float.
	Float
	// String means the data type is a string.
	String
)

var dataTypes = [...]string{
	Unknown: "unknown",
	Integer: "int",
	Float:   "float",
	String:  "string",
}

// String returns the SimpleLang spelling of the data type.
func (t DataType) String() string {
	if t >= 0 && t < DataType(len(dataTypes)) {
		return dataTypes[t]
	}
	return ""
}

// Symbol is one declared variable. Symbols are created by declaration
// statements and never mutated or deleted within a compilation.
type Symbol struct {
	Name  string
	Type  DataType
	Line  int
	Scope int
}

// SymbolTable is a stack of name-resolution scopes. Scope 0 is the
// outermost scope. Within one scope names are unique; an inner scope may
// shadow a name declared further out.
type SymbolTable struct {
	scopes []map[string]*Symbol
	order  []*Symbol
}

// NewSymbolTable returns a symbol table with a single (outermost) scope.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		scopes: []map[string]*Symbol{{}},
	}
}

// EnterScope pushes a fresh scope frame.
func (st *SymbolTable) EnterScope() {
	st.scopes = append(st.scopes, map[string]*Symbol{})
}

// ExitScope pops the innermost scope frame. The outermost scope is never
// popped. Symbols declared in the popped scope stay visible in the
// flattened listing.
func (st *SymbolTable) ExitScope() {
	if len(st.scopes) > 1 {
		st.scopes = st.scopes[:len(st.scopes)-1]
	}
}

// Declare adds a symbol to the current scope. It fails only when the name
// already exists in the current scope; shadowing an outer scope is legal.
func (st *SymbolTable) Declare(name string, dataType DataType, line int) (*Symbol, error) {
	current := st.scopes[len(st.scopes)-1]
	if _, exists := current[name]; exists {
		return nil, fmt.Errorf("Variable '%s' already declared in current scope", name)
	}

	symbol := &Symbol{
		Name:  name,
		Type:  dataType,
		Line:  line,
		Scope: len(st.scopes) - 1,
	}
	current[name] = symbol
	st.order = append(st.order, symbol)

	return symbol, nil
}

// Lookup resolves a name by walking from the current scope outward and
// returns the first match.
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	for i := len(st.scopes) - 1; i >= 0; i-- {
		if symbol, ok := st.scopes[i][name]; ok {
			return symbol, true
		}
	}
	return nil, false
}

// Symbols returns the flattened listing of every symbol declared during the
// compilation, ordered outer-scope-first and by declaration order within a
// scope level.
func (st *SymbolTable) Symbols() []Symbol {
	flattened := make([]Symbol, 0, len(st.order))
	for _, symbol := range st.order {
		flattened = append(flattened, *symbol)
	}

	sort.SliceStable(flattened, func(i, j int) bool {
		return flattened[i].Scope < flattened[j].Scope
	})

	return flattened
}
