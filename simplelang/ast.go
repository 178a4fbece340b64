package simplelang

// Node represents a node in the SimpleLang abstract syntax tree.
type Node interface {
	// node is unexported to ensure implementations of Node
	// can only originate in this package.
	node()
}

// Statement represents a single command in SimpleLang.
type Statement interface {
	Node
	// statement is unexported to ensure implementations of Statement
	// can only originate in this package.
	statement()
}

// Expression is a combination of numbers, variables and operators that
// can be evaluated to a value.
type Expression interface {
	Node
	// expression is unexported to ensure implementations of Expression
	// can only originate in this package.
	expression()
}

// Program represents the root node of a SimpleLang program:
// program ID begin StmtList end
type Program struct {
	Name       string
	Statements []Statement
	Position   Position
}

// Declaration declares one variable, e.g: int x;
type Declaration struct {
	Name     string
	Type     DataType
	Symbol   *Symbol // nil when the declaration was rejected
	Position Position
}

// Assignment assigns an expression value to a variable, e.g: x := y + 1;
type Assignment struct {
	Variable string
	Symbol   *Symbol // nil when the variable is undeclared
	Value    Expression
	Position Position
}

// IfStatement is a conditional command:
// if ( BoolExpr ) then StmtList [else StmtList] end
// A dangling else always binds to the nearest enclosing if still awaiting
// one; this falls out of the recursive-descent structure.
type IfStatement struct {
	Condition  Expression
	ThenBranch []Statement
	ElseBranch []Statement // nil when there is no else part
	Position   Position
}

// WhileStatement repeats its body while the condition holds:
// while ( BoolExpr ) do StmtList end
type WhileStatement struct {
	Condition Expression
	Body      []Statement
	Position  Position
}

// ReadStatement reads user input into a variable, e.g: read(x);
type ReadStatement struct {
	Variable string
	Symbol   *Symbol // nil when the variable is undeclared
	Position Position
}

// WriteStatement prints an expression, e.g: write(x + y);
type WriteStatement struct {
	Value    Expression
	Position Position
}

// BinaryExpression applies an arithmetic or relational operator to two
// operands. The operator is kept as its source spelling.
type BinaryExpression struct {
	LHS      Expression
	Operator string
	RHS      Expression
	Position Position
}

// Identifier is an expression referencing a single variable.
type Identifier struct {
	Name     string
	Symbol   *Symbol // nil when the variable is undeclared
	Position Position
}

// NumberLiteral is a numeric constant. The lexeme is kept verbatim so the
// generated code reproduces the source spelling.
type NumberLiteral struct {
	Value    string
	Position Position
}

func (*Program) node()          {}
func (*Declaration) node()      {}
func (*Assignment) node()       {}
func (*IfStatement) node()      {}
func (*WhileStatement) node()   {}
func (*ReadStatement) node()    {}
func (*WriteStatement) node()   {}
func (*BinaryExpression) node() {}
func (*Identifier) node()       {}
func (*NumberLiteral) node()    {}

func (*Declaration) statement()    {}
func (*Assignment) statement()     {}
func (*IfStatement) statement()    {}
func (*WhileStatement) statement() {}
func (*ReadStatement) statement()  {}
func (*WriteStatement) statement() {}

func (*BinaryExpression) expression() {}
func (*Identifier) expression()       {}
func (*NumberLiteral) expression()    {}
