package simplelang

import "fmt"

// Parser is a predictive recursive-descent parser for SimpleLang. It
// consumes a token sequence, builds the abstract syntax tree, populates the
// symbol table and accumulates syntax and semantic diagnostics on a shared
// list. Parsing is never fatal: every production tolerates a mismatched
// lookahead and the statement dispatcher guarantees forward progress.
type Parser struct {
	// Errors holds syntax and semantic diagnostics in order of detection.
	Errors []Diagnostic

	tokens  []Token
	pos     int
	current Token
	symbols *SymbolTable
}

// NewParser returns a parser over the given token sequence. COMMENT tokens
// are filtered out before parsing.
func NewParser(tokens []Token) *Parser {
	filtered := make([]Token, 0, len(tokens))
	for _, token := range tokens {
		if token.TokenType != COMMENT {
			filtered = append(filtered, token)
		}
	}
	if len(filtered) == 0 {
		filtered = append(filtered, Token{TokenType: EOF, Position: Position{Line: 1, Column: 1}})
	}

	return &Parser{
		Errors:  []Diagnostic{},
		tokens:  filtered,
		current: filtered[0],
		symbols: NewSymbolTable(),
	}
}

// Parse parses a SimpleLang program and returns its AST, the diagnostics
// and the populated symbol table. An empty diagnostic list means the
// program was accepted.
func Parse(tokens []Token) (*Program, []Diagnostic, *SymbolTable) {
	parser := NewParser(tokens)
	program := parser.Parse()
	return program, parser.Errors, parser.symbols
}

// Parse parses the whole token sequence. Any unanticipated internal failure
// is converted into one generic syntax diagnostic instead of propagating.
func (p *Parser) Parse() (program *Program) {
	defer func() {
		if r := recover(); r != nil {
			p.syntaxErrorf(p.current.Position, "Parser exception: %v", r)
		}
	}()

	program = p.parseProgram()

	// The grammar's end must be followed by the end of input.
	if p.current.TokenType != EOF {
		p.syntaxErrorf(p.current.Position, "Unexpected tokens after program end")
	}

	return program
}

func (p *Parser) advance() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
		p.current = p.tokens[p.pos]
	}
}

// match consumes and returns the current token if it has the expected type.
// Otherwise it records a syntax error and leaves the cursor unmoved, so
// callers must tolerate a desynchronized lookahead.
func (p *Parser) match(expected TokenType) (Token, bool) {
	if p.current.TokenType == expected {
		token := p.current
		p.advance()
		return token, true
	}

	p.syntaxErrorf(p.current.Position, "Expected %s, got %s", expected, p.current.TokenType)
	return p.current, false
}

func (p *Parser) syntaxErrorf(pos Position, format string, args ...interface{}) {
	p.Errors = append(p.Errors, Diagnostic{
		Kind:    SyntaxError,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	})
}

func (p *Parser) semanticErrorf(pos Position, format string, args ...interface{}) {
	p.Errors = append(p.Errors, Diagnostic{
		Kind:    SemanticError,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	})
}

// parseProgram parses the root production.
//
//	Program → program ID begin StmtList end
func (p *Parser) parseProgram() *Program {
	program := &Program{Position: p.current.Position}

	p.match(PROGRAM)
	if token, ok := p.match(ID); ok {
		program.Name = token.Lexeme
	}
	p.match(BEGIN)
	program.Statements = p.parseStatements()
	p.match(END)

	return program
}

// parseStatements parses statements until a token that closes the current
// statement list.
//
//	StmtList → Stmt StmtList'
//	StmtList' → Stmt StmtList' | ε
func (p *Parser) parseStatements() []Statement {
	statements := []Statement{}
	for p.current.TokenType != END && p.current.TokenType != ELSE && p.current.TokenType != EOF {
		if statement := p.parseStatement(); statement != nil {
			statements = append(statements, statement)
		}
	}

	return statements
}

// parseStatement dispatches on the current token kind.
//
//	Stmt → DeclStmt | AssignStmt | IfStmt | WhileStmt | ReadStmt | WriteStmt
//
// An unrecognized statement start records an error and advances one token
// so the parser cannot loop forever.
func (p *Parser) parseStatement() Statement {
	switch p.current.TokenType {
	case INT, FLOAT, STRING:
		return p.parseDeclaration()

	case ID:
		return p.parseAssignment()

	case IF:
		return p.parseIfStatement()

	case WHILE:
		return p.parseWhileStatement()

	case READ:
		return p.parseReadStatement()

	case WRITE:
		return p.parseWriteStatement()
	}

	p.syntaxErrorf(p.current.Position, "Unexpected statement starting with %s", p.current.TokenType)
	p.advance()
	return nil
}

// parseDeclaration parses a variable declaration and declares the name in
// the current scope. A duplicate name in the same scope is a semantic
// error; shadowing an outer scope is legal.
//
//	DeclStmt → Type ID ;
//	Type → int | float | string
func (p *Parser) parseDeclaration() *Declaration {
	declaration := &Declaration{Position: p.current.Position}

	switch p.current.TokenType {
	case INT:
		declaration.Type = Integer
	case FLOAT:
		declaration.Type = Float
	case STRING:
		declaration.Type = String
	}
	p.advance()

	if token, ok := p.match(ID); ok {
		declaration.Name = token.Lexeme

		symbol, err := p.symbols.Declare(token.Lexeme, declaration.Type, token.Position.Line)
		if err != nil {
			p.semanticErrorf(token.Position, "%s", err)
		} else {
			declaration.Symbol = symbol
		}
	}

	p.match(SEMICOLON)
	return declaration
}

// parseAssignment parses an assignment statement.
//
//	AssignStmt → ID := Expr ;
func (p *Parser) parseAssignment() *Assignment {
	assignment := &Assignment{Position: p.current.Position}

	if token, ok := p.match(ID); ok {
		assignment.Variable = token.Lexeme
		assignment.Symbol = p.lookup(token.Lexeme, token.Position)
	}

	p.match(ASSIGN)
	assignment.Value = p.parseExpression()
	p.match(SEMICOLON)

	return assignment
}

// parseIfStatement parses a conditional statement. The then and else
// branches each open a fresh scope, closed at the matching end. An else is
// always claimed by the nearest enclosing if still awaiting one.
//
//	IfStmt → if ( BoolExpr ) then StmtList ElsePart end
//	ElsePart → else StmtList | ε
func (p *Parser) parseIfStatement() *IfStatement {
	statement := &IfStatement{Position: p.current.Position}

	p.match(IF)
	p.match(LPAREN)
	statement.Condition = p.parseBooleanExpression()
	p.match(RPAREN)
	p.match(THEN)

	p.symbols.EnterScope()
	statement.ThenBranch = p.parseStatements()
	p.symbols.ExitScope()

	if p.current.TokenType == ELSE {
		p.advance()
		p.symbols.EnterScope()
		statement.ElseBranch = p.parseStatements()
		p.symbols.ExitScope()
	}

	p.match(END)
	return statement
}

// parseWhileStatement parses a loop statement. The body opens a fresh
// scope, closed at the matching end.
//
//	WhileStmt → while ( BoolExpr ) do StmtList end
func (p *Parser) parseWhileStatement() *WhileStatement {
	statement := &WhileStatement{Position: p.current.Position}

	p.match(WHILE)
	p.match(LPAREN)
	statement.Condition = p.parseBooleanExpression()
	p.match(RPAREN)
	p.match(DO)

	p.symbols.EnterScope()
	statement.Body = p.parseStatements()
	p.symbols.ExitScope()

	p.match(END)
	return statement
}

// parseReadStatement parses an input statement.
//
//	ReadStmt → read ( ID ) ;
func (p *Parser) parseReadStatement() *ReadStatement {
	statement := &ReadStatement{Position: p.current.Position}

	p.match(READ)
	p.match(LPAREN)
	if token, ok := p.match(ID); ok {
		statement.Variable = token.Lexeme
		statement.Symbol = p.lookup(token.Lexeme, token.Position)
	}
	p.match(RPAREN)
	p.match(SEMICOLON)

	return statement
}

// parseWriteStatement parses an output statement.
//
//	WriteStmt → write ( Expr ) ;
func (p *Parser) parseWriteStatement() *WriteStatement {
	statement := &WriteStatement{Position: p.current.Position}

	p.match(WRITE)
	p.match(LPAREN)
	statement.Value = p.parseExpression()
	p.match(RPAREN)
	p.match(SEMICOLON)

	return statement
}

// parseExpression parses an additive expression. Operators of equal
// precedence associate to the left.
//
//	Expr → Term Expr'
//	Expr' → + Term Expr' | - Term Expr' | ε
func (p *Parser) parseExpression() Expression {
	result := p.parseTerm()
	for p.current.TokenType == PLUS || p.current.TokenType == MINUS {
		operator := p.current
		p.advance()
		result = &BinaryExpression{
			LHS:      result,
			Operator: operator.Lexeme,
			RHS:      p.parseTerm(),
			Position: operator.Position,
		}
	}

	return result
}

// parseTerm parses a multiplicative expression.
//
//	Term → Factor Term'
//	Term' → * Factor Term' | / Factor Term' | ε
func (p *Parser) parseTerm() Expression {
	result := p.parseFactor()
	for p.current.TokenType == MULT || p.current.TokenType == DIV {
		operator := p.current
		p.advance()
		result = &BinaryExpression{
			LHS:      result,
			Operator: operator.Lexeme,
			RHS:      p.parseFactor(),
			Position: operator.Position,
		}
	}

	return result
}

// parseFactor parses an expression atom. Every identifier use is resolved
// against the symbol table; an unresolved name is a semantic error.
//
//	Factor → ID | NUM | ( Expr )
func (p *Parser) parseFactor() Expression {
	switch p.current.TokenType {
	case ID:
		token := p.current
		p.advance()
		return &Identifier{
			Name:     token.Lexeme,
			Symbol:   p.lookup(token.Lexeme, token.Position),
			Position: token.Position,
		}

	case NUM:
		token := p.current
		p.advance()
		return &NumberLiteral{Value: token.Lexeme, Position: token.Position}

	case LPAREN:
		p.advance()
		result := p.parseExpression()
		p.match(RPAREN)
		return result
	}

	p.syntaxErrorf(p.current.Position, "Expected ID, NUM, or '(', got %s", p.current.TokenType)
	return nil
}

// parseBooleanExpression parses a comparison of two expressions. A missing
// relational operator is a syntax error; the left operand is then used as
// the condition value.
//
//	BoolExpr → Expr RelOp Expr
//	RelOp → == | != | < | > | <= | >=
func (p *Parser) parseBooleanExpression() Expression {
	result := p.parseExpression()

	if !isRelOp(p.current.TokenType) {
		p.syntaxErrorf(p.current.Position, "Expected relational operator")
		return result
	}

	operator := p.current
	p.advance()

	return &BinaryExpression{
		LHS:      result,
		Operator: operator.Lexeme,
		RHS:      p.parseExpression(),
		Position: operator.Position,
	}
}

// lookup resolves an identifier use, recording a semantic error when the
// name is undeclared.
func (p *Parser) lookup(name string, pos Position) *Symbol {
	symbol, ok := p.symbols.Lookup(name)
	if !ok {
		p.semanticErrorf(pos, "Undeclared variable '%s'", name)
		return nil
	}

	return symbol
}
