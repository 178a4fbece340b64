package simplelang

// TokenType represents the category of a lexical token.
type TokenType int

// SimpleLang's tokens
const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF
	COMMENT

	// Keywords
	PROGRAM
	BEGIN
	END
	INT
	FLOAT
	STRING
	IF
	THEN
	ELSE
	WHILE
	DO
	READ
	WRITE
	RETURN

	// Operators
	ASSIGN // :=
	PLUS   // +
	MINUS  // -
	MULT   // *
	DIV    // /
	EQ     // ==
	NEQ    // !=
	LT     // <
	GT     // >
	LTE    // <=
	GTE    // >=

	// Separators
	LPAREN    // (
	RPAREN    // )
	SEMICOLON // ;
	COMMA     // ,

	// Literals
	ID
	NUM
	STRLITERAL
)

// Position specifies the line and character position of a token.
// Both Line and Column are 1-based.
type Position struct {
	Line   int
	Column int
}

// Token is one lexical unit of a SimpleLang source text. Tokens are
// immutable once produced by the scanner.
type Token struct {
	TokenType TokenType
	Lexeme    string
	Position  Position
}

var tokens = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	COMMENT: "COMMENT",

	// Keywords
	PROGRAM: "program",
	BEGIN:   "begin",
	END:     "end",
	INT:     "int",
	FLOAT:   "float",
	STRING:  "string",
	IF:      "if",
	THEN:    "then",
	ELSE:    "else",
	WHILE:   "while",
	DO:      "do",
	READ:    "read",
	WRITE:   "write",
	RETURN:  "return",

	// Operators
	ASSIGN: ":=",
	PLUS:   "+",
	MINUS:  "-",
	MULT:   "*",
	DIV:    "/",
	EQ:     "==",
	NEQ:    "!=",
	LT:     "<",
	GT:     ">",
	LTE:    "<=",
	GTE:    ">=",

	// Separators
	LPAREN:    "(",
	RPAREN:    ")",
	SEMICOLON: ";",
	COMMA:     ",",

	// Literals
	ID:         "ID",
	NUM:        "NUM",
	STRLITERAL: "STR_LITERAL",
}

// keywords maps reserved words to their token types. Note that "return" is
// reserved even though no grammar production currently uses it.
var keywords = map[string]TokenType{
	"program": PROGRAM,
	"begin":   BEGIN,
	"end":     END,
	"int":     INT,
	"float":   FLOAT,
	"string":  STRING,
	"if":      IF,
	"then":    THEN,
	"else":    ELSE,
	"while":   WHILE,
	"do":      DO,
	"read":    READ,
	"write":   WRITE,
	"return":  RETURN,
}

// String returns the string representation of the token type.
func (tok TokenType) String() string {
	if tok >= 0 && tok < TokenType(len(tokens)) {
		return tokens[tok]
	}
	return ""
}

// isRelOp reports whether the token type is one of the six relational
// operators usable in a boolean expression.
func isRelOp(tok TokenType) bool {
	switch tok {
	case EQ, NEQ, LT, GT, LTE, GTE:
		return true
	}
	return false
}
