package simplelang

import "fmt"

// OpCode discriminates the three-address instruction variants.
type OpCode int

const (
	// OpAssign copies a value into a variable: dest = value
	OpAssign OpCode = iota
	// OpBinary applies an operator to two operands: dest = left op right
	OpBinary
	// OpLabel defines a jump target: label:
	OpLabel
	// OpGoto jumps unconditionally: goto label
	OpGoto
	// OpIfFalse jumps when the condition is false: ifFalse cond goto label
	OpIfFalse
	// OpRead reads user input into a variable: read dest
	OpRead
	// OpWrite prints a value: write value
	OpWrite
)

// Instruction is one three-address instruction. Operands reference a
// variable name, a literal spelling or a generated temporary/label name.
type Instruction struct {
	Op       OpCode
	Dest     string
	Left     string
	Operator string
	Right    string
	Label    string
}

// String renders the instruction in its plain-text form.
func (i Instruction) String() string {
	switch i.Op {
	case OpAssign:
		return fmt.Sprintf("%s = %s", i.Dest, i.Left)
	case OpBinary:
		return fmt.Sprintf("%s = %s %s %s", i.Dest, i.Left, i.Operator, i.Right)
	case OpLabel:
		return fmt.Sprintf("%s:", i.Label)
	case OpGoto:
		return fmt.Sprintf("goto %s", i.Label)
	case OpIfFalse:
		return fmt.Sprintf("ifFalse %s goto %s", i.Left, i.Label)
	case OpRead:
		return fmt.Sprintf("read %s", i.Dest)
	case OpWrite:
		return fmt.Sprintf("write %s", i.Left)
	}

	return ""
}

// CodeGenerator translates a SimpleLang AST into three-address code.
// Temporary and label counters live on the generator instance and start at
// 1 per compilation, so independent generators are safe to run in parallel.
type CodeGenerator struct {
	// Errors holds generation diagnostics. A non-empty list means the
	// instruction list was truncated by an internal failure.
	Errors []Diagnostic

	instructions   []Instruction
	temporaryIndex int
	labelIndex     int
}

// NewCodeGenerator returns a new instance of CodeGenerator.
func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{
		Errors:       []Diagnostic{},
		instructions: []Instruction{},
	}
}

// Generate emits three-address code for a parsed program.
func Generate(program *Program) ([]Instruction, []Diagnostic) {
	generator := NewCodeGenerator()
	instructions := generator.Generate(program)
	return instructions, generator.Errors
}

// Generate emits three-address code for a parsed program. An internal
// failure stops generation and surfaces a Generation diagnostic naming the
// last instruction that was emitted successfully; the instructions emitted
// so far are still returned.
func (c *CodeGenerator) Generate(program *Program) (instructions []Instruction) {
	defer func() {
		if r := recover(); r != nil {
			c.Errors = append(c.Errors, Diagnostic{
				Kind:    GenerationError,
				Message: fmt.Sprintf("Code generation failed after instruction %d: %v", len(c.instructions), r),
			})
			instructions = c.instructions
		}
	}()

	for _, statement := range program.Statements {
		c.genStatement(statement)
	}

	return c.instructions
}

func (c *CodeGenerator) emit(instruction Instruction) {
	c.instructions = append(c.instructions, instruction)
}

func (c *CodeGenerator) newTemporary() string {
	c.temporaryIndex++
	return fmt.Sprintf("t%d", c.temporaryIndex)
}

func (c *CodeGenerator) newLabel() string {
	c.labelIndex++
	return fmt.Sprintf("L%d", c.labelIndex)
}

// genStatement generates code for a single statement. Declarations emit no
// code; they exist for the symbol table only.
func (c *CodeGenerator) genStatement(node Statement) {
	switch s := node.(type) {
	case *Declaration:
		// no code
	case *Assignment:
		c.genAssignment(s)
	case *IfStatement:
		c.genIfStatement(s)
	case *WhileStatement:
		c.genWhileStatement(s)
	case *ReadStatement:
		c.emit(Instruction{Op: OpRead, Dest: s.Variable})
	case *WriteStatement:
		c.emit(Instruction{Op: OpWrite, Left: c.genExpression(s.Value)})
	}
}

// genAssignment evaluates the right-hand expression then assigns its final
// value to the target variable.
func (c *CodeGenerator) genAssignment(node *Assignment) {
	value := c.genExpression(node.Value)
	c.emit(Instruction{Op: OpAssign, Dest: node.Variable, Left: value})
}

// genIfStatement generates the conditional shape. The false-label is
// allocated after the condition has been evaluated; the end-label exists
// only when there is an else branch.
func (c *CodeGenerator) genIfStatement(node *IfStatement) {
	condition := c.genExpression(node.Condition)

	falseLabel := c.newLabel()
	if node.ElseBranch == nil {
		c.emit(Instruction{Op: OpIfFalse, Left: condition, Label: falseLabel})
		for _, statement := range node.ThenBranch {
			c.genStatement(statement)
		}
		c.emit(Instruction{Op: OpLabel, Label: falseLabel})
		return
	}

	endLabel := c.newLabel()
	c.emit(Instruction{Op: OpIfFalse, Left: condition, Label: falseLabel})
	for _, statement := range node.ThenBranch {
		c.genStatement(statement)
	}
	c.emit(Instruction{Op: OpGoto, Label: endLabel})
	c.emit(Instruction{Op: OpLabel, Label: falseLabel})
	for _, statement := range node.ElseBranch {
		c.genStatement(statement)
	}
	c.emit(Instruction{Op: OpLabel, Label: endLabel})
}

// genWhileStatement generates the loop shape: the condition is re-evaluated
// at the begin-label on every iteration.
func (c *CodeGenerator) genWhileStatement(node *WhileStatement) {
	beginLabel := c.newLabel()
	endLabel := c.newLabel()

	c.emit(Instruction{Op: OpLabel, Label: beginLabel})
	condition := c.genExpression(node.Condition)
	c.emit(Instruction{Op: OpIfFalse, Left: condition, Label: endLabel})

	for _, statement := range node.Body {
		c.genStatement(statement)
	}

	c.emit(Instruction{Op: OpGoto, Label: beginLabel})
	c.emit(Instruction{Op: OpLabel, Label: endLabel})
}

// genExpression generates code for an expression and returns the place
// holding its value: a variable name, a literal spelling or a temporary.
// Binary operations evaluate strictly left-to-right and chain through one
// fresh temporary per operation.
func (c *CodeGenerator) genExpression(node Expression) string {
	switch e := node.(type) {
	case *BinaryExpression:
		lhs := c.genExpression(e.LHS)
		rhs := c.genExpression(e.RHS)
		temporary := c.newTemporary()
		c.emit(Instruction{Op: OpBinary, Dest: temporary, Left: lhs, Operator: e.Operator, Right: rhs})
		return temporary

	case *Identifier:
		return e.Name

	case *NumberLiteral:
		return e.Value
	}

	panic(fmt.Sprintf("cannot generate code for expression %T", node))
}
