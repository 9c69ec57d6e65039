package ast

// Node is implemented by every AST node. Rendering appends the node's
// compact source form to the generator and never fails on trees built
// through the package constructors.
type Node interface {
	Render(g *Generator)
}

// Statement is the closed set of statement variants.
type Statement interface {
	Node
	statementNode()
}

// Expression is the closed set of expression variants.
type Expression interface {
	Node
	expressionNode()
}

// Block is an ordered sequence of statements forming one lexical
// scope. Statement order is semantically significant and is preserved
// exactly through every transformation.
type Block struct {
	statements []Statement
}

// NewBlock creates a block holding the given statements.
func NewBlock(statements ...Statement) *Block {
	return &Block{statements: statements}
}

// Statements returns the block's backing statement slice. Rules may
// rewrite elements in place; use SetStatements to change the length.
func (b *Block) Statements() []Statement {
	return b.statements
}

// SetStatements replaces the block's statement sequence.
func (b *Block) SetStatements(statements []Statement) {
	b.statements = statements
}

// AddStatement appends a statement to the block.
func (b *Block) AddStatement(statement Statement) {
	b.statements = append(b.statements, statement)
}

// IsEmpty reports whether the block contains no statements.
func (b *Block) IsEmpty() bool {
	return len(b.statements) == 0
}

func (b *Block) Render(g *Generator) {
	for i, statement := range b.statements {
		// A statement opening with '(' would extend the previous
		// statement's expression, so it needs an explicit separator.
		if i > 0 && startsWithParenthesis(statement) {
			g.PushByte(';')
		}
		statement.Render(g)
	}
}

func startsWithParenthesis(statement Statement) bool {
	switch s := statement.(type) {
	case *CallStatement:
		return prefixStartsWithParenthesis(s.call)
	case *AssignStatement:
		if len(s.targets) > 0 {
			return prefixStartsWithParenthesis(s.targets[0])
		}
	}
	return false
}

func prefixStartsWithParenthesis(expression Expression) bool {
	for {
		switch e := expression.(type) {
		case *ParenthesesExpression:
			return true
		case *CallExpression:
			expression = e.prefix
		case *IndexExpression:
			expression = e.prefix
		case *FieldExpression:
			expression = e.prefix
		default:
			return false
		}
	}
}
