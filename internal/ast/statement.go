package ast

// DoStatement is a standalone do..end scope.
type DoStatement struct {
	body *Block
}

func NewDo(body *Block) *DoStatement {
	return &DoStatement{body: body}
}

func (s *DoStatement) Body() *Block { return s.body }

func (s *DoStatement) statementNode() {}

func (s *DoStatement) Render(g *Generator) {
	g.PushStr("do")
	s.body.Render(g)
	g.PushStr("end")
}

// AssignStatement assigns values to existing targets. Targets must be
// identifier, field or index expressions; the parser and rules only
// ever build those.
type AssignStatement struct {
	targets []Expression
	values  []Expression
}

func NewAssign(targets, values []Expression) *AssignStatement {
	return &AssignStatement{targets: targets, values: values}
}

// Targets returns the statement's backing target slice.
func (s *AssignStatement) Targets() []Expression { return s.targets }

// Values returns the statement's backing value slice.
func (s *AssignStatement) Values() []Expression { return s.values }

func (s *AssignStatement) statementNode() {}

func (s *AssignStatement) Render(g *Generator) {
	g.PushExpressions(s.targets)
	g.PushByte('=')
	g.PushExpressions(s.values)
}

// CallStatement is a function call in statement position.
type CallStatement struct {
	call *CallExpression
}

func NewCallStatement(call *CallExpression) *CallStatement {
	return &CallStatement{call: call}
}

func (s *CallStatement) Call() *CallExpression { return s.call }

func (s *CallStatement) statementNode() {}

func (s *CallStatement) Render(g *Generator) {
	s.call.Render(g)
}

// WhileStatement is a while..do..end loop.
type WhileStatement struct {
	condition Expression
	body      *Block
}

func NewWhile(condition Expression, body *Block) *WhileStatement {
	return &WhileStatement{condition: condition, body: body}
}

func (s *WhileStatement) Condition() Expression { return s.condition }

func (s *WhileStatement) SetCondition(condition Expression) { s.condition = condition }

func (s *WhileStatement) Body() *Block { return s.body }

func (s *WhileStatement) statementNode() {}

func (s *WhileStatement) Render(g *Generator) {
	g.PushStr("while")
	s.condition.Render(g)
	g.PushStr("do")
	s.body.Render(g)
	g.PushStr("end")
}

// RepeatStatement is a repeat..until loop. The condition is evaluated
// in the body's scope.
type RepeatStatement struct {
	body      *Block
	condition Expression
}

func NewRepeat(body *Block, condition Expression) *RepeatStatement {
	return &RepeatStatement{body: body, condition: condition}
}

func (s *RepeatStatement) Body() *Block { return s.body }

func (s *RepeatStatement) Condition() Expression { return s.condition }

func (s *RepeatStatement) SetCondition(condition Expression) { s.condition = condition }

func (s *RepeatStatement) statementNode() {}

func (s *RepeatStatement) Render(g *Generator) {
	g.PushStr("repeat")
	s.body.Render(g)
	g.PushStr("until")
	s.condition.Render(g)
}

// IfBranch is one condition/body pair of an if statement.
type IfBranch struct {
	condition Expression
	body      *Block
}

func NewIfBranch(condition Expression, body *Block) *IfBranch {
	return &IfBranch{condition: condition, body: body}
}

func (b *IfBranch) Condition() Expression { return b.condition }

func (b *IfBranch) SetCondition(condition Expression) { b.condition = condition }

func (b *IfBranch) Body() *Block { return b.body }

// IfStatement is an if/elseif/else chain with at least one branch.
type IfStatement struct {
	branches  []*IfBranch
	elseBlock *Block
}

func NewIf(condition Expression, body *Block) *IfStatement {
	return &IfStatement{branches: []*IfBranch{NewIfBranch(condition, body)}}
}

// AddBranch appends an elseif branch.
func (s *IfStatement) AddBranch(condition Expression, body *Block) {
	s.branches = append(s.branches, NewIfBranch(condition, body))
}

func (s *IfStatement) Branches() []*IfBranch { return s.branches }

func (s *IfStatement) ElseBlock() *Block { return s.elseBlock }

func (s *IfStatement) SetElseBlock(body *Block) { s.elseBlock = body }

func (s *IfStatement) statementNode() {}

func (s *IfStatement) Render(g *Generator) {
	for i, branch := range s.branches {
		if i == 0 {
			g.PushStr("if")
		} else {
			g.PushStr("elseif")
		}
		branch.condition.Render(g)
		g.PushStr("then")
		branch.body.Render(g)
	}
	if s.elseBlock != nil {
		g.PushStr("else")
		s.elseBlock.Render(g)
	}
	g.PushStr("end")
}

// NumericForStatement is a for v=start,limit[,step] loop.
type NumericForStatement struct {
	variable string
	start    Expression
	limit    Expression
	step     Expression // nil when omitted
	body     *Block
}

func NewNumericFor(variable string, start, limit, step Expression, body *Block) *NumericForStatement {
	return &NumericForStatement{
		variable: variable,
		start:    start,
		limit:    limit,
		step:     step,
		body:     body,
	}
}

func (s *NumericForStatement) Variable() string { return s.variable }

func (s *NumericForStatement) Start() Expression { return s.start }

func (s *NumericForStatement) SetStart(e Expression) { s.start = e }

func (s *NumericForStatement) Limit() Expression { return s.limit }

func (s *NumericForStatement) SetLimit(e Expression) { s.limit = e }

func (s *NumericForStatement) Step() Expression { return s.step }

func (s *NumericForStatement) SetStep(e Expression) { s.step = e }

func (s *NumericForStatement) Body() *Block { return s.body }

func (s *NumericForStatement) statementNode() {}

func (s *NumericForStatement) Render(g *Generator) {
	g.PushStr("for")
	g.PushStr(s.variable)
	g.PushByte('=')
	s.start.Render(g)
	g.PushByte(',')
	s.limit.Render(g)
	if s.step != nil {
		g.PushByte(',')
		s.step.Render(g)
	}
	g.PushStr("do")
	s.body.Render(g)
	g.PushStr("end")
}

// GenericForStatement is a for names in expressions loop.
type GenericForStatement struct {
	variables   []string
	expressions []Expression
	body        *Block
}

func NewGenericFor(variables []string, expressions []Expression, body *Block) *GenericForStatement {
	return &GenericForStatement{
		variables:   variables,
		expressions: expressions,
		body:        body,
	}
}

func (s *GenericForStatement) Variables() []string { return s.variables }

// Expressions returns the statement's backing iterator slice.
func (s *GenericForStatement) Expressions() []Expression { return s.expressions }

func (s *GenericForStatement) Body() *Block { return s.body }

func (s *GenericForStatement) statementNode() {}

func (s *GenericForStatement) Render(g *Generator) {
	g.PushStr("for")
	g.PushNames(s.variables)
	g.PushStr("in")
	g.PushExpressions(s.expressions)
	g.PushStr("do")
	s.body.Render(g)
	g.PushStr("end")
}

// FunctionName is the dotted, optionally method-suffixed name of a
// function statement (base.field1.field2:method).
type FunctionName struct {
	base   string
	fields []string
	method string // empty when not a method definition
}

func NewFunctionName(base string, fields []string, method string) *FunctionName {
	return &FunctionName{base: base, fields: fields, method: method}
}

func (n *FunctionName) Base() string { return n.base }

func (n *FunctionName) Fields() []string { return n.fields }

func (n *FunctionName) Method() string { return n.method }

func (n *FunctionName) Render(g *Generator) {
	g.PushStr(n.base)
	for _, field := range n.fields {
		g.PushByte('.')
		g.PushStr(field)
	}
	if n.method != "" {
		g.PushByte(':')
		g.PushStr(n.method)
	}
}

// FunctionStatement defines a function under a global or field name.
type FunctionStatement struct {
	name     *FunctionName
	function *FunctionExpression
}

func NewFunctionStatement(name *FunctionName, function *FunctionExpression) *FunctionStatement {
	return &FunctionStatement{name: name, function: function}
}

func (s *FunctionStatement) FunctionName() *FunctionName { return s.name }

func (s *FunctionStatement) Function() *FunctionExpression { return s.function }

func (s *FunctionStatement) statementNode() {}

func (s *FunctionStatement) Render(g *Generator) {
	g.PushStr("function")
	s.name.Render(g)
	s.function.renderSignatureAndBody(g)
}

// LocalFunctionStatement defines a function bound to a new local name.
// The name is in scope inside the body, which allows recursion.
type LocalFunctionStatement struct {
	name     string
	function *FunctionExpression
}

func NewLocalFunction(name string, function *FunctionExpression) *LocalFunctionStatement {
	return &LocalFunctionStatement{name: name, function: function}
}

func (s *LocalFunctionStatement) FunctionName() string { return s.name }

func (s *LocalFunctionStatement) Function() *FunctionExpression { return s.function }

func (s *LocalFunctionStatement) statementNode() {}

func (s *LocalFunctionStatement) Render(g *Generator) {
	g.PushStr("local")
	g.PushStr("function")
	g.PushStr(s.name)
	s.function.renderSignatureAndBody(g)
}

// ReturnStatement returns zero or more values; always the last
// statement of its block.
type ReturnStatement struct {
	values []Expression
}

func NewReturn(values ...Expression) *ReturnStatement {
	return &ReturnStatement{values: values}
}

// Values returns the statement's backing value slice.
func (s *ReturnStatement) Values() []Expression { return s.values }

func (s *ReturnStatement) statementNode() {}

func (s *ReturnStatement) Render(g *Generator) {
	g.PushStr("return")
	g.PushExpressions(s.values)
}

// BreakStatement exits the innermost loop; always the last statement
// of its block.
type BreakStatement struct{}

func NewBreak() *BreakStatement {
	return &BreakStatement{}
}

func (s *BreakStatement) statementNode() {}

func (s *BreakStatement) Render(g *Generator) {
	g.PushStr("break")
}
