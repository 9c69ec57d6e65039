package ast

// NilExpression is the nil literal.
type NilExpression struct{}

func NewNil() *NilExpression { return &NilExpression{} }

func (e *NilExpression) expressionNode() {}

func (e *NilExpression) Render(g *Generator) { g.PushStr("nil") }

// BooleanExpression is the true or false literal.
type BooleanExpression struct {
	value bool
}

func NewBoolean(value bool) *BooleanExpression {
	return &BooleanExpression{value: value}
}

func (e *BooleanExpression) Value() bool { return e.value }

func (e *BooleanExpression) expressionNode() {}

func (e *BooleanExpression) Render(g *Generator) {
	if e.value {
		g.PushStr("true")
	} else {
		g.PushStr("false")
	}
}

// NumberExpression is a number literal, kept as written in the source.
type NumberExpression struct {
	literal string
}

func NewNumber(literal string) *NumberExpression {
	return &NumberExpression{literal: literal}
}

func (e *NumberExpression) Literal() string { return e.literal }

func (e *NumberExpression) expressionNode() {}

func (e *NumberExpression) Render(g *Generator) { g.PushStr(e.literal) }

// StringExpression is a string literal holding the decoded value.
type StringExpression struct {
	value string
}

func NewString(value string) *StringExpression {
	return &StringExpression{value: value}
}

func (e *StringExpression) Value() string { return e.value }

func (e *StringExpression) expressionNode() {}

func (e *StringExpression) Render(g *Generator) {
	g.PushStr(quoteString(e.value))
}

// VarArgExpression is the ... expression.
type VarArgExpression struct{}

func NewVarArg() *VarArgExpression { return &VarArgExpression{} }

func (e *VarArgExpression) expressionNode() {}

func (e *VarArgExpression) Render(g *Generator) { g.PushStr("...") }

// IdentifierExpression is a variable reference.
type IdentifierExpression struct {
	name string
}

func NewIdentifier(name string) *IdentifierExpression {
	return &IdentifierExpression{name: name}
}

func (e *IdentifierExpression) Name() string { return e.name }

func (e *IdentifierExpression) expressionNode() {}

func (e *IdentifierExpression) Render(g *Generator) { g.PushStr(e.name) }

// BinaryExpression applies a binary operator. Operand grouping follows
// the tree structure; explicit source parentheses are kept as
// ParenthesesExpression nodes.
type BinaryExpression struct {
	operator string
	left     Expression
	right    Expression
}

func NewBinary(operator string, left, right Expression) *BinaryExpression {
	return &BinaryExpression{operator: operator, left: left, right: right}
}

func (e *BinaryExpression) Operator() string { return e.operator }

func (e *BinaryExpression) Left() Expression { return e.left }

func (e *BinaryExpression) SetLeft(left Expression) { e.left = left }

func (e *BinaryExpression) Right() Expression { return e.right }

func (e *BinaryExpression) SetRight(right Expression) { e.right = right }

func (e *BinaryExpression) expressionNode() {}

func (e *BinaryExpression) Render(g *Generator) {
	e.left.Render(g)
	g.PushStr(e.operator)
	e.right.Render(g)
}

// UnaryExpression applies a unary operator (not, -, #).
type UnaryExpression struct {
	operator   string
	expression Expression
}

func NewUnary(operator string, expression Expression) *UnaryExpression {
	return &UnaryExpression{operator: operator, expression: expression}
}

func (e *UnaryExpression) Operator() string { return e.operator }

func (e *UnaryExpression) Expression() Expression { return e.expression }

func (e *UnaryExpression) SetExpression(expression Expression) { e.expression = expression }

func (e *UnaryExpression) expressionNode() {}

func (e *UnaryExpression) Render(g *Generator) {
	g.PushStr(e.operator)
	e.expression.Render(g)
}

// ParenthesesExpression keeps explicit parentheses from the source,
// which also truncates multiple values to one.
type ParenthesesExpression struct {
	inner Expression
}

func NewParentheses(inner Expression) *ParenthesesExpression {
	return &ParenthesesExpression{inner: inner}
}

func (e *ParenthesesExpression) Inner() Expression { return e.inner }

func (e *ParenthesesExpression) SetInner(inner Expression) { e.inner = inner }

func (e *ParenthesesExpression) expressionNode() {}

func (e *ParenthesesExpression) Render(g *Generator) {
	g.PushByte('(')
	e.inner.Render(g)
	g.PushByte(')')
}

// CallExpression calls prefix(arguments), or prefix:method(arguments)
// when method is set.
type CallExpression struct {
	prefix    Expression
	method    string
	arguments []Expression
}

func NewCall(prefix Expression, arguments ...Expression) *CallExpression {
	return &CallExpression{prefix: prefix, arguments: arguments}
}

func NewMethodCall(prefix Expression, method string, arguments ...Expression) *CallExpression {
	return &CallExpression{prefix: prefix, method: method, arguments: arguments}
}

func (e *CallExpression) Prefix() Expression { return e.prefix }

func (e *CallExpression) SetPrefix(prefix Expression) { e.prefix = prefix }

func (e *CallExpression) Method() string { return e.method }

// Arguments returns the call's backing argument slice.
func (e *CallExpression) Arguments() []Expression { return e.arguments }

func (e *CallExpression) expressionNode() {}

func (e *CallExpression) Render(g *Generator) {
	e.prefix.Render(g)
	if e.method != "" {
		g.PushByte(':')
		g.PushStr(e.method)
	}
	g.PushByte('(')
	g.PushExpressions(e.arguments)
	g.PushByte(')')
}

// IndexExpression is prefix[key].
type IndexExpression struct {
	prefix Expression
	key    Expression
}

func NewIndex(prefix, key Expression) *IndexExpression {
	return &IndexExpression{prefix: prefix, key: key}
}

func (e *IndexExpression) Prefix() Expression { return e.prefix }

func (e *IndexExpression) SetPrefix(prefix Expression) { e.prefix = prefix }

func (e *IndexExpression) Key() Expression { return e.key }

func (e *IndexExpression) SetKey(key Expression) { e.key = key }

func (e *IndexExpression) expressionNode() {}

func (e *IndexExpression) Render(g *Generator) {
	e.prefix.Render(g)
	g.PushByte('[')
	e.key.Render(g)
	g.PushByte(']')
}

// FieldExpression is prefix.name.
type FieldExpression struct {
	prefix Expression
	name   string
}

func NewField(prefix Expression, name string) *FieldExpression {
	return &FieldExpression{prefix: prefix, name: name}
}

func (e *FieldExpression) Prefix() Expression { return e.prefix }

func (e *FieldExpression) SetPrefix(prefix Expression) { e.prefix = prefix }

func (e *FieldExpression) Name() string { return e.name }

func (e *FieldExpression) expressionNode() {}

func (e *FieldExpression) Render(g *Generator) {
	e.prefix.Render(g)
	g.PushByte('.')
	g.PushStr(e.name)
}

// FunctionExpression is an anonymous function literal.
type FunctionExpression struct {
	parameters []string
	isVariadic bool
	body       *Block
}

func NewFunction(parameters []string, isVariadic bool, body *Block) *FunctionExpression {
	return &FunctionExpression{
		parameters: parameters,
		isVariadic: isVariadic,
		body:       body,
	}
}

func (e *FunctionExpression) Parameters() []string { return e.parameters }

func (e *FunctionExpression) IsVariadic() bool { return e.isVariadic }

func (e *FunctionExpression) Body() *Block { return e.body }

func (e *FunctionExpression) expressionNode() {}

func (e *FunctionExpression) Render(g *Generator) {
	g.PushStr("function")
	e.renderSignatureAndBody(g)
}

func (e *FunctionExpression) renderSignatureAndBody(g *Generator) {
	g.PushByte('(')
	g.PushNames(e.parameters)
	if e.isVariadic {
		if len(e.parameters) > 0 {
			g.PushByte(',')
		}
		g.PushStr("...")
	}
	g.PushByte(')')
	e.body.Render(g)
	g.PushStr("end")
}
