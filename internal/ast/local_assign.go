package ast

// LocalAssignStatement declares local variables with optional initial
// values. The variable and value sequences are independently sized: a
// shorter, longer or empty value list is structurally legal and
// rendering adapts accordingly.
type LocalAssignStatement struct {
	variables []string
	values    []Expression
}

// NewLocalAssign creates a local assignment from explicit variable and
// value sequences.
func NewLocalAssign(variables []string, values []Expression) *LocalAssignStatement {
	return &LocalAssignStatement{variables: variables, values: values}
}

// LocalAssignFromVariable starts a local assignment declaring a single
// variable with no value.
func LocalAssignFromVariable(variable string) *LocalAssignStatement {
	return &LocalAssignStatement{variables: []string{variable}}
}

// WithVariable appends a variable and returns the statement for
// chaining.
func (s *LocalAssignStatement) WithVariable(variable string) *LocalAssignStatement {
	s.variables = append(s.variables, variable)
	return s
}

// WithValue appends a value and returns the statement for chaining.
func (s *LocalAssignStatement) WithValue(value Expression) *LocalAssignStatement {
	s.values = append(s.values, value)
	return s
}

// Variables returns the statement's backing variable slice.
func (s *LocalAssignStatement) Variables() []string {
	return s.variables
}

// Values returns the statement's backing value slice. Rules may
// rewrite elements in place.
func (s *LocalAssignStatement) Values() []Expression {
	return s.values
}

func (s *LocalAssignStatement) statementNode() {}

func (s *LocalAssignStatement) Render(g *Generator) {
	g.PushStr("local")
	g.PushNames(s.variables)
	if len(s.values) > 0 {
		g.PushByte('=')
		g.PushExpressions(s.values)
	}
}
