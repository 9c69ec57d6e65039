package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func render(node Node) string {
	g := NewGenerator()
	node.Render(g)
	return g.String()
}

func TestRenderLocalAssign(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		statement *LocalAssignStatement
		expected  string
	}{
		{
			name: "single variable with value",
			statement: LocalAssignFromVariable("var").
				WithValue(NewBoolean(false)),
			expected: "local var=false",
		},
		{
			name:      "single variable without value",
			statement: LocalAssignFromVariable("var"),
			expected:  "local var",
		},
		{
			name: "multiple variables without values",
			statement: LocalAssignFromVariable("a").
				WithVariable("b"),
			expected: "local a,b",
		},
		{
			name: "multiple variables with values",
			statement: LocalAssignFromVariable("a").
				WithVariable("b").
				WithValue(NewNumber("1")).
				WithValue(NewBoolean(true)),
			expected: "local a,b=1,true",
		},
		{
			name: "fewer values than variables",
			statement: NewLocalAssign(
				[]string{"a", "b", "c"},
				[]Expression{NewNumber("1")},
			),
			expected: "local a,b,c=1",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, render(tt.statement))
		})
	}
}

func TestRenderStatements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		statement Statement
		expected  string
	}{
		{
			name:      "empty do",
			statement: NewDo(NewBlock()),
			expected:  "do end",
		},
		{
			name: "while with break",
			statement: NewWhile(
				NewBoolean(true),
				NewBlock(NewBreak()),
			),
			expected: "while true do break end",
		},
		{
			name: "repeat until",
			statement: NewRepeat(
				NewBlock(),
				NewIdentifier("x"),
			),
			expected: "repeat until x",
		},
		{
			name: "if with return",
			statement: NewIf(
				NewIdentifier("x"),
				NewBlock(NewReturn(NewNumber("1"))),
			),
			expected: "if x then return 1 end",
		},
		{
			name: "numeric for",
			statement: NewNumericFor(
				"i",
				NewNumber("1"), NewNumber("10"), nil,
				NewBlock(),
			),
			expected: "for i=1,10 do end",
		},
		{
			name: "numeric for with step",
			statement: NewNumericFor(
				"i",
				NewNumber("1"), NewNumber("10"), NewNumber("2"),
				NewBlock(),
			),
			expected: "for i=1,10,2 do end",
		},
		{
			name: "generic for",
			statement: NewGenericFor(
				[]string{"k", "v"},
				[]Expression{NewCall(NewIdentifier("pairs"), NewIdentifier("t"))},
				NewBlock(),
			),
			expected: "for k,v in pairs(t)do end",
		},
		{
			name: "assignment",
			statement: NewAssign(
				[]Expression{NewField(NewIdentifier("a"), "b")},
				[]Expression{NewNumber("1")},
			),
			expected: "a.b=1",
		},
		{
			name: "function statement with method",
			statement: NewFunctionStatement(
				NewFunctionName("a", []string{"b"}, "c"),
				NewFunction(nil, false, NewBlock()),
			),
			expected: "function a.b:c()end",
		},
		{
			name: "local function",
			statement: NewLocalFunction(
				"f",
				NewFunction([]string{"x"}, false, NewBlock(NewReturn(NewIdentifier("x")))),
			),
			expected: "local function f(x)return x end",
		},
		{
			name:      "return with multiple values",
			statement: NewReturn(NewNumber("1"), NewNumber("2")),
			expected:  "return 1,2",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, render(tt.statement))
		})
	}
}

func TestRenderExpressions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		expression Expression
		expected   string
	}{
		{
			name:       "nil literal",
			expression: NewNil(),
			expected:   "nil",
		},
		{
			name:       "vararg",
			expression: NewVarArg(),
			expected:   "...",
		},
		{
			name: "double unary minus keeps a separating space",
			expression: NewUnary("-",
				NewUnary("-", NewIdentifier("x"))),
			expected: "- -x",
		},
		{
			name: "number before concat keeps a separating space",
			expression: NewBinary("..",
				NewNumber("1"), NewNumber("2")),
			expected: "1 ..2",
		},
		{
			name: "concat before a dot number keeps a separating space",
			expression: NewBinary("..",
				NewIdentifier("a"), NewNumber(".5")),
			expected: "a.. .5",
		},
		{
			name: "trailing dot number before concat keeps a separating space",
			expression: NewBinary("..",
				NewNumber("1."), NewNumber("2")),
			expected: "1. ..2",
		},
		{
			name:       "not",
			expression: NewUnary("not", NewBoolean(true)),
			expected:   "not true",
		},
		{
			name:       "and keeps word spacing",
			expression: NewBinary("and", NewIdentifier("a"), NewIdentifier("b")),
			expected:   "a and b",
		},
		{
			name:       "comparison needs no spacing",
			expression: NewBinary("==", NewIdentifier("a"), NewNumber("1")),
			expected:   "a==1",
		},
		{
			name:       "method call with string argument",
			expression: NewMethodCall(NewIdentifier("a"), "b", NewString("x")),
			expected:   `a:b("x")`,
		},
		{
			name:       "index",
			expression: NewIndex(NewIdentifier("a"), NewNumber("1")),
			expected:   "a[1]",
		},
		{
			name: "table with all entry kinds",
			expression: NewTable(
				NewTableValueEntry(NewNumber("1")),
				NewTableFieldEntry("x", NewNumber("2")),
				NewTableIndexEntry(NewIdentifier("k"), NewNumber("3")),
			),
			expected: "{1,x=2,[k]=3}",
		},
		{
			name:       "string escapes",
			expression: NewString("a\"b\n\\"),
			expected:   `"a\"b\n\\"`,
		},
		{
			name: "parentheses",
			expression: NewBinary("*",
				NewParentheses(NewBinary("+", NewNumber("1"), NewNumber("2"))),
				NewNumber("3")),
			expected: "(1+2)*3",
		},
		{
			name: "function expression",
			expression: NewFunction([]string{"a"}, true,
				NewBlock(NewReturn(NewVarArg()))),
			expected: "function(a,...)return...end",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, render(tt.expression))
		})
	}
}

func TestRenderSeparatesParenthesisStatements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		block    *Block
		expected string
	}{
		{
			name: "call statement opening with a parenthesis",
			block: NewBlock(
				NewLocalAssign([]string{"a"}, []Expression{NewIdentifier("b")}),
				NewCallStatement(NewCall(NewParentheses(NewIdentifier("f")), NewIdentifier("a"))),
			),
			expected: "local a=b;(f)(a)",
		},
		{
			name: "assignment target opening with a parenthesis",
			block: NewBlock(
				NewAssign([]Expression{NewIdentifier("b")}, []Expression{NewNumber("1")}),
				NewAssign(
					[]Expression{NewField(NewParentheses(NewIdentifier("t")), "x")},
					[]Expression{NewNumber("2")},
				),
			),
			expected: "b=1;(t).x=2",
		},
		{
			name: "first statement needs no separator",
			block: NewBlock(
				NewCallStatement(NewCall(NewParentheses(NewIdentifier("f")))),
			),
			expected: "(f)()",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, render(tt.block))
		})
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	statement := NewIf(
		NewBinary("and", NewIdentifier("a"), NewIdentifier("b")),
		NewBlock(NewReturn(NewTable(NewTableFieldEntry("x", NewNumber("1"))))),
	)
	statement.AddBranch(NewIdentifier("c"), NewBlock(NewBreak()))
	statement.SetElseBlock(NewBlock())

	first := render(statement)
	second := render(statement)
	assert.Equal(t, first, second)
	assert.Equal(t, "if a and b then return{x=1}elseif c then break else end", first)
}
