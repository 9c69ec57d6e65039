package rule

import (
	"strconv"

	"github.com/minlua/minlua/internal/ast"
)

// InjectGlobalValueName is the registry name of the InjectGlobalValue
// rule.
const InjectGlobalValueName = "inject_global_value"

// InjectGlobalValue replaces every read of one global identifier with
// a literal value. Occurrences bound by a local declaration, function
// parameter or loop variable are left alone, as are write positions.
// With no identifier configured the rule is a no-op; with an
// identifier but no value it injects nil.
type InjectGlobalValue struct {
	identifier string
	value      PropertyValue
	hasValue   bool
}

// NewInjectGlobalValue creates the rule with its default configuration.
func NewInjectGlobalValue() *InjectGlobalValue {
	return &InjectGlobalValue{}
}

func (r *InjectGlobalValue) Process(block *ast.Block) {
	if r.identifier == "" {
		return
	}
	r.processBlock(block, nil)
}

// replacement builds a fresh literal for each injected occurrence so
// the tree stays strictly owned.
func (r *InjectGlobalValue) replacement() ast.Expression {
	if !r.hasValue {
		return ast.NewNil()
	}
	if text, ok := r.value.Text(); ok {
		return ast.NewString(text)
	}
	number, _ := r.value.Uint()
	return ast.NewNumber(strconv.FormatUint(number, 10))
}

// processBlock walks the block's statements with a copy of the outer
// scope and returns the scope as it stands after the last statement,
// which repeat..until needs for its condition.
func (r *InjectGlobalValue) processBlock(block *ast.Block, outer map[string]bool, extra ...string) map[string]bool {
	scope := make(map[string]bool, len(outer)+len(extra))
	for name := range outer {
		scope[name] = true
	}
	for _, name := range extra {
		scope[name] = true
	}

	for _, statement := range block.Statements() {
		switch s := statement.(type) {
		case *ast.LocalAssignStatement:
			// Values are evaluated before the names enter scope.
			r.rewriteAll(s.Values(), scope)
			for _, name := range s.Variables() {
				scope[name] = true
			}
		case *ast.AssignStatement:
			r.rewriteTargets(s.Targets(), scope)
			r.rewriteAll(s.Values(), scope)
		case *ast.CallStatement:
			r.rewriteCall(s.Call(), scope)
		case *ast.DoStatement:
			r.processBlock(s.Body(), scope)
		case *ast.WhileStatement:
			s.SetCondition(r.rewrite(s.Condition(), scope))
			r.processBlock(s.Body(), scope)
		case *ast.RepeatStatement:
			bodyScope := r.processBlock(s.Body(), scope)
			s.SetCondition(r.rewrite(s.Condition(), bodyScope))
		case *ast.IfStatement:
			for _, branch := range s.Branches() {
				branch.SetCondition(r.rewrite(branch.Condition(), scope))
				r.processBlock(branch.Body(), scope)
			}
			if s.ElseBlock() != nil {
				r.processBlock(s.ElseBlock(), scope)
			}
		case *ast.NumericForStatement:
			s.SetStart(r.rewrite(s.Start(), scope))
			s.SetLimit(r.rewrite(s.Limit(), scope))
			if s.Step() != nil {
				s.SetStep(r.rewrite(s.Step(), scope))
			}
			r.processBlock(s.Body(), scope, s.Variable())
		case *ast.GenericForStatement:
			r.rewriteAll(s.Expressions(), scope)
			r.processBlock(s.Body(), scope, s.Variables()...)
		case *ast.FunctionStatement:
			// The name is a write target; only the body is processed.
			r.processFunction(s.Function(), scope, s.FunctionName().Method() != "")
		case *ast.LocalFunctionStatement:
			// The local name binds before the body, allowing recursion.
			scope[s.FunctionName()] = true
			r.processFunction(s.Function(), scope, false)
		case *ast.ReturnStatement:
			r.rewriteAll(s.Values(), scope)
		}
	}
	return scope
}

func (r *InjectGlobalValue) processFunction(function *ast.FunctionExpression, scope map[string]bool, isMethod bool) {
	extra := function.Parameters()
	if isMethod {
		extra = append([]string{"self"}, extra...)
	}
	r.processBlock(function.Body(), scope, extra...)
}

func (r *InjectGlobalValue) rewrite(expression ast.Expression, scope map[string]bool) ast.Expression {
	switch e := expression.(type) {
	case *ast.IdentifierExpression:
		if e.Name() == r.identifier && !scope[e.Name()] {
			return r.replacement()
		}
	case *ast.BinaryExpression:
		e.SetLeft(r.rewrite(e.Left(), scope))
		e.SetRight(r.rewrite(e.Right(), scope))
	case *ast.UnaryExpression:
		e.SetExpression(r.rewrite(e.Expression(), scope))
	case *ast.ParenthesesExpression:
		e.SetInner(r.rewrite(e.Inner(), scope))
	case *ast.CallExpression:
		r.rewriteCall(e, scope)
	case *ast.IndexExpression:
		e.SetPrefix(r.rewritePrefix(e.Prefix(), scope))
		e.SetKey(r.rewrite(e.Key(), scope))
	case *ast.FieldExpression:
		e.SetPrefix(r.rewritePrefix(e.Prefix(), scope))
	case *ast.FunctionExpression:
		r.processFunction(e, scope, false)
	case *ast.TableExpression:
		for _, entry := range e.Entries() {
			switch en := entry.(type) {
			case *ast.TableValueEntry:
				en.SetValue(r.rewrite(en.Value(), scope))
			case *ast.TableFieldEntry:
				en.SetValue(r.rewrite(en.Value(), scope))
			case *ast.TableIndexEntry:
				en.SetKey(r.rewrite(en.Key(), scope))
				en.SetValue(r.rewrite(en.Value(), scope))
			}
		}
	}
	return expression
}

// rewritePrefix wraps an injected literal in parentheses, since a bare
// literal is not valid in call, index or field prefix position.
func (r *InjectGlobalValue) rewritePrefix(expression ast.Expression, scope map[string]bool) ast.Expression {
	rewritten := r.rewrite(expression, scope)
	switch rewritten.(type) {
	case *ast.NilExpression, *ast.BooleanExpression,
		*ast.NumberExpression, *ast.StringExpression:
		return ast.NewParentheses(rewritten)
	}
	return rewritten
}

func (r *InjectGlobalValue) rewriteCall(call *ast.CallExpression, scope map[string]bool) {
	call.SetPrefix(r.rewritePrefix(call.Prefix(), scope))
	r.rewriteAll(call.Arguments(), scope)
}

func (r *InjectGlobalValue) rewriteAll(expressions []ast.Expression, scope map[string]bool) {
	for i, expression := range expressions {
		expressions[i] = r.rewrite(expression, scope)
	}
}

// rewriteTargets rewrites the readable parts of assignment targets. A
// bare identifier target is a pure write and stays untouched; index
// and field targets evaluate their prefix and key as reads.
func (r *InjectGlobalValue) rewriteTargets(targets []ast.Expression, scope map[string]bool) {
	for _, target := range targets {
		switch t := target.(type) {
		case *ast.IndexExpression:
			t.SetPrefix(r.rewritePrefix(t.Prefix(), scope))
			t.SetKey(r.rewrite(t.Key(), scope))
		case *ast.FieldExpression:
			t.SetPrefix(r.rewritePrefix(t.Prefix(), scope))
		}
	}
}

func (r *InjectGlobalValue) Configure(properties Properties) error {
	for _, key := range properties.Keys() {
		switch key {
		case "identifier":
			text, err := properties.ExpectText(key)
			if err != nil {
				return err
			}
			r.identifier = text
		case "value":
			// Both text and unsigned integer values are accepted.
			r.value = properties[key]
			r.hasValue = true
		default:
			return &UnexpectedPropertyError{Property: key}
		}
	}
	return nil
}

func (r *InjectGlobalValue) Name() string {
	return InjectGlobalValueName
}

func (r *InjectGlobalValue) Properties() Properties {
	properties := Properties{}
	if r.identifier != "" {
		properties["identifier"] = TextValue(r.identifier)
	}
	if r.hasValue {
		properties["value"] = r.value
	}
	return properties
}
