package parser

import "github.com/minlua/minlua/internal/ast"

// Binding powers from the Lua 5.1 reference grammar. The right power
// is lower for right-associative operators ('..' and '^').
type operatorPrecedence struct {
	left  int
	right int
}

var binaryPrecedence = map[string]operatorPrecedence{
	"or":  {1, 1},
	"and": {2, 2},
	"<":   {3, 3}, ">": {3, 3}, "<=": {3, 3}, ">=": {3, 3}, "~=": {3, 3}, "==": {3, 3},
	"..": {5, 4},
	"+":  {6, 6}, "-": {6, 6},
	"*": {7, 7}, "/": {7, 7}, "%": {7, 7},
	"^": {10, 9},
}

const unaryPrecedence = 8

func (p *parser) binaryOperator() (string, operatorPrecedence, bool) {
	text := p.tok.text
	switch p.tok.kind {
	case tokenSymbol, tokenKeyword:
		if precedence, ok := binaryPrecedence[text]; ok {
			return text, precedence, true
		}
	}
	return "", operatorPrecedence{}, false
}

func (p *parser) parseExpression(limit int) (ast.Expression, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	var left ast.Expression
	if operator, ok := p.unaryOperator(); ok {
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseExpression(unaryPrecedence)
		if err != nil {
			return nil, err
		}
		left = ast.NewUnary(operator, operand)
	} else {
		var err error
		left, err = p.parseSimpleExpression()
		if err != nil {
			return nil, err
		}
	}

	for {
		operator, precedence, ok := p.binaryOperator()
		if !ok || precedence.left <= limit {
			return left, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseExpression(precedence.right)
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(operator, left, right)
	}
}

func (p *parser) unaryOperator() (string, bool) {
	if p.isKeyword("not") {
		return "not", true
	}
	if p.isSymbol("-") || p.isSymbol("#") {
		return p.tok.text, true
	}
	return "", false
}

func (p *parser) parseSimpleExpression() (ast.Expression, error) {
	switch p.tok.kind {
	case tokenKeyword:
		switch p.tok.text {
		case "nil":
			return ast.NewNil(), p.advance()
		case "true":
			return ast.NewBoolean(true), p.advance()
		case "false":
			return ast.NewBoolean(false), p.advance()
		case "function":
			if err := p.advance(); err != nil {
				return nil, err
			}
			return p.parseFunctionBody()
		}
	case tokenNumber:
		literal := p.tok.text
		return ast.NewNumber(literal), p.advance()
	case tokenString:
		value := p.tok.text
		return ast.NewString(value), p.advance()
	case tokenSymbol:
		switch p.tok.text {
		case "...":
			return ast.NewVarArg(), p.advance()
		case "{":
			return p.parseTable()
		}
	}
	return p.parsePrefixExpression()
}

// parsePrefixExpression parses a primary expression followed by any
// chain of field, index, call and method-call suffixes.
func (p *parser) parsePrefixExpression() (ast.Expression, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	var expression ast.Expression
	switch {
	case p.tok.kind == tokenName:
		expression = ast.NewIdentifier(p.tok.text)
		if err := p.advance(); err != nil {
			return nil, err
		}
	case p.isSymbol("("):
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol(")"); err != nil {
			return nil, err
		}
		expression = ast.NewParentheses(inner)
	default:
		return nil, p.unexpected("expression")
	}

	for {
		switch {
		case p.isSymbol("."):
			if err := p.advance(); err != nil {
				return nil, err
			}
			name, err := p.expectName()
			if err != nil {
				return nil, err
			}
			expression = ast.NewField(expression, name)
		case p.isSymbol("["):
			if err := p.advance(); err != nil {
				return nil, err
			}
			key, err := p.parseExpression(0)
			if err != nil {
				return nil, err
			}
			if err := p.expectSymbol("]"); err != nil {
				return nil, err
			}
			expression = ast.NewIndex(expression, key)
		case p.isSymbol(":"):
			if err := p.advance(); err != nil {
				return nil, err
			}
			method, err := p.expectName()
			if err != nil {
				return nil, err
			}
			arguments, err := p.parseCallArguments()
			if err != nil {
				return nil, err
			}
			expression = ast.NewMethodCall(expression, method, arguments...)
		case p.isSymbol("(") || p.isSymbol("{") || p.tok.kind == tokenString:
			arguments, err := p.parseCallArguments()
			if err != nil {
				return nil, err
			}
			expression = ast.NewCall(expression, arguments...)
		default:
			return expression, nil
		}
	}
}

// parseCallArguments parses (list), a string argument or a table
// argument.
func (p *parser) parseCallArguments() ([]ast.Expression, error) {
	switch {
	case p.tok.kind == tokenString:
		value := p.tok.text
		return []ast.Expression{ast.NewString(value)}, p.advance()
	case p.isSymbol("{"):
		table, err := p.parseTable()
		if err != nil {
			return nil, err
		}
		return []ast.Expression{table}, nil
	case p.isSymbol("("):
		if err := p.advance(); err != nil {
			return nil, err
		}
		if ok, err := p.acceptSymbol(")"); err != nil {
			return nil, err
		} else if ok {
			return nil, nil
		}
		arguments, err := p.parseExpressionList()
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol(")"); err != nil {
			return nil, err
		}
		return arguments, nil
	}
	return nil, p.unexpected("function arguments")
}

func (p *parser) parseTable() (ast.Expression, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	if err := p.expectSymbol("{"); err != nil {
		return nil, err
	}
	var entries []ast.TableEntry
	for !p.isSymbol("}") {
		entry, err := p.parseTableEntry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)

		if p.isSymbol(",") || p.isSymbol(";") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expectSymbol("}"); err != nil {
		return nil, err
	}
	return ast.NewTable(entries...), nil
}

func (p *parser) parseTableEntry() (ast.TableEntry, error) {
	if p.isSymbol("[") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		key, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol("]"); err != nil {
			return nil, err
		}
		if err := p.expectSymbol("="); err != nil {
			return nil, err
		}
		value, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		return ast.NewTableIndexEntry(key, value), nil
	}

	if p.tok.kind == tokenName {
		next, err := p.peek()
		if err != nil {
			return nil, err
		}
		if next.kind == tokenSymbol && next.text == "=" {
			name := p.tok.text
			if err := p.advance(); err != nil {
				return nil, err
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			value, err := p.parseExpression(0)
			if err != nil {
				return nil, err
			}
			return ast.NewTableFieldEntry(name, value), nil
		}
	}

	value, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	return ast.NewTableValueEntry(value), nil
}
