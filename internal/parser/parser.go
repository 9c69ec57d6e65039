// Package parser turns Lua source text into a block. Nesting depth is
// explicitly bounded instead of relying on an oversized call stack, so
// pathological input fails with ErrNestingTooDeep rather than
// exhausting the process.
package parser

import (
	"errors"
	"fmt"

	"github.com/minlua/minlua/internal/ast"
)

// ErrNestingTooDeep is returned when blocks, expressions or tables
// nest deeper than maxNestingDepth.
var ErrNestingTooDeep = errors.New("nesting too deep")

const maxNestingDepth = 200

// Parse parses a complete chunk of Lua source.
func Parse(source []byte) (*ast.Block, error) {
	p := &parser{lex: newLexer(source)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokenEOF {
		return nil, p.unexpected("end of file")
	}
	return block, nil
}

type parser struct {
	lex    *lexer
	tok    token
	peeked *token
	depth  int
}

func (p *parser) advance() error {
	if p.peeked != nil {
		p.tok = *p.peeked
		p.peeked = nil
		return nil
	}
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) peek() (token, error) {
	if p.peeked == nil {
		tok, err := p.lex.next()
		if err != nil {
			return token{}, err
		}
		p.peeked = &tok
	}
	return *p.peeked, nil
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > maxNestingDepth {
		return ErrNestingTooDeep
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) unexpected(expected string) error {
	got := p.tok.text
	if p.tok.kind == tokenEOF {
		got = "<eof>"
	}
	return fmt.Errorf("%d:%d: expected %s, got '%s'", p.tok.line, p.tok.col, expected, got)
}

func (p *parser) isSymbol(text string) bool {
	return p.tok.kind == tokenSymbol && p.tok.text == text
}

func (p *parser) isKeyword(text string) bool {
	return p.tok.kind == tokenKeyword && p.tok.text == text
}

func (p *parser) acceptSymbol(text string) (bool, error) {
	if !p.isSymbol(text) {
		return false, nil
	}
	return true, p.advance()
}

func (p *parser) expectSymbol(text string) error {
	if !p.isSymbol(text) {
		return p.unexpected("'" + text + "'")
	}
	return p.advance()
}

func (p *parser) expectKeyword(text string) error {
	if !p.isKeyword(text) {
		return p.unexpected("'" + text + "'")
	}
	return p.advance()
}

func (p *parser) expectName() (string, error) {
	if p.tok.kind != tokenName {
		return "", p.unexpected("name")
	}
	name := p.tok.text
	return name, p.advance()
}

func (p *parser) blockEnds() bool {
	if p.tok.kind == tokenEOF {
		return true
	}
	if p.tok.kind != tokenKeyword {
		return false
	}
	switch p.tok.text {
	case "end", "else", "elseif", "until":
		return true
	}
	return false
}

func (p *parser) parseBlock() (*ast.Block, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	block := ast.NewBlock()
	for {
		if ok, err := p.acceptSymbol(";"); err != nil {
			return nil, err
		} else if ok {
			continue
		}
		if p.blockEnds() {
			return block, nil
		}

		// return and break close the block
		if p.isKeyword("return") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			var values []ast.Expression
			if !p.blockEnds() && !p.isSymbol(";") {
				var err error
				values, err = p.parseExpressionList()
				if err != nil {
					return nil, err
				}
			}
			if _, err := p.acceptSymbol(";"); err != nil {
				return nil, err
			}
			block.AddStatement(ast.NewReturn(values...))
			return block, nil
		}
		if p.isKeyword("break") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			if _, err := p.acceptSymbol(";"); err != nil {
				return nil, err
			}
			block.AddStatement(ast.NewBreak())
			return block, nil
		}

		statement, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.AddStatement(statement)
	}
}

func (p *parser) parseStatement() (ast.Statement, error) {
	if p.tok.kind == tokenKeyword {
		switch p.tok.text {
		case "local":
			return p.parseLocal()
		case "do":
			return p.parseDo()
		case "while":
			return p.parseWhile()
		case "repeat":
			return p.parseRepeat()
		case "if":
			return p.parseIf()
		case "for":
			return p.parseFor()
		case "function":
			return p.parseFunctionStatement()
		}
	}
	return p.parseExpressionStatement()
}

func (p *parser) parseLocal() (ast.Statement, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.isKeyword("function") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		name, err := p.expectName()
		if err != nil {
			return nil, err
		}
		function, err := p.parseFunctionBody()
		if err != nil {
			return nil, err
		}
		return ast.NewLocalFunction(name, function), nil
	}

	variables := []string{}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	variables = append(variables, name)
	for {
		ok, err := p.acceptSymbol(",")
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		name, err := p.expectName()
		if err != nil {
			return nil, err
		}
		variables = append(variables, name)
	}

	var values []ast.Expression
	if ok, err := p.acceptSymbol("="); err != nil {
		return nil, err
	} else if ok {
		values, err = p.parseExpressionList()
		if err != nil {
			return nil, err
		}
	}
	return ast.NewLocalAssign(variables, values), nil
}

func (p *parser) parseDo() (ast.Statement, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("end"); err != nil {
		return nil, err
	}
	return ast.NewDo(body), nil
}

func (p *parser) parseWhile() (ast.Statement, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("do"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("end"); err != nil {
		return nil, err
	}
	return ast.NewWhile(condition, body), nil
}

func (p *parser) parseRepeat() (ast.Statement, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("until"); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	return ast.NewRepeat(body, condition), nil
}

func (p *parser) parseIf() (ast.Statement, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("then"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	statement := ast.NewIf(condition, body)

	for p.isKeyword("elseif") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		condition, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword("then"); err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		statement.AddBranch(condition, body)
	}
	if p.isKeyword("else") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		statement.SetElseBlock(body)
	}
	if err := p.expectKeyword("end"); err != nil {
		return nil, err
	}
	return statement, nil
}

func (p *parser) parseFor() (ast.Statement, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}

	if ok, err := p.acceptSymbol("="); err != nil {
		return nil, err
	} else if ok {
		start, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol(","); err != nil {
			return nil, err
		}
		limit, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		var step ast.Expression
		if ok, err := p.acceptSymbol(","); err != nil {
			return nil, err
		} else if ok {
			step, err = p.parseExpression(0)
			if err != nil {
				return nil, err
			}
		}
		if err := p.expectKeyword("do"); err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword("end"); err != nil {
			return nil, err
		}
		return ast.NewNumericFor(name, start, limit, step, body), nil
	}

	variables := []string{name}
	for {
		ok, err := p.acceptSymbol(",")
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		name, err := p.expectName()
		if err != nil {
			return nil, err
		}
		variables = append(variables, name)
	}
	if err := p.expectKeyword("in"); err != nil {
		return nil, err
	}
	expressions, err := p.parseExpressionList()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("do"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("end"); err != nil {
		return nil, err
	}
	return ast.NewGenericFor(variables, expressions, body), nil
}

func (p *parser) parseFunctionStatement() (ast.Statement, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	base, err := p.expectName()
	if err != nil {
		return nil, err
	}
	var fields []string
	method := ""
	for {
		if ok, err := p.acceptSymbol("."); err != nil {
			return nil, err
		} else if ok {
			field, err := p.expectName()
			if err != nil {
				return nil, err
			}
			fields = append(fields, field)
			continue
		}
		break
	}
	if ok, err := p.acceptSymbol(":"); err != nil {
		return nil, err
	} else if ok {
		method, err = p.expectName()
		if err != nil {
			return nil, err
		}
	}
	function, err := p.parseFunctionBody()
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionStatement(ast.NewFunctionName(base, fields, method), function), nil
}

func (p *parser) parseFunctionBody() (*ast.FunctionExpression, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	if err := p.expectSymbol("("); err != nil {
		return nil, err
	}
	var parameters []string
	isVariadic := false
	if !p.isSymbol(")") {
		for {
			if p.isSymbol("...") {
				isVariadic = true
				if err := p.advance(); err != nil {
					return nil, err
				}
				break
			}
			name, err := p.expectName()
			if err != nil {
				return nil, err
			}
			parameters = append(parameters, name)
			if ok, err := p.acceptSymbol(","); err != nil {
				return nil, err
			} else if !ok {
				break
			}
		}
	}
	if err := p.expectSymbol(")"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("end"); err != nil {
		return nil, err
	}
	return ast.NewFunction(parameters, isVariadic, body), nil
}

func (p *parser) parseExpressionStatement() (ast.Statement, error) {
	expression, err := p.parsePrefixExpression()
	if err != nil {
		return nil, err
	}

	if call, ok := expression.(*ast.CallExpression); ok && !p.isSymbol(",") && !p.isSymbol("=") {
		return ast.NewCallStatement(call), nil
	}

	targets := []ast.Expression{expression}
	for {
		ok, err := p.acceptSymbol(",")
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		target, err := p.parsePrefixExpression()
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}
	for _, target := range targets {
		switch target.(type) {
		case *ast.IdentifierExpression, *ast.IndexExpression, *ast.FieldExpression:
		default:
			return nil, fmt.Errorf("%d:%d: cannot assign to this expression", p.tok.line, p.tok.col)
		}
	}
	if err := p.expectSymbol("="); err != nil {
		return nil, err
	}
	values, err := p.parseExpressionList()
	if err != nil {
		return nil, err
	}
	return ast.NewAssign(targets, values), nil
}

func (p *parser) parseExpressionList() ([]ast.Expression, error) {
	expression, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	expressions := []ast.Expression{expression}
	for {
		ok, err := p.acceptSymbol(",")
		if err != nil {
			return nil, err
		}
		if !ok {
			return expressions, nil
		}
		expression, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		expressions = append(expressions, expression)
	}
}
