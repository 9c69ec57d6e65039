package rule

import "github.com/minlua/minlua/internal/ast"

// visitBlocks calls visit on every block reachable from block,
// including function bodies nested inside expressions. Children are
// visited before their parent, so a rule that empties a nested block
// sees the result when its enclosing block is visited.
func visitBlocks(block *ast.Block, visit func(*ast.Block)) {
	for _, statement := range block.Statements() {
		switch s := statement.(type) {
		case *ast.LocalAssignStatement:
			visitExpressionBlocks(s.Values(), visit)
		case *ast.AssignStatement:
			visitExpressionBlocks(s.Targets(), visit)
			visitExpressionBlocks(s.Values(), visit)
		case *ast.CallStatement:
			expressionBlocks(s.Call(), visit)
		case *ast.DoStatement:
			visitBlocks(s.Body(), visit)
		case *ast.WhileStatement:
			expressionBlocks(s.Condition(), visit)
			visitBlocks(s.Body(), visit)
		case *ast.RepeatStatement:
			visitBlocks(s.Body(), visit)
			expressionBlocks(s.Condition(), visit)
		case *ast.IfStatement:
			for _, branch := range s.Branches() {
				expressionBlocks(branch.Condition(), visit)
				visitBlocks(branch.Body(), visit)
			}
			if s.ElseBlock() != nil {
				visitBlocks(s.ElseBlock(), visit)
			}
		case *ast.NumericForStatement:
			expressionBlocks(s.Start(), visit)
			expressionBlocks(s.Limit(), visit)
			if s.Step() != nil {
				expressionBlocks(s.Step(), visit)
			}
			visitBlocks(s.Body(), visit)
		case *ast.GenericForStatement:
			visitExpressionBlocks(s.Expressions(), visit)
			visitBlocks(s.Body(), visit)
		case *ast.FunctionStatement:
			visitBlocks(s.Function().Body(), visit)
		case *ast.LocalFunctionStatement:
			visitBlocks(s.Function().Body(), visit)
		case *ast.ReturnStatement:
			visitExpressionBlocks(s.Values(), visit)
		}
	}
	visit(block)
}

func visitExpressionBlocks(expressions []ast.Expression, visit func(*ast.Block)) {
	for _, expression := range expressions {
		expressionBlocks(expression, visit)
	}
}

// expressionBlocks finds blocks nested inside an expression, which can
// only come from function literals.
func expressionBlocks(expression ast.Expression, visit func(*ast.Block)) {
	switch e := expression.(type) {
	case *ast.BinaryExpression:
		expressionBlocks(e.Left(), visit)
		expressionBlocks(e.Right(), visit)
	case *ast.UnaryExpression:
		expressionBlocks(e.Expression(), visit)
	case *ast.ParenthesesExpression:
		expressionBlocks(e.Inner(), visit)
	case *ast.CallExpression:
		expressionBlocks(e.Prefix(), visit)
		visitExpressionBlocks(e.Arguments(), visit)
	case *ast.IndexExpression:
		expressionBlocks(e.Prefix(), visit)
		expressionBlocks(e.Key(), visit)
	case *ast.FieldExpression:
		expressionBlocks(e.Prefix(), visit)
	case *ast.FunctionExpression:
		visitBlocks(e.Body(), visit)
	case *ast.TableExpression:
		for _, entry := range e.Entries() {
			switch en := entry.(type) {
			case *ast.TableValueEntry:
				expressionBlocks(en.Value(), visit)
			case *ast.TableFieldEntry:
				expressionBlocks(en.Value(), visit)
			case *ast.TableIndexEntry:
				expressionBlocks(en.Key(), visit)
				expressionBlocks(en.Value(), visit)
			}
		}
	}
}
