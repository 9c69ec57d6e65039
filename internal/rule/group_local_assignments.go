package rule

import "github.com/minlua/minlua/internal/ast"

// GroupLocalAssignmentsName is the registry name of the
// GroupLocalAssignments rule.
const GroupLocalAssignmentsName = "group_local_assignments"

const defaultMaxVariables = 0

// GroupLocalAssignments merges consecutive local assignments into a
// single statement when the merge provably cannot change behavior:
// either both statements declare variables without values, or both are
// balanced (one value per variable) and the later statement's values
// are literals, so they cannot read the earlier statement's variables
// or carry side effects.
type GroupLocalAssignments struct {
	maxVariables uint64
}

// NewGroupLocalAssignments creates the rule with its default
// configuration (no limit on merged width).
func NewGroupLocalAssignments() *GroupLocalAssignments {
	return &GroupLocalAssignments{maxVariables: defaultMaxVariables}
}

func (r *GroupLocalAssignments) Process(block *ast.Block) {
	visitBlocks(block, r.groupBlock)
}

func (r *GroupLocalAssignments) groupBlock(b *ast.Block) {
	statements := b.Statements()
	grouped := make([]ast.Statement, 0, len(statements))
	for _, statement := range statements {
		local, ok := statement.(*ast.LocalAssignStatement)
		if ok && len(grouped) > 0 {
			if previous, isLocal := grouped[len(grouped)-1].(*ast.LocalAssignStatement); isLocal && r.canMerge(previous, local) {
				grouped[len(grouped)-1] = merge(previous, local)
				continue
			}
		}
		grouped = append(grouped, statement)
	}
	b.SetStatements(grouped)
}

func (r *GroupLocalAssignments) canMerge(first, second *ast.LocalAssignStatement) bool {
	width := uint64(len(first.Variables()) + len(second.Variables()))
	if r.maxVariables > 0 && width > r.maxVariables {
		return false
	}
	if hasCommonName(first.Variables(), second.Variables()) {
		return false
	}

	if len(first.Values()) == 0 && len(second.Values()) == 0 {
		return true
	}
	// Balanced assignments keep every variable paired with its own
	// value after the merge; literal values on the later statement
	// cannot reference the earlier variables or have side effects.
	if len(first.Values()) != len(first.Variables()) ||
		len(second.Values()) != len(second.Variables()) {
		return false
	}
	for _, value := range second.Values() {
		if !isLiteral(value) {
			return false
		}
	}
	return true
}

func merge(first, second *ast.LocalAssignStatement) *ast.LocalAssignStatement {
	variables := make([]string, 0, len(first.Variables())+len(second.Variables()))
	variables = append(variables, first.Variables()...)
	variables = append(variables, second.Variables()...)

	values := make([]ast.Expression, 0, len(first.Values())+len(second.Values()))
	values = append(values, first.Values()...)
	values = append(values, second.Values()...)

	return ast.NewLocalAssign(variables, values)
}

func hasCommonName(first, second []string) bool {
	for _, a := range first {
		for _, b := range second {
			if a == b {
				return true
			}
		}
	}
	return false
}

func isLiteral(expression ast.Expression) bool {
	switch expression.(type) {
	case *ast.NilExpression, *ast.BooleanExpression,
		*ast.NumberExpression, *ast.StringExpression:
		return true
	}
	return false
}

func (r *GroupLocalAssignments) Configure(properties Properties) error {
	for _, key := range properties.Keys() {
		switch key {
		case "max_variables":
			number, err := properties.ExpectUint(key)
			if err != nil {
				return err
			}
			r.maxVariables = number
		default:
			return &UnexpectedPropertyError{Property: key}
		}
	}
	return nil
}

func (r *GroupLocalAssignments) Name() string {
	return GroupLocalAssignmentsName
}

func (r *GroupLocalAssignments) Properties() Properties {
	properties := Properties{}
	if r.maxVariables != defaultMaxVariables {
		properties["max_variables"] = UintValue(r.maxVariables)
	}
	return properties
}
