package rule

import "github.com/minlua/minlua/internal/ast"

// RemoveEmptyDoName is the registry name of the RemoveEmptyDo rule.
const RemoveEmptyDoName = "remove_empty_do"

// RemoveEmptyDo removes do..end statements with an empty body anywhere
// in the tree. An empty scope has no observable effect, so removal
// preserves behavior.
type RemoveEmptyDo struct{}

// NewRemoveEmptyDo creates the rule with its default configuration.
func NewRemoveEmptyDo() *RemoveEmptyDo {
	return &RemoveEmptyDo{}
}

func (r *RemoveEmptyDo) Process(block *ast.Block) {
	visitBlocks(block, func(b *ast.Block) {
		statements := b.Statements()
		filtered := statements[:0]
		for _, statement := range statements {
			if do, ok := statement.(*ast.DoStatement); ok && do.Body().IsEmpty() {
				continue
			}
			filtered = append(filtered, statement)
		}
		b.SetStatements(filtered)
	})
}

func (r *RemoveEmptyDo) Configure(properties Properties) error {
	if keys := properties.Keys(); len(keys) > 0 {
		return &UnexpectedPropertyError{Property: keys[0]}
	}
	return nil
}

func (r *RemoveEmptyDo) Name() string {
	return RemoveEmptyDoName
}

func (r *RemoveEmptyDo) Properties() Properties {
	return Properties{}
}
