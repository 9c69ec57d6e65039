package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minlua/minlua/internal/ast"
	"github.com/minlua/minlua/internal/parser"
)

// processSource parses the source, applies the rule and renders the
// result back to compact Lua.
func processSource(t *testing.T, r Rule, source string) string {
	t.Helper()
	block, err := parser.Parse([]byte(source))
	require.NoError(t, err)

	r.Process(block)

	g := ast.NewGenerator()
	block.Render(g)
	return g.String()
}

func TestRemoveEmptyDo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{
			name:     "removes an empty do next to another statement",
			source:   "do end local var = false",
			expected: "local var=false",
		},
		{
			name:     "removes every empty do in a block",
			source:   "do end do end do end",
			expected: "",
		},
		{
			name:     "collapses nested do statements bottom up",
			source:   "do do end end",
			expected: "",
		},
		{
			name:     "keeps a do with a body",
			source:   "do local a = 1 end",
			expected: "do local a=1 end",
		},
		{
			name:     "removes inside control structures",
			source:   "if x then do end return 1 end",
			expected: "if x then return 1 end",
		},
		{
			name:     "removes inside function expressions",
			source:   "local f = function() do end return 1 end",
			expected: "local f=function()return 1 end",
		},
		{
			name:     "removes inside repeat bodies",
			source:   "repeat do end until x",
			expected: "repeat until x",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, processSource(t, NewRemoveEmptyDo(), tt.source))
		})
	}
}

func TestRemoveEmptyDoConfigure(t *testing.T) {
	t.Parallel()

	r := NewRemoveEmptyDo()
	require.NoError(t, r.Configure(Properties{}))

	err := r.Configure(Properties{"depth": UintValue(1)})
	assert.EqualError(t, err, "unexpected field 'depth'")
}

func TestRemoveEmptyDoProperties(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NewRemoveEmptyDo().Properties())
}
