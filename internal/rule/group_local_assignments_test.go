package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupLocalAssignments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{
			name:     "merges declarations without values",
			source:   "local a local b local c",
			expected: "local a,b,c",
		},
		{
			name:     "merges balanced assignments with literal values",
			source:   "local a = 1 local b = true",
			expected: "local a,b=1,true",
		},
		{
			name:     "merges a chain of balanced assignments",
			source:   `local a = 1 local b = "x" local c = nil`,
			expected: `local a,b,c=1,"x",nil`,
		},
		{
			name:     "keeps assignments whose later value is a call",
			source:   "local a = 1 local b = f()",
			expected: "local a=1 local b=f()",
		},
		{
			name:     "keeps assignments whose later value reads a variable",
			source:   "local a = 1 local b = a",
			expected: "local a=1 local b=a",
		},
		{
			name:     "keeps unbalanced assignments",
			source:   "local a, b = f() local c = 1",
			expected: "local a,b=f()local c=1",
		},
		{
			name:     "keeps a declaration next to a valued assignment",
			source:   "local a local b = 1",
			expected: "local a local b=1",
		},
		{
			name:     "keeps shadowing declarations",
			source:   "local a = 1 local a = 2",
			expected: "local a=1 local a=2",
		},
		{
			name:     "skips over interleaved statements",
			source:   "local a = 1 print(a) local b = 2",
			expected: "local a=1 print(a)local b=2",
		},
		{
			name:     "merges inside nested blocks",
			source:   "do local a local b end",
			expected: "do local a,b end",
		},
		{
			name:     "merges inside function bodies",
			source:   "local f = function() local a = 1 local b = 2 return a + b end",
			expected: "local f=function()local a,b=1,2 return a+b end",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, processSource(t, NewGroupLocalAssignments(), tt.source))
		})
	}
}

func TestGroupLocalAssignmentsMaxVariables(t *testing.T) {
	t.Parallel()

	r := NewGroupLocalAssignments()
	require.NoError(t, r.Configure(Properties{"max_variables": UintValue(2)}))

	// The third declaration would grow the group past the limit, so it
	// starts a new group instead.
	assert.Equal(t, "local a,b local c,d",
		processSource(t, r, "local a local b local c local d"))
}

func TestGroupLocalAssignmentsConfigure(t *testing.T) {
	t.Parallel()

	r := NewGroupLocalAssignments()
	err := r.Configure(Properties{"max_variables": TextValue("two")})
	assert.EqualError(t, err, "unsigned integer expected for field 'max_variables'")

	err = r.Configure(Properties{"limit": UintValue(2)})
	assert.EqualError(t, err, "unexpected field 'limit'")
}

func TestGroupLocalAssignmentsProperties(t *testing.T) {
	t.Parallel()

	r := NewGroupLocalAssignments()
	assert.Empty(t, r.Properties())

	require.NoError(t, r.Configure(Properties{"max_variables": UintValue(3)}))
	assert.Equal(t, Properties{"max_variables": UintValue(3)}, r.Properties())
}
