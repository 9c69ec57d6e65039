package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func injectText(t *testing.T, identifier, value string) Rule {
	t.Helper()
	r := NewInjectGlobalValue()
	require.NoError(t, r.Configure(Properties{
		"identifier": TextValue(identifier),
		"value":      TextValue(value),
	}))
	return r
}

func TestInjectGlobalValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rule     Rule
		source   string
		expected string
	}{
		{
			name:     "replaces a global read",
			rule:     injectText(t, "VERSION", "1.0"),
			source:   "return VERSION",
			expected: `return"1.0"`,
		},
		{
			name:     "replaces inside expressions and arguments",
			rule:     injectText(t, "DEBUG", "on"),
			source:   "print(DEBUG, DEBUG == nil)",
			expected: `print("on","on"==nil)`,
		},
		{
			name:     "leaves locally bound occurrences",
			rule:     injectText(t, "VERSION", "1.0"),
			source:   "local VERSION = 2 return VERSION",
			expected: "local VERSION=2 return VERSION",
		},
		{
			name:     "replaces reads before the local declaration",
			rule:     injectText(t, "VERSION", "1.0"),
			source:   "local VERSION = VERSION return VERSION",
			expected: `local VERSION="1.0"return VERSION`,
		},
		{
			name:     "leaves occurrences bound by a parameter",
			rule:     injectText(t, "x", "no"),
			source:   "local f = function(x) return x end return x",
			expected: `local f=function(x)return x end return"no"`,
		},
		{
			name:     "leaves occurrences bound by a numeric for variable",
			rule:     injectText(t, "i", "no"),
			source:   "for i = 1, 10 do print(i) end",
			expected: "for i=1,10 do print(i)end",
		},
		{
			name:     "leaves occurrences bound by a generic for variable",
			rule:     injectText(t, "k", "no"),
			source:   "for k in pairs(t) do print(k) end print(k)",
			expected: `for k in pairs(t)do print(k)end print("no")`,
		},
		{
			name:     "repeat condition sees the body scope",
			rule:     injectText(t, "done", "no"),
			source:   "repeat local done = f() until done",
			expected: "repeat local done=f()until done",
		},
		{
			name:     "repeat condition is replaced when the body does not bind it",
			rule:     injectText(t, "done", "yes"),
			source:   "repeat f() until done",
			expected: `repeat f()until"yes"`,
		},
		{
			name:     "local function name binds inside its own body",
			rule:     injectText(t, "f", "no"),
			source:   "local function f() return f end",
			expected: "local function f()return f end",
		},
		{
			name:     "method bodies bind self",
			rule:     injectText(t, "self", "no"),
			source:   "function a:b() return self end",
			expected: "function a:b()return self end",
		},
		{
			name:     "write targets stay untouched",
			rule:     injectText(t, "g", "no"),
			source:   "g = 1",
			expected: "g=1",
		},
		{
			name:     "reads inside write targets are replaced",
			rule:     injectText(t, "g", "k"),
			source:   "t[g] = 1",
			expected: `t["k"]=1`,
		},
		{
			name:     "injected call prefix gets parentheses",
			rule:     injectText(t, "f", "lib"),
			source:   "f()",
			expected: `("lib")()`,
		},
		{
			name:     "injected field prefix gets parentheses",
			rule:     injectText(t, "m", "lib"),
			source:   "return m.version",
			expected: `return("lib").version`,
		},
		{
			name:     "table entries are replaced",
			rule:     injectText(t, "V", "1"),
			source:   "return {V, x = V, [V] = V}",
			expected: `return{"1",x="1",["1"]="1"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, processSource(t, tt.rule, tt.source))
		})
	}
}

func TestInjectGlobalValueUintValue(t *testing.T) {
	t.Parallel()

	r := NewInjectGlobalValue()
	require.NoError(t, r.Configure(Properties{
		"identifier": TextValue("LEVEL"),
		"value":      UintValue(3),
	}))

	assert.Equal(t, "return 3+1", processSource(t, r, "return LEVEL + 1"))
}

func TestInjectGlobalValueDefaultsToNil(t *testing.T) {
	t.Parallel()

	r := NewInjectGlobalValue()
	require.NoError(t, r.Configure(Properties{
		"identifier": TextValue("UNSET"),
	}))

	assert.Equal(t, "return nil", processSource(t, r, "return UNSET"))
}

func TestInjectGlobalValueWithoutIdentifierIsNoop(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "return x",
		processSource(t, NewInjectGlobalValue(), "return x"))
}

func TestInjectGlobalValueConfigure(t *testing.T) {
	t.Parallel()

	r := NewInjectGlobalValue()
	err := r.Configure(Properties{"identifier": UintValue(1)})
	assert.EqualError(t, err, "string value expected for field 'identifier'")

	err = r.Configure(Properties{"env": TextValue("prod")})
	assert.EqualError(t, err, "unexpected field 'env'")
}

func TestInjectGlobalValueProperties(t *testing.T) {
	t.Parallel()

	r := NewInjectGlobalValue()
	assert.Empty(t, r.Properties())

	require.NoError(t, r.Configure(Properties{
		"identifier": TextValue("VERSION"),
		"value":      UintValue(2),
	}))
	assert.Equal(t, Properties{
		"identifier": TextValue("VERSION"),
		"value":      UintValue(2),
	}, r.Properties())
}
