package internal

import (
	"fmt"
	"os"
	"strings"

	"github.com/minlua/minlua/internal/ast"
	"github.com/minlua/minlua/internal/parser"
	"github.com/minlua/minlua/internal/rule"
	tt "github.com/minlua/minlua/internal/types"
)

// Engine holds an ordered rule sequence and applies it to blocks. Each
// rule runs exactly once per block, in sequence order, and sees the
// tree as mutated by all rules before it. There is no fixed-point
// iteration, reordering or skipping.
type Engine struct {
	rules []rule.Rule

	watcher *watcher
}

// NewEngine creates an engine running the given rules. A nil sequence
// selects the default pipeline.
func NewEngine(rules []rule.Rule) *Engine {
	if rules == nil {
		rules = rule.Default()
	}
	return &Engine{rules: rules}
}

// Rules returns the engine's ordered rule sequence.
func (e *Engine) Rules() []rule.Rule {
	return e.rules
}

// Process applies every rule, in order, to the same mutable block.
func (e *Engine) Process(block *ast.Block) {
	for _, r := range e.rules {
		r.Process(block)
	}
}

// ProcessSource parses source, runs the pipeline and renders the
// result.
func (e *Engine) ProcessSource(source []byte) (string, error) {
	block, err := parser.Parse(source)
	if err != nil {
		return "", fmt.Errorf("error parsing source: %w", err)
	}
	e.Process(block)

	g := ast.NewGenerator()
	block.Render(g)
	return g.String(), nil
}

// ProcessFile reads and processes one file.
func (e *Engine) ProcessFile(filename string) (tt.Result, error) {
	source, err := os.ReadFile(filename)
	if err != nil {
		return tt.Result{}, fmt.Errorf("error reading %s: %w", filename, err)
	}
	output, err := e.ProcessSource(source)
	if err != nil {
		return tt.Result{}, fmt.Errorf("%s: %w", filename, err)
	}
	return tt.Result{
		Filename:     filename,
		Output:       output,
		OriginalSize: len(source),
		MinifiedSize: len(output),
	}, nil
}

// HasLuaExtension reports whether the path names a Lua source file.
func HasLuaExtension(path string) bool {
	return strings.HasSuffix(path, ".lua")
}
