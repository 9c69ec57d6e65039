package formatter

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	tt "github.com/minlua/minlua/internal/types"
)

func init() {
	color.NoColor = true
}

func TestGenerateSummary(t *testing.T) {
	results := []tt.Result{
		{Filename: "b.lua", OriginalSize: 100, MinifiedSize: 60},
		{Filename: "a.lua", OriginalSize: 40, MinifiedSize: 30},
	}

	summary := GenerateSummary(results)
	assert.Equal(t,
		"a.lua: 40 -> 30 bytes (-25.0%)\n"+
			"b.lua: 100 -> 60 bytes (-40.0%)\n"+
			"2 files: 140 -> 90 bytes\n",
		summary)
}

func TestGenerateSummarySingleFileOmitsTotals(t *testing.T) {
	summary := GenerateSummary([]tt.Result{
		{Filename: "a.lua", OriginalSize: 10, MinifiedSize: 10},
	})
	assert.Equal(t, "a.lua: 10 -> 10 bytes (-0.0%)\n", summary)
}

func TestGenerateSummaryGrownFile(t *testing.T) {
	summary := GenerateSummary([]tt.Result{
		{Filename: "a.lua", OriginalSize: 10, MinifiedSize: 12},
	})
	assert.Equal(t, "a.lua: 10 -> 12 bytes (+20.0%)\n", summary)
}

func TestGenerateSummaryEmpty(t *testing.T) {
	assert.Equal(t, "", GenerateSummary(nil))
}

func TestGenerateSummaryZeroOriginalSize(t *testing.T) {
	summary := GenerateSummary([]tt.Result{
		{Filename: "empty.lua", OriginalSize: 0, MinifiedSize: 0},
	})
	assert.Equal(t, "empty.lua: 0 -> 0 bytes (0.0%)\n", summary)
}
