// Package formatter renders human-readable summaries of processing
// runs.
package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	tt "github.com/minlua/minlua/internal/types"
)

var (
	fileStyle    = color.New(color.FgCyan, color.Bold)
	savedStyle   = color.New(color.FgGreen, color.Bold)
	grownStyle   = color.New(color.FgHiYellow, color.Bold)
	summaryStyle = color.New(color.FgWhite, color.Bold)
)

// GenerateSummary formats per-file byte savings plus a total line,
// sorted by file name.
func GenerateSummary(results []tt.Result) string {
	sorted := make([]tt.Result, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Filename < sorted[j].Filename
	})

	var builder strings.Builder
	totalOriginal := 0
	totalMinified := 0
	for _, result := range sorted {
		totalOriginal += result.OriginalSize
		totalMinified += result.MinifiedSize

		builder.WriteString(fileStyle.Sprint(result.Filename))
		builder.WriteString(fmt.Sprintf(": %d -> %d bytes (%s)\n",
			result.OriginalSize, result.MinifiedSize, percentage(result)))
	}
	if len(sorted) > 1 {
		builder.WriteString(summaryStyle.Sprintf("%d files: %d -> %d bytes\n",
			len(sorted), totalOriginal, totalMinified))
	}
	return builder.String()
}

func percentage(result tt.Result) string {
	if result.OriginalSize == 0 {
		return savedStyle.Sprint("0.0%")
	}
	ratio := 100 * float64(result.Saved()) / float64(result.OriginalSize)
	text := fmt.Sprintf("-%.1f%%", ratio)
	if result.Saved() < 0 {
		return grownStyle.Sprintf("+%.1f%%", -ratio)
	}
	return savedStyle.Sprint(text)
}
