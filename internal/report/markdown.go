// Package report renders comparison rows as Markdown.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/glamour"

	"benchreport/internal/benchmark"
)

// WriteMarkdown writes the v1/v2 comparison table followed by the legend.
// Separator widths follow the label lengths only.
func WriteMarkdown(w io.Writer, v1Label, v2Label string, rows []benchmark.Comparison) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "\n## Performance Comparison: %s vs %s\n\n", v1Label, v2Label)
	fmt.Fprintf(bw, "| Benchmark | %s (ms) | %s (ms) | Change | Status |\n", v1Label, v2Label)
	fmt.Fprintf(bw, "|-----------|%s|%s|--------|--------|\n",
		strings.Repeat("-", utf8.RuneCountInString(v1Label)+6),
		strings.Repeat("-", utf8.RuneCountInString(v2Label)+6))

	for _, r := range rows {
		fmt.Fprintf(bw, "| %-20s | %7.2f | %7.2f | %+6.1f%% | %s |\n",
			r.Name, r.V1Millis, r.V2Millis, r.Change, r.Status.Label())
	}

	fmt.Fprint(bw, "\n### Legend\n")
	fmt.Fprintf(bw, "- %s No significant change (< 5%%)\n", benchmark.NoChange.Symbol())
	fmt.Fprintf(bw, "- %s Performance improved (> 5%% faster)\n", benchmark.Improved.Symbol())
	fmt.Fprintf(bw, "- %s Performance regressed (> 5%% slower)\n\n", benchmark.Regressed.Symbol())

	return bw.Flush()
}

// Markdown returns the table as a string.
func Markdown(v1Label, v2Label string, rows []benchmark.Comparison) string {
	var sb strings.Builder
	_ = WriteMarkdown(&sb, v1Label, v2Label, rows)
	return sb.String()
}

// Render styles markdown for a terminal with the named glamour style.
func Render(markdown, style string, wrap int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
