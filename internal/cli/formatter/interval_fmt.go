package formatter

import (
	"fmt"
	"strings"

	"github.com/nadialowe/chartwell/internal/domain"
	"github.com/nadialowe/chartwell/internal/interval"
)

// FormatIntervalDecision renders the outcome of interval selection as a
// boxed summary: the chosen interval, the range, the bin count, and how
// the choice was made.
func FormatIntervalDecision(kind domain.ChartKind, sel domain.TimeSelection, d interval.Decision) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n",
		Dim("Chart:"), KindColor(kind).Render(string(kind))))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Range:"), StyleFg.Render(sel.String())))
	if d.RangeMinutes > 0 {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			Dim("Spans:"), StyleFg.Render(fmt.Sprintf("%.0f min", d.RangeMinutes))))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s  %s", Dim("Interval:"), Bold(d.Interval)))
	switch {
	case d.Forced:
		b.WriteString("  " + StylePurple.Render(fmt.Sprintf("(forced by %s charts)", kind)))
	case d.Upgraded:
		b.WriteString("  " + StyleGreen.Render(fmt.Sprintf("(upgraded from %s)", d.Desired)))
	}
	b.WriteString("\n")

	if d.Bins > 0 {
		binStyle := BinLoadColor(d.Bins, interval.MaxChartBins)
		b.WriteString(fmt.Sprintf("%s  %s %s\n",
			Dim("Buckets:"),
			binStyle.Render(fmt.Sprintf("%.0f", d.Bins)),
			Dim(fmt.Sprintf("of %d max", interval.MaxChartBins))))
		b.WriteString(RenderBucketStrip(int(d.Bins), interval.MaxChartBins))
		b.WriteString("\n")
	}

	return RenderBox("interval", b.String())
}

// FormatSuggestion renders a bare ladder suggestion line.
func FormatSuggestion(sel domain.TimeSelection, fidelity domain.Fidelity, suggested string) string {
	return fmt.Sprintf("%s %s",
		Dim(fmt.Sprintf("Suggested interval for %s at %s fidelity:", sel, fidelity)),
		Bold(suggested))
}
