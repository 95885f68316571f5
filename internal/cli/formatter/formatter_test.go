package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/nadialowe/chartwell/internal/domain"
	"github.com/nadialowe/chartwell/internal/interval"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences for stripping before comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripAnsi(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripAnsi(RenderTable(
		[]string{"NAME", "RANGE"},
		[][]string{
			{"last-day", "24h"},
			{"release-week", "7d"},
		},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[0], "RANGE")
	// Cells in one column start at the same offset.
	assert.Equal(t, strings.Index(lines[2], "24h"), strings.Index(lines[3], "7d"))
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderBucketStrip_Bounds(t *testing.T) {
	empty := stripAnsi(RenderBucketStrip(0, 66))
	assert.NotContains(t, empty, "▮")

	full := stripAnsi(RenderBucketStrip(66, 66))
	assert.NotContains(t, full, "▯")

	over := stripAnsi(RenderBucketStrip(4000, 66))
	assert.Equal(t, full, over)

	assert.Empty(t, RenderBucketStrip(10, 0))
}

func TestFormatIntervalDecision_ShowsUpgrade(t *testing.T) {
	sel := domain.RelativeSelection("90d")
	d := interval.Decide(domain.ChartArea, "1d", sel)
	out := stripAnsi(FormatIntervalDecision(domain.ChartArea, sel, d))

	assert.Contains(t, out, "4h")
	assert.Contains(t, out, "upgraded from 1d")
	assert.Contains(t, out, "90d")
}

func TestFormatIntervalDecision_ShowsForcedKind(t *testing.T) {
	sel := domain.RelativeSelection("7d")
	d := interval.Decide(domain.ChartBar, "", sel)
	out := stripAnsi(FormatIntervalDecision(domain.ChartBar, sel, d))

	assert.Contains(t, out, "1d")
	assert.Contains(t, out, "forced by bar charts")
}

func TestFormatExtractedTerms(t *testing.T) {
	out := stripAnsi(FormatExtractedTerms([]string{"a", "count()"}))
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "field")
	assert.Contains(t, out, "count()")
	assert.Contains(t, out, "function")

	assert.Contains(t, stripAnsi(FormatExtractedTerms(nil)), "No equation terms")
}
