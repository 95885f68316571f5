package formatter

import (
	"strings"
)

// stripWidth is how many cells the bucket strip renders; each cell stands
// for a share of the bin ceiling.
const stripWidth = 33

// RenderBucketStrip draws a proportional strip of bucket cells: one cell
// per chunk of the ceiling, colored by how full the chart is. Counts over
// the ceiling saturate the strip in red.
func RenderBucketStrip(bins, maxBins int) string {
	if maxBins <= 0 {
		return ""
	}

	filled := bins * stripWidth / maxBins
	if filled > stripWidth {
		filled = stripWidth
	}
	if filled < 0 {
		filled = 0
	}

	style := BinLoadColor(float64(bins), maxBins)
	var b strings.Builder
	b.WriteString(style.Render(strings.Repeat("▮", filled)))
	b.WriteString(StyleDim.Render(strings.Repeat("▯", stripWidth-filled)))
	return b.String()
}
