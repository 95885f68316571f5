package interval

import (
	"testing"

	"github.com/nadialowe/chartwell/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSuggest_Ladder(t *testing.T) {
	cases := []struct {
		period string
		high   string
		medium string
		low    string
	}{
		{"90d", "4h", "1d", "2d"},
		{"60d", "4h", "1d", "2d"},
		{"45d", "1h", "4h", "1d"},
		{"30d", "1h", "4h", "1d"},
		{"14d", "30m", "1h", "12h"},
		{"3d", "30m", "1h", "6h"},
		{"6h", "5m", "15m", "1h"},
		{"90m", "5m", "15m", "1h"},
		{"45m", "1m", "5m", "10m"},
		{"1h", "1m", "5m", "10m"},
	}
	for _, tc := range cases {
		sel := domain.RelativeSelection(tc.period)
		assert.Equal(t, tc.high, Suggest(sel, domain.FidelityHigh), "%s high", tc.period)
		assert.Equal(t, tc.medium, Suggest(sel, domain.FidelityMedium), "%s medium", tc.period)
		assert.Equal(t, tc.low, Suggest(sel, domain.FidelityLow), "%s low", tc.period)
	}
}

func TestSuggest_ExactDayBoundaryStaysInHourBracket(t *testing.T) {
	// 24h exactly is not "> 24 hours"; it lands in the hour bracket.
	sel := domain.RelativeSelection("24h")
	assert.Equal(t, "5m", Suggest(sel, domain.FidelityHigh))
}

func TestSuggest_UnmeasurableSelectionUsesFinestBracket(t *testing.T) {
	assert.Equal(t, "1m", Suggest(domain.TimeSelection{}, domain.FidelityHigh))
}
