// Package interval computes chart bucket intervals: parsing period tokens,
// measuring time selections, and choosing an interval that keeps the
// plotted bucket count reasonable.
package interval

import (
	"fmt"
	"strconv"
)

// hoursPerUnit maps a period unit suffix to its length in hours.
var hoursPerUnit = map[byte]float64{
	's': 1.0 / 3600,
	'm': 1.0 / 60,
	'h': 1,
	'd': 24,
	'w': 24 * 7,
}

// ParsePeriodHours converts a period token such as "5m" or "1d" to hours.
// The token is <integer><unit> with unit one of s, m, h, d, w.
func ParsePeriodHours(period string) (float64, error) {
	if len(period) < 2 {
		return 0, fmt.Errorf("period %q is too short", period)
	}
	unit := period[len(period)-1]
	factor, ok := hoursPerUnit[unit]
	if !ok {
		return 0, fmt.Errorf("period %q has unknown unit %q", period, string(unit))
	}
	count, err := strconv.Atoi(period[:len(period)-1])
	if err != nil {
		return 0, fmt.Errorf("period %q has a non-integer count", period)
	}
	if count <= 0 {
		return 0, fmt.Errorf("period %q must be positive", period)
	}
	return float64(count) * factor, nil
}
