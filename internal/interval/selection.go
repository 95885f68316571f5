package interval

import (
	"fmt"

	"github.com/nadialowe/chartwell/internal/domain"
)

// SelectionMinutes returns the elapsed minutes covered by a time selection.
// Relative selections are measured by their period token; absolute
// selections by end minus start.
func SelectionMinutes(sel domain.TimeSelection) (float64, error) {
	if err := sel.Validate(); err != nil {
		return 0, err
	}
	if sel.IsRelative() {
		hours, err := ParsePeriodHours(sel.Period)
		if err != nil {
			return 0, fmt.Errorf("measuring selection: %w", err)
		}
		return hours * 60, nil
	}
	return sel.End.Sub(*sel.Start).Minutes(), nil
}
