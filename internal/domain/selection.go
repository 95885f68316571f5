package domain

import (
	"fmt"
	"time"
)

// TimeSelection is the time range a chart is plotted over. It is either
// absolute (Start and End both set) or relative (Period set, e.g. "24h").
// Exactly one of the two representations must be present.
type TimeSelection struct {
	Start  *time.Time
	End    *time.Time
	Period string
}

// AbsoluteSelection builds a TimeSelection from explicit start/end timestamps.
func AbsoluteSelection(start, end time.Time) TimeSelection {
	return TimeSelection{Start: &start, End: &end}
}

// RelativeSelection builds a TimeSelection from a relative period token.
func RelativeSelection(period string) TimeSelection {
	return TimeSelection{Period: period}
}

// IsRelative reports whether the selection uses the relative-period form.
func (s TimeSelection) IsRelative() bool {
	return s.Period != ""
}

// Validate enforces the exactly-one-representation invariant.
func (s TimeSelection) Validate() error {
	hasAbsolute := s.Start != nil || s.End != nil
	if s.Period != "" && hasAbsolute {
		return fmt.Errorf("time selection has both a period and absolute bounds")
	}
	if s.Period == "" && !hasAbsolute {
		return fmt.Errorf("time selection is empty")
	}
	if hasAbsolute {
		if s.Start == nil || s.End == nil {
			return fmt.Errorf("absolute time selection needs both start and end")
		}
		if s.End.Before(*s.Start) {
			return fmt.Errorf("time selection ends before it starts")
		}
	}
	return nil
}

// String renders the selection for display and logging.
func (s TimeSelection) String() string {
	if s.IsRelative() {
		return s.Period
	}
	if s.Start == nil || s.End == nil {
		return "(empty)"
	}
	return fmt.Sprintf("%s .. %s", s.Start.Format(time.RFC3339), s.End.Format(time.RFC3339))
}
