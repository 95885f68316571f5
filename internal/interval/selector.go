package interval

import (
	"github.com/nadialowe/chartwell/internal/domain"
)

const (
	// MaxChartBins caps the bucket count per chart; more than this is
	// unreadable on the plot area the dashboards allot.
	MaxChartBins = 66

	// DefaultInterval applies when a widget configures no interval.
	DefaultInterval = "5m"
)

// kindIntervalOverrides pins certain chart kinds to a fixed interval
// regardless of widget configuration. Bar charts always plot daily bars.
var kindIntervalOverrides = map[domain.ChartKind]string{
	domain.ChartBar: "1d",
}

// Decision is the outcome of interval selection, with enough detail to
// explain the choice.
type Decision struct {
	Interval     string
	RangeMinutes float64
	Bins         float64
	// Forced is set when a chart-kind override pinned the interval.
	Forced bool
	// Upgraded is set when the configured interval was replaced by a
	// finer-grained suggestion.
	Upgraded bool
	// Desired is the configured-or-default interval before any upgrade.
	Desired string
}

// SelectWidgetInterval picks the bucket interval for a widget over a time
// selection. See Decide for the rules.
func SelectWidgetInterval(kind domain.ChartKind, configured string, sel domain.TimeSelection) string {
	return Decide(kind, configured, sel).Interval
}

// DecideWidget runs Decide against a widget's configuration.
func DecideWidget(w domain.Widget, sel domain.TimeSelection) Decision {
	return Decide(w.Kind, w.Interval, sel)
}

// Decide picks the bucket interval for a widget and reports how.
//
// Chart-kind overrides win outright. Otherwise the configured interval
// (default "5m") is kept unless it would produce more than MaxChartBins
// buckets over the selection, in which case the high-fidelity suggestion
// is adopted — but only when strictly finer than the configured interval;
// a tie keeps the original.
func Decide(kind domain.ChartKind, configured string, sel domain.TimeSelection) Decision {
	if forced, ok := kindIntervalOverrides[kind]; ok {
		d := Decision{Interval: forced, Desired: forced, Forced: true}
		d.RangeMinutes, d.Bins = measure(forced, sel)
		return d
	}

	desired := configured
	if desired == "" {
		desired = DefaultInterval
	}
	d := Decision{Interval: desired, Desired: desired}

	desiredHours, err := ParsePeriodHours(desired)
	if err != nil {
		// Malformed configured interval: nothing to compare against,
		// pass it through to the caller.
		return d
	}
	mins, err := SelectionMinutes(sel)
	if err != nil {
		return d
	}
	d.RangeMinutes = mins
	d.Bins = mins / (desiredHours * 60)

	if d.Bins > MaxChartBins {
		suggested := Suggest(sel, domain.FidelityHigh)
		suggestedHours, err := ParsePeriodHours(suggested)
		if err == nil && suggestedHours < desiredHours {
			d.Interval = suggested
			d.Upgraded = true
			d.Bins = mins / (suggestedHours * 60)
		}
	}
	return d
}

// measure computes range minutes and bin count for an interval, tolerating
// unmeasurable selections.
func measure(iv string, sel domain.TimeSelection) (mins, bins float64) {
	hours, err := ParsePeriodHours(iv)
	if err != nil {
		return 0, 0
	}
	mins, err = SelectionMinutes(sel)
	if err != nil {
		return 0, 0
	}
	return mins, mins / (hours * 60)
}
