package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nadialowe/chartwell/internal/domain"
	"github.com/spf13/pflag"
)

// fidelityValue is a pflag.Value restricted to the known fidelity tiers.
type fidelityValue domain.Fidelity

var _ pflag.Value = (*fidelityValue)(nil)

func (f *fidelityValue) String() string {
	return string(*f)
}

func (f *fidelityValue) Set(s string) error {
	s = strings.ToLower(s)
	if !domain.ValidFidelities[s] {
		return fmt.Errorf("invalid fidelity %q (want high, medium, or low)", s)
	}
	*f = fidelityValue(s)
	return nil
}

func (f *fidelityValue) Type() string {
	return "fidelity"
}

// parseChartKind validates a --kind flag value.
func parseChartKind(s string) (domain.ChartKind, error) {
	s = strings.ToLower(s)
	if !domain.ValidChartKinds[s] {
		return "", fmt.Errorf("invalid chart kind %q", s)
	}
	return domain.ChartKind(s), nil
}

// timestampLayouts are accepted for --start/--end values, most specific first.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q (want RFC3339 or YYYY-MM-DD)", s)
}

// resolveSelection builds a TimeSelection from the mutually exclusive
// --period / --start+--end / --preset flag groups.
func resolveSelection(ctx context.Context, app *App, period, startStr, endStr, preset string) (domain.TimeSelection, error) {
	set := 0
	for _, given := range []bool{period != "", startStr != "" || endStr != "", preset != ""} {
		if given {
			set++
		}
	}
	if set > 1 {
		return domain.TimeSelection{}, fmt.Errorf("--period, --start/--end, and --preset are mutually exclusive")
	}

	switch {
	case preset != "":
		p, err := app.Presets.GetByName(ctx, preset)
		if err != nil {
			return domain.TimeSelection{}, err
		}
		return p.Selection, nil
	case period != "":
		sel := domain.RelativeSelection(period)
		return sel, sel.Validate()
	case startStr != "" || endStr != "":
		if startStr == "" || endStr == "" {
			return domain.TimeSelection{}, fmt.Errorf("--start and --end must be given together")
		}
		start, err := parseTimestamp(startStr)
		if err != nil {
			return domain.TimeSelection{}, err
		}
		end, err := parseTimestamp(endStr)
		if err != nil {
			return domain.TimeSelection{}, err
		}
		sel := domain.AbsoluteSelection(start, end)
		return sel, sel.Validate()
	}
	return domain.TimeSelection{}, nil
}
