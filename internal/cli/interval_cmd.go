package cli

import (
	"context"
	"fmt"

	"github.com/nadialowe/chartwell/internal/cli/formatter"
	"github.com/nadialowe/chartwell/internal/domain"
	"github.com/nadialowe/chartwell/internal/interval"
	"github.com/nadialowe/chartwell/internal/logger"
	"github.com/spf13/cobra"
)

func newIntervalCmd(app *App) *cobra.Command {
	var kindFlag, intervalFlag, periodFlag, startFlag, endFlag, presetFlag string
	var suggestOnly bool
	fidelity := fidelityValue(domain.FidelityHigh)

	cmd := &cobra.Command{
		Use:   "interval",
		Short: "Pick a chart bucket interval for a time range",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			sel, err := resolveSelection(ctx, app, periodFlag, startFlag, endFlag, presetFlag)
			if err != nil {
				return err
			}

			// No range given: collect interactively when possible.
			if sel.Period == "" && sel.Start == nil {
				if !app.interactive() {
					return fmt.Errorf("no time range: give --period, --start/--end, or --preset")
				}
				if err := runIntervalForm(&kindFlag, &periodFlag); err != nil {
					return err
				}
				sel = domain.RelativeSelection(periodFlag)
			}

			if suggestOnly {
				suggested := interval.Suggest(sel, domain.Fidelity(fidelity))
				fmt.Println(formatter.FormatSuggestion(sel, domain.Fidelity(fidelity), suggested))
				return nil
			}

			kind, err := parseChartKind(kindFlag)
			if err != nil {
				return err
			}
			widget := domain.Widget{Kind: kind, Interval: intervalFlag}

			decision := interval.DecideWidget(widget, sel)
			logger.Debug("interval decided",
				"kind", kind, "configured", intervalFlag,
				"range", sel.String(), "interval", decision.Interval,
				"bins", decision.Bins)

			fmt.Println(formatter.FormatIntervalDecision(kind, sel, decision))
			return nil
		},
	}

	cmd.Flags().StringVar(&kindFlag, "kind", "line", "Chart kind (area, bar, line, table, big_number, top_n)")
	cmd.Flags().StringVar(&intervalFlag, "interval", "", "Configured widget interval, e.g. 5m (default applies when empty)")
	cmd.Flags().StringVar(&periodFlag, "period", "", "Relative time range, e.g. 24h, 7d")
	cmd.Flags().StringVar(&startFlag, "start", "", "Absolute range start (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&endFlag, "end", "", "Absolute range end (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&presetFlag, "preset", "", "Named range preset to use")
	cmd.Flags().Var(&fidelity, "fidelity", "Fidelity tier for --suggest-only (high, medium, low)")
	cmd.Flags().BoolVar(&suggestOnly, "suggest-only", false, "Print the ladder suggestion instead of selecting")

	return cmd
}
