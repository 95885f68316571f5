package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nadialowe/chartwell/internal/cli/formatter"
	"github.com/nadialowe/chartwell/internal/domain"
	"github.com/spf13/cobra"
)

func newPresetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage named time-range presets",
	}

	cmd.AddCommand(
		newPresetAddCmd(app),
		newPresetListCmd(app),
		newPresetRemoveCmd(app),
	)

	return cmd
}

func newPresetAddCmd(app *App) *cobra.Command {
	var name, period, startStr, endStr string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a named time range",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			sel, err := resolveSelection(ctx, app, period, startStr, endStr, "")
			if err != nil {
				return err
			}

			now := time.Now()
			p := &domain.RangePreset{
				ID:        uuid.New().String(),
				Name:      name,
				Selection: sel,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := app.Presets.Create(ctx, p); err != nil {
				return err
			}

			fmt.Printf("Saved preset %s (%s)\n", name, sel)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Preset name")
	cmd.Flags().StringVar(&period, "period", "", "Relative time range, e.g. 24h, 7d")
	cmd.Flags().StringVar(&startStr, "start", "", "Absolute range start (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&endStr, "end", "", "Absolute range end (RFC3339 or YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPresetListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := app.Presets.List(context.Background())
			if err != nil {
				return err
			}
			if len(presets) == 0 {
				fmt.Println("No presets saved.")
				return nil
			}

			rows := make([][]string, 0, len(presets))
			for _, p := range presets {
				rows = append(rows, []string{p.Name, p.Selection.String()})
			}
			fmt.Println(formatter.RenderTable([]string{"NAME", "RANGE"}, rows))
			return nil
		},
	}
}

func newPresetRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Delete a saved preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Presets.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted preset %s\n", args[0])
			return nil
		},
	}
}
