package cli

import (
	"fmt"

	"github.com/nadialowe/chartwell/internal/cli/formatter"
	"github.com/nadialowe/chartwell/internal/equation"
	"github.com/spf13/cobra"
)

func newFieldsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields [field ...]",
		Short: "Extract the terms referenced by equation fields",
		Long: `Extract the field and function terms referenced by equation entries
in a widget field list. Equation entries carry the "equation|" prefix;
other entries pass through unexamined.

Example:
  chartwell fields 'equation|count() / a' transaction.duration`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			terms := equation.ExtractFields(args)
			fmt.Println(formatter.FormatExtractedTerms(terms))
			return nil
		},
	}
	return cmd
}
