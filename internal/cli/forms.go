package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/nadialowe/chartwell/internal/cli/formatter"
	"github.com/nadialowe/chartwell/internal/interval"
)

// chartwellHuhTheme styles huh forms to match the formatter palette.
func chartwellHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validatePeriod rejects period tokens the duration parser cannot read.
func validatePeriod(s string) error {
	if s == "" {
		return fmt.Errorf("period is required")
	}
	if _, err := interval.ParsePeriodHours(s); err != nil {
		return err
	}
	return nil
}

// runIntervalForm interactively collects a chart kind and a relative
// period, writing the results through the given pointers.
func runIntervalForm(kind, period *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Chart Kind").
				Options(
					huh.NewOption("Line", "line"),
					huh.NewOption("Area", "area"),
					huh.NewOption("Bar", "bar"),
					huh.NewOption("Table", "table"),
					huh.NewOption("Big Number", "big_number"),
					huh.NewOption("Top N", "top_n"),
				).
				Value(kind),
			huh.NewInput().
				Title("Time Range").
				Placeholder("24h").
				Value(period).
				Validate(validatePeriod),
		),
	).WithTheme(chartwellHuhTheme()).WithShowHelp(false)

	return form.Run()
}
