package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newExploreCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Interactively explore interval selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("explore needs an interactive terminal")
			}
			_, err := tea.NewProgram(newExploreModel()).Run()
			return err
		},
	}
}
