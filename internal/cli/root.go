package cli

import (
	"github.com/nadialowe/chartwell/internal/logger"
	"github.com/nadialowe/chartwell/internal/repository"
	"github.com/spf13/cobra"
)

// App holds the dependencies CLI commands run against.
type App struct {
	Presets repository.PresetRepo

	// ConfigDir is where logs live (usually ~/.chartwell).
	ConfigDir string

	// IsInteractive reports whether stdin is an interactive terminal;
	// wired in main so tests can stub it.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "chartwell" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "chartwell",
		Short:         "Chart bucket interval and equation field tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(logger.Config{Verbose: verbose, Dir: app.ConfigDir})
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newIntervalCmd(app),
		newFieldsCmd(app),
		newPresetCmd(app),
		newExploreCmd(app),
	)

	return root
}
