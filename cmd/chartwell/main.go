package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/nadialowe/chartwell/internal/cli"
	"github.com/nadialowe/chartwell/internal/db"
	"github.com/nadialowe/chartwell/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.chartwell/chartwell.db
	dbPath := os.Getenv("CHARTWELL_DB")
	configDir := filepath.Dir(dbPath)
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		configDir = filepath.Join(home, ".chartwell")
		dbPath = filepath.Join(configDir, "chartwell.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	app := &cli.App{
		Presets:   repository.NewSQLitePresetRepo(database),
		ConfigDir: configDir,
	}

	// Detect interactive terminal for form and explorer entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
