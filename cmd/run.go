package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/palakm/gyanguru/internal/app"
	"github.com/palakm/gyanguru/internal/catalog"
	"github.com/palakm/gyanguru/internal/config"
	"github.com/palakm/gyanguru/internal/session"
	"github.com/palakm/gyanguru/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	defaultTheme := session.DetectHostTheme()
	switch cfg.Theme {
	case "light":
		defaultTheme = session.ThemeLight
	case "dark":
		defaultTheme = session.ThemeDark
	}

	sess := session.NewStore(st, defaultTheme)

	return app.Run(app.Options{
		Catalog: catalog.New(catalog.Generate()),
		Session: sess,
	})
}
