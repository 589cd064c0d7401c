package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/palakm/gyanguru/internal/config"
	"github.com/palakm/gyanguru/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe saved courses, enrollments, chat history, and theme",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		if err := st.Reset(); err != nil {
			return fmt.Errorf("reset store: %w", err)
		}
		fmt.Println("All local data cleared.")
		return nil
	},
}
