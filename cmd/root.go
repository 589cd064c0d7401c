package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/palakm/gyanguru/internal/config"
	"github.com/palakm/gyanguru/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "gyanguru",
	Short: "Online course marketplace in the terminal",
	Long:  "Gyan Guru — browse, save, and enroll in courses, chat with a mentor, all from your terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GYANGURU_DB env var)")

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then GYANGURU_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
