package cmd

import (
	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizdeck",
	Short: "Multiple-choice quiz runner for the terminal",
	Long:  "Quizdeck runs multiple-choice quizzes in the terminal, with manual and auto answering modes, hints, and resumable sessions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZDECK_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(banksCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then QUIZDECK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
