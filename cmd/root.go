package cmd

import (
	"github.com/spf13/cobra"
	"github.com/yonatank/prepair/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "prepair",
	Short: "Mock technical-interview engine",
	Long: "Prepair — mock technical-interview engine. Ingest a question bank and a job\n" +
		"description, run LLM-driven interview sessions, and track readiness over time.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PREPAIR_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(jdCmd)
	rootCmd.AddCommand(interviewCmd)
	rootCmd.AddCommand(readinessCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PREPAIR_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
