package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/harini/sciquiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "sciquiz",
	Short: "Timed science quizzes for school students",
	Long:  "SciQuiz — terminal quiz app with timed multiple-choice science questions by grade and subject.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, launchParams{})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the shared SQLite database file (overrides SCIQUIZ_DB env var)")
	rootCmd.PersistentFlags().String("questions", "", "Path to a question bank JSON file (overrides SCIQUIZ_QUESTIONS env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(setsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SCIQUIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveBankPath returns the question bank path from the --questions flag
// or the SCIQUIZ_QUESTIONS env var. Empty means the bundled bank.
func resolveBankPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("questions"); p != "" {
		return p
	}
	return os.Getenv("SCIQUIZ_QUESTIONS")
}
