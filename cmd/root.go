package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizdeck",
	Short: "Timed multiple-choice quiz sessions in the terminal",
	Long: "QuizDeck is a terminal quiz game over a fixed four-domain question bank.\n" +
		"Pick a deck, beat the clock; missed cards come back around until the deck is cleared.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite history database (overrides QUIZDECK_DB env var)")
	rootCmd.Flags().String("bank", "", "Path to a question bank JSON file (default: built-in bank)")
	rootCmd.Flags().Int("timer", 0, "Session length in seconds (overrides configured default)")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}
