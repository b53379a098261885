package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/questionbank"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent session results",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		recs, err := st.History().Recent(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("load sessions: %w", err)
		}
		if len(recs) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		fmt.Printf("%-17s %-12s %9s %9s %8s %9s\n",
			"FINISHED", "DECK", "DURATION", "ANSWERED", "CORRECT", "ACCURACY")
		for _, r := range recs {
			mins := r.DurationSecs / 60
			secs := r.DurationSecs % 60
			fmt.Printf("%-17s %-12s %8dm%02ds %9d %8d %8d%%\n",
				r.FinishedAt.Local().Format("2006-01-02 15:04"),
				questionbank.DisplayName(questionbank.Domain(r.DomainFilter)),
				mins, secs,
				r.TotalAnswered,
				r.Correct,
				r.AccuracyPct)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of sessions to list")
}
