package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/questionbank"
)

var validateCmd = &cobra.Command{
	Use:   "validate <bank.json>",
	Short: "Check a question bank file against the schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		qs, err := questionbank.Load(args[0])
		if err != nil {
			return err
		}

		perDomain := make(map[questionbank.Domain]int)
		for _, q := range qs {
			perDomain[q.Domain]++
		}

		fmt.Printf("%s: ok, %d questions\n", args[0], len(qs))
		for _, d := range questionbank.Domains() {
			fmt.Printf("  %-12s %d\n", questionbank.DisplayName(d), perDomain[d])
		}
		return nil
	},
}
