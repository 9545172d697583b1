package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const questionsTimeout = 5 * time.Second

var questionsCmd = &cobra.Command{
	Use:   "questions <ticker>",
	Short: "Show suggested questions for a ticker",
	Long: `Print starter questions for a ticker. The backend supplies ticker-specific
suggestions when it has them; otherwise a built-in set is shown.`,
	Example: "  stonkie questions AAPL",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), questionsTimeout)
		defer cancel()

		for _, question := range newClient().SuggestedQuestions(ctx, args[0]) {
			fmt.Printf("- %s\n", question)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(questionsCmd)
}
