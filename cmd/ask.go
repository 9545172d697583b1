package cmd

import (
	"fmt"
	"os"
	"strings"

	log "github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	errUtils "github.com/stonkie/stonkie/errors"
	"github.com/stonkie/stonkie/pkg/ui/markdown"
)

var askCmd = &cobra.Command{
	Use:   "ask <ticker> <question>",
	Short: "Ask one question about a ticker and print the answer",
	Long: `Ask a single question without entering an interactive session. The answer
is rendered as markdown when stdout is a terminal and printed raw otherwise,
so it pipes cleanly into files and pagers.`,
	Example: `  stonkie ask AAPL "What is the revenue trend?"
  stonkie ask MSFT how is the cloud segment doing
  stonkie ask NVDA "Summarize the latest cash flow statement" > nvda.md`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ticker := args[0]

		// Join all remaining arguments as the question.
		question := strings.Join(args[1:], " ")
		if strings.TrimSpace(question) == "" {
			return errUtils.ErrEmptyQuestion
		}

		log.Debug("asking question", "ticker", ticker, "question", question)

		answer, err := newClient().Analyze(cmd.Context(), ticker, question)
		if err != nil {
			return errUtils.Build(err).
				WithHintf("Is the backend running at %s?", cliConfig.BackendURL).
				Err()
		}

		printMarkdown(answer)
		return nil
	},
}

// printMarkdown renders markdown to a terminal and falls back to the raw
// text when stdout is redirected or rendering fails.
func printMarkdown(content string) {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		renderer, err := markdown.NewRenderer()
		if err == nil {
			if rendered, err := renderer.Render(content); err == nil {
				fmt.Print(rendered)
				return
			}
		}
		log.Debug("markdown rendering unavailable, printing raw answer")
	}

	fmt.Println(content)
}

func init() {
	RootCmd.AddCommand(askCmd)
}
