package cmd

import (
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	errUtils "github.com/stonkie/stonkie/errors"
	"github.com/stonkie/stonkie/pkg/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat [ticker]",
	Short: "Start an interactive analysis chat for a ticker",
	Long: `Open a chat session about one stock ticker. Questions are answered by the
Stonkie backend using the company's public financial statements.

Inside the session:
  Enter   submit a question
  Ctrl+F  pick from suggested questions
  Ctrl+T  browse financial statements
  Ctrl+S  save the conversation to the output directory
  Ctrl+C  quit`,
	Example: `  stonkie chat AAPL
  stonkie chat`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var ticker string
		if len(args) > 0 {
			ticker = args[0]
		}

		if strings.TrimSpace(ticker) == "" {
			prompted, err := promptTicker()
			if err != nil {
				return err
			}
			ticker = prompted
		}

		return tui.RunChat(cmd.Context(), newClient(), ticker, cliConfig.OutputDir)
	},
}

// promptTicker asks for a ticker interactively. Without a TTY there is
// nobody to ask, so the missing argument is an error.
func promptTicker() (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errUtils.Build(errUtils.ErrTickerRequired).
			WithHint("Pass the ticker as an argument: stonkie chat AAPL").
			Err()
	}

	var ticker string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Which ticker do you want to analyze?").
				Placeholder("AAPL").
				Value(&ticker).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errUtils.ErrTickerRequired
					}
					return nil
				}),
		),
	).Run()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(ticker), nil
}

func init() {
	RootCmd.AddCommand(chatCmd)
}
