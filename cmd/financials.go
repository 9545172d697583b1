package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/table"
	log "github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	errUtils "github.com/stonkie/stonkie/errors"
	tuiUtils "github.com/stonkie/stonkie/internal/tui/utils"
	"github.com/stonkie/stonkie/pkg/api"
)

const (
	financialsTimeout     = 15 * time.Second
	fallbackTerminalWidth = 120
	statementColumnBuffer = 2
	minStatementColWidth  = 6
)

var financialsFormat string

var financialsCmd = &cobra.Command{
	Use:   "financials <ticker> [report]",
	Short: "Print a financial statement for a ticker",
	Long: `Fetch one of a ticker's financial statements from the backend and print it.
The report argument is one of income_statement, balance_sheet or cash_flow
and defaults to the income statement.`,
	Example: `  stonkie financials AAPL
  stonkie financials AAPL balance_sheet
  stonkie financials AAPL cash_flow --format json`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ticker := args[0]

		if financialsFormat != "table" && financialsFormat != "json" {
			return fmt.Errorf("%w: %q (valid: table, json)", errUtils.ErrInvalidFormat, financialsFormat)
		}

		report := api.ReportIncomeStatement
		if len(args) == 2 {
			parsed, err := api.ParseReportType(args[1])
			if err != nil {
				return err
			}
			report = parsed
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), financialsTimeout)
		defer cancel()

		statement, err := newClient().FinancialStatement(ctx, ticker, report)
		if err != nil {
			return errUtils.Build(err).
				WithHintf("Is the backend running at %s?", cliConfig.BackendURL).
				Err()
		}

		if financialsFormat == "json" {
			return printStatementJSON(ticker, report, statement)
		}

		printStatementTable(ticker, report, statement)
		return nil
	},
}

// printStatementTable renders the statement as a static table sized to the
// terminal.
func printStatementTable(ticker string, report api.ReportType, statement *api.Statement) {
	fmt.Printf("%s %s\n\n", ticker, report.Title())

	if statement.Empty() {
		fmt.Println("No data available.")
		return
	}

	widths := statementColumnWidths(statement, terminalWidth())

	columns := make([]table.Column, 0, len(statement.Columns))
	for i, name := range statement.Columns {
		columns = append(columns, table.Column{Title: name, Width: widths[i]})
	}

	rows := make([]table.Row, 0, len(statement.Rows))
	for _, record := range statement.Rows {
		row := make(table.Row, 0, len(statement.Columns))
		for i, name := range statement.Columns {
			row = append(row, truncateStatementCell(statement.Cell(record, name), widths[i]))
		}
		rows = append(rows, row)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false), // Non-interactive.
		table.WithHeight(len(rows)+1),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).PaddingLeft(0).PaddingRight(1)
	styles.Cell = styles.Cell.PaddingLeft(0).PaddingRight(1)
	styles.Selected = styles.Cell
	t.SetStyles(styles)

	fmt.Println(t.View())
}

// statementJSON is the shape emitted by --format json.
type statementJSON struct {
	Ticker  string           `json:"ticker"`
	Report  string           `json:"report"`
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

// printStatementJSON emits the statement as JSON, syntax highlighted when
// stdout is a terminal.
func printStatementJSON(ticker string, report api.ReportType, statement *api.Statement) error {
	payload, err := json.MarshalIndent(statementJSON{
		Ticker:  ticker,
		Report:  string(report),
		Columns: statement.Columns,
		Rows:    statement.Rows,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode statement: %w", err)
	}

	if isatty.IsTerminal(os.Stdout.Fd()) {
		highlighted, err := tuiUtils.HighlightCode(string(payload), "json", "dracula")
		if err == nil {
			fmt.Println(highlighted)
			return nil
		}
		log.Debug("syntax highlighting unavailable", "error", err)
	}

	fmt.Println(string(payload))
	return nil
}

// terminalWidth returns the current terminal width, or fallback if unavailable.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width == 0 {
		return fallbackTerminalWidth
	}
	return width
}

// statementColumnWidths computes per-column widths from content, with the
// header as the floor and a proportional squeeze when the total exceeds the
// terminal width.
func statementColumnWidths(statement *api.Statement, terminalWidth int) []int {
	widths := make([]int, len(statement.Columns))
	for i, name := range statement.Columns {
		widths[i] = runewidth.StringWidth(name)
	}

	for _, record := range statement.Rows {
		for i, name := range statement.Columns {
			if w := runewidth.StringWidth(statement.Cell(record, name)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	total := 0
	for i := range widths {
		widths[i] += statementColumnBuffer
		total += widths[i]
	}

	if terminalWidth <= 0 || total <= terminalWidth {
		return widths
	}

	excess := total - terminalWidth
	for i := range widths {
		reduce := min(excess*widths[i]/total, widths[i]-minStatementColWidth)
		if reduce > 0 {
			widths[i] -= reduce
		}
	}

	return widths
}

// truncateStatementCell shortens a cell to fit its column, ellipsis included.
func truncateStatementCell(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

func init() {
	financialsCmd.Flags().StringVarP(&financialsFormat, "format", "f", "table", "Output format: table or json")
	RootCmd.AddCommand(financialsCmd)
}
