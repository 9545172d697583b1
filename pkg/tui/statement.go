package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/charmbracelet/log"
	"github.com/mattn/go-runewidth"

	"github.com/stonkie/stonkie/pkg/api"
	"github.com/stonkie/stonkie/pkg/ui/theme"
)

const (
	minColumnWidth     = 6
	columnBuffer       = 2
	minStatementHeight = 5
)

// defaultReport is the statement shown when the view opens.
func (m *ChatModel) defaultReport() api.ReportType {
	if m.statementReport != "" {
		return m.statementReport
	}
	return api.ReportIncomeStatement
}

// openStatement switches to the statement view and starts loading report.
func (m *ChatModel) openStatement(report api.ReportType) tea.Cmd {
	m.currentView = viewModeStatement
	m.statementReport = report
	m.statementErr = ""
	m.statementLoading = true

	return tea.Batch(
		m.spinner.Tick,
		m.loadStatement(report),
	)
}

// loadStatement fetches one statement with a bounded context: unlike
// analysis, statement reads are quick and a hung backend should not pin
// the view.
func (m *ChatModel) loadStatement(report api.ReportType) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, statementTimeout)
		defer cancel()

		statement, err := m.client.FinancialStatement(ctx, m.ticker, report)
		return statementMsg{report: report, statement: statement, err: err}
	}
}

// handleStatementLoaded settles a statement fetch.
func (m *ChatModel) handleStatementLoaded(msg statementMsg) {
	if msg.report != m.statementReport {
		// A newer report selection superseded this load.
		return
	}

	m.statementLoading = false
	if msg.err != nil {
		log.Error("statement load failed", "ticker", m.ticker, "report", string(msg.report), "error", msg.err)
		m.statement = nil
		m.statementErr = fmt.Sprintf("Could not load the %s. Is the backend running?",
			strings.ToLower(msg.report.Title()))
		return
	}

	m.statement = msg.statement
	m.statementErr = ""
	m.statementTable = m.buildStatementTable(msg.statement)
}

// handleStatementKeys processes keyboard input for the statement view.
func (m *ChatModel) handleStatementKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc", "q":
		// Return to chat view.
		m.currentView = viewModeChat
		return nil
	case "1":
		return m.openStatement(api.ReportIncomeStatement)
	case "2":
		return m.openStatement(api.ReportBalanceSheet)
	case "3":
		return m.openStatement(api.ReportCashFlow)
	default:
		// Let the table handle scrolling.
		var cmd tea.Cmd
		m.statementTable, cmd = m.statementTable.Update(msg)
		if cmd != nil {
			return cmd
		}
		return func() tea.Msg { return nil }
	}
}

// buildStatementTable lays the statement out as a table sized to the
// terminal: columns get their content width plus a buffer, never narrower
// than their header, shrunk proportionally when the terminal is too narrow.
func (m *ChatModel) buildStatementTable(statement *api.Statement) table.Model {
	widths := statementColumnWidths(statement, m.width)

	columns := make([]table.Column, 0, len(statement.Columns))
	for i, name := range statement.Columns {
		columns = append(columns, table.Column{Title: name, Width: widths[i]})
	}

	rows := make([]table.Row, 0, len(statement.Rows))
	for _, record := range statement.Rows {
		row := make(table.Row, 0, len(statement.Columns))
		for i, name := range statement.Columns {
			row = append(row, truncateCell(statement.Cell(record, name), widths[i]))
		}
		rows = append(rows, row)
	}

	height := m.height - 8
	if height < minStatementHeight {
		height = minStatementHeight
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		Foreground(lipgloss.Color(theme.ColorCyan)).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.ColorBorder)).
		BorderBottom(true)
	styles.Selected = styles.Cell
	t.SetStyles(styles)

	return t
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
		widths[i] += columnBuffer
		total += widths[i]
	}

	if terminalWidth <= 0 || total <= terminalWidth {
		return widths
	}

	// Narrow terminal: shave each column in proportion to its share,
	// keeping a readable minimum.
	excess := total - terminalWidth
	for i := range widths {
		reduce := min(excess*widths[i]/total, widths[i]-minColumnWidth)
		if reduce > 0 {
			widths[i] -= reduce
		}
	}

	return widths
}

// truncateCell shortens a cell to fit its column, ellipsis included.
func truncateCell(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// statementView renders the financial statements view.
func (m *ChatModel) statementView() string {
	var content strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.ColorCyan)).
		MarginBottom(1)
	content.WriteString(titleStyle.Render(fmt.Sprintf("%s %s", strings.ToUpper(m.ticker), m.statementReport.Title())))
	content.WriteString(newlineChar)

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ColorGray)).
		Margin(0, 0, 1, 0)
	content.WriteString(helpStyle.Render("1: Income | 2: Balance | 3: Cash Flow | ↑/↓: Scroll | Esc/q: Back"))
	content.WriteString(doubleNewline)

	switch {
	case m.statementLoading:
		content.WriteString(fmt.Sprintf("%s fetching %s...", m.spinner.View(),
			strings.ToLower(m.statementReport.Title())))
	case m.statementErr != "":
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorRed))
		content.WriteString(errStyle.Render(m.statementErr))
	case m.statement == nil || m.statement.Empty():
		content.WriteString(helpStyle.Render(fmt.Sprintf("No %s data available for %s.",
			strings.ToLower(m.statementReport.Title()), strings.ToUpper(m.ticker))))
	default:
		content.WriteString(m.statementTable.View())
	}

	return content.String()
}
