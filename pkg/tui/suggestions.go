package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stonkie/stonkie/pkg/ui/theme"
)

// suggestionsView renders the suggested questions picker.
func (m *ChatModel) suggestionsView() string {
	var content strings.Builder

	// Title
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.ColorCyan)).
		MarginBottom(1)
	content.WriteString(titleStyle.Render(fmt.Sprintf("Suggested questions for %s", strings.ToUpper(m.ticker))))
	content.WriteString(newlineChar)

	// Help text
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ColorGray)).
		Margin(0, 0, 1, 0)
	content.WriteString(helpStyle.Render("↑/↓: Navigate | Enter: Use question | Esc/q: Back"))
	content.WriteString(doubleNewline)

	if len(m.suggestions) == 0 {
		content.WriteString(helpStyle.Render("Loading suggestions..."))
		return content.String()
	}

	selectedStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.ColorCyan))
	normalStyle := lipgloss.NewStyle()

	for i, question := range m.suggestions {
		prefix := "  "
		if i == m.selectedSuggestionIdx {
			prefix = "▶ "
		}

		line := prefix + question
		if i == m.selectedSuggestionIdx {
			content.WriteString(selectedStyle.Render(line))
		} else {
			content.WriteString(normalStyle.Render(line))
		}
		content.WriteString(doubleNewline)
	}

	return content.String()
}
