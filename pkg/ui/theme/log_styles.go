package theme

import (
	"github.com/charmbracelet/lipgloss"
	log "github.com/charmbracelet/log"
)

// LogStyles returns charm log styles tinted with the stonkie palette.
// Levels keep charm's 4-character badges so columns stay aligned.
func LogStyles() *log.Styles {
	styles := log.DefaultStyles()

	styles.Levels[log.DebugLevel] = levelBadge("DEBU", ColorGray)
	styles.Levels[log.InfoLevel] = levelBadge("INFO", ColorCyan)
	styles.Levels[log.WarnLevel] = levelBadge("WARN", ColorGold)
	styles.Levels[log.ErrorLevel] = levelBadge("ERRO", ColorRed)
	styles.Levels[log.FatalLevel] = levelBadge("FATA", ColorRed)

	styles.Key = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray))
	styles.Timestamp = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDimGray)).
		Faint(true)

	return styles
}

func levelBadge(label, color string) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(label).
		Foreground(lipgloss.Color(color)).
		Bold(true)
}
