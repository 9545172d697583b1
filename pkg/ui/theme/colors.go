// Package theme centralizes the color palette for the stonkie terminal UI.
package theme

// Core palette. Values are lipgloss-compatible color strings; hex values
// degrade to the nearest ANSI color on terminals without truecolor.
const (
	ColorCyan  = "#22D3EE"
	ColorGreen = "#4ADE80"
	ColorRed   = "#F87171"
	ColorGold  = "#FBBF24"

	// ANSI-256 grays for secondary text and borders.
	ColorGray    = "245"
	ColorDimGray = "240"
	ColorBorder  = "240"

	// Chat bubble colors. User messages get a filled background so they
	// read apart from rendered answers.
	ColorUserBubbleBg = "#1F4068"
	ColorUserBubbleFg = "#E8F0FE"
)
