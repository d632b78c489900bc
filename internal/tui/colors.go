package tui

// Color constants for the logbook TUI theme
const (
	// Base Colors
	ColorCardBackground = "#142326" // Dark teal
	ColorBorder         = "#35504F" // Grey-green

	// Text Colors
	ColorPrimaryText   = "#E6F2EE" // Values, user input, titles
	ColorSecondaryText = "#A9C0B8" // Labels
	ColorDisabledText  = "#647A73" // Empty values, older bars
	ColorPlaceholder   = "#A9C0B8"
	ColorHelpText      = "240"

	// Accent Colors (Teal theme)
	ColorAccentMain   = "#0FA38A" // Borders of the focused panel
	ColorAccentBright = "#5EEAD4" // Selected row, newest bar

	// State Colors
	ColorError   = "#EF4444"
	ColorSuccess = "#22C55E" // Trend up, personal best
	ColorWarning = "#F59E0B" // Trend down
)
