package cli

import "github.com/charmbracelet/lipgloss"

// Color palette - shared hex colors for consistent theming across CLI output.
const (
	// ColorSuccess is green - success states and checkmarks.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red - errors and failures.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - warnings and attention-needed items.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorMuted is gray - secondary, de-emphasized text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorHighlight is blue - commands and interactive elements.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// SuccessStyle is for success messages and positive indicators.
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)

	// ErrorStyle is for error messages and failure indicators.
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorError)

	// WarningStyle is for warning messages.
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)

	// MutedStyle is for secondary text.
	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	// CmdStyle is for command names shown in guidance messages.
	CmdStyle = lipgloss.NewStyle().Foreground(ColorHighlight)
)
