// Package output provides styled terminal rendering helpers for trackwatch.
package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorSuccess is used for healthy conditions and passing checks.
	ColorSuccess = lipgloss.Color("#66bb6a")

	// ColorError is used for critical conditions and failures.
	ColorError = lipgloss.Color("#ef5350")

	// ColorWarning is used for warning conditions.
	ColorWarning = lipgloss.Color("#fff59d")

	// ColorMuted is used for secondary text and borders.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	// StyleHeader is used for section headers.
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// StyleSuccess is used for GOOD conditions and positive values.
	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// StyleError is used for CRITICAL conditions and errors.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleWarning is used for WARNING conditions.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleMuted is used for de-emphasized text.
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleBold is used for emphasized text.
	StyleBold = lipgloss.NewStyle().
			Bold(true)

	// StyleLabel is used for report field labels.
	StyleLabel = lipgloss.NewStyle().Width(18)

	// StyleValue is used for report field values.
	StyleValue = lipgloss.NewStyle().Bold(true)
)

// noColor tracks whether color output is disabled.
var noColor bool

// SetNoColor disables or enables color output globally.
// When disabled, all package-level styles are reassigned to unstyled renderers.
func SetNoColor(disabled bool) {
	noColor = disabled
	if disabled {
		plain := lipgloss.NewStyle()
		StyleHeader = plain
		StyleSuccess = plain
		StyleError = plain
		StyleWarning = plain
		StyleMuted = plain
		StyleBold = plain
		StyleLabel = plain.Width(18)
		StyleValue = plain
	}
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}

// ConditionStyle returns the style for a condition label: CRITICAL renders
// in the error style, WARNING in the warning style, anything else in the
// success style.
func ConditionStyle(condition string) lipgloss.Style {
	switch condition {
	case "CRITICAL":
		return StyleError
	case "WARNING":
		return StyleWarning
	default:
		return StyleSuccess
	}
}

// Section renders a section header above a muted horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 60))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
