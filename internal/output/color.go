// Package output provides styled terminal rendering helpers for psyscore.
package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/blackwell-systems/psyscore/internal/scoring"
)

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorSuccess marks low risk and favorable shares.
	ColorSuccess = lipgloss.Color("#66bb6a")

	// ColorError marks high risk and unfavorable shares.
	ColorError = lipgloss.Color("#ef5350")

	// ColorWarning marks moderate risk and neutral shares.
	ColorWarning = lipgloss.Color("#fff59d")

	// ColorMuted is used for secondary text, borders and missing data.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	// StyleHeader is used for section headers.
	StyleHeader lipgloss.Style

	// StyleSuccess is used for low-risk values.
	StyleSuccess lipgloss.Style

	// StyleError is used for high-risk values.
	StyleError lipgloss.Style

	// StyleWarning is used for moderate-risk values.
	StyleWarning lipgloss.Style

	// StyleMuted is used for de-emphasized text.
	StyleMuted lipgloss.Style

	// StyleBold is used for emphasized text.
	StyleBold lipgloss.Style

	// StyleLabel is used for metric labels.
	StyleLabel lipgloss.Style
)

func init() {
	SetNoColor(false)
}

// noColor tracks whether color output is disabled.
var noColor bool

// SetNoColor disables or enables color output globally by rebuilding the
// package-level styles.
func SetNoColor(disabled bool) {
	noColor = disabled
	base := lipgloss.NewStyle()
	fg := func(c lipgloss.Color) lipgloss.Style {
		if disabled {
			return base
		}
		return base.Foreground(c)
	}

	StyleHeader = fg(ColorPrimary)
	StyleSuccess = fg(ColorSuccess)
	StyleError = fg(ColorError)
	StyleWarning = fg(ColorWarning)
	StyleMuted = fg(ColorMuted)
	StyleBold = base
	if !disabled {
		StyleHeader = StyleHeader.Bold(true)
		StyleBold = StyleBold.Bold(true)
	}
	StyleLabel = base.Width(24)
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}

// RiskStyle returns the style for a risk level.
func RiskStyle(r scoring.Risk) lipgloss.Style {
	switch r {
	case scoring.RiskHigh:
		return StyleError
	case scoring.RiskModerate:
		return StyleWarning
	case scoring.RiskLow:
		return StyleSuccess
	default:
		return StyleMuted
	}
}

// RiskBadge renders the human label of a risk level in its color.
func RiskBadge(r scoring.Risk) string {
	return RiskStyle(r).Render(r.Label())
}
