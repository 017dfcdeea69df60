package output

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/psyscore/internal/scoring"
)

// ScoreBar renders a visual progress bar for a 0-100 score, colored by the
// risk band of the score.
// Example: "████████░░ 80/100"
func ScoreBar(score float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int((score / 100.0) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	style := RiskStyle(scoring.BandScore(score))

	return fmt.Sprintf("%s %s", style.Render(bar), StyleMuted.Render(fmt.Sprintf("%.0f/100", score)))
}

// OptionalScore formats a score that may be missing.
func OptionalScore(score *float64) string {
	if score == nil {
		return StyleMuted.Render("n/a")
	}
	return fmt.Sprintf("%.1f", *score)
}

// DistributionCell renders favorable/neutral/unfavorable percentages.
// Example: "50/30/20"
func DistributionCell(d scoring.Distribution) string {
	return fmt.Sprintf("%s/%s/%s",
		StyleSuccess.Render(fmt.Sprintf("%.0f", d.Favorable)),
		StyleWarning.Render(fmt.Sprintf("%.0f", d.Neutral)),
		StyleError.Render(fmt.Sprintf("%.0f", d.Unfavorable)),
	)
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
