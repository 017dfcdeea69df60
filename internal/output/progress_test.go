package output

import (
	"strings"
	"testing"

	"github.com/blackwell-systems/psyscore/internal/scoring"
)

func TestScoreBar(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tests := []struct {
		score float64
		width int
		want  string
	}{
		{80, 10, "████████░░ 80/100"},
		{0, 4, "░░░░ 0/100"},
		{100, 4, "████ 100/100"},
		{150, 4, "████ 150/100"},
		{50, 0, strings.Repeat("█", 10) + strings.Repeat("░", 10) + " 50/100"},
	}
	for _, tc := range tests {
		if got := ScoreBar(tc.score, tc.width); got != tc.want {
			t.Errorf("ScoreBar(%v, %d) = %q, want %q", tc.score, tc.width, got, tc.want)
		}
	}
}

func TestRiskBadge(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tests := []struct {
		risk scoring.Risk
		want string
	}{
		{scoring.RiskHigh, "High risk"},
		{scoring.RiskModerate, "Moderate risk"},
		{scoring.RiskLow, "Low risk"},
		{scoring.RiskNoData, "No data"},
	}
	for _, tc := range tests {
		if got := RiskBadge(tc.risk); got != tc.want {
			t.Errorf("RiskBadge(%q) = %q, want %q", tc.risk, got, tc.want)
		}
	}
}

func TestOptionalScore(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	v := 65.25
	if got := OptionalScore(&v); got != "65.2" && got != "65.3" {
		t.Errorf("OptionalScore(65.25) = %q", got)
	}
	if got := OptionalScore(nil); got != "n/a" {
		t.Errorf("OptionalScore(nil) = %q, want n/a", got)
	}
}

func TestDistributionCell(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	got := DistributionCell(scoring.Distribution{Favorable: 50, Neutral: 30, Unfavorable: 20})
	if got != "50/30/20" {
		t.Errorf("DistributionCell() = %q, want 50/30/20", got)
	}
}
