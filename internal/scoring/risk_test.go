package scoring

import "testing"

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		value float64
		want  Sentiment
	}{
		{100, SentimentFavorable},
		{75, SentimentFavorable},
		{74.999, SentimentNeutral},
		{40, SentimentNeutral},
		{39.99, SentimentUnfavorable},
		{0, SentimentUnfavorable},
	}

	for _, tc := range tests {
		if got := Classify(tc.value); got != tc.want {
			t.Errorf("Classify(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestBand_MatchesClassifier(t *testing.T) {
	want := map[Sentiment]Risk{
		SentimentFavorable:   RiskLow,
		SentimentNeutral:     RiskModerate,
		SentimentUnfavorable: RiskHigh,
	}
	for v := 0.0; v <= 100; v += 0.5 {
		if got := BandScore(v); got != want[Classify(v)] {
			t.Errorf("BandScore(%v) = %q, classifier says %q", v, got, Classify(v))
		}
	}
}

func TestBand_Nil(t *testing.T) {
	if got := Band(nil); got != RiskNoData {
		t.Errorf("Band(nil) = %q, want %q", got, RiskNoData)
	}
	zero := 0.0
	if got := Band(&zero); got != RiskHigh {
		t.Errorf("Band(0) = %q, want %q", got, RiskHigh)
	}
}

func TestRiskColorAndLabel(t *testing.T) {
	tests := []struct {
		risk  Risk
		color string
		label string
	}{
		{RiskHigh, "red", "High risk"},
		{RiskModerate, "yellow", "Moderate risk"},
		{RiskLow, "green", "Low risk"},
		{RiskNoData, "gray", "No data"},
	}
	for _, tc := range tests {
		if got := tc.risk.Color(); got != tc.color {
			t.Errorf("%q.Color() = %q, want %q", tc.risk, got, tc.color)
		}
		if got := tc.risk.Label(); got != tc.label {
			t.Errorf("%q.Label() = %q, want %q", tc.risk, got, tc.label)
		}
	}
}
