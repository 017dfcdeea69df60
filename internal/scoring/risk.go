package scoring

// Risk is the qualitative band of an average score.
type Risk string

const (
	RiskHigh     Risk = "high"
	RiskModerate Risk = "moderate"
	RiskLow      Risk = "low"
	RiskNoData   Risk = "no_data"
)

// Band maps an average to its risk level. A nil average has no data and is
// never treated as a score.
func Band(avg *float64) Risk {
	if avg == nil {
		return RiskNoData
	}
	return BandScore(*avg)
}

// BandScore maps a known average to its risk level using the same cut
// points as Classify.
func BandScore(v float64) Risk {
	switch Classify(v) {
	case SentimentFavorable:
		return RiskLow
	case SentimentNeutral:
		return RiskModerate
	default:
		return RiskHigh
	}
}

// Color returns the badge color used for the level.
func (r Risk) Color() string {
	switch r {
	case RiskHigh:
		return "red"
	case RiskModerate:
		return "yellow"
	case RiskLow:
		return "green"
	default:
		return "gray"
	}
}

// Label returns a human-readable name for the level.
func (r Risk) Label() string {
	switch r {
	case RiskHigh:
		return "High risk"
	case RiskModerate:
		return "Moderate risk"
	case RiskLow:
		return "Low risk"
	default:
		return "No data"
	}
}
