package scoring

// Cut points shared by the sentiment classifier and the risk bander. A value
// equal to a threshold belongs to the higher bucket.
const (
	FavorableThreshold = 75.0
	NeutralThreshold   = 40.0
)

// Sentiment is the bucket a single scored value falls into.
type Sentiment string

const (
	SentimentFavorable   Sentiment = "favorable"
	SentimentNeutral     Sentiment = "neutral"
	SentimentUnfavorable Sentiment = "unfavorable"
)

// Classify buckets a scored value.
func Classify(v float64) Sentiment {
	switch {
	case v >= FavorableThreshold:
		return SentimentFavorable
	case v >= NeutralThreshold:
		return SentimentNeutral
	default:
		return SentimentUnfavorable
	}
}

// Distribution holds the percentage of responses in each sentiment bucket.
// The fields sum to 100, or are all zero when there were no responses.
type Distribution struct {
	Favorable   float64 `json:"favorable"`
	Neutral     float64 `json:"neutral"`
	Unfavorable float64 `json:"unfavorable"`
}

// Total returns the sum of the three percentages.
func (d Distribution) Total() float64 {
	return d.Favorable + d.Neutral + d.Unfavorable
}

// distributionOf classifies every value individually and converts the
// bucket counts to percentages.
func distributionOf(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}
	var fav, neu, unf int
	for _, v := range values {
		switch Classify(v) {
		case SentimentFavorable:
			fav++
		case SentimentNeutral:
			neu++
		default:
			unf++
		}
	}
	n := float64(len(values))
	return Distribution{
		Favorable:   float64(fav) / n * 100,
		Neutral:     float64(neu) / n * 100,
		Unfavorable: float64(unf) / n * 100,
	}
}
