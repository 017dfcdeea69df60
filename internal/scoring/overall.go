package scoring

import "github.com/blackwell-systems/psyscore/internal/assessment"

// ActionPlanGate is the overall score below which remediation plans are
// attached to a report.
const ActionPlanGate = 75.0

// Overall is the company-level aggregate of precomputed assessment scores.
type Overall struct {
	// Average is nil when no assessment carries a usable score.
	Average *float64

	// Scored counts assessments that contributed to Average.
	Scored int

	// Invalid counts assessments whose score was present but not a finite
	// number within [MinValue, MaxValue].
	Invalid int
}

// OverallAverage averages the score of every assessment that has one.
// Incomplete assessments (nil score) are ignored; malformed scores are
// ignored and counted.
func OverallAverage(assessments []assessment.Assessment) Overall {
	var o Overall
	var sum float64
	for _, a := range assessments {
		if a.Score == nil {
			continue
		}
		if !InRange(*a.Score) {
			o.Invalid++
			continue
		}
		sum += *a.Score
		o.Scored++
	}
	if o.Scored > 0 {
		avg := sum / float64(o.Scored)
		o.Average = &avg
	}
	return o
}

// PlansRequired reports whether the overall score calls for action plans.
// A missing overall score never does.
func (o Overall) PlansRequired() bool {
	return o.Average != nil && *o.Average < ActionPlanGate
}
