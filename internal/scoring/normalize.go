// Package scoring turns questionnaire responses into question, category and
// overall scores and classifies them into sentiment buckets and risk bands.
package scoring

import (
	"math"

	"github.com/blackwell-systems/psyscore/internal/assessment"
)

// MinValue and MaxValue bound answer values, scored values and assessment
// scores.
const (
	MinValue = 0.0
	MaxValue = 100.0
)

// Normalize returns the polarity-corrected score for a raw answer. Inverse
// questions are flipped around the scale; every other kind is direct.
// The value is not clamped.
func Normalize(answer float64, kind assessment.Kind) float64 {
	if kind.IsInverse() {
		return MaxValue - answer
	}
	return answer
}

// NewResponse builds a response record with its scored value derived from
// the owning question's kind.
func NewResponse(assessmentID, questionID string, answer float64, kind assessment.Kind) assessment.Response {
	scored := Normalize(answer, kind)
	return assessment.Response{
		AssessmentID: assessmentID,
		QuestionID:   questionID,
		AnswerValue:  answer,
		ScoredValue:  &scored,
	}
}

// ScoredValue returns the response's scored value, deriving it from the
// answer when the record does not carry one. ok is false when the answer or
// the scored value is not a finite number within [MinValue, MaxValue].
func ScoredValue(r assessment.Response, kind assessment.Kind) (v float64, ok bool) {
	if !InRange(r.AnswerValue) {
		return 0, false
	}
	if r.ScoredValue != nil {
		v = *r.ScoredValue
		return v, InRange(v)
	}
	return Normalize(r.AnswerValue, kind), true
}

// InRange reports whether v is a finite number within [MinValue, MaxValue].
func InRange(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v >= MinValue && v <= MaxValue
}
