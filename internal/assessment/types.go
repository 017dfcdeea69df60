// Package assessment defines the reference and transactional records a
// report run consumes: questions, categories, assessments, responses and
// action plans.
package assessment

// Category groups questions for reporting.
type Category struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	Order       *int    `json:"order,omitempty" yaml:"order,omitempty"`
	Status      Status  `json:"status" yaml:"status"`
}

// Question is one questionnaire item.
type Question struct {
	ID string `json:"id" yaml:"id"`

	// CategoryID is nil for uncategorized questions.
	CategoryID *string `json:"category_id,omitempty" yaml:"category_id,omitempty"`

	Order  *int   `json:"order,omitempty" yaml:"order,omitempty"`
	Kind   Kind   `json:"kind" yaml:"kind"`
	Status Status `json:"status" yaml:"status"`
}

// Assessment is one completed questionnaire instance.
type Assessment struct {
	ID        string `json:"id" yaml:"id"`
	CompanyID string `json:"company_id" yaml:"company_id"`
	PartnerID string `json:"partner_id" yaml:"partner_id"`

	// Score is the aggregate computed at completion time, nil if incomplete.
	Score *float64 `json:"score,omitempty" yaml:"score,omitempty"`
}

// Response is one answer to one question within one assessment.
type Response struct {
	AssessmentID string  `json:"assessment_id" yaml:"assessment_id"`
	QuestionID   string  `json:"question_id" yaml:"question_id"`
	AnswerValue  float64 `json:"answer_value" yaml:"answer_value"`

	// ScoredValue is the polarity-corrected value. When nil it is derived
	// from AnswerValue and the owning question's kind.
	ScoredValue *float64 `json:"scored_value,omitempty" yaml:"scored_value,omitempty"`
}

// ActionPlan is a block of remediation text tied to a category.
type ActionPlan struct {
	ID          string  `json:"id" yaml:"id"`
	CategoryID  *string `json:"category_id,omitempty" yaml:"category_id,omitempty"`
	Description string  `json:"description" yaml:"description"`
	IsGlobal    bool    `json:"is_global" yaml:"is_global"`

	// PartnerID owns a non-global plan.
	PartnerID *string `json:"partner_id,omitempty" yaml:"partner_id,omitempty"`

	ShowInReport bool `json:"show_in_report" yaml:"show_in_report"`

	// ScoreMin and ScoreMax bound global plans inclusively; nil means 0 and 100.
	ScoreMin *float64 `json:"score_min,omitempty" yaml:"score_min,omitempty"`
	ScoreMax *float64 `json:"score_max,omitempty" yaml:"score_max,omitempty"`
}

// Band returns the plan's inclusive score band with defaults applied.
func (p ActionPlan) Band() (lo, hi float64) {
	lo, hi = 0, 100
	if p.ScoreMin != nil {
		lo = *p.ScoreMin
	}
	if p.ScoreMax != nil {
		hi = *p.ScoreMax
	}
	return lo, hi
}

// AnswerOption is one labeled point of an answer scale.
type AnswerOption struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

// DefaultScale is the five-point frequency scale used by the questionnaire
// front-end to produce answer values.
var DefaultScale = []AnswerOption{
	{Label: "Never", Value: 0},
	{Label: "Rarely", Value: 25},
	{Label: "Sometimes", Value: 50},
	{Label: "Often", Value: 75},
	{Label: "Always", Value: 100},
}

// OrderOf returns the display order with nil treated as 0.
func OrderOf(order *int) int {
	if order == nil {
		return 0
	}
	return *order
}
