// Package report assembles a scope's questionnaire data into a scored report
// payload with its resolved action plans.
package report

import (
	"github.com/blackwell-systems/psyscore/internal/actionplan"
	"github.com/blackwell-systems/psyscore/internal/scoring"
)

// Scope is the (company, partner) pair that bounds a report run.
type Scope struct {
	CompanyID string `json:"companyId"`
	PartnerID string `json:"partnerId"`
}

// Report is the fully resolved payload of one run.
type Report struct {
	Scope Scope `json:"scope"`

	// OverallAverageScore is nil when no assessment has a usable score.
	OverallAverageScore *float64     `json:"overallAverageScore"`
	OverallRisk         scoring.Risk `json:"overallRiskLabel"`
	ScoredAssessments   int          `json:"scoredAssessments"`

	Categories    []scoring.ProcessedCategory `json:"processedCategories"`
	Uncategorized *scoring.ProcessedCategory  `json:"uncategorized,omitempty"`

	// ActionPlans is empty unless the overall score is below the gate.
	ActionPlans []actionplan.Resolved `json:"resolvedActionPlans"`

	Diagnostics Diagnostics `json:"diagnostics"`
}

// Diagnostics counts records left out of the computation.
type Diagnostics struct {
	// InvalidResponses had an answer or scored value outside [0,100].
	InvalidResponses int `json:"invalidResponses"`

	// OrphanResponses pointed at an unknown or inactive question.
	OrphanResponses int `json:"orphanResponses"`

	// OutOfScopeResponses pointed at an assessment outside the scope.
	OutOfScopeResponses int `json:"outOfScopeResponses"`

	// OutOfScopeAssessments belong to another company.
	OutOfScopeAssessments int `json:"outOfScopeAssessments"`

	// InvalidScores are assessment scores that were present but unusable.
	InvalidScores int `json:"invalidScores"`

	// DetachedQuestions are active questions whose category is unknown or
	// inactive.
	DetachedQuestions int `json:"detachedQuestions"`

	// DetachedResponses answered a detached question.
	DetachedResponses int `json:"detachedResponses"`
}

// Skipped returns the number of transactional records that were excluded
// because of defective data.
func (d Diagnostics) Skipped() int {
	return d.InvalidResponses + d.OrphanResponses + d.DetachedResponses + d.InvalidScores
}
