package report

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/blackwell-systems/psyscore/internal/actionplan"
	"github.com/blackwell-systems/psyscore/internal/assessment"
	"github.com/blackwell-systems/psyscore/internal/scoring"
)

// Options tune a report run.
type Options struct {
	// Logger receives diagnostics about skipped records. Nil discards them.
	Logger *slog.Logger

	// OmitUncategorized drops the uncategorized bucket from the payload and
	// from plan resolution.
	OmitUncategorized bool
}

// Build computes the report for one scope. It reads snap without modifying
// it, keeps no state between calls and returns identical output for
// identical input. Structurally invalid input yields an error wrapping
// *assessment.InputError; numerically defective records are skipped and
// counted in Report.Diagnostics.
func Build(snap assessment.Snapshot, scope Scope, opts Options) (*Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if err := validate(snap, scope); err != nil {
		return nil, fmt.Errorf("report for company %q: %w", scope.CompanyID, err)
	}

	var diag Diagnostics

	// Assessments of the scope's company.
	var inScope []assessment.Assessment
	assessmentIDs := make(map[string]bool)
	for _, a := range snap.Assessments {
		if a.CompanyID != scope.CompanyID {
			diag.OutOfScopeAssessments++
			continue
		}
		inScope = append(inScope, a)
		assessmentIDs[a.ID] = true
	}

	kinds := make(map[string]assessment.Kind)
	for _, q := range snap.Questions {
		if q.Status.Active() {
			kinds[q.ID] = q.Kind
		}
	}

	scores := make(map[string][]float64)
	for _, r := range snap.Responses {
		if !assessmentIDs[r.AssessmentID] {
			diag.OutOfScopeResponses++
			continue
		}
		kind, ok := kinds[r.QuestionID]
		if !ok {
			diag.OrphanResponses++
			continue
		}
		v, ok := scoring.ScoredValue(r, kind)
		if !ok {
			diag.InvalidResponses++
			continue
		}
		scores[r.QuestionID] = append(scores[r.QuestionID], v)
	}

	agg := scoring.Aggregate(snap.Categories, snap.Questions, scores)
	diag.DetachedQuestions = agg.DetachedQuestions
	diag.DetachedResponses = agg.DetachedResponses

	overall := scoring.OverallAverage(inScope)
	diag.InvalidScores = overall.Invalid

	rep := &Report{
		Scope:               scope,
		OverallAverageScore: overall.Average,
		OverallRisk:         scoring.Band(overall.Average),
		ScoredAssessments:   overall.Scored,
		Categories:          agg.Categories,
		ActionPlans:         []actionplan.Resolved{},
		Diagnostics:         diag,
	}
	if !opts.OmitUncategorized {
		rep.Uncategorized = agg.Uncategorized
	}

	if overall.PlansRequired() {
		candidates := rep.Categories
		if rep.Uncategorized != nil {
			candidates = append(append([]scoring.ProcessedCategory(nil), candidates...), *rep.Uncategorized)
		}
		rep.ActionPlans = actionplan.Resolve(snap.ActionPlans, scope.PartnerID, candidates)
	}

	if n := diag.Skipped(); n > 0 {
		logger.Warn("skipped defective records",
			"company", scope.CompanyID,
			"skipped", n,
			"invalid_responses", diag.InvalidResponses,
			"orphan_responses", diag.OrphanResponses,
			"detached_responses", diag.DetachedResponses,
			"invalid_scores", diag.InvalidScores,
		)
	}
	logger.Debug("report built",
		"company", scope.CompanyID,
		"partner", scope.PartnerID,
		"categories", len(rep.Categories),
		"scored_assessments", overall.Scored,
		"action_plans", len(rep.ActionPlans),
		"out_of_scope_responses", diag.OutOfScopeResponses,
		"detached_questions", diag.DetachedQuestions,
	)

	return rep, nil
}

// validate merges scope and snapshot problems into a single InputError.
func validate(snap assessment.Snapshot, scope Scope) error {
	var errs []assessment.ValidationError
	if scope.CompanyID == "" {
		errs = append(errs, assessment.ValidationError{Path: "scope.company_id", Message: "required"})
	}
	if scope.PartnerID == "" {
		errs = append(errs, assessment.ValidationError{Path: "scope.partner_id", Message: "required"})
	}

	if err := assessment.Validate(snap); err != nil {
		var inputErr *assessment.InputError
		if !errors.As(err, &inputErr) {
			return err
		}
		errs = append(errs, inputErr.Errors...)
	}

	if len(errs) == 0 {
		return nil
	}
	return &assessment.InputError{Errors: errs}
}
