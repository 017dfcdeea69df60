package assessment

import (
	"fmt"
	"math"
	"strings"
)

// ValidationError describes a single structural violation.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// InputError collects every structural violation found in a snapshot.
type InputError struct {
	Errors []ValidationError
}

func (e *InputError) Error() string {
	if len(e.Errors) == 1 {
		return "invalid input: " + e.Errors[0].Error()
	}
	msgs := make([]string, len(e.Errors))
	for i, v := range e.Errors {
		msgs[i] = v.Error()
	}
	return fmt.Sprintf("invalid input (%d problems): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Snapshot is everything one report run reads: reference data plus the
// transactional records of a scope.
type Snapshot struct {
	Categories  []Category   `json:"categories" yaml:"categories"`
	Questions   []Question   `json:"questions" yaml:"questions"`
	Assessments []Assessment `json:"assessments" yaml:"assessments"`
	Responses   []Response   `json:"responses" yaml:"responses"`
	ActionPlans []ActionPlan `json:"action_plans" yaml:"action_plans"`
}

// Validate checks a snapshot for structural validity and returns nil when it
// is well formed. Transactional data is checked for shape only: numeric
// defects in answers and scores are tolerated and filtered during scoring.
func Validate(s Snapshot) error {
	var errs []ValidationError

	categoryIDs := make(map[string]bool)
	for i, c := range s.Categories {
		prefix := fmt.Sprintf("categories[%d]", i)
		errs = appendID(errs, prefix, c.ID, categoryIDs)
		if strings.TrimSpace(c.Name) == "" {
			errs = append(errs, ValidationError{prefix + ".name", "required"})
		}
		if !c.Status.Valid() {
			errs = append(errs, ValidationError{prefix + ".status", fmt.Sprintf("invalid: %q", c.Status)})
		}
	}

	questionIDs := make(map[string]bool)
	for i, q := range s.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		errs = appendID(errs, prefix, q.ID, questionIDs)
		if !q.Status.Valid() {
			errs = append(errs, ValidationError{prefix + ".status", fmt.Sprintf("invalid: %q", q.Status)})
		}
		if q.CategoryID != nil && *q.CategoryID == "" {
			errs = append(errs, ValidationError{prefix + ".category_id", "must be omitted rather than empty"})
		}
	}

	assessmentIDs := make(map[string]bool)
	for i, a := range s.Assessments {
		prefix := fmt.Sprintf("assessments[%d]", i)
		errs = appendID(errs, prefix, a.ID, assessmentIDs)
		if a.CompanyID == "" {
			errs = append(errs, ValidationError{prefix + ".company_id", "required"})
		}
	}

	type answerKey struct{ assessmentID, questionID string }
	answered := make(map[answerKey]int)
	for i, r := range s.Responses {
		prefix := fmt.Sprintf("responses[%d]", i)
		if r.AssessmentID == "" {
			errs = append(errs, ValidationError{prefix + ".assessment_id", "required"})
		}
		if r.QuestionID == "" {
			errs = append(errs, ValidationError{prefix + ".question_id", "required"})
		}
		if r.AssessmentID == "" || r.QuestionID == "" {
			continue
		}
		// An assessment answers each question at most once.
		key := answerKey{r.AssessmentID, r.QuestionID}
		if first, ok := answered[key]; ok {
			errs = append(errs, ValidationError{prefix, fmt.Sprintf("duplicate response to %q in %q (first at responses[%d])", r.QuestionID, r.AssessmentID, first)})
			continue
		}
		answered[key] = i
	}

	planIDs := make(map[string]bool)
	for i, p := range s.ActionPlans {
		prefix := fmt.Sprintf("action_plans[%d]", i)
		errs = appendID(errs, prefix, p.ID, planIDs)
		errs = append(errs, validatePlan(prefix, p)...)
	}

	if len(errs) == 0 {
		return nil
	}
	return &InputError{Errors: errs}
}

func validatePlan(prefix string, p ActionPlan) []ValidationError {
	var errs []ValidationError
	if strings.TrimSpace(p.Description) == "" {
		errs = append(errs, ValidationError{prefix + ".description", "required"})
	}
	if p.CategoryID != nil && *p.CategoryID == "" {
		errs = append(errs, ValidationError{prefix + ".category_id", "must be omitted rather than empty"})
	}
	if !p.IsGlobal && (p.PartnerID == nil || *p.PartnerID == "") {
		errs = append(errs, ValidationError{prefix + ".partner_id", "required for non-global plans"})
	}
	if p.ScoreMin != nil && !isFinite(*p.ScoreMin) {
		errs = append(errs, ValidationError{prefix + ".score_min", "must be a finite number"})
	}
	if p.ScoreMax != nil && !isFinite(*p.ScoreMax) {
		errs = append(errs, ValidationError{prefix + ".score_max", "must be a finite number"})
	}
	if lo, hi := p.Band(); isFinite(lo) && isFinite(hi) && lo > hi {
		errs = append(errs, ValidationError{prefix + ".score_min", fmt.Sprintf("band [%g, %g] is inverted", lo, hi)})
	}
	return errs
}

func appendID(errs []ValidationError, prefix, id string, seen map[string]bool) []ValidationError {
	switch {
	case id == "":
		return append(errs, ValidationError{prefix + ".id", "required"})
	case seen[id]:
		return append(errs, ValidationError{prefix + ".id", fmt.Sprintf("duplicate ID: %q", id)})
	}
	seen[id] = true
	return errs
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
