package store

import (
	"database/sql"
	"fmt"

	"github.com/blackwell-systems/psyscore/internal/assessment"
)

// LoadScope reads the snapshot a report run needs for one company and
// partner: all categories and questions, the company's assessments and
// their responses, and the global plans plus the partner's own plans.
// Rows come back in insertion order.
func (db *DB) LoadScope(companyID, partnerID string) (assessment.Snapshot, error) {
	var snap assessment.Snapshot
	var err error

	if snap.Categories, err = db.categories(); err != nil {
		return snap, fmt.Errorf("loading categories: %w", err)
	}
	if snap.Questions, err = db.questions(); err != nil {
		return snap, fmt.Errorf("loading questions: %w", err)
	}
	if snap.Assessments, err = db.assessments(companyID); err != nil {
		return snap, fmt.Errorf("loading assessments: %w", err)
	}
	if snap.Responses, err = db.responses(companyID); err != nil {
		return snap, fmt.Errorf("loading responses: %w", err)
	}
	if snap.ActionPlans, err = db.actionPlans(partnerID); err != nil {
		return snap, fmt.Errorf("loading action plans: %w", err)
	}
	return snap, nil
}

// ListCompanies returns the distinct companies with assessments under a
// partner, sorted by ID.
func (db *DB) ListCompanies(partnerID string) ([]string, error) {
	rows, err := db.conn.Query(
		"SELECT DISTINCT company_id FROM assessments WHERE partner_id = ? ORDER BY company_id",
		partnerID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (db *DB) categories() ([]assessment.Category, error) {
	rows, err := db.conn.Query(
		"SELECT id, name, description, sort_order, status FROM categories ORDER BY rowid",
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []assessment.Category
	for rows.Next() {
		var c assessment.Category
		var desc sql.NullString
		var order sql.NullInt64
		var status string
		if err := rows.Scan(&c.ID, &c.Name, &desc, &order, &status); err != nil {
			return nil, err
		}
		c.Description = stringPtr(desc)
		c.Order = intPtr(order)
		c.Status = assessment.Status(status)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (db *DB) questions() ([]assessment.Question, error) {
	rows, err := db.conn.Query(
		"SELECT id, category_id, sort_order, kind, status FROM questions ORDER BY rowid",
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []assessment.Question
	for rows.Next() {
		var q assessment.Question
		var categoryID sql.NullString
		var order sql.NullInt64
		var kind, status string
		if err := rows.Scan(&q.ID, &categoryID, &order, &kind, &status); err != nil {
			return nil, err
		}
		q.CategoryID = stringPtr(categoryID)
		q.Order = intPtr(order)
		q.Kind = assessment.Kind(kind)
		q.Status = assessment.Status(status)
		out = append(out, q)
	}
	return out, rows.Err()
}

func (db *DB) assessments(companyID string) ([]assessment.Assessment, error) {
	rows, err := db.conn.Query(
		"SELECT id, company_id, partner_id, score FROM assessments WHERE company_id = ? ORDER BY rowid",
		companyID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []assessment.Assessment
	for rows.Next() {
		var a assessment.Assessment
		var score sql.NullFloat64
		if err := rows.Scan(&a.ID, &a.CompanyID, &a.PartnerID, &score); err != nil {
			return nil, err
		}
		a.Score = floatPtr(score)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (db *DB) responses(companyID string) ([]assessment.Response, error) {
	rows, err := db.conn.Query(
		`SELECT r.assessment_id, r.question_id, r.answer_value, r.scored_value
		 FROM responses r
		 JOIN assessments a ON a.id = r.assessment_id
		 WHERE a.company_id = ?
		 ORDER BY r.id`,
		companyID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []assessment.Response
	for rows.Next() {
		var r assessment.Response
		var scored sql.NullFloat64
		if err := rows.Scan(&r.AssessmentID, &r.QuestionID, &r.AnswerValue, &scored); err != nil {
			return nil, err
		}
		r.ScoredValue = floatPtr(scored)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (db *DB) actionPlans(partnerID string) ([]assessment.ActionPlan, error) {
	rows, err := db.conn.Query(
		`SELECT id, category_id, description, is_global, partner_id, show_in_report, score_min, score_max
		 FROM action_plans
		 WHERE is_global = 1 OR partner_id = ?
		 ORDER BY rowid`,
		partnerID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []assessment.ActionPlan
	for rows.Next() {
		var p assessment.ActionPlan
		var categoryID, owner sql.NullString
		var lo, hi sql.NullFloat64
		if err := rows.Scan(&p.ID, &categoryID, &p.Description, &p.IsGlobal, &owner,
			&p.ShowInReport, &lo, &hi); err != nil {
			return nil, err
		}
		p.CategoryID = stringPtr(categoryID)
		p.PartnerID = stringPtr(owner)
		p.ScoreMin = floatPtr(lo)
		p.ScoreMax = floatPtr(hi)
		out = append(out, p)
	}
	return out, rows.Err()
}

func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullInt(i *int) any {
	if i == nil {
		return nil
	}
	return int64(*i)
}

func nullFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func intPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	i := int(ni.Int64)
	return &i
}

func floatPtr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	f := nf.Float64
	return &f
}
