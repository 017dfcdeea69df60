package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/blackwell-systems/psyscore/internal/assessment"
)

// ImportSnapshot upserts every record of snap in one transaction and records
// the import. Rows are keyed by ID; responses are keyed by
// (assessment_id, question_id), so re-importing a file is idempotent.
// A structurally invalid snapshot is rejected before anything is written.
func (db *DB) ImportSnapshot(snap assessment.Snapshot, source, version string) (int64, ImportStats, error) {
	var stats ImportStats

	if err := assessment.Validate(snap); err != nil {
		return 0, stats, err
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return 0, stats, err
	}
	defer tx.Rollback()

	for _, c := range snap.Categories {
		if _, err := tx.Exec(
			`INSERT INTO categories (id, name, description, sort_order, status)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				name = excluded.name, description = excluded.description,
				sort_order = excluded.sort_order, status = excluded.status`,
			c.ID, c.Name, nullString(c.Description), nullInt(c.Order), string(c.Status),
		); err != nil {
			return 0, stats, fmt.Errorf("category %s: %w", c.ID, err)
		}
		stats.Categories++
	}

	for _, q := range snap.Questions {
		if _, err := tx.Exec(
			`INSERT INTO questions (id, category_id, sort_order, kind, status)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				category_id = excluded.category_id, sort_order = excluded.sort_order,
				kind = excluded.kind, status = excluded.status`,
			q.ID, nullString(q.CategoryID), nullInt(q.Order), string(q.Kind), string(q.Status),
		); err != nil {
			return 0, stats, fmt.Errorf("question %s: %w", q.ID, err)
		}
		stats.Questions++
	}

	for _, a := range snap.Assessments {
		if _, err := tx.Exec(
			`INSERT INTO assessments (id, company_id, partner_id, score)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				company_id = excluded.company_id, partner_id = excluded.partner_id,
				score = excluded.score`,
			a.ID, a.CompanyID, a.PartnerID, nullFloat(a.Score),
		); err != nil {
			return 0, stats, fmt.Errorf("assessment %s: %w", a.ID, err)
		}
		stats.Assessments++
	}

	for _, r := range snap.Responses {
		if _, err := tx.Exec(
			`INSERT INTO responses (assessment_id, question_id, answer_value, scored_value)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(assessment_id, question_id) DO UPDATE SET
				answer_value = excluded.answer_value, scored_value = excluded.scored_value`,
			r.AssessmentID, r.QuestionID, r.AnswerValue, nullFloat(r.ScoredValue),
		); err != nil {
			return 0, stats, fmt.Errorf("response %s/%s: %w", r.AssessmentID, r.QuestionID, err)
		}
		stats.Responses++
	}

	for _, p := range snap.ActionPlans {
		if _, err := tx.Exec(
			`INSERT INTO action_plans
			(id, category_id, description, is_global, partner_id, show_in_report, score_min, score_max)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				category_id = excluded.category_id, description = excluded.description,
				is_global = excluded.is_global, partner_id = excluded.partner_id,
				show_in_report = excluded.show_in_report,
				score_min = excluded.score_min, score_max = excluded.score_max`,
			p.ID, nullString(p.CategoryID), p.Description, p.IsGlobal, nullString(p.PartnerID),
			p.ShowInReport, nullFloat(p.ScoreMin), nullFloat(p.ScoreMax),
		); err != nil {
			return 0, stats, fmt.Errorf("action plan %s: %w", p.ID, err)
		}
		stats.ActionPlans++
	}

	result, err := tx.Exec(
		"INSERT INTO imports (imported_at, source, version) VALUES (?, ?, ?)",
		time.Now().UTC().Format(time.RFC3339), source, version,
	)
	if err != nil {
		return 0, stats, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, stats, err
	}

	return id, stats, tx.Commit()
}

// GetLatestImport returns the most recent import, or nil if none exist.
func (db *DB) GetLatestImport() (*Import, error) {
	row := db.conn.QueryRow("SELECT id, imported_at, source, version FROM imports ORDER BY id DESC LIMIT 1")
	return scanImport(row)
}

func scanImport(row *sql.Row) (*Import, error) {
	var imp Import
	var importedAt string
	err := row.Scan(&imp.ID, &importedAt, &imp.Source, &imp.Version)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	imp.ImportedAt, _ = time.Parse(time.RFC3339, importedAt)
	return &imp, nil
}
