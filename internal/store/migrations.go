package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates the reference and transactional tables.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS imports (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			imported_at TEXT NOT NULL,
			source      TEXT NOT NULL,
			version     TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS categories (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			description TEXT,
			sort_order  INTEGER,
			status      TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS questions (
			id          TEXT PRIMARY KEY,
			category_id TEXT,
			sort_order  INTEGER,
			kind        TEXT NOT NULL,
			status      TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS assessments (
			id         TEXT PRIMARY KEY,
			company_id TEXT NOT NULL,
			partner_id TEXT NOT NULL,
			score      REAL
		)`,

		// question_id is not a foreign key: responses outlive removed questions.
		`CREATE TABLE IF NOT EXISTS responses (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			assessment_id TEXT NOT NULL,
			question_id   TEXT NOT NULL,
			answer_value  REAL NOT NULL,
			scored_value  REAL,
			UNIQUE (assessment_id, question_id)
		)`,

		`CREATE TABLE IF NOT EXISTS action_plans (
			id             TEXT PRIMARY KEY,
			category_id    TEXT,
			description    TEXT NOT NULL,
			is_global      BOOLEAN NOT NULL,
			partner_id     TEXT,
			show_in_report BOOLEAN NOT NULL,
			score_min      REAL,
			score_max      REAL
		)`,

		// Indexes.
		`CREATE INDEX IF NOT EXISTS idx_assessments_company ON assessments(company_id)`,
		`CREATE INDEX IF NOT EXISTS idx_assessments_partner ON assessments(partner_id)`,
		`CREATE INDEX IF NOT EXISTS idx_responses_assessment ON responses(assessment_id)`,
		`CREATE INDEX IF NOT EXISTS idx_action_plans_partner ON action_plans(partner_id)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
