// Package store provides SQLite persistence for questionnaire reference data
// and assessment records.
package store

import "time"

// Import records one snapshot loaded into the database.
type Import struct {
	ID         int64     `json:"id"`
	ImportedAt time.Time `json:"imported_at"`
	Source     string    `json:"source"`
	Version    string    `json:"version"`
}

// ImportStats counts the rows written by an import.
type ImportStats struct {
	Categories  int `json:"categories"`
	Questions   int `json:"questions"`
	Assessments int `json:"assessments"`
	Responses   int `json:"responses"`
	ActionPlans int `json:"action_plans"`
}
