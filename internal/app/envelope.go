package app

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
)

// envelope wraps JSON command output with run metadata. The report payload
// itself stays free of ids and timestamps so identical input yields
// identical reports.
type envelope struct {
	RunID       string    `json:"runId"`
	GeneratedAt time.Time `json:"generatedAt"`
	Version     string    `json:"version"`
	Data        any       `json:"data"`
}

func newEnvelope(data any) envelope {
	return envelope{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Version:     appVersion,
		Data:        data,
	}
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
