// Package dataset reads scope snapshots from YAML or JSON files.
package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/blackwell-systems/psyscore/internal/assessment"
)

// Format is a snapshot file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatOf picks the encoding from a file extension. Anything that is not
// .json is read as YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Load reads the snapshot file at path.
func Load(path string) (assessment.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return assessment.Snapshot{}, err
	}
	defer func() { _ = f.Close() }()

	snap, err := Decode(f, FormatOf(path))
	if err != nil {
		return assessment.Snapshot{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return snap, nil
}

// Decode reads one snapshot document. Unknown keys are rejected so that a
// misspelled field fails loudly instead of being read as its zero value.
func Decode(r io.Reader, format Format) (assessment.Snapshot, error) {
	var snap assessment.Snapshot
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&snap); err != nil {
			return assessment.Snapshot{}, fmt.Errorf("decoding json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&snap); err != nil && !errors.Is(err, io.EOF) {
			return assessment.Snapshot{}, fmt.Errorf("decoding yaml: %w", err)
		}
	default:
		return assessment.Snapshot{}, fmt.Errorf("unsupported format %q", format)
	}
	return snap, nil
}

// Encode writes a snapshot in the given format.
func Encode(w io.Writer, snap assessment.Snapshot, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	}
	return fmt.Errorf("unsupported format %q", format)
}
