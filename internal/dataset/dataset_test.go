package dataset

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/psyscore/internal/assessment"
)

func TestLoad_YAMLFixture(t *testing.T) {
	snap, err := Load(filepath.Join("testdata", "demandas.yaml"))
	require.NoError(t, err)

	require.Len(t, snap.Categories, 3)
	assert.Equal(t, "Demandas", snap.Categories[0].Name)
	require.NotNil(t, snap.Categories[0].Description)
	assert.Equal(t, "Workload and pace", *snap.Categories[0].Description)
	assert.Nil(t, snap.Categories[1].Description)
	assert.Equal(t, assessment.StatusInactive, snap.Categories[2].Status)

	require.Len(t, snap.Questions, 3)
	assert.Equal(t, assessment.KindInverse, snap.Questions[1].Kind)
	require.NotNil(t, snap.Questions[1].CategoryID)
	assert.Equal(t, "c1", *snap.Questions[1].CategoryID)

	require.Len(t, snap.Assessments, 3)
	require.NotNil(t, snap.Assessments[0].Score)
	assert.Equal(t, 70.0, *snap.Assessments[0].Score)
	assert.Nil(t, snap.Assessments[2].Score)

	require.Len(t, snap.Responses, 4)
	assert.Nil(t, snap.Responses[0].ScoredValue)
	require.NotNil(t, snap.Responses[3].ScoredValue)

	require.Len(t, snap.ActionPlans, 3)
	lo, hi := snap.ActionPlans[0].Band()
	assert.Equal(t, [2]float64{0, 90}, [2]float64{lo, hi})
	assert.Equal(t, "acme", *snap.ActionPlans[1].PartnerID)

	assert.NoError(t, assessment.Validate(snap))
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("questions:\n  - id: q1\n    kidn: inverse\n"), FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kidn")

	_, err = Decode(strings.NewReader(`{"questions":[{"id":"q1","kidn":"inverse"}]}`), FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kidn")
}

func TestDecode_EmptyYAML(t *testing.T) {
	snap, err := Decode(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, snap.Questions)
}

func TestEncodeDecode_JSONAndYAML(t *testing.T) {
	orig, err := Load(filepath.Join("testdata", "demandas.yaml"))
	require.NoError(t, err)

	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, orig, format))
			got, err := Decode(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, orig, got)
		})
	}
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"snap.json", FormatJSON},
		{"SNAP.JSON", FormatJSON},
		{"snap.yaml", FormatYAML},
		{"snap.yml", FormatYAML},
		{"snap", FormatYAML},
	}
	for _, tc := range tests {
		if got := FormatOf(tc.path); got != tc.want {
			t.Errorf("FormatOf(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
