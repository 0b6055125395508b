package renderer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzivkovi/semanticjson/pkg/differ"
	"github.com/dzivkovi/semanticjson/pkg/reconciler"
)

func sampleResult() *reconciler.Result {
	return &reconciler.Result{
		StructuralDiff: differ.Diff{
			differ.CategoryValuesChanged: {
				"root['motto']": {OldValue: "Acme Inc", NewValue: "Totally Unrelated Text"},
				"root['count']": {OldValue: float64(1), NewValue: float64(2)},
			},
			differ.CategoryItemsAdded: {
				"root['extra']": {NewValue: "new field"},
			},
		},
		SemanticDiff: map[string]reconciler.Entry{
			"root['motto']": {
				Path:       "root['motto']",
				Status:     reconciler.StatusChanged,
				Similarity: 0.12,
				OldValue:   "Acme Inc",
				NewValue:   "Totally Unrelated Text",
			},
			"root['name']": {
				Path:       "root['name']",
				Status:     reconciler.StatusEquivalent,
				Similarity: 0.97,
				OldValue:   "Acme Inc",
				NewValue:   "Acme Incorporated",
			},
		},
	}
}

func TestFormat_RawIsValidJSON(t *testing.T) {
	out, err := Format(sampleResult(), "raw")
	require.NoError(t, err)

	var decoded struct {
		StructuralDiff map[string]map[string]json.RawMessage `json:"structural_diff"`
		SemanticDiff   map[string]json.RawMessage            `json:"semantic_diff"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Contains(t, decoded.StructuralDiff, "values_changed")
	assert.Contains(t, decoded.SemanticDiff, "root['name']")
}

func TestFormat_EmptyDefaultsToRaw(t *testing.T) {
	out, err := Format(sampleResult(), "")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
}

func TestFormat_ColourAlias(t *testing.T) {
	color, err := Format(sampleResult(), "color")
	require.NoError(t, err)
	colour, err := Format(sampleResult(), "colour")
	require.NoError(t, err)
	assert.Equal(t, color, colour)
}

func TestFormat_ColorDeduplicatesSemanticPaths(t *testing.T) {
	out, err := Format(sampleResult(), "color")
	require.NoError(t, err)

	// root['motto'] is in both diffs; the colour view shows it only in the
	// semantic section.
	assert.NotContains(t, out, "~ root['motto']")
	assert.Contains(t, out, "root['motto']")
	// The non-string change has no semantic entry and stays structural.
	assert.Contains(t, out, "~ root['count']")
	assert.Contains(t, out, "+ root['extra']")
	assert.Contains(t, out, string(reconciler.StatusEquivalent))
}

func TestFormat_Table(t *testing.T) {
	out, err := Format(sampleResult(), "table")
	require.NoError(t, err)

	assert.Contains(t, out, "CATEGORY")
	assert.Contains(t, out, "values_changed")
	assert.Contains(t, out, "items_added")
	assert.Contains(t, out, "root['name']")
	assert.Contains(t, out, string(reconciler.StatusChanged))
}

func TestFormat_EmptyResult(t *testing.T) {
	empty := &reconciler.Result{
		StructuralDiff: differ.Diff{},
		SemanticDiff:   map[string]reconciler.Entry{},
	}

	for _, format := range []string{"color", "table"} {
		out, err := Format(empty, format)
		require.NoError(t, err, format)
		assert.Contains(t, out, "(no", format)
	}
}

func TestFormat_UnknownFormat(t *testing.T) {
	_, err := Format(sampleResult(), "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
