package reconciler

import "github.com/dzivkovi/semanticjson/pkg/differ"

// Status classifies a changed string pair after similarity scoring.
type Status string

const (
	StatusEquivalent Status = "Equivalent (semantically)"
	StatusChanged    Status = "Changed (semantically different)"
)

// Entry is the semantic verdict for one changed string pair.
type Entry struct {
	Path       string  `json:"path"`
	Status     Status  `json:"status"`
	Similarity float64 `json:"similarity"`
	OldValue   string  `json:"old_value"`
	NewValue   string  `json:"new_value"`
}

// Result combines the structural diff, with semantically equivalent entries
// removed from its values_changed category, and the semantic verdict for
// every changed string pair. Each values_changed path ends up in exactly one
// of: still structural only, semantic with StatusChanged (also kept in the
// structural diff), or semantic with StatusEquivalent (structural entry
// removed).
type Result struct {
	StructuralDiff differ.Diff      `json:"structural_diff"`
	SemanticDiff   map[string]Entry `json:"semantic_diff"`
}
