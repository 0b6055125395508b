// Package reconciler merges structural JSON diffing with semantic
// similarity scoring of changed string values.
package reconciler

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/dzivkovi/semanticjson/pkg/differ"
	"github.com/dzivkovi/semanticjson/pkg/embedding"
)

// DefaultThreshold is the similarity score at or above which two differing
// strings count as the same statement.
const DefaultThreshold = 0.9

// ErrThreshold is returned by New for thresholds outside [0, 1].
var ErrThreshold = errors.New("similarity threshold must be in [0, 1]")

// Reconciler runs the hybrid comparison: one structural diff, then one
// similarity score per changed string pair, then reclassification. It holds
// no per-call state, so a single instance is safe for concurrent use as
// long as its embedder is.
type Reconciler struct {
	embedder  embedding.Embedder
	threshold float64
	log       *zap.Logger
}

// New creates a Reconciler. Thresholds outside [0, 1] are rejected rather
// than clamped, so a misconfigured caller fails loudly instead of silently
// comparing against a meaningless cutoff. A nil logger disables logging.
func New(embedder embedding.Embedder, threshold float64, log *zap.Logger) (*Reconciler, error) {
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrThreshold, threshold)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Reconciler{embedder: embedder, threshold: threshold, log: log}, nil
}

// Reconcile diffs two parsed JSON documents and reclassifies each changed
// string pair by embedding similarity. Pairs scoring at or above the
// threshold move out of the structural diff into the semantic diff as
// equivalent; pairs below it stay in the structural diff and are also
// recorded in the semantic diff as changed. Non-string changes pass through
// untouched. An embedding failure aborts the whole comparison with no
// partial result.
//
// The inputs are never mutated; the returned result owns fresh maps.
func (r *Reconciler) Reconcile(ctx context.Context, json1, json2 interface{}) (*Result, error) {
	structural := differ.Compare(json1, json2)

	result := &Result{
		StructuralDiff: make(differ.Diff, len(structural)),
		SemanticDiff:   make(map[string]Entry),
	}
	for cat, entries := range structural {
		copied := make(map[string]differ.Change, len(entries))
		for path, change := range entries {
			copied[path] = change
		}
		result.StructuralDiff[cat] = copied
	}

	// Semantic scoring only applies when both documents are objects; for
	// scalar or sequence top levels the candidate set is empty and the
	// structural result stands alone.
	if !isMapping(json1) || !isMapping(json2) {
		return result, nil
	}

	changed := result.StructuralDiff[differ.CategoryValuesChanged]
	if len(changed) == 0 {
		return result, nil
	}

	// Sorted order keeps logging deterministic; the result content does not
	// depend on it.
	paths := make([]string, 0, len(changed))
	for path := range changed {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		change := changed[path]
		oldText, oldIsString := change.OldValue.(string)
		newText, newIsString := change.NewValue.(string)
		if !oldIsString || !newIsString {
			continue
		}

		similarity, err := r.similarity(ctx, oldText, newText)
		if err != nil {
			return nil, fmt.Errorf("scoring %s: %w", path, err)
		}

		entry := Entry{
			Path:       path,
			Similarity: similarity,
			OldValue:   oldText,
			NewValue:   newText,
		}
		if similarity >= r.threshold {
			entry.Status = StatusEquivalent
			delete(changed, path)
		} else {
			entry.Status = StatusChanged
		}
		result.SemanticDiff[path] = entry

		r.log.Debug("scored changed string pair",
			zap.String("path", path),
			zap.Float64("similarity", similarity),
			zap.String("status", string(entry.Status)))
	}

	if len(changed) == 0 {
		delete(result.StructuralDiff, differ.CategoryValuesChanged)
	}

	return result, nil
}

func isMapping(v interface{}) bool {
	_, ok := v.(map[string]interface{})
	return ok
}

func (r *Reconciler) similarity(ctx context.Context, oldText, newText string) (float64, error) {
	oldVec, err := r.embedder.Embed(ctx, oldText)
	if err != nil {
		return 0, fmt.Errorf("embedding old value: %w", err)
	}
	newVec, err := r.embedder.Embed(ctx, newText)
	if err != nil {
		return 0, fmt.Errorf("embedding new value: %w", err)
	}
	return embedding.Cosine(oldVec, newVec), nil
}
