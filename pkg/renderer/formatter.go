package renderer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/dzivkovi/semanticjson/pkg/differ"
	"github.com/dzivkovi/semanticjson/pkg/reconciler"
)

const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

// categoryOrder fixes the display order of structural categories.
var categoryOrder = []differ.Category{
	differ.CategoryItemsAdded,
	differ.CategoryItemsRemoved,
	differ.CategoryValuesChanged,
	differ.CategoryTypeChanged,
}

var categoryMarkers = map[differ.Category]string{
	differ.CategoryItemsAdded:    "+",
	differ.CategoryItemsRemoved:  "-",
	differ.CategoryValuesChanged: "~",
	differ.CategoryTypeChanged:   "!",
}

var categoryColors = map[differ.Category]string{
	differ.CategoryItemsAdded:    ansiGreen,
	differ.CategoryItemsRemoved:  ansiRed,
	differ.CategoryValuesChanged: ansiYellow,
	differ.CategoryTypeChanged:   ansiYellow,
}

// formatColor renders an ANSI-colored listing. Changed string pairs that
// already appear in the semantic section are not repeated in the structural
// section, even though the underlying result keeps them in both.
func formatColor(result *reconciler.Result) string {
	var buf bytes.Buffer

	buf.WriteString("Structural Differences\n")
	buf.WriteString("======================\n")

	printed := 0
	for _, cat := range categoryOrder {
		entries := result.StructuralDiff[cat]
		for _, path := range sortedPaths(entries) {
			if cat == differ.CategoryValuesChanged {
				if _, seen := result.SemanticDiff[path]; seen {
					continue
				}
			}

			change := entries[path]
			marker := categoryMarkers[cat]
			color := categoryColors[cat]
			switch cat {
			case differ.CategoryItemsAdded:
				fmt.Fprintf(&buf, "  %s%s %s: %s%s\n", color, marker, path, compact(change.NewValue), ansiReset)
			case differ.CategoryItemsRemoved:
				fmt.Fprintf(&buf, "  %s%s %s: %s%s\n", color, marker, path, compact(change.OldValue), ansiReset)
			default:
				fmt.Fprintf(&buf, "  %s%s %s: %s -> %s%s\n",
					color, marker, path, compact(change.OldValue), compact(change.NewValue), ansiReset)
			}
			printed++
		}
	}
	if printed == 0 {
		buf.WriteString("  (none)\n")
	}

	buf.WriteString("\nSemantic Comparison\n")
	buf.WriteString("===================\n")

	if len(result.SemanticDiff) == 0 {
		buf.WriteString("  (no changed string pairs)\n")
		return buf.String()
	}

	for _, path := range sortedEntryPaths(result.SemanticDiff) {
		entry := result.SemanticDiff[path]
		color := ansiCyan
		if entry.Status == reconciler.StatusChanged {
			color = ansiYellow
		}
		fmt.Fprintf(&buf, "  %s%s: %q -> %q (similarity %.3f, %s)%s\n",
			color, path, entry.OldValue, entry.NewValue, entry.Similarity, entry.Status, ansiReset)
	}

	return buf.String()
}

// formatTable renders a plain-text tabular report.
func formatTable(result *reconciler.Result) string {
	var buf bytes.Buffer

	buf.WriteString("JSON Comparison Report\n")
	buf.WriteString("======================\n\n")

	buf.WriteString("Structural Differences:\n")
	buf.WriteString("-----------------------\n")

	if !result.StructuralDiff.HasChanges() {
		buf.WriteString("  (no structural differences)\n")
	} else {
		fmt.Fprintf(&buf, "  %-16s %-40s %-24s %-24s\n", "CATEGORY", "PATH", "OLD", "NEW")
		for _, cat := range categoryOrder {
			entries := result.StructuralDiff[cat]
			for _, path := range sortedPaths(entries) {
				change := entries[path]
				fmt.Fprintf(&buf, "  %-16s %-40s %-24s %-24s\n",
					string(cat), path, compact(change.OldValue), compact(change.NewValue))
			}
		}
	}

	buf.WriteString("\nSemantic Comparison:\n")
	buf.WriteString("--------------------\n")

	if len(result.SemanticDiff) == 0 {
		buf.WriteString("  (no changed string pairs)\n")
		return buf.String()
	}

	fmt.Fprintf(&buf, "  %-40s %-10s %-32s\n", "PATH", "SCORE", "STATUS")
	for _, path := range sortedEntryPaths(result.SemanticDiff) {
		entry := result.SemanticDiff[path]
		fmt.Fprintf(&buf, "  %-40s %-10.3f %-32s\n", path, entry.Similarity, string(entry.Status))
	}

	return buf.String()
}

// compact renders a value as single-line JSON, falling back to %v for
// values JSON cannot encode.
func compact(v interface{}) string {
	if v == nil {
		return "null"
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

func sortedPaths(entries map[string]differ.Change) []string {
	paths := make([]string, 0, len(entries))
	for path := range entries {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func sortedEntryPaths(entries map[string]reconciler.Entry) []string {
	paths := make([]string, 0, len(entries))
	for path := range entries {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
