// Package renderer turns reconciled comparison results into display output.
package renderer

import (
	"encoding/json"
	"fmt"

	"github.com/dzivkovi/semanticjson/pkg/reconciler"
)

// Format renders a reconciled comparison in the requested output format.
// Recognized formats are raw (pretty JSON), color and table; "colour" is
// accepted as an alias for color. An empty format defaults to raw.
func Format(result *reconciler.Result, format string) (string, error) {
	switch format {
	case "raw", "":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil

	case "color", "colour":
		return formatColor(result), nil

	case "table":
		return formatTable(result), nil

	default:
		return "", fmt.Errorf("unsupported format: %s (supported: raw, color, table)", format)
	}
}
