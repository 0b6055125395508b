package differ

// Category names a class of structural change between two documents.
type Category string

const (
	CategoryValuesChanged Category = "values_changed"
	CategoryItemsAdded    Category = "items_added"
	CategoryItemsRemoved  Category = "items_removed"
	CategoryTypeChanged   Category = "type_changed"
)

// Change records the before/after values at a single path. Added items carry
// only NewValue, removed items only OldValue, and value or type changes both.
type Change struct {
	OldValue interface{} `json:"old_value"`
	NewValue interface{} `json:"new_value"`
}

// Diff maps change categories to path-keyed changes. A path is an opaque
// root['key'][index] chain identifying a location within a document;
// consumers use paths as map keys and must not parse them. Categories with
// no entries are absent from the map rather than present and empty.
type Diff map[Category]map[string]Change

func (d Diff) add(cat Category, path string, c Change) {
	if d[cat] == nil {
		d[cat] = make(map[string]Change)
	}
	d[cat][path] = c
}

// HasChanges reports whether the diff contains any entry in any category.
func (d Diff) HasChanges() bool {
	for _, entries := range d {
		if len(entries) > 0 {
			return true
		}
	}
	return false
}
