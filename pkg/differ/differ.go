package differ

import (
	"fmt"
	"reflect"
)

// Compare walks two parsed JSON documents and returns the categorized
// structural differences between them. The inputs are never modified, and
// comparing a document against itself yields an empty diff.
func Compare(oldDoc, newDoc interface{}) Diff {
	diff := make(Diff)
	compareValues("root", oldDoc, newDoc, diff)
	return diff
}

func compareValues(path string, oldVal, newVal interface{}, diff Diff) {
	oldKind := kindOf(oldVal)
	newKind := kindOf(newVal)

	if oldKind != newKind {
		diff.add(CategoryTypeChanged, path, Change{OldValue: oldVal, NewValue: newVal})
		return
	}

	switch oldKind {
	case kindMapping:
		compareMappings(path, toMapping(oldVal), toMapping(newVal), diff)
	case kindSequence:
		compareSequences(path, oldVal.([]interface{}), newVal.([]interface{}), diff)
	case kindNumber:
		// YAML decodes whole numbers as int while JSON produces float64, so
		// numbers compare by value rather than by concrete Go type.
		if numberOf(oldVal) != numberOf(newVal) {
			diff.add(CategoryValuesChanged, path, Change{OldValue: oldVal, NewValue: newVal})
		}
	case kindNull:
		// Two nulls are always equal.
	case kindString, kindBool:
		if oldVal != newVal {
			diff.add(CategoryValuesChanged, path, Change{OldValue: oldVal, NewValue: newVal})
		}
	default:
		if !reflect.DeepEqual(oldVal, newVal) {
			diff.add(CategoryValuesChanged, path, Change{OldValue: oldVal, NewValue: newVal})
		}
	}
}

func compareMappings(path string, oldMap, newMap map[string]interface{}, diff Diff) {
	for key, oldVal := range oldMap {
		child := childKey(path, key)
		newVal, exists := newMap[key]
		if !exists {
			diff.add(CategoryItemsRemoved, child, Change{OldValue: oldVal})
			continue
		}
		compareValues(child, oldVal, newVal, diff)
	}

	for key, newVal := range newMap {
		if _, exists := oldMap[key]; !exists {
			diff.add(CategoryItemsAdded, childKey(path, key), Change{NewValue: newVal})
		}
	}
}

func compareSequences(path string, oldSeq, newSeq []interface{}, diff Diff) {
	shared := len(oldSeq)
	if len(newSeq) < shared {
		shared = len(newSeq)
	}

	// Positional comparison only. Reordered elements show up as changes at
	// their respective indices.
	for i := 0; i < shared; i++ {
		compareValues(childIndex(path, i), oldSeq[i], newSeq[i], diff)
	}

	for i := shared; i < len(oldSeq); i++ {
		diff.add(CategoryItemsRemoved, childIndex(path, i), Change{OldValue: oldSeq[i]})
	}
	for i := shared; i < len(newSeq); i++ {
		diff.add(CategoryItemsAdded, childIndex(path, i), Change{NewValue: newSeq[i]})
	}
}

func childKey(path, key string) string {
	return fmt.Sprintf("%s['%s']", path, key)
}

func childIndex(path string, index int) string {
	return fmt.Sprintf("%s[%d]", path, index)
}

type kind int

const (
	kindNull kind = iota
	kindMapping
	kindSequence
	kindString
	kindBool
	kindNumber
	kindOther
)

func kindOf(v interface{}) kind {
	switch v.(type) {
	case nil:
		return kindNull
	case map[string]interface{}:
		return kindMapping
	case []interface{}:
		return kindSequence
	case string:
		return kindString
	case bool:
		return kindBool
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return kindNumber
	default:
		return kindOther
	}
}

func toMapping(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

func numberOf(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	default:
		return 0
	}
}
