// Package maputil provides small generic helpers over string-keyed maps.
package maputil

import (
	"maps"
	"slices"
)

// SortedKeys returns the keys of m in ascending order. A nil or empty map
// yields an empty, non-nil slice.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	keys = slices.AppendSeq(keys, maps.Keys(m))
	slices.Sort(keys)
	return keys
}
