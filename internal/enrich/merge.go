package enrich

import "sort"

// MergeSynonyms returns the deduplicated union of both synonym lists in
// lexicographic order. Arrival order of the two lookups never changes the
// result.
func MergeSynonyms(a, b []string) []string {
	set := make(map[string]struct{}, len(a)+len(b))
	for _, synonym := range a {
		set[synonym] = struct{}{}
	}
	for _, synonym := range b {
		set[synonym] = struct{}{}
	}

	merged := make([]string, 0, len(set))
	for synonym := range set {
		merged = append(merged, synonym)
	}
	sort.Strings(merged)
	return merged
}
