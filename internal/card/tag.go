package card

import "strings"

// TermTag builds the "term:<slug>" tag for a term. The slug lowercases ASCII
// letters and digits and collapses every other run of characters into a
// single underscore.
func TermTag(term string) string {
	var slug strings.Builder
	lastWasSeparator := false

	for _, c := range term {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			slug.WriteRune(c)
			lastWasSeparator = false
		case c >= 'A' && c <= 'Z':
			slug.WriteRune(c - 'A' + 'a')
			lastWasSeparator = false
		default:
			if !lastWasSeparator && slug.Len() > 0 {
				slug.WriteByte('_')
			}
			lastWasSeparator = true
		}
	}

	result := strings.TrimSuffix(slug.String(), "_")
	if result == "" {
		result = "term"
	}
	return "term:" + result
}
