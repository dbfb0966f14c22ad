package core

import "strings"

// NormalizePostcode upper-cases a postcode and strips all interior and
// surrounding whitespace, so "sw1a 1aa" and "SW1A1AA" compare equal.
func NormalizePostcode(postcode string) string {
	return strings.ToUpper(strings.Join(strings.Fields(postcode), ""))
}

// PostcodePrefixes returns the normalized postcode's candidate coverage
// prefixes, longest first: the leading 4, 3, and 2 characters. Prefixes
// longer than the postcode itself are skipped, and duplicates collapse.
func PostcodePrefixes(postcode string) []string {
	pc := NormalizePostcode(postcode)
	var prefixes []string
	for _, n := range []int{4, 3, 2} {
		if n > len(pc) {
			continue
		}
		p := pc[:n]
		if len(prefixes) > 0 && prefixes[len(prefixes)-1] == p {
			continue
		}
		prefixes = append(prefixes, p)
	}
	return prefixes
}
