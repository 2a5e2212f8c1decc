// Package ident provides ASCII case-folded identifier comparison, the
// folding rule ClassAd attribute names use throughout the engine:
// "a", "A" and "a" all name the same attribute, but string *values* fold
// only for "==" and not for "is" (see internal/value).
package ident

import "strings"

// Normalize returns the case-folded form of an identifier, suitable for
// use as a map key. Folding is ASCII lower-casing, matching the grammar's
// reserved-word and attribute-name rules.
func Normalize(name string) string {
	b := []byte(name)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Equal reports whether a and b name the same identifier under case
// folding.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// Compare orders a and b by their folded form, for deterministic output
// (e.g. sorted diagnostics) independent of the casing used at each site.
func Compare(a, b string) int {
	return strings.Compare(Normalize(a), Normalize(b))
}

// Contains reports whether name appears in names under case folding.
func Contains(names []string, name string) bool {
	for _, n := range names {
		if Equal(n, name) {
			return true
		}
	}
	return false
}
