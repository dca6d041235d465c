package detect

import (
	"strings"
	"unicode"
)

// foldString maps every rune of s to a canonical member of its Unicode
// simple case folding orbit, the equivalence (?i) matches under. Two
// strings match case-insensitively exactly when their folded forms are
// equal, so ſ and S fold to s and the Kelvin sign K folds to k.
func foldString(s string) string {
	return strings.Map(foldRune, s)
}

// foldRune returns the lowercase form of the smallest rune in r's orbit.
func foldRune(r rune) rune {
	least := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < least {
			least = f
		}
	}
	return unicode.ToLower(least)
}
