// Package textnorm normalizes free text for insensitive comparison.
package textnorm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalize case-folds s, applies NFKC canonicalization and collapses
// every run of whitespace into a single space, trimming both ends.
// A new Caser is built per call because cases.Caser is not safe for
// concurrent use.
func Normalize(s string) string {
	folded := cases.Fold().String(norm.NFKC.String(s))
	return strings.Join(strings.Fields(folded), " ")
}

// Compare orders a and b by their normalized forms. Strings that
// normalize alike fall back to byte order so the result is total.
func Compare(a, b string) int {
	if c := strings.Compare(Normalize(a), Normalize(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Contains reports whether the normalized form of s contains the
// already-normalized substring sub.
func Contains(s, sub string) bool {
	return strings.Contains(Normalize(s), sub)
}
