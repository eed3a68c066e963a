package textutil

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeName lowercases a name, strips diacritics and collapses
// whitespace so "CÁLCULO  1" and "calculo 1" compare equal.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = norm.NFD.String(name)
	name = strings.Map(func(r rune) rune {
		// combining diacritical marks
		if r >= 0x0300 && r <= 0x036f {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)
	name = whitespaceRegex.ReplaceAllString(name, " ")
	return name
}

// MatchName reports whether the normalized name contains any of the
// (already normalized) matchers.
func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}
