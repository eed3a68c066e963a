package textutil

import (
	"cmp"
	"slices"

	"github.com/antzucaro/matchr"
)

type Match struct {
	Key        string
	Name       string
	Similarity float64
}

// Rank scores every candidate name against query with Jaro-Winkler on
// normalized names and returns at most limit matches, best first. Ties are
// broken by key. A limit <= 0 returns every candidate.
func Rank(query string, candidates map[string]string, limit int) []Match {
	query = NormalizeName(query)

	matches := make([]Match, 0, len(candidates))
	for key, name := range candidates {
		normalized := NormalizeName(name)
		similarity := matchr.JaroWinkler(query, normalized, false)
		if MatchName(name, []string{query}) {
			// substring hits always beat fuzzy ones
			similarity += 1
		}
		matches = append(matches, Match{Key: key, Name: name, Similarity: similarity})
	}

	slices.SortFunc(matches, func(a, b Match) int {
		if c := cmp.Compare(b.Similarity, a.Similarity); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
