package genres

import "strings"

// AreSimilar reports whether two genre display names denote the same
// concept. The heuristic is deliberately conservative: normalized equality,
// then substring containment guarded by the exclusion table, then the
// explicit synonym table. Anything else is treated as distinct.
func AreSimilar(a, b string, tables Tables) bool {
	na, nb := NormalizeName(a), NormalizeName(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}
	if !excluded(na, nb, tables.Exclusions) {
		if strings.Contains(na, nb) || strings.Contains(nb, na) {
			return true
		}
	}
	return synonyms(na, nb, tables.Synonyms)
}

func excluded(na, nb string, pairs []exclusionPair) bool {
	for _, p := range pairs {
		if (na == p.a && nb == p.b) || (na == p.b && nb == p.a) {
			return true
		}
	}
	return false
}

func synonyms(na, nb string, pairs []synonymPair) bool {
	for _, p := range pairs {
		if (na == p.a && nb == p.b) || (na == p.b && nb == p.a) {
			return true
		}
	}
	return false
}
