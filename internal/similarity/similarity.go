// Package similarity measures word-overlap between documents. It is
// a self-consistent heuristic, not plagiarism detection against any
// external corpus.
package similarity

// Match names another document and the overlap percentage against it.
type Match struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percentage"`
}

// Overlap returns the share of a's words present in b's word set, as
// a percentage. Duplicate words in a count individually, mirroring
// the ratio common(a,b)/len(a)*100.
func Overlap(a []string, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	common := 0
	for _, w := range a {
		if _, ok := b[w]; ok {
			common++
		}
	}
	return float64(common) / float64(len(a)) * 100
}

// WordSet builds the distinct-word set used as the right-hand side of
// Overlap.
func WordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// BestMatch compares document index i against every other document in
// the batch and returns the highest-overlap pairing. A batch of one
// yields the zero Match.
func BestMatch(i int, names []string, words [][]string, sets []map[string]struct{}) Match {
	best := Match{}
	for j := range names {
		if j == i {
			continue
		}
		pct := Overlap(words[i], sets[j])
		if pct > best.Percent {
			best = Match{Name: names[j], Percent: pct}
		}
	}
	return best
}
