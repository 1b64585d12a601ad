// Package rank orders scored words and returns the top of the list.
package rank

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Ranked pairs a word with its score.
type Ranked[S constraints.Ordered] struct {
	Word  string
	Score S
}

// Top returns the best k (word, score) pairs sorted by score, descending
// unless ascending is set. The sort is stable, so equal scores keep their
// original pool order. k is clamped to [1, len(words)]. Words beyond
// len(scores) are ignored.
func Top[S constraints.Ordered](words []string, scores []S, k int, ascending bool) []Ranked[S] {
	n := len(words)
	if len(scores) < n {
		n = len(scores)
	}

	ranked := make([]Ranked[S], n)
	for i := 0; i < n; i++ {
		ranked[i] = Ranked[S]{Word: words[i], Score: scores[i]}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ascending {
			return ranked[i].Score < ranked[j].Score
		}
		return ranked[i].Score > ranked[j].Score
	})

	if k < 1 {
		k = 1
	}
	if k > len(ranked) {
		k = len(ranked)
	}
	return ranked[:k]
}
