// Package score implements the two interchangeable guess-scoring
// strategies: a fast information-theoretic approximation driven by letter
// frequency statistics, and an exact scorer that enumerates feedback
// partitions over the candidate answer set.
package score

import (
	"context"
	"sync"

	"github.com/cognicore/wordlewise/pkg/wordlewise/entropy"
	"github.com/cognicore/wordlewise/pkg/wordlewise/feedback"
	"github.com/cognicore/wordlewise/pkg/wordlewise/freq"
)

// Direction tells the ranker which end of the score scale is best.
type Direction int

const (
	Descending Direction = iota // higher scores are better
	Ascending                   // lower scores are better
)

// Strategy scores a single guess word against an immutable snapshot of
// session state. Implementations must be safe for concurrent use.
type Strategy interface {
	Score(word string) float64
	Direction() Direction
}

// Heuristic approximates the expected information a guess reveals using
// only aggregate letter statistics. It never enumerates outcomes, so it
// ignores joint correlations between letters — the price of being cheap
// enough to score a whole pool interactively.
type Heuristic struct {
	stats *freq.Stats
}

// NewHeuristic builds the strategy over a statistics snapshot.
func NewHeuristic(stats *freq.Stats) *Heuristic {
	return &Heuristic{stats: stats}
}

// Direction implements Strategy. More expected information is better.
func (h *Heuristic) Direction() Direction { return Descending }

// Score sums, per position, the information of the three-way event
// {letter here, letter elsewhere in the word, letter absent}. For
// repeated letters the whole-word presence information is subtracted once
// per repeat, so a word is not credited twice for learning that the same
// letter is present. Letters outside the candidate universe contribute 0.
func (h *Heuristic) Score(word string) float64 {
	info := 0.0
	seen := make(map[byte]bool, len(word))
	for p := 0; p < len(word); p++ {
		c := word[p]
		info += h.positionInfo(c, p)
		if seen[c] {
			info -= h.letterInfo(c)
		} else {
			seen[c] = true
		}
	}
	return info
}

func (h *Heuristic) positionInfo(c byte, p int) float64 {
	if p >= h.stats.Length || !h.stats.Contains(c) {
		return 0
	}
	at := h.stats.Pos[p][c]
	return entropy.Information([]int{at, h.stats.In[c] - at, h.stats.NotIn[c]})
}

func (h *Heuristic) letterInfo(c byte) float64 {
	if !h.stats.Contains(c) {
		return 0
	}
	return entropy.Information([]int{h.stats.In[c], h.stats.NotIn[c]})
}

// Exact partitions a fixed answer universe by the feedback pattern each
// answer would produce for a guess, and scores the guess by the sum of
// squared partition sizes — proportional to the expected number of
// candidates left after playing it, under a uniform prior over answers.
type Exact struct {
	universe []string
}

// NewExact snapshots the answer universe. The slice must not be mutated
// while the scorer is in use.
func NewExact(universe []string) *Exact {
	return &Exact{universe: universe}
}

// Direction implements Strategy. A smaller expected remainder is better.
func (e *Exact) Direction() Direction { return Ascending }

// Score implements Strategy.
func (e *Exact) Score(word string) float64 {
	return float64(e.PartitionScore(word))
}

// Partitions groups the universe by the feedback pattern each answer
// would produce for the guess, keyed by the pattern's wire form. The
// partition sizes always sum to len(universe): every answer lands in
// exactly one partition.
func (e *Exact) Partitions(word string) map[string]int {
	parts := make(map[string]int)
	for _, answer := range e.universe {
		pattern, err := feedback.Encode(word, answer)
		if err != nil {
			continue // pools are length-validated at session setup
		}
		parts[pattern.String()]++
	}
	return parts
}

// PartitionScore returns sum(size²) over the feedback partitions of the
// universe. The score is bounded below by len(universe), with equality
// exactly when every partition is a singleton.
func (e *Exact) PartitionScore(word string) int {
	total := 0
	for _, n := range e.Partitions(word) {
		total += n * n
	}
	return total
}

// All scores every word with the given strategy, fanning the work out
// across the requested number of goroutines. The state read by the
// strategy is treated as an immutable snapshot for the duration of the
// pass. If progress is non-nil it is called once per finished word,
// possibly from multiple goroutines.
func All(ctx context.Context, words []string, s Strategy, workers int, progress func(n int)) ([]float64, error) {
	if workers < 1 {
		workers = 1
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scores := make([]float64, len(words))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				scores[i] = s.Score(words[i])
				if progress != nil {
					progress(1)
				}
			}
		}()
	}

	var err error
feed:
	for i := range words {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err != nil {
		return nil, err
	}
	return scores, nil
}
