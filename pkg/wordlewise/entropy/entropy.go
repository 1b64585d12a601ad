// Package entropy provides the Shannon information measure used by the
// heuristic guess scorer.
package entropy

import "math"

// Information returns the Shannon entropy, in nats, of the distribution
// obtained by normalizing counts. Zero counts contribute nothing (p·log p
// is taken as 0 for p=0); an all-zero or empty distribution has zero
// information. The result is never negative.
func Information(counts []int) float64 {
	total := 0
	for _, n := range counts {
		if n > 0 {
			total += n
		}
	}
	if total == 0 {
		return 0
	}

	info := 0.0
	for _, n := range counts {
		if n <= 0 {
			continue
		}
		p := float64(n) / float64(total)
		info -= p * math.Log(p)
	}
	return info
}
