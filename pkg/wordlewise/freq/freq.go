// Package freq builds per-letter frequency statistics over a candidate
// answer set. A Stats value is immutable once built; callers rebuild from
// scratch whenever the candidate set changes rather than patching counts
// incrementally.
package freq

// Stats holds letter occurrence counts for one snapshot of the candidate
// set. Letters absent from every candidate are omitted from all maps, so
// a missing key reads as zero.
type Stats struct {
	Words  int            // number of candidate words
	Length int            // word length for the session
	In     map[byte]int   // words containing the letter anywhere
	NotIn  map[byte]int   // words not containing the letter at all
	Pos    []map[byte]int // Pos[p][c]: words with letter c at position p
}

// Build computes statistics for the given candidate words.
func Build(words []string, length int) *Stats {
	s := &Stats{
		Words:  len(words),
		Length: length,
		In:     make(map[byte]int),
		NotIn:  make(map[byte]int),
		Pos:    make([]map[byte]int, length),
	}
	for p := range s.Pos {
		s.Pos[p] = make(map[byte]int)
	}

	for _, w := range words {
		seen := make(map[byte]bool, length)
		for p := 0; p < len(w) && p < length; p++ {
			c := w[p]
			s.Pos[p][c]++
			seen[c] = true
		}
		for c := range seen {
			s.In[c]++
		}
	}
	for c, in := range s.In {
		s.NotIn[c] = s.Words - in
	}

	return s
}

// Contains reports whether the letter occurs in any candidate word.
func (s *Stats) Contains(c byte) bool {
	return s.In[c] > 0
}

// Letters returns how many distinct letters occur across the candidates.
func (s *Stats) Letters() int {
	return len(s.In)
}
