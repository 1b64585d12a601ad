// Package wordlewise ranks Wordle-style guesses by how much they are
// expected to narrow down the remaining answer set.
//
// An Advisor owns two immutable word pools — the legal-guess list and the
// possible-answer list — plus the chronological hint history recorded so
// far. Every hint prunes the pools by replaying the feedback encoder, and
// predictions rank a pool with either a frequency-based information
// approximation or an exact feedback-partition scorer.
package wordlewise

import (
	"context"
	"crypto/rand"
	"fmt"
	"runtime"

	"github.com/bits-and-blooms/bitset"
	"github.com/oklog/ulid/v2"

	"github.com/cognicore/wordlewise/pkg/wordlewise/feedback"
	"github.com/cognicore/wordlewise/pkg/wordlewise/freq"
	"github.com/cognicore/wordlewise/pkg/wordlewise/internalerr"
	"github.com/cognicore/wordlewise/pkg/wordlewise/rank"
	"github.com/cognicore/wordlewise/pkg/wordlewise/score"
)

// Pool selects which word list guesses are drawn from.
type Pool string

const (
	PoolAllowed Pool = "allowed" // the full legal-guess list
	PoolAnswers Pool = "answers" // words that can actually be the answer
)

// StrategyName selects how guesses are scored.
type StrategyName string

const (
	StrategyHeuristic StrategyName = "heuristic" // frequency-based information approximation
	StrategyExact     StrategyName = "exact"     // feedback-partition enumeration
)

// Hint is one revealed (guess, pattern) pair. Hints accumulate in the
// order received and are never edited or removed within a session.
type Hint struct {
	Word    string
	Pattern feedback.Pattern
}

// wordPool is an immutable word list plus the mask of entries still
// consistent with every recorded hint.
type wordPool struct {
	words []string
	live  *bitset.BitSet
}

func newWordPool(words []string) wordPool {
	copied := make([]string, len(words))
	copy(copied, words)

	live := bitset.New(uint(len(copied)))
	for i := range copied {
		live.Set(uint(i))
	}
	return wordPool{words: copied, live: live}
}

// liveWords materializes the words still set in the live mask, in pool
// order.
func (p *wordPool) liveWords() []string {
	out := make([]string, 0, p.live.Count())
	for i, ok := p.live.NextSet(0); ok; i, ok = p.live.NextSet(i + 1) {
		out = append(out, p.words[int(i)])
	}
	return out
}

// reprune rebuilds the live mask from the full list by replaying every
// hint through the feedback encoder. Rebuilding from scratch keeps the
// mask a pure function of the hint history.
func (p *wordPool) reprune(hints []Hint) {
	live := bitset.New(uint(len(p.words)))
	for i, w := range p.words {
		if consistent(w, hints) {
			live.Set(uint(i))
		}
	}
	p.live = live
}

func consistent(word string, hints []Hint) bool {
	for _, h := range hints {
		got, err := feedback.Encode(h.Word, word)
		if err != nil || !got.Equal(h.Pattern) {
			return false
		}
	}
	return true
}

// Advisor maintains one advising session. It is not safe to call AddHint
// concurrently with any other method; scoring passes read immutable
// snapshots, so Predict calls may themselves fan out internally.
type Advisor struct {
	id      string
	length  int
	allowed wordPool
	answers wordPool
	hints   []Hint
	stats   *freq.Stats
	workers int
}

// Options configures an Advisor.
type Options struct {
	// Length is the word length for the session.
	Length int

	// Allowed is the legal-guess pool and Answers the possible-answer
	// pool. Both must contain only words of exactly Length bytes. If
	// Allowed is empty, the answer pool doubles as the guess pool.
	Allowed []string
	Answers []string

	// Workers bounds scoring concurrency; defaults to runtime.NumCPU().
	Workers int
}

// New creates an advising session. The pool slices are copied; the
// candidate set starts as the full answer pool.
func New(opts Options) (*Advisor, error) {
	if opts.Length < 1 {
		return nil, fmt.Errorf("%w: word length must be positive", internalerr.ErrInvalidInput)
	}
	if len(opts.Answers) == 0 {
		return nil, fmt.Errorf("%w: answer pool is empty", internalerr.ErrInvalidInput)
	}

	allowed := opts.Allowed
	if len(allowed) == 0 {
		allowed = opts.Answers
	}
	for _, pool := range [][]string{allowed, opts.Answers} {
		for _, w := range pool {
			if len(w) != opts.Length {
				return nil, fmt.Errorf("%w: pool word %q is not %d letters", internalerr.ErrInvalidInput, w, opts.Length)
			}
		}
	}

	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	a := &Advisor{
		id:      ulid.MustNew(ulid.Now(), ulid.Monotonic(rand.Reader, 0)).String(),
		length:  opts.Length,
		allowed: newWordPool(allowed),
		answers: newWordPool(opts.Answers),
		workers: workers,
	}
	a.stats = freq.Build(a.answers.liveWords(), a.length)
	return a, nil
}

// ID returns the session's ULID.
func (a *Advisor) ID() string { return a.id }

// Length returns the session word length.
func (a *Advisor) Length() int { return a.length }

// Hints returns a copy of the hint history in the order received.
func (a *Advisor) Hints() []Hint {
	out := make([]Hint, len(a.hints))
	copy(out, a.hints)
	return out
}

// Candidates returns the answers still consistent with every hint, in
// pool order.
func (a *Advisor) Candidates() []string {
	return a.answers.liveWords()
}

// Stats returns the frequency statistics snapshot for the current
// candidate set.
func (a *Advisor) Stats() *freq.Stats {
	return a.stats
}

// AddHint records the observed feedback for a played guess. The label is
// one digit per letter: '0' absent, '1' present, '2' correct. Validation
// happens before any state changes. On success both pools are repruned by
// replaying the full hint history and the frequency statistics are
// rebuilt; the candidate set can only shrink.
func (a *Advisor) AddHint(word, label string) error {
	if len(word) != a.length {
		return fmt.Errorf("%w: word %q is not %d letters", internalerr.ErrInvalidInput, word, a.length)
	}
	if len(label) != a.length {
		return fmt.Errorf("%w: label %q is not %d symbols", internalerr.ErrInvalidInput, label, a.length)
	}
	pattern, err := feedback.Parse(label)
	if err != nil {
		return err
	}

	a.hints = append(a.hints, Hint{Word: word, Pattern: pattern})
	a.allowed.reprune(a.hints)
	a.answers.reprune(a.hints)
	a.stats = freq.Build(a.answers.liveWords(), a.length)
	return nil
}

// PredictRequest selects what to rank and how.
type PredictRequest struct {
	// K is how many suggestions to return, clamped to the pool size.
	K int

	// Pool is where guesses are drawn from; PoolAnswers if empty.
	Pool Pool

	// Strategy picks the scorer; StrategyHeuristic if empty.
	Strategy StrategyName

	// IgnoreHints widens the search list back to the unpruned pool, so
	// informative but already-contradicted words can still be suggested.
	// The answer universe used for scoring stays pruned either way.
	IgnoreHints bool

	// Progress, if set, is called with the number of words finished since
	// the last call as scoring advances, possibly from multiple
	// goroutines.
	Progress func(n int)
}

// Suggestion is one ranked guess.
type Suggestion struct {
	Word  string
	Score float64
}

// Predict ranks guesses from the selected pool with the selected
// strategy. Heuristic scores rank descending (more expected information
// first); exact scores rank ascending (smaller expected remaining
// candidate set first). An empty candidate set means the hints are
// contradictory and is reported as an error rather than an empty ranking.
func (a *Advisor) Predict(ctx context.Context, req PredictRequest) ([]Suggestion, error) {
	candidates := a.Candidates()
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: recorded hints rule out every answer", internalerr.ErrEmptyCandidates)
	}

	pool := &a.answers
	switch req.Pool {
	case PoolAllowed:
		pool = &a.allowed
	case PoolAnswers, "":
	default:
		return nil, fmt.Errorf("%w: unknown pool %q", internalerr.ErrInvalidInput, req.Pool)
	}
	words := pool.liveWords()
	if req.IgnoreHints {
		words = pool.words
	}

	var strategy score.Strategy
	switch req.Strategy {
	case StrategyHeuristic, "":
		strategy = score.NewHeuristic(a.stats)
	case StrategyExact:
		strategy = score.NewExact(candidates)
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q", internalerr.ErrInvalidInput, req.Strategy)
	}

	scores, err := score.All(ctx, words, strategy, a.workers, req.Progress)
	if err != nil {
		return nil, err
	}

	top := rank.Top(words, scores, req.K, strategy.Direction() == score.Ascending)
	out := make([]Suggestion, len(top))
	for i, r := range top {
		out[i] = Suggestion{Word: r.Word, Score: r.Score}
	}
	return out, nil
}

// PoolSize reports how many words Predict would score for the given pool
// selection.
func (a *Advisor) PoolSize(p Pool, ignoreHints bool) int {
	pool := &a.answers
	if p == PoolAllowed {
		pool = &a.allowed
	}
	if ignoreHints {
		return len(pool.words)
	}
	return int(pool.live.Count())
}
