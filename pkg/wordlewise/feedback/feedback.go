// Package feedback encodes the three-symbol outcome of comparing a guess
// to an answer, matching the official duplicate-letter rules.
package feedback

import (
	"fmt"

	"github.com/cognicore/wordlewise/pkg/wordlewise/internalerr"
)

// Symbol is the per-letter outcome of comparing a guess to an answer.
type Symbol uint8

const (
	Absent  Symbol = iota // no copies of the letter left in the answer
	Present               // letter in the answer, wrong position
	Correct               // letter in the answer at this position
)

// Pattern is one Symbol per guess position.
type Pattern []Symbol

// Encode compares guess to answer and returns the feedback pattern.
//
// Duplicate letters are handled in two passes: correct positions claim
// their letter from the answer's letter multiset first, then remaining
// copies are handed out left to right as Present. A guess letter with no
// copies left stays Absent, so a letter is never marked more times than
// it occurs in the answer. A single "contains" check per letter would
// over-reward repeats.
func Encode(guess, answer string) (Pattern, error) {
	if len(guess) != len(answer) {
		return nil, fmt.Errorf("%w: guess %q and answer %q differ in length",
			internalerr.ErrInvalidInput, guess, answer)
	}

	remaining := make(map[byte]int, len(answer))
	for i := 0; i < len(answer); i++ {
		remaining[answer[i]]++
	}

	pattern := make(Pattern, len(guess))
	for i := 0; i < len(guess); i++ {
		if guess[i] == answer[i] {
			pattern[i] = Correct
			remaining[guess[i]]--
		}
	}
	for i := 0; i < len(guess); i++ {
		if pattern[i] == Correct {
			continue
		}
		if remaining[guess[i]] > 0 {
			pattern[i] = Present
			remaining[guess[i]]--
		}
	}

	return pattern, nil
}

// Parse decodes the wire form: one digit per position, '0' Absent,
// '1' Present, '2' Correct.
func Parse(label string) (Pattern, error) {
	pattern := make(Pattern, len(label))
	for i := 0; i < len(label); i++ {
		c := label[i]
		if c < '0' || c > '2' {
			return nil, fmt.Errorf("%w: label %q has symbol %q at position %d, want 0, 1 or 2",
				internalerr.ErrInvalidInput, label, string(c), i)
		}
		pattern[i] = Symbol(c - '0')
	}
	return pattern, nil
}

// String renders the wire form.
func (p Pattern) String() string {
	buf := make([]byte, len(p))
	for i, s := range p {
		buf[i] = '0' + byte(s)
	}
	return string(buf)
}

// Equal reports whether two patterns are identical.
func (p Pattern) Equal(q Pattern) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// AllCorrect reports whether every position is Correct.
func (p Pattern) AllCorrect() bool {
	for _, s := range p {
		if s != Correct {
			return false
		}
	}
	return len(p) > 0
}
