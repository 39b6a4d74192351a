// internal/game/engine.go
//
// Guess evaluation.
// Responsibilities:
//   - Parse strings into Words (exactly 5 letters, A–Z, already uppercased).
//   - Score a guess against a secret with the two-pass algorithm.
//
// Notes:
//   - Normalization (trimming, uppercasing) happens in the callers; this package
//     rejects anything that is not already a valid Word.
//   - Evaluate is pure and allocation free.

package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned for words that are not exactly WordLength letters.
	ErrInvalidLength = errors.New("game: word must be exactly 5 letters")
	// ErrInvalidLetter is returned for words containing anything but A–Z.
	ErrInvalidLetter = errors.New("game: word must contain only letters A-Z")
)

// ParseWord converts s into a Word.
// Lowercase input is rejected; callers normalize before parsing.
func ParseWord(s string) (Word, error) {
	var w Word
	if len(s) != WordLength {
		return w, fmt.Errorf("%w: got %d in %q", ErrInvalidLength, len(s), s)
	}
	for i := 0; i < WordLength; i++ {
		c := s[i]
		if c < 'A' || c > 'Z' {
			return Word{}, fmt.Errorf("%w: %q at position %d", ErrInvalidLetter, c, i)
		}
		w[i] = Letter(c)
	}
	return w, nil
}

// MustParseWord is ParseWord for constants and tests. It panics on invalid input.
func MustParseWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

// letterCounts is a multiset of letters: remaining occurrences per letter A–Z.
type letterCounts [26]uint8

// countLetters builds the multiset of w's letters.
func countLetters(w Word) letterCounts {
	var c letterCounts
	for _, l := range w {
		c[l.index()]++
	}
	return c
}

// take consumes one occurrence of l. It reports false, leaving the count
// untouched, when none remain.
func (c *letterCounts) take(l Letter) bool {
	i := l.index()
	if c[i] == 0 {
		return false
	}
	c[i]--
	return true
}

// Evaluate scores guess against secret.
//
// Pass 1 marks exact matches and consumes their letters from the secret's multiset.
// Pass 2 walks the remaining positions left to right and marks a letter misplaced
// only while the multiset still holds an unused occurrence of it.
// Exact matches therefore always claim their letter before any misplaced one can.
func Evaluate(secret, guess Word) Feedback {
	var fb Feedback
	remaining := countLetters(secret)

	for i := range guess {
		if guess[i] == secret[i] {
			fb[i] = Exact(guess[i])
			remaining.take(guess[i])
		} else {
			fb[i] = Absent(guess[i])
		}
	}

	for i := range guess {
		if fb[i].Kind == HintExact {
			continue
		}
		if remaining.take(guess[i]) {
			fb[i] = Misplaced(guess[i])
		}
	}
	return fb
}

// EvaluateString parses secret and guess and scores them.
// Nothing is scored if either is invalid.
func EvaluateString(secret, guess string) (Feedback, error) {
	s, err := ParseWord(secret)
	if err != nil {
		return Feedback{}, fmt.Errorf("secret: %w", err)
	}
	g, err := ParseWord(guess)
	if err != nil {
		return Feedback{}, fmt.Errorf("guess: %w", err)
	}
	return Evaluate(s, g), nil
}
