// internal/game/types.go
//
// Core type definitions for the word-guessing engine.
// Defines:
//   - Letter / Word: uppercase A–Z letters and fixed 5-letter words.
//   - HintKind / Hint: per-letter result of a guess (exact/misplaced/absent).
//   - Feedback: the 5 hints produced for one guess.
//   - State: in_progress → win | lost.

package game

import "fmt"

const (
	// WordLength is the number of letters in every secret and guess.
	WordLength = 5
	// MaxTries is the number of guesses a session allows before it is lost.
	MaxTries = 6
)

// Letter is a single uppercase ASCII letter ('A'..'Z').
type Letter byte

// index maps a letter to 0..25.
func (l Letter) index() int { return int(l - 'A') }

func (l Letter) String() string { return string(rune(l)) }

// Word is an immutable 5-letter word. Secret words and guess attempts share this type.
type Word [WordLength]Letter

func (w Word) String() string {
	b := make([]byte, WordLength)
	for i, l := range w {
		b[i] = byte(l)
	}
	return string(b)
}

// HintKind classifies one guessed letter. The set is closed.
type HintKind uint8

const (
	// HintAbsent: the letter is not in the secret, or all its occurrences are used up.
	HintAbsent HintKind = iota
	// HintMisplaced: the letter is in the secret but at another position.
	HintMisplaced
	// HintExact: the letter matches the secret at this position.
	HintExact
)

func (k HintKind) String() string {
	switch k {
	case HintAbsent:
		return "absent"
	case HintMisplaced:
		return "misplaced"
	case HintExact:
		return "exact"
	}
	return fmt.Sprintf("HintKind(%d)", uint8(k))
}

// MarshalText encodes the kind as its lowercase name.
func (k HintKind) MarshalText() ([]byte, error) {
	switch k {
	case HintAbsent, HintMisplaced, HintExact:
		return []byte(k.String()), nil
	}
	return nil, fmt.Errorf("game: unknown hint kind %d", uint8(k))
}

// Hint is the feedback for one letter position. It always carries the guessed letter.
type Hint struct {
	Kind   HintKind
	Letter Letter
}

// Exact returns an exact-position hint for l.
func Exact(l Letter) Hint { return Hint{Kind: HintExact, Letter: l} }

// Misplaced returns a wrong-position hint for l.
func Misplaced(l Letter) Hint { return Hint{Kind: HintMisplaced, Letter: l} }

// Absent returns an absent hint for l.
func Absent(l Letter) Hint { return Hint{Kind: HintAbsent, Letter: l} }

func (h Hint) String() string { return fmt.Sprintf("%s(%s)", h.Kind, h.Letter) }

// Feedback is the record for one guess: one Hint per position, in guess order.
type Feedback [WordLength]Hint

// IsWin reports whether every hint is exact.
func (f Feedback) IsWin() bool {
	for _, h := range f {
		if h.Kind != HintExact {
			return false
		}
	}
	return true
}

// Word returns the guessed word the feedback was computed for.
func (f Feedback) Word() Word {
	var w Word
	for i, h := range f {
		w[i] = h.Letter
	}
	return w
}

// Pattern renders the feedback as G (exact), Y (misplaced) and _ (absent).
func (f Feedback) Pattern() string {
	b := make([]byte, WordLength)
	for i, h := range f {
		switch h.Kind {
		case HintExact:
			b[i] = 'G'
		case HintMisplaced:
			b[i] = 'Y'
		case HintAbsent:
			b[i] = '_'
		}
	}
	return string(b)
}

// State is the coarse status of a session.
type State uint8

const (
	StateInProgress State = iota
	StateWin
	StateLost
)

func (s State) String() string {
	switch s {
	case StateInProgress:
		return "in_progress"
	case StateWin:
		return "win"
	case StateLost:
		return "lost"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// MarshalText encodes the state as its wire name ("in_progress", "win", "lost").
func (s State) MarshalText() ([]byte, error) {
	switch s {
	case StateInProgress, StateWin, StateLost:
		return []byte(s.String()), nil
	}
	return nil, fmt.Errorf("game: unknown state %d", uint8(s))
}

// Terminal reports whether no further guesses are accepted.
func (s State) Terminal() bool { return s == StateWin || s == StateLost }
