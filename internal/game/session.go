// internal/game/session.go
//
// Session is the state machine for a single game.
// Responsibilities:
//   - Own the secret word and the append-only feedback history.
//   - Apply guesses and move between in_progress → win | lost.
//
// Notes:
//   - A Session is not safe for concurrent use; callers that share one across
//     goroutines serialize access themselves (see internal/store).
//   - Guesses after the game ended are ignored without error.

package game

import "github.com/google/uuid"

// Session holds the state of one game.
type Session struct {
	id      string
	secret  Word
	history []Feedback
	state   State
}

// NewSession starts a game for secret.
func NewSession(secret Word) *Session {
	return &Session{
		id:      uuid.NewString(),
		secret:  secret,
		history: make([]Feedback, 0, MaxTries),
		state:   StateInProgress,
	}
}

// Submit scores guess and records it.
// It reports false and changes nothing when the session is already finished.
func (s *Session) Submit(guess Word) (Feedback, bool) {
	if s.state != StateInProgress {
		return Feedback{}, false
	}
	record := Evaluate(s.secret, guess)
	s.history = append(s.history, record)
	s.state = s.next(record)
	return record, true
}

// ApplyGuess parses raw and submits it. Invalid input is rejected before the
// session is touched.
func (s *Session) ApplyGuess(raw string) (Feedback, bool, error) {
	guess, err := ParseWord(raw)
	if err != nil {
		return Feedback{}, false, err
	}
	record, ok := s.Submit(guess)
	return record, ok, nil
}

// next computes the state after record was appended.
// A win is checked before exhaustion so that a correct sixth guess wins.
func (s *Session) next(record Feedback) State {
	switch {
	case record.IsWin():
		return StateWin
	case len(s.history) >= MaxTries:
		return StateLost
	default:
		return StateInProgress
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Secret returns the secret word.
func (s *Session) Secret() Word { return s.secret }

// State returns the current state.
func (s *Session) State() State { return s.state }

// Tries returns the number of recorded guesses.
func (s *Session) Tries() int { return len(s.history) }

// Remaining returns how many guesses are left before the game is lost.
func (s *Session) Remaining() int {
	if s.state.Terminal() {
		return 0
	}
	return MaxTries - len(s.history)
}

// History returns a copy of all feedback so far, oldest first.
func (s *Session) History() []Feedback {
	out := make([]Feedback, len(s.history))
	copy(out, s.history)
	return out
}

// Last returns the most recent feedback, if any.
func (s *Session) Last() (Feedback, bool) {
	if len(s.history) == 0 {
		return Feedback{}, false
	}
	return s.history[len(s.history)-1], true
}
