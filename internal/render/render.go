// internal/render/render.go
//
// Terminal rendering of game state.
// Responsibilities:
//   - Draw a feedback row, coloured (ANSI) or with plain markers.
//   - Draw the whole board: played rows followed by empty rows.
//   - Produce the end-of-game message (try count on win, secret on loss).
//
// Notes:
//   - Exact → green, Misplaced → yellow, Absent → terminal default.
//   - Plain mode: [X] exact, (X) misplaced, " X " absent.

package render

import (
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/go-play/internal/game"
)

const (
	ansiGreen  = "\x1b[1;32m"
	ansiYellow = "\x1b[1;33m"
	ansiReset  = "\x1b[0m"
)

// Renderer formats game state for a terminal.
type Renderer struct {
	Color bool
}

// Cell formats a single hint.
func (r Renderer) Cell(h game.Hint) string {
	l := h.Letter.String()
	if r.Color {
		switch h.Kind {
		case game.HintExact:
			return " " + ansiGreen + l + ansiReset + " "
		case game.HintMisplaced:
			return " " + ansiYellow + l + ansiReset + " "
		case game.HintAbsent:
			return " " + l + " "
		}
	}
	switch h.Kind {
	case game.HintExact:
		return "[" + l + "]"
	case game.HintMisplaced:
		return "(" + l + ")"
	case game.HintAbsent:
		return " " + l + " "
	}
	return " ? "
}

// Row formats one feedback record.
func (r Renderer) Row(fb game.Feedback) string {
	var b strings.Builder
	for _, h := range fb {
		b.WriteString(r.Cell(h))
	}
	return b.String()
}

// emptyRow stands in for a guess not yet made.
func emptyRow() string {
	return strings.Repeat(" _ ", game.WordLength)
}

// Board formats every row of the session, padding unplayed rows.
func (r Renderer) Board(s *game.Session) string {
	var b strings.Builder
	history := s.History()
	for _, fb := range history {
		b.WriteString(r.Row(fb))
		b.WriteByte('\n')
	}
	for i := len(history); i < game.MaxTries; i++ {
		b.WriteString(emptyRow())
		b.WriteByte('\n')
	}
	return b.String()
}

// Title is the header shown above the board.
func Title(seed uint64) string {
	return fmt.Sprintf("Wordle (%d)", seed)
}

// Outcome returns the closing message, or "" while the game is in progress.
func Outcome(s *game.Session) string {
	switch s.State() {
	case game.StateWin:
		return fmt.Sprintf("you found the word in %d %s", s.Tries(), plural(s.Tries(), "try", "tries"))
	case game.StateLost:
		return fmt.Sprintf("the word was %s\nYou will do better next time", s.Secret())
	case game.StateInProgress:
		return ""
	}
	return ""
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
