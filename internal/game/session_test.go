package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-play/internal/game"
)

func TestSession_FillsHistory(t *testing.T) {
	s := game.NewSession(word("RIGHT"))
	assert.Equal(t, 0, s.Tries())
	assert.Equal(t, game.StateInProgress, s.State())
	assert.NotEmpty(t, s.ID())

	_, ok := s.Submit(word("WRONG"))
	require.True(t, ok)
	assert.Equal(t, 1, s.Tries())
	_, ok = s.Submit(word("FALSE"))
	require.True(t, ok)
	assert.Equal(t, 2, s.Tries())
	assert.Equal(t, game.StateInProgress, s.State())

	h := s.History()
	require.Len(t, h, 2)
	assert.Equal(t, word("WRONG"), h[0].Word())
	assert.Equal(t, word("FALSE"), h[1].Word())
	assert.Equal(t, 4, s.Remaining())
}

func TestSession_WinOnMatch(t *testing.T) {
	s := game.NewSession(word("RIGHT"))
	record, ok := s.Submit(word("RIGHT"))
	require.True(t, ok)
	assert.True(t, record.IsWin())
	assert.Equal(t, game.StateWin, s.State())
	assert.Equal(t, 1, s.Tries())
	assert.Equal(t, 0, s.Remaining())
}

func TestSession_LostAfterSixTries(t *testing.T) {
	s := game.NewSession(word("RIGHT"))
	for i := 1; i < game.MaxTries; i++ {
		s.Submit(word("FALSE"))
		require.Equal(t, game.StateInProgress, s.State(), "after guess %d", i)
	}
	s.Submit(word("FALSE"))
	assert.Equal(t, game.StateLost, s.State())
	assert.Equal(t, game.MaxTries, s.Tries())

	_, ok := s.Submit(word("FALSE"))
	assert.False(t, ok)
	_, ok = s.Submit(word("RIGHT"))
	assert.False(t, ok)
	assert.Equal(t, game.StateLost, s.State())
	assert.Equal(t, game.MaxTries, s.Tries())
}

func TestSession_WinningSixthGuessWins(t *testing.T) {
	s := game.NewSession(word("RIGHT"))
	for i := 0; i < game.MaxTries-1; i++ {
		s.Submit(word("FALSE"))
	}
	record, ok := s.Submit(word("RIGHT"))
	require.True(t, ok)
	assert.True(t, record.IsWin())
	assert.Equal(t, game.StateWin, s.State())
	assert.Equal(t, game.MaxTries, s.Tries())
}

func TestSession_TerminalIsIdempotent(t *testing.T) {
	s := game.NewSession(word("RIGHT"))
	s.Submit(word("RIGHT"))
	before := s.History()

	for i := 0; i < 10; i++ {
		fb, ok := s.Submit(word("WRONG"))
		assert.False(t, ok)
		assert.Equal(t, game.Feedback{}, fb)
	}
	assert.Equal(t, game.StateWin, s.State())
	assert.Equal(t, before, s.History())

	last, ok := s.Last()
	require.True(t, ok)
	assert.True(t, last.IsWin())
}

func TestSession_ApplyGuessRejectsBeforeMutation(t *testing.T) {
	s := game.NewSession(word("RIGHT"))

	_, ok, err := s.ApplyGuess("RIGH")
	require.ErrorIs(t, err, game.ErrInvalidLength)
	assert.False(t, ok)
	_, ok, err = s.ApplyGuess("right")
	require.ErrorIs(t, err, game.ErrInvalidLetter)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Tries())

	fb, ok, err := s.ApplyGuess("WRONG")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "_Y__Y", fb.Pattern())
	assert.Equal(t, 1, s.Tries())
}

func TestSession_HistoryIsACopy(t *testing.T) {
	s := game.NewSession(word("RIGHT"))
	s.Submit(word("WRONG"))
	h := s.History()
	h[0] = game.Feedback{}
	assert.Equal(t, word("WRONG"), s.History()[0].Word())
}

func TestSession_HistoryNeverExceedsMaxTries(t *testing.T) {
	s := game.NewSession(word("ABCDE"))
	for i := 0; i < 20; i++ {
		s.Submit(word("EDCBA"))
		require.LessOrEqual(t, s.Tries(), game.MaxTries)
	}
	assert.Equal(t, game.StateLost, s.State())
}

func TestSession_SecretNeverChanges(t *testing.T) {
	s := game.NewSession(word("RIGHT"))
	s.Submit(word("FALSE"))
	assert.Equal(t, word("RIGHT"), s.Secret())
	_, ok := s.Last()
	assert.True(t, ok)
}

func TestState_Strings(t *testing.T) {
	tests := []struct {
		state    game.State
		text     string
		terminal bool
	}{
		{game.StateInProgress, "in_progress", false},
		{game.StateWin, "win", true},
		{game.StateLost, "lost", true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			b, err := tt.state.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, tt.text, string(b))
			assert.Equal(t, tt.terminal, tt.state.Terminal())
		})
	}
	_, err := game.State(9).MarshalText()
	assert.Error(t, err)
}

func TestHint_Strings(t *testing.T) {
	assert.Equal(t, "exact(A)", game.Exact('A').String())
	assert.Equal(t, "misplaced(B)", game.Misplaced('B').String())
	assert.Equal(t, "absent(C)", game.Absent('C').String())
	_, err := game.HintKind(7).MarshalText()
	assert.Error(t, err)
}
