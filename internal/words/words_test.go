package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-play/internal/game"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"crane", "CRANE"},
		{"  Crane \n", "CRANE"},
		{"CRANE", "CRANE"},
		{"", ""},
		{"cr", "CR"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestNewList_FiltersAndKeepsOrder(t *testing.T) {
	l, err := NewList([]string{"crane", "toolong", "ab", "Slate", "cr4ne", "crane"})
	require.NoError(t, err)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 2, l.Unique())
	assert.Equal(t, []game.Word{
		game.MustParseWord("CRANE"),
		game.MustParseWord("SLATE"),
		game.MustParseWord("CRANE"),
	}, l.Words())
	assert.True(t, l.Contains(game.MustParseWord("SLATE")))
	assert.False(t, l.Contains(game.MustParseWord("ABOUT")))
}

func TestNewList_Empty(t *testing.T) {
	_, err := NewList([]string{"nope", ""})
	assert.ErrorIs(t, err, ErrEmptyList)
}

func TestRead_SkipsCommentsAndBlanks(t *testing.T) {
	l, err := Read(strings.NewReader("# header\n\nabout\n  adieu  \n# tail\n"))
	require.NoError(t, err)
	assert.Equal(t, []game.Word{game.MustParseWord("ABOUT"), game.MustParseWord("ADIEU")}, l.Words())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.txt")
	require.NoError(t, os.WriteFile(path, []byte("right\nwrong\n"), 0o644))

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestEmbedded(t *testing.T) {
	l, err := Embedded()
	require.NoError(t, err)
	assert.Equal(t, 150, l.Len())
	// the default list carries duplicate entries; they are kept
	assert.Less(t, l.Unique(), l.Len())
	assert.Equal(t, game.MustParseWord("ABOUT"), l.PickBySeed(0))
	assert.Equal(t, game.MustParseWord("ZESTY"), l.PickBySeed(149))
	assert.Equal(t, game.MustParseWord("ABOUT"), l.PickBySeed(150))
}

func TestPickBySeed_Wraps(t *testing.T) {
	l, err := NewList([]string{"aaaaa", "bbbbb", "ccccc"})
	require.NoError(t, err)
	assert.Equal(t, game.MustParseWord("BBBBB"), l.PickBySeed(1))
	assert.Equal(t, game.MustParseWord("BBBBB"), l.PickBySeed(1024))
}

func TestRandomSeed_Range(t *testing.T) {
	for i := 0; i < 200; i++ {
		s := RandomSeed()
		require.GreaterOrEqual(t, s, uint64(1))
		require.Less(t, s, uint64(maxRandomSeed))
	}
}

func TestDaily(t *testing.T) {
	l, err := Embedded()
	require.NoError(t, err)

	day := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	later := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)

	w1, s1 := l.Daily(day, "salt")
	w2, s2 := l.Daily(later, "salt")
	assert.Equal(t, w1, w2, "same UTC day selects the same word")
	assert.Equal(t, s1, s2)
	assert.Equal(t, l.PickBySeed(s1), w1)
	assert.Less(t, s1, uint64(l.Len()))

	assert.Equal(t, "2026-03-14", DateKey(day))
	assert.Equal(t, uint64(0), DailyIndex(day, "salt", 0))
}

func TestInitAndStats(t *testing.T) {
	require.NoError(t, Init(""))
	total, unique := Stats()
	assert.Equal(t, 150, total)
	assert.Equal(t, Answers().Unique(), unique)
}
