// internal/words/words.go
//
// Word supply for the game.
//
// Responsibilities:
//   - Load the answer list from a file or fall back to the embedded default.
//   - Normalize raw input (trim + uppercase) before it reaches the game core.
//   - Pick secrets by seed, at random, or per day (see daily.go).
//
// Initialization behavior (Init):
//  1. If a path is given (WORDS_ANSWERS_FILE), load one word per line from it.
//  2. Otherwise use assets/answers.txt.
//
// Constraints:
//   • Words must be 5 letters A–Z after normalization; anything else is skipped.
//   • Order and duplicates are preserved, so seed → word stays stable for a list.
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
	"sync"

	"github.com/robalobadob/wordle/apps/go-play/assets"
	"github.com/robalobadob/wordle/apps/go-play/internal/game"
)

// ErrEmptyList is returned when a list ends up with no usable words.
var ErrEmptyList = errors.New("words: answers list is empty")

// maxRandomSeed bounds RandomSeed, matching the seeds players can type back in.
const maxRandomSeed = 1024

// Normalize trims surrounding whitespace and uppercases s.
// It is the only case folding applied to user input.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// List is an ordered answer list.
type List struct {
	words []game.Word
	set   map[game.Word]struct{}
}

// NewList normalizes raw and keeps the valid 5-letter words, in order.
func NewList(raw []string) (*List, error) {
	l := &List{set: make(map[game.Word]struct{}, len(raw))}
	for _, s := range raw {
		w, err := game.ParseWord(Normalize(s))
		if err != nil {
			continue
		}
		l.words = append(l.words, w)
		l.set[w] = struct{}{}
	}
	if len(l.words) == 0 {
		return nil, ErrEmptyList
	}
	return l, nil
}

// Read builds a List from one word per line. Blank lines and # comments are skipped.
func Read(r io.Reader) (*List, error) {
	var raw []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		raw = append(raw, s)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return NewList(raw)
}

// Load reads a List from the file at path.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	l, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Embedded returns the built-in list.
func Embedded() (*List, error) {
	raw, err := assets.AnswersList()
	if err != nil {
		return nil, err
	}
	return NewList(raw)
}

// Len returns the number of entries, duplicates included.
func (l *List) Len() int { return len(l.words) }

// Words returns a copy of the entries in list order.
func (l *List) Words() []game.Word {
	out := make([]game.Word, len(l.words))
	copy(out, l.words)
	return out
}

// Unique returns the number of distinct words.
func (l *List) Unique() int { return len(l.set) }

// Contains reports whether w is in the list.
func (l *List) Contains(w game.Word) bool {
	_, ok := l.set[w]
	return ok
}

// PickBySeed returns the word at seed modulo the list length.
func (l *List) PickBySeed(seed uint64) game.Word {
	return l.words[seed%uint64(len(l.words))]
}

// RandomSeed returns a cryptographically random seed in [1, 1024).
func RandomSeed() uint64 {
	n, err := rand.Int(rand.Reader, big.NewInt(maxRandomSeed-1))
	if err != nil {
		return 1
	}
	return n.Uint64() + 1
}

var (
	initOnce   sync.Once
	answers    *List
	initialErr error
)

// Init loads the package-level list exactly once.
// An empty path selects the embedded list.
func Init(path string) error {
	initOnce.Do(func() {
		if path != "" {
			answers, initialErr = Load(path)
			return
		}
		answers, initialErr = Embedded()
	})
	return initialErr
}

// Answers returns the list loaded by Init.
func Answers() *List { return answers }

// Stats returns the number of entries and distinct words in the loaded list.
func Stats() (total, unique int) {
	if answers == nil {
		return 0, 0
	}
	return answers.Len(), answers.Unique()
}
