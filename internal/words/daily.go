package words

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle/apps/go-play/internal/game"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailyIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func DailyIndex(date time.Time, salt string, n int) uint64 {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes are plenty for the modulus
	return binary.BigEndian.Uint64(sum[:8]) % uint64(n)
}

// Daily returns the word of the day and the seed that selects it.
func (l *List) Daily(date time.Time, salt string) (game.Word, uint64) {
	seed := DailyIndex(date, salt, len(l.words))
	return l.PickBySeed(seed), seed
}
