// internal/store/memory.go
//
// In-memory store for hosted game sessions.
// Sessions live only as long as the process (nothing is persisted).
//
// Characteristics:
//   - Entries keyed by Session.ID() in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - game.Session itself is not safe for concurrent use; every access goes
//     through View or Update, which hold the lock while the callback runs.
//   - Entries idle for longer than the TTL are dropped on access and by Sweep.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordle/apps/go-play/internal/game"
)

// ErrNotFound is returned for unknown or expired session IDs.
var ErrNotFound = errors.New("store: session not found")

// Entry is a hosted session plus the metadata needed to describe it.
type Entry struct {
	Session *game.Session
	Seed    uint64    // seed that selected the secret
	Daily   bool      // secret is the word of the day
	Started time.Time // creation time
	touched time.Time
}

// Store defines the access interface for hosted sessions.
type Store interface {
	// Save adds a new session.
	Save(ctx context.Context, e *Entry) error

	// View runs fn with read access to the entry.
	View(ctx context.Context, id string, fn func(*Entry) error) error

	// Update runs fn with exclusive access to the entry.
	Update(ctx context.Context, id string, fn func(*Entry) error) error

	// Sweep drops expired entries and reports how many were removed.
	Sweep(ctx context.Context) int
}

// Memory is an in-memory map-based Store implementation.
type Memory struct {
	mu      sync.RWMutex      // guards entries
	entries map[string]*Entry // keyed by Session.ID()
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore constructs a Memory store. A ttl <= 0 disables expiry.
func NewMemoryStore(ttl time.Duration) *Memory {
	return &Memory{
		entries: make(map[string]*Entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Save adds the entry, keyed by its session ID.
func (m *Memory) Save(ctx context.Context, e *Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	now := m.now()
	if e.Started.IsZero() {
		e.Started = now
	}
	e.touched = now

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[e.Session.ID()] = e
	return nil
}

// View looks up id and runs fn under the read lock.
func (m *Memory) View(ctx context.Context, id string, fn func(*Entry) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[id]
	if !ok || m.expired(e) {
		return ErrNotFound
	}
	return fn(e)
}

// Update looks up id and runs fn under the write lock.
// The entry's idle timer is reset.
func (m *Memory) Update(ctx context.Context, id string, fn func(*Entry) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok {
		return ErrNotFound
	}
	if m.expired(e) {
		delete(m.entries, id)
		return ErrNotFound
	}
	e.touched = m.now()
	return fn(e)
}

// Sweep removes every expired entry.
func (m *Memory) Sweep(ctx context.Context) int {
	if ctx.Err() != nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.entries {
		if m.expired(e) {
			delete(m.entries, id)
			n++
		}
	}
	return n
}

// Len returns the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *Memory) expired(e *Entry) bool {
	return m.ttl > 0 && m.now().Sub(e.touched) > m.ttl
}
