package ratelimit

import (
	"context"
	"sync"
	"time"

	"portfolio/internal/domain/entity"
)

const defaultCleanupInterval = time.Minute

// MemoryStore keeps counters in a map. Expired entries are swept lazily: at
// most once per cleanup interval, piggybacking on a Take call.
type MemoryStore struct {
	mu              sync.Mutex
	entries         map[string]entity.RateLimitEntry
	cleanupInterval time.Duration
	lastCleanup     time.Time
}

// NewMemoryStore creates an empty store.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	if cleanupInterval <= 0 {
		cleanupInterval = defaultCleanupInterval
	}

	return &MemoryStore{
		entries:         make(map[string]entity.RateLimitEntry),
		cleanupInterval: cleanupInterval,
	}
}

func (s *MemoryStore) Take(_ context.Context, key string, limit int, window time.Duration, now time.Time) (entity.RateLimitEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cleanupLocked(now)

	entry, ok := s.entries[key]
	if !ok || !now.Before(entry.ResetTime) {
		entry = entity.RateLimitEntry{
			Identifier: key,
			Count:      1,
			ResetTime:  now.Add(window),
		}
		s.entries[key] = entry

		return entry, true, nil
	}

	if entry.Count >= limit {
		return entry, false, nil
	}

	entry.Count++
	s.entries[key] = entry

	return entry, true, nil
}

func (s *MemoryStore) cleanupLocked(now time.Time) {
	if s.lastCleanup.IsZero() {
		s.lastCleanup = now

		return
	}
	if now.Sub(s.lastCleanup) < s.cleanupInterval {
		return
	}

	for key, entry := range s.entries {
		if !now.Before(entry.ResetTime) {
			delete(s.entries, key)
		}
	}
	s.lastCleanup = now
}

// Len returns the number of tracked identifiers, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// Reset drops every counter.
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]entity.RateLimitEntry)
	s.lastCleanup = time.Time{}
}
