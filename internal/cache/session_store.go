// Package cache holds the in-memory session store. Drafts live here for
// the duration of an editing session; there is nothing persistent behind
// it, an expired entry is simply gone.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// SessionStore keeps values alive for a fixed TTL measured from the most
// recent write. Every Set refreshes the entry's expiry, so a draft stays
// alive as long as the user keeps editing it.
type SessionStore[K comparable, V any] struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[K]entry[V]
}

// NewSessionStore constructs a store with the given per-entry TTL. A zero
// or negative TTL disables expiry.
func NewSessionStore[K comparable, V any](ttl time.Duration) *SessionStore[K, V] {
	return &SessionStore[K, V]{
		ttl:   ttl,
		items: make(map[K]entry[V]),
	}
}

// Get returns the stored value if it exists and has not expired. Expired
// entries are dropped lazily on access.
func (s *SessionStore[K, V]) Get(key K) (V, bool) {
	var zero V
	s.mu.RLock()
	e, ok := s.items[key]
	s.mu.RUnlock()
	if !ok {
		return zero, false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		s.Delete(key)
		return zero, false
	}
	return e.value, true
}

// Set stores a value and refreshes its expiry.
func (s *SessionStore[K, V]) Set(key K, value V) {
	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = time.Now().Add(s.ttl)
	}
	s.mu.Lock()
	s.items[key] = entry[V]{value: value, expiresAt: expiresAt}
	s.mu.Unlock()
}

// Delete removes an entry.
func (s *SessionStore[K, V]) Delete(key K) {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
}

// PurgeExpired drops every expired entry and reports how many were
// removed. Expiry is otherwise lazy, so abandoned sessions linger until
// something sweeps them.
func (s *SessionStore[K, V]) PurgeExpired() int {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	purged := 0
	for key, e := range s.items {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(s.items, key)
			purged++
		}
	}
	return purged
}

// Len counts entries that have not yet expired.
func (s *SessionStore[K, V]) Len() int {
	now := time.Now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, e := range s.items {
		if e.expiresAt.IsZero() || now.Before(e.expiresAt) {
			n++
		}
	}
	return n
}
