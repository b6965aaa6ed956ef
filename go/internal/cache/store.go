// Package cache keeps fully rendered GET responses for a fixed time to live.
// Entries are never invalidated; an admin edit shows up once the entry
// expires.
package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Store is a key-value store with per-entry expiry
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore is a process-local Store.
// In production, use clockwork.NewRealClock(). In tests, a FakeClock.
type MemoryStore struct {
	mu      sync.RWMutex
	clock   clockwork.Clock
	entries map[string]entry
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore(clock clockwork.Clock) *MemoryStore {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &MemoryStore{
		clock:   clock,
		entries: make(map[string]entry),
	}
}

// Get returns the live value for key. Expired entries are dropped on read.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !s.clock.Now().Before(e.expiresAt) {
		s.mu.Lock()
		// a concurrent Set may have refreshed the entry
		if cur, ok := s.entries[key]; ok && !s.clock.Now().Before(cur.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false, nil
	}
	return e.value, true, nil
}

// Set stores value under key until ttl elapses
func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	s.entries[key] = entry{value: value, expiresAt: s.clock.Now().Add(ttl)}
	s.mu.Unlock()
	return nil
}

// Purge removes every expired entry and returns how many were removed
func (s *MemoryStore) Purge() int {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for k, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, k)
			removed++
		}
	}
	return removed
}

// Len is the number of stored entries, expired or not
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// RunJanitor purges expired entries every interval until ctx is done
func (s *MemoryStore) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := s.clock.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if n := s.Purge(); n > 0 {
				log.Debug().Int("removed", n).Msg("purged expired cache entries")
			}
		}
	}
}

// RedisStore shares cached responses between API instances
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing client
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}
