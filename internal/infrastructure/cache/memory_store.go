package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MemoryStore is a process-local Store. Entries older than gcTime are dropped on access.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
	gcTime  time.Duration
	now     func() time.Time
}

func NewMemoryStore(gcTime time.Duration) *MemoryStore {
	if gcTime <= 0 {
		gcTime = DefaultGCTime
	}
	return &MemoryStore{entries: map[string]Entry{}, gcTime: gcTime, now: time.Now}
}

func (s *MemoryStore) Get(_ context.Context, key string) (Entry, bool, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return Entry{}, false, nil
	}
	if s.now().Sub(e.FetchedAt) > s.gcTime {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return Entry{}, false, nil
	}
	return e, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = e
	return nil
}

func (s *MemoryStore) DeletePrefix(_ context.Context, prefix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.entries {
		if strings.HasPrefix(k, prefix) {
			delete(s.entries, k)
		}
	}
	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
