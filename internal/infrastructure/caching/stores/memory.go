// Package stores provides the cache backends.
package stores

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps entries in process with go-cache.
type MemoryStore struct {
	c *cache.Cache
}

// NewMemoryStore creates a store whose entries default to ttl and are swept
// every cleanup interval.
func NewMemoryStore(ttl, cleanup time.Duration) *MemoryStore {
	return &MemoryStore{c: cache.New(ttl, cleanup)}
}

func (s *MemoryStore) Name() string { return "memory" }

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := s.c.Get(key)
	if !ok {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	s.c.Set(key, value, ttl)
}

func (s *MemoryStore) Delete(_ context.Context, keys ...string) {
	for _, k := range keys {
		s.c.Delete(k)
	}
}

func (s *MemoryStore) Flush(context.Context) {
	s.c.Flush()
}

// ItemCount reports the number of entries, including expired ones not yet
// swept.
func (s *MemoryStore) ItemCount() int {
	return s.c.ItemCount()
}
