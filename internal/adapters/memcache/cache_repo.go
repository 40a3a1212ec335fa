package memcache

// Package memcache is an in-process CacheRepository for single-binary
// deployments that run without Redis. Entries expire lazily on read.

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/ports"
)

var _ ports.CacheRepository = (*CacheRepo)(nil)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// CacheRepo is a mutex-guarded map with TTL semantics.
type CacheRepo struct {
	mu      sync.Mutex
	entries map[string]entry
}

// NewCacheRepo creates an empty in-process cache.
func NewCacheRepo() *CacheRepo {
	return &CacheRepo{entries: map[string]entry{}}
}

func (c *CacheRepo) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, nil
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, nil
	}
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, nil
}

func (c *CacheRepo) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	e := entry{value: stored}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	c.entries[key] = e
	return nil
}

func (c *CacheRepo) Delete(_ context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; !ok {
		return false, nil
	}
	delete(c.entries, key)
	return true, nil
}

func (c *CacheRepo) DeletePrefix(_ context.Context, prefix string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed, nil
}
