package state

// Package state contains simple hand-written test doubles for the
// client core's ports. These are lightweight and suitable for unit
// tests without codegen.

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.StateStore      = (*MemoryStateStore)(nil)
	_ ports.CacheRepository = (*MemoryCacheRepo)(nil)
	_ ports.Notifier        = (*RecordingNotifier)(nil)
	_ ports.Navigator       = (*StubNavigator)(nil)
)

// MemoryStateStore is an in-memory ports.StateStore.
type MemoryStateStore struct {
	mu    sync.Mutex
	slots map[string][]byte

	// GetFunc/SetFunc/DeleteFunc override the default behavior when set.
	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte) error
	DeleteFunc func(ctx context.Context, key string) error
}

// NewMemoryStateStore creates an empty in-memory state store.
func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{slots: map[string][]byte{}}
}

func (m *MemoryStateStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.slots[key]
	if !ok {
		return nil, ports.ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *MemoryStateStore) Set(ctx context.Context, key string, value []byte) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	m.slots[key] = stored
	return nil
}

func (m *MemoryStateStore) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, key)
	return nil
}

// Keys returns the stored keys, for assertions.
func (m *MemoryStateStore) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.slots))
	for k := range m.slots {
		keys = append(keys, k)
	}
	return keys
}

// memoryCacheEntry carries a value and its expiry.
type memoryCacheEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCacheRepo is an in-memory ports.CacheRepository with TTL
// semantics.
type MemoryCacheRepo struct {
	mu      sync.Mutex
	entries map[string]memoryCacheEntry
	now     func() time.Time
}

// NewMemoryCacheRepo creates an empty in-memory cache.
func NewMemoryCacheRepo() *MemoryCacheRepo {
	return &MemoryCacheRepo{entries: map[string]memoryCacheEntry{}, now: time.Now}
}

// SetClock overrides the cache's clock, for expiry tests.
func (m *MemoryCacheRepo) SetClock(now func() time.Time) { m.now = now }

func (m *MemoryCacheRepo) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[key]
	if !ok {
		return nil, nil
	}
	if !entry.expiresAt.IsZero() && m.now().After(entry.expiresAt) {
		delete(m.entries, key)
		return nil, nil
	}
	out := make([]byte, len(entry.value))
	copy(out, entry.value)
	return out, nil
}

func (m *MemoryCacheRepo) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	entry := memoryCacheEntry{value: stored}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}
	m.entries[key] = entry
	return nil
}

func (m *MemoryCacheRepo) Delete(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[key]; !ok {
		return false, nil
	}
	delete(m.entries, key)
	return true, nil
}

func (m *MemoryCacheRepo) DeletePrefix(_ context.Context, prefix string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for k := range m.entries {
		if strings.HasPrefix(k, prefix) {
			delete(m.entries, k)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of live entries, for assertions.
func (m *MemoryCacheRepo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// RecordingNotifier captures notifications for assertions.
type RecordingNotifier struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

// NewRecordingNotifier creates an empty RecordingNotifier.
func NewRecordingNotifier() *RecordingNotifier { return &RecordingNotifier{} }

func (n *RecordingNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Successes = append(n.Successes, message)
}

func (n *RecordingNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Errors = append(n.Errors, message)
}

// AllErrors returns a copy of the captured error notifications.
func (n *RecordingNotifier) AllErrors() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.Errors...)
}

// AllSuccesses returns a copy of the captured success notifications.
func (n *RecordingNotifier) AllSuccesses() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.Successes...)
}

// StubNavigator is a scriptable ports.Navigator recording every
// navigation.
type StubNavigator struct {
	mu     sync.Mutex
	Path   string
	Navs   []string
	Forces []string
}

// NewStubNavigator creates a StubNavigator at the given path.
func NewStubNavigator(path string) *StubNavigator {
	return &StubNavigator{Path: path}
}

func (n *StubNavigator) CurrentPath() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.Path
}

func (n *StubNavigator) Navigate(path string) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Navs = append(n.Navs, path)
	n.Path = path
	return path
}

func (n *StubNavigator) Force(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Forces = append(n.Forces, path)
	n.Path = path
}
