package cache

import (
	"context"
	"sync"
	"time"

	"github.com/talentlens/talentlens/pkg/scheduler"
)

const janitorInterval = 5 * time.Minute

// MemoryStore is an in-memory drop-in for RedisStore, used by tests and
// single-node local runs. Entries expire lazily on read and eagerly via a
// background janitor. Call Close when the store is no longer needed.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry

	janitor *scheduler.Periodic
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{
		entries: make(map[string]memoryEntry),
	}
	store.janitor = scheduler.NewPeriodic(janitorInterval, store.sweep)
	store.janitor.Start(context.Background())
	return store
}

// Close stops the background janitor. Idempotent.
func (ms *MemoryStore) Close() {
	ms.janitor.Stop()
}

// Set stores a key with a ttl
func (ms *MemoryStore) Set(ctx context.Context, key string, value string, expiration time.Duration) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.entries[key] = memoryEntry{value: value, expiresAt: time.Now().Add(expiration)}
}

// Get returns the value for key; false when absent or expired
func (ms *MemoryStore) Get(ctx context.Context, key string) (string, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	entry, ok := ms.entries[key]
	if !ok || entry.expired(time.Now()) {
		return "", false
	}
	return entry.value, true
}

// Delete removes a key
func (ms *MemoryStore) Delete(ctx context.Context, key string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.entries, key)
}

func (ms *MemoryStore) sweep(_ context.Context) {
	now := time.Now()
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for key, entry := range ms.entries {
		if entry.expired(now) {
			delete(ms.entries, key)
		}
	}
}
