package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	store.Set(ctx, "greeting", "hello", time.Minute)
	got, ok := store.Get(ctx, "greeting")
	if !ok || got != "hello" {
		t.Fatalf("Get(greeting) = %q, %v; want hello, true", got, ok)
	}

	store.Delete(ctx, "greeting")
	if _, ok := store.Get(ctx, "greeting"); ok {
		t.Fatal("Get after Delete should miss")
	}
}

func TestMemoryStore_ExpiredEntryMisses(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	store.Set(ctx, "short", "lived", -time.Second)
	if _, ok := store.Get(ctx, "short"); ok {
		t.Fatal("expired entry must not be returned")
	}
}

func TestMemoryStore_CloseStopsJanitor(t *testing.T) {
	store := NewMemoryStore()
	if !store.janitor.Running() {
		t.Fatal("janitor should run after NewMemoryStore")
	}

	store.Close()
	if store.janitor.Running() {
		t.Fatal("janitor should stop after Close")
	}

	// Idempotent, and the store stays usable for reads.
	store.Close()
	ctx := context.Background()
	store.Set(ctx, "key", "value", time.Minute)
	if got, ok := store.Get(ctx, "key"); !ok || got != "value" {
		t.Fatalf("Get after Close = %q, %v; want value, true", got, ok)
	}
}

func TestMemoryStore_SweepEvictsExpired(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	store.Set(ctx, "stale", "gone", -time.Second)
	store.Set(ctx, "fresh", "kept", time.Minute)
	store.sweep(ctx)

	store.mu.RLock()
	_, staleHeld := store.entries["stale"]
	_, freshHeld := store.entries["fresh"]
	store.mu.RUnlock()
	if staleHeld {
		t.Fatal("sweep should evict expired entries")
	}
	if !freshHeld {
		t.Fatal("sweep must keep live entries")
	}
}
