package kv

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryRoundTrip(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := store.Set(ctx, "community_state_v2", `{"upcomingActivities":[]}`); err != nil {
		t.Fatalf("unexpected set error: %v", err)
	}
	value, err := store.Get(ctx, "community_state_v2")
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if value != `{"upcomingActivities":[]}` {
		t.Fatalf("unexpected value %q", value)
	}

	if err := store.Delete(ctx, "community_state_v2"); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}
	if _, err := store.Get(ctx, "community_state_v2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d keys", store.Len())
	}
}

func TestMemoryOverwrite(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	if err := store.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	value, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "v2" {
		t.Fatalf("expected latest write to win, got %q", value)
	}
}
