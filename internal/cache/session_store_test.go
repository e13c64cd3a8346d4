package cache

import (
	"testing"
	"time"
)

func TestSessionStoreGetSet(t *testing.T) {
	store := NewSessionStore[string, int](time.Minute)
	if _, ok := store.Get("a"); ok {
		t.Fatalf("expected miss on empty store")
	}

	store.Set("a", 1)
	got, ok := store.Get("a")
	if !ok || got != 1 {
		t.Fatalf("expected hit with 1, got %d ok=%v", got, ok)
	}
	if store.Len() != 1 {
		t.Fatalf("expected length 1, got %d", store.Len())
	}
}

func TestSessionStoreExpiry(t *testing.T) {
	store := NewSessionStore[string, int](10 * time.Millisecond)
	store.Set("a", 1)
	time.Sleep(25 * time.Millisecond)
	if _, ok := store.Get("a"); ok {
		t.Fatalf("expected entry to expire")
	}
	if store.Len() != 0 {
		t.Fatalf("expected expired entry excluded from Len")
	}
}

func TestSessionStoreSetRefreshesExpiry(t *testing.T) {
	store := NewSessionStore[string, int](40 * time.Millisecond)
	store.Set("a", 1)
	time.Sleep(25 * time.Millisecond)
	store.Set("a", 2)
	time.Sleep(25 * time.Millisecond)
	got, ok := store.Get("a")
	if !ok || got != 2 {
		t.Fatalf("expected refreshed entry to survive, got %d ok=%v", got, ok)
	}
}

func TestSessionStoreZeroTTLNeverExpires(t *testing.T) {
	store := NewSessionStore[string, int](0)
	store.Set("a", 1)
	time.Sleep(5 * time.Millisecond)
	if _, ok := store.Get("a"); !ok {
		t.Fatalf("expected entry without TTL to stay")
	}
}

func TestSessionStoreDelete(t *testing.T) {
	store := NewSessionStore[string, int](time.Minute)
	store.Set("a", 1)
	store.Delete("a")
	if _, ok := store.Get("a"); ok {
		t.Fatalf("expected deleted entry gone")
	}
}
