package cache

import (
	"testing"
	"time"
)

func TestTTLCache(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	c := New[string, int]()

	if _, ok := c.Get("missing", now); ok {
		t.Fatal("expected miss on empty cache")
	}

	c.Set("k", 42, time.Minute, now)
	if v, ok := c.Get("k", now); !ok || v != 42 {
		t.Fatalf("Get = %v,%v, want 42,true", v, ok)
	}

	// Still valid at the deadline, expired just past it.
	if _, ok := c.Get("k", now.Add(time.Minute)); !ok {
		t.Fatal("entry expired at exactly ttl")
	}
	if _, ok := c.Get("k", now.Add(time.Minute+time.Nanosecond)); ok {
		t.Fatal("entry survived past ttl")
	}
}

func TestTTLCacheNoExpiry(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	c := New[string, string]()
	c.Set("k", "v", 0, now)
	if v, ok := c.Get("k", now.AddDate(10, 0, 0)); !ok || v != "v" {
		t.Fatalf("unexpired entry lost: %v,%v", v, ok)
	}
}

func TestTTLCacheDelete(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	c := New[string, int]()
	c.Set("k", 1, time.Minute, now)
	c.Delete("k")
	if _, ok := c.Get("k", now); ok {
		t.Fatal("deleted entry still present")
	}
}
