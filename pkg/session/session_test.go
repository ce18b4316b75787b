package session

import (
	"path/filepath"
	"testing"
)

func TestNewStoreBackends(t *testing.T) {
	store, err := NewStore("memory", "")
	if err != nil {
		t.Fatalf("NewStore memory: %v", err)
	}
	if err := store.Save("x"); err != nil {
		t.Fatalf("memory Save: %v", err)
	}
	token, err := store.Token()
	if err != nil || token != "x" {
		t.Fatalf("expected memory round trip, got %q err=%v", token, err)
	}

	store, err = NewStore("bbolt", filepath.Join(t.TempDir(), "s.db"))
	if err != nil {
		t.Fatalf("NewStore bbolt: %v", err)
	}
	store.Close()

	store, err = NewStore("none", "")
	if err != nil {
		t.Fatalf("NewStore none: %v", err)
	}
	if err := store.Save("ignored"); err != nil {
		t.Fatalf("noop Save: %v", err)
	}
	authenticated, err := store.IsAuthenticated()
	if err != nil || authenticated {
		t.Fatalf("noop store must never authenticate, got %v err=%v", authenticated, err)
	}
}

func TestNoopStoreNeverAuthenticates(t *testing.T) {
	store := NewNoopStore()
	if err := store.Save("tok"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	token, err := store.Token()
	if err != nil || token != "" {
		t.Fatalf("noop store must not retain tokens, got %q err=%v", token, err)
	}
	authenticated, err := store.IsAuthenticated()
	if err != nil || authenticated {
		t.Fatalf("noop store must never authenticate, got %v err=%v", authenticated, err)
	}
}

func TestNewStoreRejectsBadConfig(t *testing.T) {
	if _, err := NewStore("bbolt", "  "); err == nil {
		t.Fatalf("expected error for bbolt store without path")
	}
	if _, err := NewStore("redis", ""); err == nil {
		t.Fatalf("expected error for unsupported store type")
	}
}

func TestMemoryStoreClear(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Save("tok"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	token, err := store.Token()
	if err != nil || token != "" {
		t.Fatalf("expected empty token after clear, got %q err=%v", token, err)
	}
}
