package session

import (
	"path/filepath"
	"testing"

	"github.com/confideapp/confide/internal/kv"
)

func TestTokenAbsentByDefault(t *testing.T) {
	store := NewStore(kv.NewMemoryStore())

	if _, ok := store.Token(); ok {
		t.Fatalf("expected no token in a fresh store")
	}
	if store.LoggedIn() {
		t.Fatalf("LoggedIn should be false without a token")
	}
}

func TestSetTokenOverwrites(t *testing.T) {
	store := NewStore(kv.NewMemoryStore())

	if err := store.SetToken("first"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	if err := store.SetToken("second"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	token, ok := store.Token()
	if !ok || token != "second" {
		t.Fatalf("Token = %q, %v; want second, true", token, ok)
	}
}

func TestClearToken(t *testing.T) {
	store := NewStore(kv.NewMemoryStore())

	if err := store.SetToken("abc"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	if err := store.ClearToken(); err != nil {
		t.Fatalf("ClearToken: %v", err)
	}
	if _, ok := store.Token(); ok {
		t.Fatalf("token should be gone after ClearToken")
	}
}

func TestEmptyTokenCountsAsAbsent(t *testing.T) {
	store := NewStore(kv.NewMemoryStore())

	if err := store.SetToken(""); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	if _, ok := store.Token(); ok {
		t.Fatalf("empty token must not count as a session")
	}
}

func TestTokenSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	if err := NewStore(kv.NewFileStore(path)).SetToken("persisted"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	token, ok := NewStore(kv.NewFileStore(path)).Token()
	if !ok || token != "persisted" {
		t.Fatalf("Token after reopen = %q, %v; want persisted, true", token, ok)
	}
}
