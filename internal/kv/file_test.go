package kv

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreMissingKey(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "state.json"))

	v, ok, err := store.Get("token")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if ok {
		t.Fatalf("expected missing key, got %q", v)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	store := NewFileStore(path)

	if err := store.Set("token", "abc123"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	// A fresh store on the same path must see the value.
	v, ok, err := NewFileStore(path).Get("token")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !ok || v != "abc123" {
		t.Fatalf("Get = %q, %v; want abc123, true", v, ok)
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "state.json"))

	if err := store.Set("theme", "light"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := store.Set("theme", "dark"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	v, ok, _ := store.Get("theme")
	if !ok || v != "dark" {
		t.Fatalf("Get = %q, %v; want dark, true", v, ok)
	}
}

func TestFileStoreDelete(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "state.json"))

	if err := store.Set("token", "abc"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := store.Delete("token"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, ok, _ := store.Get("token"); ok {
		t.Fatalf("expected token to be deleted")
	}

	// Deleting a missing key is fine.
	if err := store.Delete("token"); err != nil {
		t.Fatalf("Delete of missing key returned error: %v", err)
	}
}

func TestFileStorePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewFileStore(path)

	if err := store.Set("token", "secret"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat state file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Fatalf("state file permissions = %o, want 600", perm)
	}
}
