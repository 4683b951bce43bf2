package draft

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/confideapp/confide/internal/model"
	"github.com/confideapp/confide/internal/vault"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "drafts.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSaveAndGet(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	saved, err := store.Save(ctx, model.MoodFear, "never told anyone this", false)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID == "" {
		t.Fatalf("expected a generated id")
	}

	got, err := store.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Content != "never told anyone this" || got.Mood != model.MoodFear || got.Sealed {
		t.Fatalf("unexpected draft: %+v", got)
	}
}

func TestListNewestFirst(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, content := range []string{"first", "second", "third"} {
		if _, err := store.Save(ctx, model.MoodNeutral, content, false); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	drafts, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(drafts) != 3 {
		t.Fatalf("got %d drafts, want 3", len(drafts))
	}
}

func TestUpdateAndDelete(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	saved, err := store.Save(ctx, model.MoodJoy, "original", false)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := store.Update(ctx, saved.ID, model.MoodLove, "revised", false); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := store.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Content != "revised" || got.Mood != model.MoodLove {
		t.Fatalf("update not applied: %+v", got)
	}

	if err := store.Delete(ctx, saved.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, saved.ID); err == nil {
		t.Fatalf("deleted draft still readable")
	}

	if err := store.Update(ctx, saved.ID, model.MoodJoy, "x", false); err == nil {
		t.Fatalf("updating a missing draft must fail")
	}
}

func TestSealedDraftRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	salt, err := vault.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt: %v", err)
	}
	v := vault.New("passphrase", salt)
	sealed, err := v.Seal([]byte("the sealed one"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	saved, err := store.Save(ctx, model.MoodSadness, sealed, true)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.Sealed {
		t.Fatalf("sealed flag lost")
	}
	opened, err := v.Open(got.Content)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if string(opened) != "the sealed one" {
		t.Fatalf("round trip = %q", opened)
	}
}
