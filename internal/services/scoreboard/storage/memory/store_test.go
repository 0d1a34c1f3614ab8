package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/louisbranch/tantoak/internal/services/scoreboard/storage"
)

func TestStoreSaveAndLoad(t *testing.T) {
	store := New()
	if _, err := store.Load(context.Background()); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("load error = %v, want ErrNotFound", err)
	}

	want := storage.Snapshot{Score: [2]int{1, 2}, GameScore: [2]int{3, 4}, MaxScore: 30}
	if err := store.Save(context.Background(), want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("loaded = %+v, want %+v", got, want)
	}
	if store.Saves() != 1 {
		t.Fatalf("saves = %d, want 1", store.Saves())
	}
}

func TestStoreInjectedFailures(t *testing.T) {
	store, err := Seeded(storage.Snapshot{MaxScore: 20})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	boom := errors.New("boom")

	store.FailLoad(boom)
	if _, err := store.Load(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("load error = %v, want boom", err)
	}
	store.FailSave(boom)
	if err := store.Save(context.Background(), storage.Snapshot{MaxScore: 40}); !errors.Is(err, boom) {
		t.Fatalf("save error = %v, want boom", err)
	}

	store.FailLoad(nil)
	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.MaxScore != 20 {
		t.Fatalf("max score = %d, want 20 after failed save", got.MaxScore)
	}
}
