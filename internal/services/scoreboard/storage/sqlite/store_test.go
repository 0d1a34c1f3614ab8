package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/louisbranch/tantoak/internal/services/scoreboard/storage"
)

func TestLoadEmptyStoreIsNotFound(t *testing.T) {
	store := openTempStore(t)

	if _, err := store.Load(context.Background()); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("load error = %v, want ErrNotFound", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	store := openTempStore(t)
	want := storage.Snapshot{Score: [2]int{15, 20}, GameScore: [2]int{1, 3}, MaxScore: 30}

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
}

func TestSaveOverwritesPreviousSnapshot(t *testing.T) {
	store := openTempStore(t)

	if err := store.Save(context.Background(), storage.Snapshot{Score: [2]int{5, 5}, MaxScore: 20}); err != nil {
		t.Fatalf("save first: %v", err)
	}
	want := storage.Snapshot{Score: [2]int{0, 0}, GameScore: [2]int{1, 0}, MaxScore: 40}
	if err := store.Save(context.Background(), want); err != nil {
		t.Fatalf("save second: %v", err)
	}

	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("loaded = %+v, want %+v", got, want)
	}

	var rows int
	if err := store.sqlDB.QueryRow(`SELECT COUNT(*) FROM score_records`).Scan(&rows); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if rows != len(storage.Keys) {
		t.Fatalf("rows = %d, want %d", rows, len(storage.Keys))
	}
}

func TestStoredPayloadsMatchRecordLayout(t *testing.T) {
	store := openTempStore(t)
	if err := store.Save(context.Background(), storage.Snapshot{Score: [2]int{10, 2}, GameScore: [2]int{0, 1}, MaxScore: 20}); err != nil {
		t.Fatalf("save: %v", err)
	}

	want := map[string]string{
		"score":     `{"score":[10,2]}`,
		"gameScore": `{"gameScore":[0,1]}`,
		"maxScore":  `{"maxScore":20}`,
	}
	for key, payload := range want {
		var got string
		if err := store.sqlDB.QueryRow(`SELECT payload FROM score_records WHERE key = ?`, key).Scan(&got); err != nil {
			t.Fatalf("read %s: %v", key, err)
		}
		if got != payload {
			t.Fatalf("payload %s = %s, want %s", key, got, payload)
		}
	}
}

func TestLoadPartialRecordsUsesDefaults(t *testing.T) {
	store := openTempStore(t)
	if _, err := store.sqlDB.Exec(
		`INSERT INTO score_records (key, payload, updated_at) VALUES ('maxScore', '{"maxScore":40}', 0)`,
	); err != nil {
		t.Fatalf("seed record: %v", err)
	}

	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := storage.Snapshot{MaxScore: 40}
	if got != want {
		t.Fatalf("loaded = %+v, want %+v", got, want)
	}
}

func TestLoadWithoutMaxScoreLeavesCeilingUnset(t *testing.T) {
	store := openTempStore(t)
	if _, err := store.sqlDB.Exec(
		`INSERT INTO score_records (key, payload, updated_at) VALUES ('score', '{"score":[35,0]}', 0)`,
	); err != nil {
		t.Fatalf("seed record: %v", err)
	}

	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := storage.Snapshot{Score: [2]int{35, 0}}
	if got != want {
		t.Fatalf("loaded = %+v, want %+v", got, want)
	}
}

func TestReopenKeepsSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scoreboard.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	want := storage.Snapshot{Score: [2]int{7, 8}, GameScore: [2]int{2, 2}, MaxScore: 30}
	if err := store.Save(context.Background(), want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()
	got, err := reopened.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("loaded = %+v, want %+v", got, want)
	}
}

func TestCanceledContext(t *testing.T) {
	store := openTempStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := store.Save(ctx, storage.Snapshot{MaxScore: 20}); !errors.Is(err, context.Canceled) {
		t.Fatalf("save error = %v, want context.Canceled", err)
	}
	if _, err := store.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("load error = %v, want context.Canceled", err)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func openTempStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scoreboard.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}
