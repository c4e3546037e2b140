package history

import (
	"path/filepath"
	"testing"
	"time"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStoreAt(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAddAndList(t *testing.T) {
	store := testStore(t)

	for i, q := range []string{"SELECT 1", "SELECT 2", "SELECT 3"} {
		err := store.Add(&Entry{
			Connection: "test",
			Query:      q,
			ExecutedAt: time.Now().Add(time.Duration(i) * time.Second),
			Status:     "success",
			RowCount:   1,
		})
		if err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	entries, err := store.List("test", 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries", len(entries))
	}
	if entries[0].Query != "SELECT 3" {
		t.Fatalf("newest first, got %q", entries[0].Query)
	}
}

func TestListScopedToConnection(t *testing.T) {
	store := testStore(t)
	store.Add(&Entry{Connection: "a", Query: "SELECT 1", ExecutedAt: time.Now(), Status: "success"})
	store.Add(&Entry{Connection: "b", Query: "SELECT 2", ExecutedAt: time.Now(), Status: "success"})

	entries, err := store.List("a", 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 || entries[0].Connection != "a" {
		t.Fatalf("history must be scoped per connection: %+v", entries)
	}
}

func TestSearch(t *testing.T) {
	store := testStore(t)
	store.Add(&Entry{Connection: "x", Query: "SELECT * FROM orders", ExecutedAt: time.Now(), Status: "success"})
	store.Add(&Entry{Connection: "x", Query: "SELECT * FROM users", ExecutedAt: time.Now(), Status: "success"})

	entries, err := store.Search("x", "orders", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d", len(entries))
	}
}

func TestErrorEntryRoundtrip(t *testing.T) {
	store := testStore(t)
	in := &Entry{
		Connection:   "x",
		Query:        "SELECT * FROM missing",
		ExecutedAt:   time.Now(),
		Status:       "error",
		ErrorMessage: "no such table: missing",
	}
	if err := store.Add(in); err != nil {
		t.Fatalf("add: %v", err)
	}
	if in.ID == 0 {
		t.Fatal("Add must backfill the row ID")
	}

	entries, _ := store.List("x", 1, 0)
	if entries[0].ErrorMessage != in.ErrorMessage {
		t.Fatalf("got %q", entries[0].ErrorMessage)
	}
}

func TestQueryPreviewTruncates(t *testing.T) {
	e := Entry{Query: "SELECT something_very_long FROM a_table"}
	if got := e.QueryPreview(10); len(got) != 10 {
		t.Fatalf("got %q", got)
	}
	if got := e.QueryPreview(100); got != e.Query {
		t.Fatalf("short queries must pass through: %q", got)
	}
}
